package prompt

import "strings"

// Delimiter wraps the user's text inside the prompt.
const Delimiter = "---"

const legalAnalysisHeader = `Você é um assistente jurídico especializado em simplificar textos legais para leigos, chamado "IA Decifra".
Analise o seguinte texto jurídico fornecido pelo usuário. Sua tarefa é:
1.  **Resumo Principal:** Forneça um resumo conciso do propósito geral do texto em linguagem simples (1-2 frases).
2.  **Tradução de Jargões:** Identifique até 5-7 jargões ou termos técnicos complexos no texto e explique cada um de forma clara e simples, como se estivesse explicando para alguém sem nenhum conhecimento jurídico.
3.  **Pontos de Atenção / "Bandeiras Vermelhas":** Se identificar cláusulas que podem ser desvantajosas, ambíguas, confusas ou que mereçam atenção especial do usuário (potenciais "armadilhas", obrigações importantes, multas, renúncias de direito), liste até 3-5 desses pontos, explicando o porquê eles merecem atenção e qual o possível impacto para o usuário. Se não houver pontos óbvios de grande risco, mencione as obrigações principais ou os direitos mais relevantes que o texto estabelece.
4.  **Linguagem:** Use uma linguagem extremamente acessível, amigável e didática. Evite usar mais jargões ao explicar.
5.  **Formato da Resposta:** Organize a resposta de forma clara, usando títulos para cada seção (Ex: "Resumo Principal:", "Termos Simplificados:", "Pontos de Atenção:").

Texto jurídico para análise:
`

const legalAnalysisFooter = `Análise do IA Decifra:
`

// BuildLegalAnalysis embeds text verbatim between two Delimiter lines of the
// fixed "IA Decifra" instructions.
func BuildLegalAnalysis(text string) string {
	var b strings.Builder
	b.Grow(len(legalAnalysisHeader) + len(text) + len(legalAnalysisFooter) + 2*len(Delimiter) + 4)
	b.WriteString(legalAnalysisHeader)
	b.WriteString(Delimiter)
	b.WriteByte('\n')
	b.WriteString(text)
	b.WriteByte('\n')
	b.WriteString(Delimiter)
	b.WriteByte('\n')
	b.WriteString(legalAnalysisFooter)
	return b.String()
}

// ExtractDelimited returns the text between the delimiter lines of a prompt
// built by BuildLegalAnalysis.
func ExtractDelimited(p string) (string, bool) {
	open := "\n" + Delimiter + "\n"
	closing := "\n" + Delimiter + "\n" + legalAnalysisFooter
	start := strings.Index(p, open)
	if start < 0 || !strings.HasSuffix(p, closing) {
		return "", false
	}
	start += len(open)
	end := len(p) - len(closing)
	if end < start {
		return "", false
	}
	return p[start:end], true
}

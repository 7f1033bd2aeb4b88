package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLegalAnalysisEmbedsTextVerbatim(t *testing.T) {
	inputs := []string{
		"oi",
		"CLÁUSULA 1ª - O LOCATÁRIO renuncia ao direito de preferência.",
		"  leading and trailing spaces  ",
		"linha 1\nlinha 2\n---\nlinha 4",
		"\n",
	}
	for _, in := range inputs {
		p := BuildLegalAnalysis(in)
		got, ok := ExtractDelimited(p)
		require.True(t, ok, "delimiters missing for %q", in)
		assert.Equal(t, in, got)
		assert.Contains(t, p, "\n"+Delimiter+"\n"+in+"\n"+Delimiter+"\n")
	}
}

func TestBuildLegalAnalysisInstructions(t *testing.T) {
	p := BuildLegalAnalysis("texto")
	for _, want := range []string{
		"IA Decifra",
		"(1-2 frases)",
		"5-7 jargões",
		"3-5 desses pontos",
		"obrigações principais",
		"linguagem extremamente acessível",
		"Resumo Principal:",
		"Termos Simplificados:",
		"Pontos de Atenção:",
	} {
		assert.Contains(t, p, want)
	}
	assert.True(t, strings.HasSuffix(p, "Análise do IA Decifra:\n"))
}

func TestExtractDelimitedRejectsForeignPrompt(t *testing.T) {
	_, ok := ExtractDelimited("no delimiters here")
	assert.False(t, ok)
}

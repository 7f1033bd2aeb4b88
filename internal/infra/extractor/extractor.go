package extractor

import (
	"strings"

	"github.com/bryanwahyu/ia-decifra/internal/domain/apperror"
	"github.com/bryanwahyu/ia-decifra/internal/domain/document"
)

const (
	MsgUnsupported  = "Tipo de arquivo não suportado para extração."
	MsgEmptyContent = "Não foi possível extrair texto do arquivo ou o arquivo está vazio."
)

// Extractor turns an accepted upload into plain text, entirely in memory.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Extract dispatches on the upload's declared kind. The returned text is
// never blank.
func (e *Extractor) Extract(up document.Upload) (string, error) {
	var (
		text string
		err  error
	)
	switch up.Kind {
	case document.FilePDF:
		text, err = extractPDF(up.Data)
	case document.FilePlainText:
		text = string(up.Data)
	default:
		return "", apperror.New(apperror.UnsupportedType, MsgUnsupported)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", apperror.New(apperror.EmptyContent, MsgEmptyContent)
	}
	return text, nil
}

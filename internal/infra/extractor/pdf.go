package extractor

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/bryanwahyu/ia-decifra/internal/domain/apperror"
)

const MsgExtraction = "Falha no processamento do arquivo."

// extractPDF concatenates the plain text of every page. The parser panics on
// some malformed inputs, so panics are reported as extraction errors.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apperror.Wrap(apperror.Extraction, MsgExtraction, fmt.Errorf("pdf parser panic: %v", r))
		}
	}()

	if len(data) == 0 {
		return "", apperror.Wrap(apperror.Extraction, MsgExtraction, fmt.Errorf("pdf: empty input"))
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperror.Wrap(apperror.Extraction, MsgExtraction, fmt.Errorf("open pdf: %w", err))
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", apperror.Wrap(apperror.Extraction, MsgExtraction, fmt.Errorf("read pdf text: %w", err))
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", apperror.Wrap(apperror.Extraction, MsgExtraction, fmt.Errorf("read pdf text: %w", err))
	}
	return string(out), nil
}

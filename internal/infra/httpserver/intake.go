package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/bryanwahyu/ia-decifra/internal/application/decifra"
	"github.com/bryanwahyu/ia-decifra/internal/domain/apperror"
	"github.com/bryanwahyu/ia-decifra/internal/domain/document"
)

const (
	// MaxUploadSize caps the uploaded file itself.
	MaxUploadSize = 10 << 20
	// multipartOverhead leaves room for boundaries and part headers.
	multipartOverhead = 1 << 20

	FileField = "legal_file"

	MsgNoFile       = "Nenhum arquivo enviado."
	MsgInvalidType  = "Tipo de arquivo inválido. Apenas arquivos PDF e TXT são permitidos."
	MsgTooLarge     = "Arquivo excede o tamanho máximo permitido de 10 MB."
	MsgTextTooLarge = "Texto excede o tamanho máximo permitido de 10 MB."
)

// acceptText reads {"text": "..."} from the request body.
func acceptText(w http.ResponseWriter, req *http.Request) (string, error) {
	req.Body = http.MaxBytesReader(w, req.Body, MaxUploadSize)
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", apperror.Wrap(apperror.PayloadTooLarge, MsgTextTooLarge, err)
		}
		return "", apperror.Wrap(apperror.Validation, decifra.MsgNoText, fmt.Errorf("decode text body: %w", err))
	}
	if body.Text == "" {
		return "", apperror.New(apperror.Validation, decifra.MsgNoText)
	}
	return body.Text, nil
}

// acceptFile reads the legal_file part into memory. The part's declared
// Content-Type must be PDF or plain text.
func acceptFile(w http.ResponseWriter, req *http.Request) (document.Upload, error) {
	limit := int64(MaxUploadSize + multipartOverhead)
	req.Body = http.MaxBytesReader(w, req.Body, limit)
	// maxMemory at the body cap keeps every part in memory: no temp files.
	if err := req.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || errors.Is(err, multipart.ErrMessageTooLarge) {
			return document.Upload{}, apperror.Wrap(apperror.PayloadTooLarge, MsgTooLarge, err)
		}
		return document.Upload{}, apperror.Wrap(apperror.Validation, MsgNoFile, err)
	}
	defer req.MultipartForm.RemoveAll()

	file, header, err := req.FormFile(FileField)
	if err != nil {
		return document.Upload{}, apperror.Wrap(apperror.Validation, MsgNoFile, err)
	}
	defer file.Close()

	if header.Size > MaxUploadSize {
		return document.Upload{}, apperror.New(apperror.PayloadTooLarge, MsgTooLarge)
	}
	declared := header.Header.Get("Content-Type")
	kind, ok := document.ParseFileKind(declared)
	if !ok {
		return document.Upload{}, apperror.Wrap(apperror.UnsupportedType, MsgInvalidType,
			fmt.Errorf("declared content type %q", declared))
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return document.Upload{}, apperror.Wrap(apperror.Validation, MsgNoFile, err)
	}
	return document.Upload{
		Filename: header.Filename,
		MIMEType: kind.MIMEType(),
		Kind:     kind,
		Data:     data,
	}, nil
}

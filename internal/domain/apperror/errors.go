package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure at the request boundary.
type Kind int

const (
	Unknown Kind = iota
	Validation
	UnsupportedType
	PayloadTooLarge
	Extraction
	EmptyContent
	Upstream
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case UnsupportedType:
		return "unsupported_type"
	case PayloadTooLarge:
		return "payload_too_large"
	case Extraction:
		return "extraction"
	case EmptyContent:
		return "empty_content"
	case Upstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// HTTPStatus maps the kind to the status code returned to the caller.
func (k Kind) HTTPStatus() int {
	switch k {
	case Validation, UnsupportedType, EmptyContent:
		return http.StatusBadRequest
	case PayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// DefaultMessage is the user-facing text used when an error carries none.
func (k Kind) DefaultMessage() string {
	switch k {
	case Validation:
		return "Requisição inválida."
	case UnsupportedType:
		return "Tipo de arquivo inválido. Apenas arquivos PDF e TXT são permitidos."
	case PayloadTooLarge:
		return "Arquivo excede o tamanho máximo permitido de 10 MB."
	case Extraction:
		return "Falha no processamento do arquivo."
	case EmptyContent:
		return "Não foi possível extrair texto do arquivo ou o arquivo está vazio."
	case Upstream:
		return "Falha na solicitação de análise de texto."
	default:
		return "Falha no processamento da solicitação."
	}
}

// Error is a classified failure. Message is safe to show to the caller,
// Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	msg := e.PublicMessage()
	if e.Err != nil {
		return e.Kind.String() + ": " + msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + msg
}

func (e *Error) Unwrap() error { return e.Err }

// PublicMessage returns Message, or the kind's default when empty.
func (e *Error) PublicMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.DefaultMessage()
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// PublicMessage returns the caller-facing message for any error.
// Unclassified errors never leak their text.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.PublicMessage()
	}
	return Unknown.DefaultMessage()
}

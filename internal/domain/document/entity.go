package document

import "github.com/gabriel-vasile/mimetype"

// SourceKind tells where a Text came from.
type SourceKind string

const (
	SourceRaw       SourceKind = "raw"
	SourcePDF       SourceKind = "pdf"
	SourcePlainFile SourceKind = "plain-file"
)

const (
	MIMEPDF       = "application/pdf"
	MIMEPlainText = "text/plain"
)

// FileKind is the set of upload formats the service can extract text from.
type FileKind int

const (
	FileUnknown FileKind = iota
	FilePDF
	FilePlainText
)

// ParseFileKind resolves a declared MIME type (parameters such as charset are
// ignored). The content itself is never sniffed.
func ParseFileKind(mimeType string) (FileKind, bool) {
	switch {
	case mimeType == "":
		return FileUnknown, false
	case mimetype.EqualsAny(mimeType, MIMEPDF):
		return FilePDF, true
	case mimetype.EqualsAny(mimeType, MIMEPlainText):
		return FilePlainText, true
	default:
		return FileUnknown, false
	}
}

func (k FileKind) String() string {
	switch k {
	case FilePDF:
		return "pdf"
	case FilePlainText:
		return "plain-text"
	default:
		return "unknown"
	}
}

// MIMEType returns the canonical MIME type of the kind.
func (k FileKind) MIMEType() string {
	switch k {
	case FilePDF:
		return MIMEPDF
	case FilePlainText:
		return MIMEPlainText
	default:
		return ""
	}
}

// Source returns the SourceKind recorded for text extracted from this kind.
func (k FileKind) Source() SourceKind {
	if k == FilePDF {
		return SourcePDF
	}
	return SourcePlainFile
}

// Upload is an accepted file held in memory for the duration of a request.
type Upload struct {
	Filename string
	MIMEType string
	Kind     FileKind
	Data     []byte
}

// Text is the normalized document text handed to the analysis client.
type Text struct {
	Source    SourceKind
	Content   string
	Truncated bool
}

// NewText builds a Text from content, applying Truncate.
func NewText(source SourceKind, content string) Text {
	out, truncated := Truncate(content)
	return Text{Source: source, Content: out, Truncated: truncated}
}

package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		out, cut := Truncate("contrato de locação")
		assert.False(t, cut)
		assert.Equal(t, "contrato de locação", out)
	})

	t.Run("exactly at limit", func(t *testing.T) {
		in := strings.Repeat("a", MaxTextLength)
		out, cut := Truncate(in)
		assert.False(t, cut)
		assert.Equal(t, in, out)
	})

	t.Run("over limit keeps prefix and marker", func(t *testing.T) {
		in := strings.Repeat("a", MaxTextLength) + strings.Repeat("b", 500)
		out, cut := Truncate(in)
		require.True(t, cut)
		assert.Equal(t, strings.Repeat("a", MaxTextLength)+TruncationMarker, out)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		in := strings.Repeat("ç", MaxTextLength)
		out, cut := Truncate(in)
		assert.False(t, cut)
		assert.Equal(t, in, out)

		out, cut = Truncate(in + "ã")
		require.True(t, cut)
		assert.Equal(t, in+TruncationMarker, out)
	})
}

func TestNewText(t *testing.T) {
	doc := NewText(SourceRaw, strings.Repeat("x", MaxTextLength+1))
	assert.True(t, doc.Truncated)
	assert.Equal(t, SourceRaw, doc.Source)
	assert.True(t, strings.HasSuffix(doc.Content, TruncationMarker))

	doc = NewText(SourcePDF, "oi")
	assert.False(t, doc.Truncated)
	assert.Equal(t, "oi", doc.Content)
}

func TestParseFileKind(t *testing.T) {
	tests := []struct {
		mime string
		kind FileKind
		ok   bool
	}{
		{"application/pdf", FilePDF, true},
		{"text/plain", FilePlainText, true},
		{"text/plain; charset=utf-8", FilePlainText, true},
		{"TEXT/PLAIN", FilePlainText, true},
		{"image/png", FileUnknown, false},
		{"application/msword", FileUnknown, false},
		{"", FileUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			kind, ok := ParseFileKind(tt.mime)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestFileKindSource(t *testing.T) {
	assert.Equal(t, SourcePDF, FilePDF.Source())
	assert.Equal(t, SourcePlainFile, FilePlainText.Source())
	assert.Equal(t, MIMEPDF, FilePDF.MIMEType())
	assert.Equal(t, MIMEPlainText, FilePlainText.MIMEType())
}

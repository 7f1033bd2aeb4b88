package decifra

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/ia-decifra/internal/domain/ai"
	"github.com/bryanwahyu/ia-decifra/internal/domain/apperror"
	"github.com/bryanwahyu/ia-decifra/internal/domain/document"
	"github.com/bryanwahyu/ia-decifra/internal/infra/extractor"
)

type fakeAnalyzer struct {
	texts []string
	reply string
	err   error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string) (string, error) {
	f.texts = append(f.texts, text)
	return f.reply, f.err
}

type fakeRecorder struct {
	analyses    map[string]int
	truncations map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{analyses: map[string]int{}, truncations: map[string]int{}}
}

func (r *fakeRecorder) ObserveAnalysis(source, outcome string) { r.analyses[source+"/"+outcome]++ }
func (r *fakeRecorder) ObserveTruncation(source string)        { r.truncations[source]++ }

type stepClock struct{ t time.Time }

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newService(an *fakeAnalyzer, rec *fakeRecorder) *Service {
	return &Service{
		Extractor: extractor.New(),
		Analyzer:  an,
		Recorder:  rec,
		Clock:     &stepClock{t: time.Unix(0, 0)},
	}
}

func TestAnalyzeTextEmpty(t *testing.T) {
	an := &fakeAnalyzer{}
	_, err := newService(an, newFakeRecorder()).AnalyzeText(context.Background(), "")
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
	assert.Equal(t, MsgNoText, apperror.PublicMessage(err))
	assert.Empty(t, an.texts)
}

func TestAnalyzeTextPassesVerbatim(t *testing.T) {
	an := &fakeAnalyzer{reply: "ok"}
	rec := newFakeRecorder()
	out, err := newService(an, rec).AnalyzeText(context.Background(), "  O locatário obriga-se...  ")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, []string{"  O locatário obriga-se...  "}, an.texts)
	assert.Equal(t, 1, rec.analyses["raw/success"])
}

func TestAnalyzeTextTruncates(t *testing.T) {
	an := &fakeAnalyzer{reply: "ok"}
	rec := newFakeRecorder()
	long := strings.Repeat("a", document.MaxTextLength) + strings.Repeat("z", 10)

	_, err := newService(an, rec).AnalyzeText(context.Background(), long)
	require.NoError(t, err)
	require.Len(t, an.texts, 1)
	assert.Equal(t, strings.Repeat("a", document.MaxTextLength)+document.TruncationMarker, an.texts[0])
	assert.Equal(t, 1, rec.truncations["raw"])
}

func TestAnalyzeFilePlainText(t *testing.T) {
	an := &fakeAnalyzer{reply: "ok"}
	rec := newFakeRecorder()
	up := document.Upload{Filename: "a.txt", MIMEType: document.MIMEPlainText, Kind: document.FilePlainText, Data: []byte("oi")}

	out, err := newService(an, rec).AnalyzeFile(context.Background(), up)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, []string{"oi"}, an.texts)
	assert.Equal(t, 1, rec.analyses["plain-file/success"])
}

func TestAnalyzeFileTruncates(t *testing.T) {
	an := &fakeAnalyzer{reply: "ok"}
	rec := newFakeRecorder()
	data := []byte(strings.Repeat("é", document.MaxTextLength+1))
	up := document.Upload{Kind: document.FilePlainText, Data: data}

	_, err := newService(an, rec).AnalyzeFile(context.Background(), up)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", document.MaxTextLength)+document.TruncationMarker, an.texts[0])
	assert.Equal(t, 1, rec.truncations["plain-file"])
}

func TestAnalyzeFileExtractionFailureSkipsAnalyzer(t *testing.T) {
	an := &fakeAnalyzer{reply: "ok"}
	rec := newFakeRecorder()
	up := document.Upload{Kind: document.FilePlainText, Data: []byte("   ")}

	_, err := newService(an, rec).AnalyzeFile(context.Background(), up)
	assert.Equal(t, apperror.EmptyContent, apperror.KindOf(err))
	assert.Empty(t, an.texts)
	assert.Equal(t, 1, rec.analyses["plain-file/error"])
}

func TestUpstreamFallbackMessages(t *testing.T) {
	quiet := apperror.Wrap(apperror.Upstream, "", ai.ErrQuotaExceeded)

	t.Run("text path", func(t *testing.T) {
		an := &fakeAnalyzer{err: quiet}
		_, err := newService(an, newFakeRecorder()).AnalyzeText(context.Background(), "x")
		assert.Equal(t, apperror.Upstream, apperror.KindOf(err))
		assert.Equal(t, MsgTextFailure, apperror.PublicMessage(err))
		assert.ErrorIs(t, err, ai.ErrQuotaExceeded)
	})

	t.Run("file path", func(t *testing.T) {
		an := &fakeAnalyzer{err: quiet}
		up := document.Upload{Kind: document.FilePlainText, Data: []byte("x")}
		_, err := newService(an, newFakeRecorder()).AnalyzeFile(context.Background(), up)
		assert.Equal(t, MsgFileFailure, apperror.PublicMessage(err))
	})

	t.Run("upstream message wins", func(t *testing.T) {
		an := &fakeAnalyzer{err: apperror.Wrap(apperror.Upstream, "Invalid API key", nil)}
		_, err := newService(an, newFakeRecorder()).AnalyzeText(context.Background(), "x")
		assert.Equal(t, "Invalid API key", apperror.PublicMessage(err))
	})

	t.Run("unclassified error", func(t *testing.T) {
		cause := errors.New("dial tcp: refused")
		an := &fakeAnalyzer{err: cause}
		_, err := newService(an, newFakeRecorder()).AnalyzeText(context.Background(), "x")
		assert.Equal(t, apperror.Upstream, apperror.KindOf(err))
		assert.ErrorIs(t, err, cause)
	})
}

func TestServiceWithoutOptionalCollaborators(t *testing.T) {
	svc := &Service{Extractor: extractor.New(), Analyzer: &fakeAnalyzer{reply: "ok"}}
	out, err := svc.AnalyzeText(context.Background(), strings.Repeat("b", document.MaxTextLength+5))
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

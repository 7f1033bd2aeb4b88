package decifra

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bryanwahyu/ia-decifra/internal/application"
	"github.com/bryanwahyu/ia-decifra/internal/domain/ai"
	"github.com/bryanwahyu/ia-decifra/internal/domain/apperror"
	"github.com/bryanwahyu/ia-decifra/internal/domain/document"
)

const (
	MsgNoText      = "Nenhum texto fornecido para análise."
	MsgTextFailure = "Falha na solicitação de análise de texto."
	MsgFileFailure = "Falha no processamento do arquivo."
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Extractor turns an accepted upload into plain text.
type Extractor interface {
	Extract(up document.Upload) (string, error)
}

// Analyzer sends normalized text to the completion provider.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (string, error)
}

// Recorder receives per-request outcome counters.
type Recorder interface {
	ObserveAnalysis(source, outcome string)
	ObserveTruncation(source string)
}

// Service runs the intake pipeline: extraction, truncation and analysis.
type Service struct {
	Extractor Extractor
	Analyzer  Analyzer
	Recorder  Recorder
	Clock     application.Clock
	Logger    *zap.Logger
}

// AnalyzeText analyzes raw text submitted in the request body.
func (s *Service) AnalyzeText(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", apperror.New(apperror.Validation, MsgNoText)
	}
	return s.analyze(ctx, document.NewText(document.SourceRaw, text), MsgTextFailure)
}

// AnalyzeFile extracts the upload's text and analyzes it.
func (s *Service) AnalyzeFile(ctx context.Context, up document.Upload) (string, error) {
	source := up.Kind.Source()
	content, err := s.Extractor.Extract(up)
	if err != nil {
		s.observe(string(source), OutcomeError)
		return "", err
	}
	return s.analyze(ctx, document.NewText(source, content), MsgFileFailure)
}

func (s *Service) analyze(ctx context.Context, doc document.Text, fallback string) (string, error) {
	log := s.logger().With(zap.String("source", string(doc.Source)))
	if doc.Truncated {
		log.Warn("text truncated before analysis", zap.Int("max_chars", document.MaxTextLength))
		if s.Recorder != nil {
			s.Recorder.ObserveTruncation(string(doc.Source))
		}
	}

	start := s.now()
	out, err := s.Analyzer.Analyze(ctx, doc.Content)
	elapsed := s.now().Sub(start)
	if err != nil {
		s.observe(string(doc.Source), OutcomeError)
		log.Warn("analysis failed",
			zap.Duration("duration", elapsed),
			zap.Bool("quota_exceeded", errors.Is(err, ai.ErrQuotaExceeded)),
			zap.Error(err),
		)
		return "", withFallback(err, fallback)
	}
	s.observe(string(doc.Source), OutcomeSuccess)
	log.Info("analysis completed",
		zap.Duration("duration", elapsed),
		zap.Int("input_len", len(doc.Content)),
		zap.Bool("truncated", doc.Truncated),
	)
	return out, nil
}

// withFallback gives a message-less failure the path's default message.
func withFallback(err error, msg string) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		if appErr.Message != "" {
			return err
		}
		return apperror.Wrap(appErr.Kind, msg, appErr.Err)
	}
	return apperror.Wrap(apperror.Upstream, msg, err)
}

func (s *Service) observe(source, outcome string) {
	if s.Recorder != nil {
		s.Recorder.ObserveAnalysis(source, outcome)
	}
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func (s *Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bryanwahyu/ia-decifra/internal/domain/ai"
	"github.com/bryanwahyu/ia-decifra/internal/domain/apperror"
	"github.com/bryanwahyu/ia-decifra/internal/infra/ai/prompt"
)

const (
	Temperature = 0.3
	MaxTokens   = 1500

	// FallbackAnalysis is returned when the provider answers with no choices.
	FallbackAnalysis = "Não foi possível gerar a análise a partir do texto fornecido."
)

type Service struct {
	client  ai.Completer
	params  ai.Params
	timeout time.Duration
}

// NewService wires the analysis client. A zero timeout leaves the outbound
// call bounded only by the caller's context.
func NewService(client ai.Completer, model string, timeout time.Duration) *Service {
	return &Service{
		client:  client,
		params:  ai.Params{Model: model, Temperature: Temperature, MaxTokens: MaxTokens},
		timeout: timeout,
	}
}

// Analyze makes exactly one completion call for text wrapped in the legal
// analysis prompt.
func (s *Service) Analyze(ctx context.Context, text string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	out, err := s.client.Complete(ctx, prompt.BuildLegalAnalysis(text), s.params)
	if errors.Is(err, ai.ErrNoChoices) {
		return FallbackAnalysis, nil
	}
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return "", err
		}
		return "", apperror.Wrap(apperror.Upstream, "", fmt.Errorf("analyze: %w", err))
	}
	return strings.TrimSpace(out), nil
}

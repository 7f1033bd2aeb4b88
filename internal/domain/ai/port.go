package ai

import "context"

// Params tunes a single completion request.
type Params struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Completer sends one prompt to a completion provider and returns the text of
// the first choice.
type Completer interface {
	Complete(ctx context.Context, prompt string, params Params) (string, error)
}

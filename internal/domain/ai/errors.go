package ai

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrNoChoices indicates the provider answered without any completion choice.
var ErrNoChoices = errors.New("ai completion returned no choices")

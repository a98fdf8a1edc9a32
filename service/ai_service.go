package service

import (
	"context"

	"github.com/tieubaoca/eduinsights-be/types"
)

// AIService is the contract the analysis pipeline requires from a
// completion provider: one blocking call per prompt, returning either
// the full response text or an error. No retry or backoff is performed
// here; failures surface to the caller as CompletionError.
type AIService interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteStream(ctx context.Context, prompt string, handler types.StreamHandler) error
}

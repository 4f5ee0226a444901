package service

import "context"

// TextGenerator is the single-call surface of the generation pipeline.
// LLMService implements it; tests substitute stubs.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

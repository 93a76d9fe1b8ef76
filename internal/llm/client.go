package llm

import (
	"context"
)

// GenerateOptions carries the per-call sampling configuration. Keyword
// extraction wants a low temperature and a small budget; outreach generation
// wants a mid temperature and room for prose.
type GenerateOptions struct {
	Temperature float32
	MaxTokens   int
}

type LLMClient interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

package outreach

import (
	"context"

	"github.com/talentscout/talentscout/internal/llm"
)

type MockLLMClient struct {
	Response string
	Err      error

	Calls      int
	LastPrompt string
	LastOpts   llm.GenerateOptions
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	m.LastOpts = opts
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentscout/talentscout/internal/config"
	"github.com/talentscout/talentscout/internal/core"
	"github.com/talentscout/talentscout/internal/llm"
	"github.com/talentscout/talentscout/internal/logger"
	"github.com/talentscout/talentscout/internal/search"
)

const jobDescription = `We are hiring a Senior Backend Engineer in Boston to build
fintech payment infrastructure. Requirements: 5+ years with Python, AWS, and
distributed systems. Experience at a payments company is a plus.`

// TestLivePipeline runs the full pipeline against the real text-generation
// and search services. It needs LLM_API_KEY (and optionally GOOGLE_API_KEY /
// GOOGLE_SEARCH_ENGINE_ID) in the environment or a root .env.
func TestLivePipeline(t *testing.T) {
	_ = godotenv.Load("../../.env")

	cfg, err := config.LoadOrDefault(os.Getenv("CONFIG_PATH"))
	require.NoError(t, err)

	if cfg.LLM.APIKey == "" {
		t.Skip("Skipping integration test: LLM_API_KEY not set")
	}

	log, err := logger.New(false, true)
	require.NoError(t, err)

	ctx := context.Background()

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	require.NoError(t, err)

	var searchClient search.Client
	if cfg.Search.APIKey != "" && cfg.Search.EngineID != "" {
		searchClient, err = search.NewGoogleClient(ctx, cfg.Search.APIKey, cfg.Search.EngineID)
		require.NoError(t, err)
	}

	p := core.NewPipeline(llmClient, searchClient, cfg, log)

	result, err := p.Run(ctx, jobDescription, 3)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Candidates)
	require.Len(t, result.ScoredCandidates, len(result.Candidates))
	require.Len(t, result.OutreachMessages, len(result.ScoredCandidates))

	for i := 1; i < len(result.ScoredCandidates); i++ {
		assert.GreaterOrEqual(t, result.ScoredCandidates[i-1].Score, result.ScoredCandidates[i].Score)
	}
	for _, msg := range result.OutreachMessages {
		assert.NotEmpty(t, msg.Message)
		assert.NotEmpty(t, msg.LinkedInURL)
	}
}

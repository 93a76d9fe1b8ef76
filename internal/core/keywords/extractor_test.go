package keywords

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/talentscout/talentscout/internal/config"
	"github.com/talentscout/talentscout/internal/core/model"
)

func newTestExtractor(mock *MockLLMClient, maxKeywords int) *Extractor {
	return NewExtractor(mock, config.PipelineConfig{MaxKeywords: maxKeywords}, zap.NewNop())
}

func TestExtractEmptyInputSkipsService(t *testing.T) {
	mock := &MockLLMClient{Response: `{"job_titles": ["should not be used"]}`}
	extractor := newTestExtractor(mock, 20)

	result := extractor.Extract(context.Background(), "   \n\t ")

	assert.Equal(t, 0, mock.Calls)
	assert.Equal(t, model.SourceEmpty, result.Source)
	assert.Empty(t, result.Flat)
	assert.Empty(t, result.Keywords.JobTitles)
	assert.NotNil(t, result.Keywords.Skills)
}

func TestExtractParsesStructuredResponse(t *testing.T) {
	mock := &MockLLMClient{
		Response: `Here you go:
{"job_titles": ["Backend Engineer"], "skills": ["Go", "AWS"], "location": ["Boston"], "companies": ["Stripe"]}`,
	}
	extractor := newTestExtractor(mock, 20)

	result := extractor.Extract(context.Background(), "Backend Engineer role in Boston")

	assert.Equal(t, model.SourceLive, result.Source)
	assert.Equal(t, []string{"Backend Engineer"}, result.Keywords.JobTitles)
	assert.Equal(t, []string{"Go", "AWS"}, result.Keywords.Skills)
	// Flattening order: job_titles, skills, location, companies.
	assert.Equal(t, []string{"Backend Engineer", "Go", "AWS", "Boston", "Stripe"}, result.Flat)
}

func TestExtractUsesLowTemperature(t *testing.T) {
	mock := &MockLLMClient{Response: `{"job_titles": ["x"]}`}
	extractor := newTestExtractor(mock, 20)

	extractor.Extract(context.Background(), "some job")

	assert.InDelta(t, 0.2, mock.LastOpts.Temperature, 0.001)
	assert.Equal(t, 400, mock.LastOpts.MaxTokens)
}

func TestExtractTruncatesLongDescription(t *testing.T) {
	mock := &MockLLMClient{Response: `{"job_titles": ["x"]}`}
	extractor := newTestExtractor(mock, 20)

	long := strings.Repeat("a", 2000)
	extractor.Extract(context.Background(), long)

	assert.Contains(t, mock.LastPrompt, strings.Repeat("a", 1500)+"...")
	assert.NotContains(t, mock.LastPrompt, strings.Repeat("a", 1501))
}

func TestExtractMissingFieldsDefaultToEmpty(t *testing.T) {
	mock := &MockLLMClient{Response: `{"skills": ["Python"]}`}
	extractor := newTestExtractor(mock, 20)

	result := extractor.Extract(context.Background(), "some job")

	assert.Equal(t, model.SourceLive, result.Source)
	assert.NotNil(t, result.Keywords.JobTitles)
	assert.Empty(t, result.Keywords.JobTitles)
	assert.Equal(t, []string{"Python"}, result.Flat)
}

func TestExtractMalformedResponseFallsBack(t *testing.T) {
	mock := &MockLLMClient{Response: "I could not produce JSON, sorry."}
	extractor := newTestExtractor(mock, 20)

	result := extractor.Extract(context.Background(), "some job")

	assert.Equal(t, model.SourceFallback, result.Source)
	assert.Equal(t, fallbackKeywords, result.Flat)
	assert.Empty(t, result.Keywords.JobTitles)
}

func TestExtractServiceErrorFallsBack(t *testing.T) {
	mock := &MockLLMClient{Err: fmt.Errorf("connection refused")}
	extractor := newTestExtractor(mock, 20)

	result := extractor.Extract(context.Background(), "some job")

	assert.Equal(t, model.SourceFallback, result.Source)
	assert.Equal(t, fallbackKeywords, result.Flat)
}

func TestExtractUnconfiguredClientFallsBack(t *testing.T) {
	extractor := NewExtractor(nil, config.PipelineConfig{MaxKeywords: 20}, zap.NewNop())

	result := extractor.Extract(context.Background(), "some job")

	assert.Equal(t, model.SourceFallback, result.Source)
	assert.Equal(t, fallbackKeywords, result.Flat)
}

func TestExtractTruncatesFlatList(t *testing.T) {
	mock := &MockLLMClient{
		Response: `{"job_titles": ["a", "b"], "skills": ["c", "d"], "location": ["e"], "companies": ["f"]}`,
	}
	extractor := newTestExtractor(mock, 3)

	result := extractor.Extract(context.Background(), "some job")

	assert.Equal(t, []string{"a", "b", "c"}, result.Flat)
}

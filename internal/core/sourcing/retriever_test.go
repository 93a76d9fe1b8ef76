package sourcing

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talentscout/talentscout/internal/config"
	"github.com/talentscout/talentscout/internal/core/model"
	"github.com/talentscout/talentscout/internal/search"
)

func newTestRetriever(mock search.Client) *Retriever {
	return NewRetriever(mock, config.PipelineConfig{}, zap.NewNop())
}

func page(start, count int) []search.Item {
	items := make([]search.Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, search.Item{
			Link:    fmt.Sprintf("https://linkedin.com/in/candidate-%d-%d", start, i),
			Title:   "Some Profile | LinkedIn",
			Snippet: "Engineer at Example Corp",
		})
	}
	return items
}

func TestRetrieveUnconfiguredReturnsStaticSample(t *testing.T) {
	retriever := newTestRetriever(nil)

	result := retriever.Retrieve(context.Background(), []string{"Go", "Boston"}, 10)

	assert.Equal(t, model.SourceFallback, result.Source)
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, "John Doe", result.Candidates[0].Name)
	assert.Equal(t, "Jane Smith", result.Candidates[1].Name)
}

func TestRetrieveBuildsSiteScopedQuery(t *testing.T) {
	mock := &MockSearchClient{Pages: map[int64][]search.Item{1: page(1, 2)}}
	retriever := newTestRetriever(mock)

	retriever.Retrieve(context.Background(), []string{"Backend Engineer", "Go"}, 2)

	assert.Equal(t, "site:linkedin.com/in/ Backend Engineer Go", mock.LastQuery)
}

func TestRetrieveMapsItemsToCandidates(t *testing.T) {
	mock := &MockSearchClient{Pages: map[int64][]search.Item{1: {
		{Link: "https://linkedin.com/in/jane-smith", Title: "Jane Smith | LinkedIn", Snippet: "Platform engineer"},
		{Link: "https://linkedin.com/in/bob_jones/details?trk=x", Title: "Bob Jones"},
	}}}
	retriever := newTestRetriever(mock)

	result := retriever.Retrieve(context.Background(), []string{"Go"}, 2)

	require.Len(t, result.Candidates, 2)
	assert.Equal(t, model.SourceLive, result.Source)

	assert.Equal(t, "Jane Smith", result.Candidates[0].Name)
	assert.Equal(t, "https://linkedin.com/in/jane-smith", result.Candidates[0].LinkedInURL)
	assert.Equal(t, "Platform engineer", result.Candidates[0].Headline)
	assert.Equal(t, "Jane Smith | LinkedIn", result.Candidates[0].Title)

	assert.Equal(t, "Bob Jones", result.Candidates[1].Name)
	assert.Equal(t, "No headline available", result.Candidates[1].Headline)
}

func TestRetrievePaginatesUntilBound(t *testing.T) {
	mock := &MockSearchClient{Pages: map[int64][]search.Item{
		1:  page(1, 10),
		11: page(11, 10),
		21: page(21, 10),
		31: page(31, 10), // must never be requested
	}}
	retriever := newTestRetriever(mock)

	result := retriever.Retrieve(context.Background(), []string{"Go"}, 50)

	assert.Equal(t, []int64{1, 11, 21}, mock.StartsSeen)
	assert.Len(t, result.Candidates, 30)
}

func TestRetrieveStopsAtRequestedCount(t *testing.T) {
	mock := &MockSearchClient{Pages: map[int64][]search.Item{1: page(1, 10)}}
	retriever := newTestRetriever(mock)

	result := retriever.Retrieve(context.Background(), []string{"Go"}, 3)

	assert.Len(t, result.Candidates, 3)
	assert.Equal(t, int64(3), mock.LastNum)
	assert.Equal(t, []int64{1}, mock.StartsSeen)
}

func TestRetrieveShortPageSignalsExhaustion(t *testing.T) {
	mock := &MockSearchClient{Pages: map[int64][]search.Item{1: page(1, 4)}}
	retriever := newTestRetriever(mock)

	result := retriever.Retrieve(context.Background(), []string{"Go"}, 20)

	assert.Equal(t, []int64{1}, mock.StartsSeen)
	assert.Len(t, result.Candidates, 4)
	assert.Equal(t, model.SourceLive, result.Source)
}

func TestRetrieveErrorFallsBackToStaticSample(t *testing.T) {
	mock := &MockSearchClient{Err: fmt.Errorf("quota exceeded")}
	retriever := newTestRetriever(mock)

	result := retriever.Retrieve(context.Background(), []string{"Go"}, 5)

	assert.Equal(t, model.SourceFallback, result.Source)
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, "John Doe", result.Candidates[0].Name)
}

func TestRetrieveEmptyResultsFallBack(t *testing.T) {
	mock := &MockSearchClient{Pages: map[int64][]search.Item{}}
	retriever := newTestRetriever(mock)

	result := retriever.Retrieve(context.Background(), []string{"Go"}, 5)

	assert.Equal(t, model.SourceFallback, result.Source)
	assert.Len(t, result.Candidates, 2)
}

func TestNameFromURL(t *testing.T) {
	cases := []struct {
		link string
		want string
	}{
		{"https://linkedin.com/in/jane-smith", "Jane Smith"},
		{"https://linkedin.com/in/bob_von_jones", "Bob Von Jones"},
		{"https://linkedin.com/in/jane-smith/details/experience", "Jane Smith"},
		{"https://linkedin.com/in/jane-smith?trk=public", "Jane Smith"},
		{"https://linkedin.com/company/acme", "Unknown"},
		{"https://linkedin.com/in/", "Unknown"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, nameFromURL(tc.link), tc.link)
	}
}

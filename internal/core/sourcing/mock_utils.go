package sourcing

import (
	"context"

	"github.com/talentscout/talentscout/internal/search"
)

// MockSearchClient serves canned pages keyed by start offset.
type MockSearchClient struct {
	Pages map[int64][]search.Item
	Err   error

	Calls      int
	LastQuery  string
	LastNum    int64
	StartsSeen []int64
}

func (m *MockSearchClient) Search(ctx context.Context, query string, start, num int64) ([]search.Item, error) {
	m.Calls++
	m.LastQuery = query
	m.LastNum = num
	m.StartsSeen = append(m.StartsSeen, start)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Pages[start], nil
}

package search

import (
	"context"
)

// Item is one result from the profile-search service.
type Item struct {
	Link    string
	Title   string
	Snippet string
}

// Client is the profile-search capability. Implementations are expected to be
// unreliable: callers must treat errors and empty pages as first-class
// outcomes.
type Client interface {
	// Search returns up to num items for the query, starting at the 1-based
	// result offset start.
	Search(ctx context.Context, query string, start, num int64) ([]Item, error)
}

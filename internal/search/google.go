package search

import (
	"context"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// GoogleClient searches via the Google Custom Search JSON API.
type GoogleClient struct {
	svc      *customsearch.Service
	engineID string
}

func NewGoogleClient(ctx context.Context, apiKey string, engineID string) (*GoogleClient, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleClient{
		svc:      svc,
		engineID: engineID,
	}, nil
}

func (c *GoogleClient) Search(ctx context.Context, query string, start, num int64) ([]Item, error) {
	resp, err := c.svc.Cse.List().
		Q(query).
		Cx(c.engineID).
		Num(num).
		Start(start).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(resp.Items))
	for _, r := range resp.Items {
		items = append(items, Item{
			Link:    r.Link,
			Title:   r.Title,
			Snippet: r.Snippet,
		})
	}
	return items, nil
}

package sourcing

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/talentscout/talentscout/internal/config"
	"github.com/talentscout/talentscout/internal/core/model"
	"github.com/talentscout/talentscout/internal/search"
)

const (
	queryPrefix = "site:linkedin.com/in/"
	perPage     = 10
	// maxStart bounds pagination to 3 pages of 10 (1-based result offsets).
	maxStart = 30

	defaultHeadline = "No headline available"
)

var titleCaser = cases.Title(language.English)

// Result carries the retrieved candidates plus where they came from.
type Result struct {
	Candidates []model.CandidateProfile
	Source     model.Source
}

// Retriever turns a flattened keyword list into a bounded list of candidate
// profile summaries. It never fails: an unconfigured or misbehaving search
// service yields the static sample set.
type Retriever struct {
	search  search.Client
	limiter *rate.Limiter
	timeout time.Duration
	log     *zap.Logger
}

// NewRetriever builds a Retriever. A nil client means the search service is
// unconfigured and every retrieval returns the static sample.
func NewRetriever(searchClient search.Client, cfg config.PipelineConfig, log *zap.Logger) *Retriever {
	return &Retriever{
		search: searchClient,
		// One page per 100ms keeps us under the search API's rate limits.
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		log:     log,
	}
}

func (r *Retriever) Retrieve(ctx context.Context, keywords []string, numResults int) Result {
	if r.search == nil {
		return Result{Candidates: staticSample(), Source: model.SourceFallback}
	}

	query := queryPrefix + " " + strings.Join(keywords, " ")
	var candidates []model.CandidateProfile

	for start := int64(1); len(candidates) < numResults && start <= maxStart; start += perPage {
		if start > 1 {
			if err := r.limiter.Wait(ctx); err != nil {
				break
			}
		}

		num := int64(perPage)
		if remaining := int64(numResults - len(candidates)); remaining < num {
			num = remaining
		}

		items, err := r.searchPage(ctx, query, start, num)
		if err != nil {
			r.log.Warn("profile search failed", zap.Error(err), zap.Int64("start", start))
			break
		}

		for _, item := range items {
			headline := item.Snippet
			if headline == "" {
				headline = defaultHeadline
			}
			candidates = append(candidates, model.CandidateProfile{
				Name:        nameFromURL(item.Link),
				LinkedInURL: item.Link,
				Headline:    headline,
				Title:       item.Title,
			})
			if len(candidates) >= numResults {
				break
			}
		}

		// A short page means the result set is exhausted.
		if len(items) < perPage {
			break
		}
	}

	if len(candidates) == 0 {
		r.log.Warn("no candidates retrieved, using static sample data")
		return Result{Candidates: staticSample(), Source: model.SourceFallback}
	}

	return Result{Candidates: candidates, Source: model.SourceLive}
}

func (r *Retriever) searchPage(ctx context.Context, query string, start, num int64) ([]search.Item, error) {
	cctx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.search.Search(cctx, query, start, num)
}

// nameFromURL derives a display name from the profile URL path segment after
// /in/, e.g. https://linkedin.com/in/jane-smith -> "Jane Smith".
func nameFromURL(link string) string {
	_, after, found := strings.Cut(link, "/in/")
	if !found {
		return "Unknown"
	}
	namePart := after
	if i := strings.IndexAny(namePart, "/?"); i >= 0 {
		namePart = namePart[:i]
	}
	if namePart == "" {
		return "Unknown"
	}
	namePart = strings.NewReplacer("-", " ", "_", " ").Replace(namePart)
	return titleCaser.String(namePart)
}

func staticSample() []model.CandidateProfile {
	return []model.CandidateProfile{
		{Name: "John Doe", LinkedInURL: "https://linkedin.com/in/johndoe", Headline: "Senior Backend Engineer"},
		{Name: "Jane Smith", LinkedInURL: "https://linkedin.com/in/janesmith", Headline: "Software Engineer"},
	}
}

package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentscout/talentscout/internal/config"
	"github.com/talentscout/talentscout/internal/core/keywords"
	"github.com/talentscout/talentscout/internal/core/model"
	"github.com/talentscout/talentscout/internal/core/outreach"
	"github.com/talentscout/talentscout/internal/core/scoring"
	"github.com/talentscout/talentscout/internal/core/sourcing"
	"github.com/talentscout/talentscout/internal/llm"
	"github.com/talentscout/talentscout/internal/search"
)

// Stage names used in StageError.
const (
	StageSearch   = "search"
	StageScoring  = "scoring"
	StageOutreach = "outreach"
)

// StageError wraps a failure with the pipeline stage it originated from.
// Callers see one labeled failure, never raw transport errors.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// RunResult is the full-pipeline output. All collections are owned by the
// caller; nothing is retained across invocations.
type RunResult struct {
	RunID            string                   `json:"run_id"`
	Candidates       []model.CandidateProfile `json:"candidates"`
	ScoredCandidates []model.ScoredCandidate  `json:"scored_candidates"`
	OutreachMessages []model.OutreachMessage  `json:"outreach_messages"`
}

// Pipeline composes the four sourcing stages: keyword extraction, profile
// retrieval, scoring, outreach. Stages run strictly in sequence, each
// consuming the prior stage's full output.
type Pipeline struct {
	Extractor *keywords.Extractor
	Retriever *sourcing.Retriever
	Composer  *outreach.Composer

	defaultNumCandidates int
	log                  *zap.Logger
}

func NewPipeline(llmClient llm.LLMClient, searchClient search.Client, cfg *config.Config, log *zap.Logger) *Pipeline {
	numCandidates := cfg.Pipeline.NumCandidates
	if numCandidates <= 0 {
		numCandidates = 5
	}
	return &Pipeline{
		Extractor:            keywords.NewExtractor(llmClient, cfg.Pipeline, log),
		Retriever:            sourcing.NewRetriever(searchClient, cfg.Pipeline, log),
		Composer:             outreach.NewComposer(llmClient, cfg.Pipeline, log),
		defaultNumCandidates: numCandidates,
		log:                  log,
	}
}

// SearchCandidates runs keyword extraction plus profile retrieval.
func (p *Pipeline) SearchCandidates(ctx context.Context, jobDescription string, numCandidates int) ([]model.CandidateProfile, error) {
	if numCandidates <= 0 {
		numCandidates = p.defaultNumCandidates
	}

	extracted := p.Extractor.Extract(ctx, jobDescription)
	if extracted.Source != model.SourceLive {
		p.log.Warn("keyword extraction degraded", zap.String("source", string(extracted.Source)))
	}

	retrieved := p.Retriever.Retrieve(ctx, extracted.Flat, numCandidates)
	if retrieved.Source != model.SourceLive {
		p.log.Warn("profile retrieval degraded", zap.String("source", string(retrieved.Source)))
	}

	return retrieved.Candidates, nil
}

// ScoreCandidates rates caller-supplied candidates against keywords freshly
// extracted from the job description.
func (p *Pipeline) ScoreCandidates(ctx context.Context, jobDescription string, candidates []model.CandidateProfile) ([]model.ScoredCandidate, error) {
	extracted := p.Extractor.Extract(ctx, jobDescription)

	scored, err := scoring.Score(candidates, scoring.RubricFromKeywords(extracted.Keywords))
	if err != nil {
		return nil, &StageError{Stage: StageScoring, Err: err}
	}
	return scored, nil
}

// Outreach generates one message per scored candidate.
func (p *Pipeline) Outreach(ctx context.Context, jobDescription string, scored []model.ScoredCandidate) []model.OutreachMessage {
	return p.Composer.ComposeAll(ctx, scored, jobDescription)
}

// Run executes the full pipeline. On any stage failure it returns a single
// StageError and no partial results.
func (p *Pipeline) Run(ctx context.Context, jobDescription string, numCandidates int) (*RunResult, error) {
	if numCandidates <= 0 {
		numCandidates = p.defaultNumCandidates
	}
	runID := uuid.New().String()
	log := p.log.With(zap.String("run_id", runID))

	extracted := p.Extractor.Extract(ctx, jobDescription)
	log.Debug("keywords extracted",
		zap.Strings("flat", extracted.Flat),
		zap.String("source", string(extracted.Source)))

	retrieved := p.Retriever.Retrieve(ctx, extracted.Flat, numCandidates)
	log.Debug("candidates retrieved",
		zap.Int("count", len(retrieved.Candidates)),
		zap.String("source", string(retrieved.Source)))

	scored, err := scoring.Score(retrieved.Candidates, scoring.RubricFromKeywords(extracted.Keywords))
	if err != nil {
		return nil, &StageError{Stage: StageScoring, Err: err}
	}

	messages := p.Composer.ComposeAll(ctx, scored, jobDescription)

	return &RunResult{
		RunID:            runID,
		Candidates:       retrieved.Candidates,
		ScoredCandidates: scored,
		OutreachMessages: messages,
	}, nil
}

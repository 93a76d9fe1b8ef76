package keywords

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/talentscout/talentscout/internal/config"
	"github.com/talentscout/talentscout/internal/core/common"
	"github.com/talentscout/talentscout/internal/core/model"
	"github.com/talentscout/talentscout/internal/llm"
	"github.com/talentscout/talentscout/internal/logger"
)

// maxJobDescriptionChars bounds the text sent to the model.
const maxJobDescriptionChars = 1500

const promptTemplate = `Extract search terms from this job description for finding LinkedIn profiles.
Focus on: job titles, required skills, technologies, location, company names.

Job Description: %s

Return ONLY a JSON object like this:
{"job_titles": [], "skills": [], "location": [], "companies": []}`

// fallbackKeywords substitutes for an empty extraction so retrieval always
// has something to search for.
var fallbackKeywords = []string{"Software Engineer", "Python", "Machine Learning", "AI", "Data"}

// Result carries the extracted keyword set plus where it came from.
type Result struct {
	Keywords model.StructuredKeywords
	Flat     []string
	Source   model.Source
}

// Extractor turns a free-text job description into structured search
// keywords. It never fails: any service or parse problem degrades to the
// fallback keyword set.
type Extractor struct {
	llm         llm.LLMClient
	maxKeywords int
	timeout     time.Duration
	log         *zap.Logger
}

// NewExtractor builds an Extractor. A nil client means the text-generation
// service is unconfigured and every extraction uses the fallback set.
func NewExtractor(llmClient llm.LLMClient, cfg config.PipelineConfig, log *zap.Logger) *Extractor {
	maxKeywords := cfg.MaxKeywords
	if maxKeywords <= 0 {
		maxKeywords = 20
	}
	return &Extractor{
		llm:         llmClient,
		maxKeywords: maxKeywords,
		timeout:     time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		log:         log,
	}
}

func (e *Extractor) Extract(ctx context.Context, jobDescription string) Result {
	if strings.TrimSpace(jobDescription) == "" {
		return Result{
			Keywords: model.EmptyStructuredKeywords(),
			Flat:     []string{},
			Source:   model.SourceEmpty,
		}
	}

	if e.llm == nil {
		e.log.Warn("text-generation service not configured, using fallback keywords")
		return e.fallback()
	}

	prompt := fmt.Sprintf(promptTemplate, truncate(jobDescription))

	cctx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	response, err := e.llm.Generate(cctx, prompt, llm.GenerateOptions{
		Temperature: 0.2,
		MaxTokens:   400,
	})
	if err != nil {
		e.log.Warn("keyword extraction failed, using fallback keywords", zap.Error(err))
		return e.fallback()
	}

	extracted, err := common.ParseJSON[model.StructuredKeywords](response)
	if err != nil {
		e.log.Warn("could not parse keyword response, defaulting fields",
			zap.Error(err),
			zap.String("response", logger.Truncate(response, 200)))
		extracted = model.EmptyStructuredKeywords()
	}
	extracted.Normalize()

	flat := extracted.Flatten()
	source := model.SourceLive
	if len(flat) == 0 {
		flat = append([]string{}, fallbackKeywords...)
		source = model.SourceFallback
	}
	if len(flat) > e.maxKeywords {
		flat = flat[:e.maxKeywords]
	}

	return Result{Keywords: extracted, Flat: flat, Source: source}
}

func (e *Extractor) fallback() Result {
	flat := append([]string{}, fallbackKeywords...)
	if len(flat) > e.maxKeywords {
		flat = flat[:e.maxKeywords]
	}
	return Result{
		Keywords: model.EmptyStructuredKeywords(),
		Flat:     flat,
		Source:   model.SourceFallback,
	}
}

func truncate(jobDescription string) string {
	runes := []rune(jobDescription)
	if len(runes) <= maxJobDescriptionChars {
		return jobDescription
	}
	return string(runes[:maxJobDescriptionChars]) + "..."
}

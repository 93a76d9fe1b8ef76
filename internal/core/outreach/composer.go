package outreach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/talentscout/talentscout/internal/config"
	"github.com/talentscout/talentscout/internal/core/model"
	"github.com/talentscout/talentscout/internal/llm"
)

const promptTemplate = `Generate a personalized LinkedIn outreach message for a candidate.

Candidate:
Name: %s
Headline: %s
Companies: %s
Skills: %s
Experience: %d years
Role Level: %s
Industry: %s

Job Description: %s

Requirements:
- Start with a greeting using first name
- Mention a relevant detail from their profile
- Connect to the job opportunity
- Keep it professional and friendly
- Max 150 words
Return only the message text.`

// Composer turns a scored candidate into a personalized first-contact
// message. It never fails: any service problem degrades to a fixed template.
type Composer struct {
	llm     llm.LLMClient
	timeout time.Duration
	log     *zap.Logger
}

// NewComposer builds a Composer. A nil client means the text-generation
// service is unconfigured and every message uses the template.
func NewComposer(llmClient llm.LLMClient, cfg config.PipelineConfig, log *zap.Logger) *Composer {
	return &Composer{
		llm:     llmClient,
		timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		log:     log,
	}
}

// Compose returns the message text plus where it came from.
func (c *Composer) Compose(ctx context.Context, candidate model.CandidateProfile, jobDescription string) (string, model.Source) {
	if c.llm == nil {
		return templateMessage(candidate), model.SourceFallback
	}

	prompt := buildPrompt(candidate, jobDescription)

	cctx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	response, err := c.llm.Generate(cctx, prompt, llm.GenerateOptions{
		Temperature: 0.7,
		MaxTokens:   200,
	})
	if err != nil {
		c.log.Warn("outreach generation failed, using template message",
			zap.Error(err), zap.String("candidate", candidate.Name))
		return templateMessage(candidate), model.SourceFallback
	}

	message := strings.TrimSpace(response)
	if message == "" {
		return templateMessage(candidate), model.SourceFallback
	}
	return message, model.SourceLive
}

// ComposeAll generates one message per scored candidate, carrying over score
// and profile URL.
func (c *Composer) ComposeAll(ctx context.Context, scored []model.ScoredCandidate, jobDescription string) []model.OutreachMessage {
	messages := make([]model.OutreachMessage, 0, len(scored))
	for _, sc := range scored {
		candidate := model.CandidateProfile{
			Name:        sc.Name,
			LinkedInURL: sc.LinkedInURL,
			Headline:    sc.Headline,
		}
		text, _ := c.Compose(ctx, candidate, jobDescription)
		messages = append(messages, model.OutreachMessage{
			Candidate:   sc.Name,
			LinkedInURL: sc.LinkedInURL,
			Score:       sc.Score,
			Message:     text,
		})
	}
	return messages
}

func buildPrompt(candidate model.CandidateProfile, jobDescription string) string {
	return fmt.Sprintf(promptTemplate,
		candidate.Name,
		candidate.Headline,
		joinOrNA(candidate.Companies),
		joinOrNA(candidate.Skills),
		candidate.ExperienceYears,
		candidate.RoleLevel,
		candidate.Industry,
		jobDescription,
	)
}

func templateMessage(candidate model.CandidateProfile) string {
	headline := candidate.Headline
	if headline == "" {
		headline = "their experience"
	}
	return fmt.Sprintf("Hi %s, I came across your profile with headline '%s'. "+
		"We have an opportunity that aligns with your experience. "+
		"Would you like to discuss this further?", firstName(candidate.Name), headline)
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return "N/A"
	}
	return strings.Join(values, ", ")
}

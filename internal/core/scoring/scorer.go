package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/talentscout/talentscout/internal/core/model"
)

// Factor weights. They sum to 1.00, and every factor's maximum sub-score is
// 9, so the weighted sum is normalized onto a 0-10 scale by raw/9*10.
var weights = map[string]float64{
	model.FactorTitleMatch: 0.25,
	model.FactorSkills:     0.30,
	model.FactorCompany:    0.20,
	model.FactorLocation:   0.10,
	model.FactorExperience: 0.10,
	model.FactorEducation:  0.05,
}

// educationScore is a fixed placeholder signal: there is no education data in
// the sourced profiles to compute against.
const educationScore = 8

// Rubric is the keyword view the scorer matches against. Industries and
// Locations are extra lists the four-field extraction contract never
// populates; RubricFromKeywords leaves them empty on purpose rather than
// repairing the mapping, so they only matter for hand-built rubrics.
type Rubric struct {
	JobTitles  []string
	Skills     []string
	Companies  []string
	Industries []string
	Locations  []string
}

// RubricFromKeywords builds the scoring rubric from extracted keywords.
func RubricFromKeywords(kw model.StructuredKeywords) Rubric {
	return Rubric{
		JobTitles: kw.JobTitles,
		Skills:    kw.Skills,
		Companies: kw.Companies,
	}
}

// MissingFieldError reports a candidate record without one of the mandatory
// identity fields.
type MissingFieldError struct {
	Field string
	Index int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("candidate %d missing required field %q", e.Index, e.Field)
}

// Score rates every candidate against the rubric and returns them sorted by
// score descending. It is pure: no I/O, no randomness. Equal scores keep
// their input order (stable sort), so fixtures are reproducible.
func Score(candidates []model.CandidateProfile, rubric Rubric) ([]model.ScoredCandidate, error) {
	titles := fold(rubric.JobTitles)
	skills := fold(rubric.Skills)
	companies := fold(rubric.Companies)
	industries := fold(rubric.Industries)
	locations := fold(rubric.Locations)

	scored := make([]model.ScoredCandidate, 0, len(candidates))
	for i, c := range candidates {
		if c.Name == "" {
			return nil, &MissingFieldError{Field: "name", Index: i}
		}
		if c.LinkedInURL == "" {
			return nil, &MissingFieldError{Field: "linkedin_url", Index: i}
		}

		headline := strings.ToLower(c.Headline)
		title := strings.ToLower(c.Title)

		breakdown := model.Breakdown{}
		breakdown[model.FactorEducation] = educationScore

		breakdown[model.FactorTitleMatch] = 5
		if anyInEither(titles, title, headline) {
			breakdown[model.FactorTitleMatch] = 9
		}

		skillMatches := 0
		for _, s := range skills {
			if strings.Contains(headline, s) || strings.Contains(title, s) {
				skillMatches++
			}
		}
		switch {
		case skillMatches >= 3:
			breakdown[model.FactorSkills] = 9
		case skillMatches == 2:
			breakdown[model.FactorSkills] = 7
		case skillMatches == 1:
			breakdown[model.FactorSkills] = 6
		default:
			breakdown[model.FactorSkills] = 5
		}

		// Company keyword match takes priority over industry.
		switch {
		case anyIn(companies, headline):
			breakdown[model.FactorCompany] = 9
		case anyIn(industries, headline):
			breakdown[model.FactorCompany] = 7
		default:
			breakdown[model.FactorCompany] = 5
		}

		breakdown[model.FactorLocation] = 5
		if anyIn(locations, headline) {
			breakdown[model.FactorLocation] = 9
		}

		switch {
		case c.ExperienceYears >= 5:
			breakdown[model.FactorExperience] = 9
		case c.ExperienceYears >= 3:
			breakdown[model.FactorExperience] = 7
		default:
			breakdown[model.FactorExperience] = 5
		}

		raw := 0.0
		for factor, weight := range weights {
			raw += float64(breakdown[factor]) * weight
		}
		finalScore := round2(raw / 9 * 10)

		scored = append(scored, model.ScoredCandidate{
			Name:        c.Name,
			LinkedInURL: c.LinkedInURL,
			Headline:    c.Headline,
			Score:       finalScore,
			Breakdown:   breakdown,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

func fold(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = strings.ToLower(k)
	}
	return out
}

func anyIn(keywords []string, text string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func anyInEither(keywords []string, a, b string) bool {
	for _, k := range keywords {
		if strings.Contains(a, k) || strings.Contains(b, k) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

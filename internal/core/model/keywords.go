package model

// StructuredKeywords is the four-category decomposition of a job description
// used to drive both retrieval and scoring. All four lists are always non-nil
// so they serialize as [] rather than null.
type StructuredKeywords struct {
	JobTitles []string `json:"job_titles"`
	Skills    []string `json:"skills"`
	Location  []string `json:"location"`
	Companies []string `json:"companies"`
}

// EmptyStructuredKeywords returns a keyword set with all four lists empty.
func EmptyStructuredKeywords() StructuredKeywords {
	return StructuredKeywords{
		JobTitles: []string{},
		Skills:    []string{},
		Location:  []string{},
		Companies: []string{},
	}
}

// Normalize replaces nil lists with empty ones.
func (k *StructuredKeywords) Normalize() {
	if k.JobTitles == nil {
		k.JobTitles = []string{}
	}
	if k.Skills == nil {
		k.Skills = []string{}
	}
	if k.Location == nil {
		k.Location = []string{}
	}
	if k.Companies == nil {
		k.Companies = []string{}
	}
}

// Flatten concatenates the four lists in fixed order: job titles, skills,
// location, companies. Order matters only for truncation downstream.
func (k StructuredKeywords) Flatten() []string {
	flat := make([]string, 0, len(k.JobTitles)+len(k.Skills)+len(k.Location)+len(k.Companies))
	flat = append(flat, k.JobTitles...)
	flat = append(flat, k.Skills...)
	flat = append(flat, k.Location...)
	flat = append(flat, k.Companies...)
	return flat
}

// Source labels where a stage result came from, so callers can tell a real
// answer from a degraded fallback even though both flow through identically.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
	SourceEmpty    Source = "empty"
)

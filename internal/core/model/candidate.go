package model

// CandidateProfile is one sourced profile summary. Name and LinkedInURL are
// mandatory; everything else degrades to its zero value.
type CandidateProfile struct {
	Name            string   `json:"name"`
	LinkedInURL     string   `json:"linkedin_url"`
	Headline        string   `json:"headline"`
	Title           string   `json:"title,omitempty"`
	Education       []string `json:"education,omitempty"`
	Companies       []string `json:"companies,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Location        string   `json:"location,omitempty"`
	RoleLevel       string   `json:"role_level,omitempty"`
	Industry        string   `json:"industry,omitempty"`
}

// Breakdown maps a scoring factor name to its sub-score on the 0-9 scale.
type Breakdown map[string]int

// Factor names used as Breakdown keys.
const (
	FactorEducation  = "education"
	FactorTitleMatch = "title_match"
	FactorSkills     = "skills"
	FactorCompany    = "company"
	FactorLocation   = "location"
	FactorExperience = "experience"
)

// ScoredCandidate is a candidate with its weighted aggregate score on a 0-10
// scale (rounded to 2 decimals) and the per-factor breakdown.
type ScoredCandidate struct {
	Name        string    `json:"name"`
	LinkedInURL string    `json:"linkedin_url"`
	Headline    string    `json:"headline"`
	Score       float64   `json:"score"`
	Breakdown   Breakdown `json:"breakdown"`
}

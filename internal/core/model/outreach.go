package model

// OutreachMessage pairs a scored candidate with a personalized first-contact
// message.
type OutreachMessage struct {
	Candidate   string  `json:"candidate"`
	LinkedInURL string  `json:"linkedin_url"`
	Score       float64 `json:"score"`
	Message     string  `json:"message"`
}

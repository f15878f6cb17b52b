package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// DynamicKeyword is a job-specific term mined from the job description,
// scored by frequency, technicality and length. Keywords are derived once at
// job creation time and persisted with the posting, never recomputed per
// match.
type DynamicKeyword struct {
	Keyword   string  `json:"keyword"`
	Score     float64 `json:"score"`
	Frequency int     `json:"frequency"`
	Type      string  `json:"type"`
}

// JobPosting is a structured record describing a role. It is reconstructed
// from a durable JSON record produced by the boundary layer, plus the
// core-computed dynamic keywords.
type JobPosting struct {
	ID              string           `json:"id"`
	Title           string           `json:"title" validate:"required"`
	Description     string           `json:"description"`
	RequiredSkills  []string         `json:"required_skills"`
	ExperienceYears int              `json:"experience_years" validate:"gte=0"`
	EducationLevel  string           `json:"education_level"`
	Location        string           `json:"location,omitempty"`
	JobType         string           `json:"job_type,omitempty"`
	DynamicKeywords []DynamicKeyword `json:"dynamic_keywords,omitempty"`
	CreatedDate     string           `json:"created_date"` // RFC3339
}

// Validate checks the posting against its boundary contract.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// ParseRequiredSkills splits a comma-separated skill list, trimming
// whitespace and dropping empty entries.
func ParseRequiredSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// Package types provides type definitions for the structured records exchanged
// between the matching core and its storage and presentation collaborators.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds the contact details recognized in a résumé. Missing
// fields stay empty; extraction never fails on their absence.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Skills holds the skills found in a résumé, both as a flat list and grouped
// by taxonomy category. All entries are lowercase.
type Skills struct {
	AllSkills   []string            `json:"all_skills"`
	Categorized map[string][]string `json:"categorized"`
	SkillCount  int                 `json:"skill_count"`
}

// Experience holds the experience signals recognized in a résumé.
type Experience struct {
	EstimatedYears  int      `json:"estimated_years"`
	YearsMentioned  []int    `json:"years_mentioned,omitempty"`
	PotentialTitles []string `json:"potential_titles"`
	TitleCount      int      `json:"title_count"`
}

// Education holds the education signals recognized in a résumé.
type Education struct {
	Degrees            []string `json:"degrees"`
	EducationMentioned bool     `json:"education_mentioned"`
	DegreeCount        int      `json:"degree_count"`
}

// KeywordCount is a single (word, frequency) pair.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Keywords holds frequency statistics over the meaningful tokens of a résumé.
// TopKeywords is ordered descending by count; ties keep first-encountered
// order.
type Keywords struct {
	TopKeywords []KeywordCount `json:"top_keywords"`
	TotalWords  int            `json:"total_words"`
	UniqueWords int            `json:"unique_words"`
}

// SummaryStats holds raw-text statistics for a résumé.
type SummaryStats struct {
	CharacterCount  int     `json:"character_count"`
	WordCount       int     `json:"word_count"`
	LineCount       int     `json:"line_count"`
	AvgWordsPerLine float64 `json:"avg_words_per_line"`
}

// CandidateProfile is the structured extraction result for one résumé. It is
// immutable once produced and round-trips through plain JSON serialization.
type CandidateProfile struct {
	RawText      string       `json:"raw_text"`
	ContactInfo  ContactInfo  `json:"contact_info"`
	Skills       Skills       `json:"skills"`
	Experience   Experience   `json:"experience"`
	Education    Education    `json:"education"`
	Keywords     Keywords     `json:"keywords"`
	SummaryStats SummaryStats `json:"summary_stats"`
}

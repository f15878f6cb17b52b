package types

// MatchBreakdown reports per-dimension sub-scores as percentages in [0,100],
// rounded to two decimals.
type MatchBreakdown struct {
	Skills          float64 `json:"skills"`
	Experience      float64 `json:"experience"`
	Education       float64 `json:"education"`
	Keywords        float64 `json:"keywords"`
	DynamicKeywords float64 `json:"dynamic_keywords,omitempty"`
}

// MatchResult is the scored outcome for one candidate against one job. It is
// produced fresh per match request and never persisted.
type MatchResult struct {
	Candidate  CandidateRecord `json:"candidate"`
	MatchScore float64         `json:"match_score"`
	Breakdown  MatchBreakdown  `json:"match_breakdown"`
	Strengths  []string        `json:"strengths"`
	Gaps       []string        `json:"gaps"`
}

// Suggestion priorities, ordered from most to least urgent.
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// Suggestion is a single résumé improvement recommendation. Output order is
// rule-evaluation order, not priority order.
type Suggestion struct {
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
}

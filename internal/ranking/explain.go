package ranking

import "fmt"

// Explanation thresholds. Each check is independent; several may fire for the
// same match.
const (
	skillsStrongThreshold = 0.8
	skillsGoodThreshold   = 0.6
	skillsGapThreshold    = 0.4

	experiencePerfectThreshold = 0.9
	experienceGoodThreshold    = 0.7
	experienceGapThreshold     = 0.5

	educationStrengthThreshold = 0.8
	educationGapThreshold      = 0.3

	dynamicStrengthThreshold = 0.7
	dynamicGapThreshold      = 0.3
)

// explainInput gathers everything the threshold rules need.
type explainInput struct {
	skills         skillsResult
	experience     float64
	education      float64
	dynamic        dynamicResult
	hasDynamic     bool
	requiredYears  int
	candidateYears int
	requiredLevel  string
}

// explain derives human-readable strength and gap lines from the sub-scores.
func explain(in explainInput) (strengths, gaps []string) {
	strengths = []string{}
	gaps = []string{}

	switch {
	case in.skills.score > skillsStrongThreshold:
		strengths = append(strengths, fmt.Sprintf("Strong skills match (%d relevant skills)", in.skills.matched))
	case in.skills.score > skillsGoodThreshold:
		strengths = append(strengths, fmt.Sprintf("Good skills match (%d relevant skills)", in.skills.matched))
	case in.skills.score < skillsGapThreshold:
		gaps = append(gaps, fmt.Sprintf("Limited skills match (missing %d key skills)", in.skills.missing))
	}

	switch {
	case in.experience > experiencePerfectThreshold:
		strengths = append(strengths, "Perfect experience level")
	case in.experience > experienceGoodThreshold:
		strengths = append(strengths, "Good experience level")
	case in.experience < experienceGapThreshold:
		if shortfall := in.requiredYears - in.candidateYears; shortfall > 0 {
			gaps = append(gaps, fmt.Sprintf("Needs %d more years of experience", shortfall))
		}
	}

	if in.education > educationStrengthThreshold {
		strengths = append(strengths, "Strong educational background")
	} else if in.education < educationGapThreshold && in.requiredLevel != "" {
		gaps = append(gaps, "Education level may not meet requirements")
	}

	if in.hasDynamic {
		if in.dynamic.score > dynamicStrengthThreshold {
			strengths = append(strengths, fmt.Sprintf("Strong alignment with job-specific terms (%d matched)", in.dynamic.matched))
		} else if in.dynamic.score < dynamicGapThreshold {
			gaps = append(gaps, "Limited alignment with job-specific terminology")
		}
	}

	return strengths, gaps
}

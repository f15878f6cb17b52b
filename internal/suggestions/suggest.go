// Package suggestions derives prioritized résumé improvement suggestions
// from a candidate profile.
package suggestions

import (
	"github.com/jonathan/ats-engine/internal/types"
)

// Rule thresholds.
const (
	criticalSkillCount = 5
	moderateSkillCount = 10
	minExperienceYears = 2
	minTitleCount      = 2
	minWordCount       = 200
	maxWordCount       = 800
	minVocabularyRatio = 0.3
)

// Generate evaluates the improvement rules against a profile in a fixed
// order. Rules are independent and non-exclusive; output order is rule order,
// not priority order.
func Generate(profile *types.CandidateProfile) []types.Suggestion {
	suggestions := []types.Suggestion{}

	// 1. Skill breadth.
	switch {
	case profile.Skills.SkillCount < criticalSkillCount:
		suggestions = append(suggestions, types.Suggestion{
			Category:   "Skills",
			Priority:   types.PriorityCritical,
			Suggestion: "Add more technical skills to your resume. Include programming languages, tools, and technologies you've worked with.",
			Impact:     "Increases keyword matching and demonstrates technical breadth",
		})
	case profile.Skills.SkillCount < moderateSkillCount:
		suggestions = append(suggestions, types.Suggestion{
			Category:   "Skills",
			Priority:   types.PriorityHigh,
			Suggestion: "Consider adding more specialized or emerging skills relevant to your field.",
			Impact:     "Helps you stand out for advanced positions",
		})
	}

	// 2. Experience depth.
	if profile.Experience.EstimatedYears < minExperienceYears {
		suggestions = append(suggestions, types.Suggestion{
			Category:   "Experience",
			Priority:   types.PriorityHigh,
			Suggestion: "Include internships, projects, volunteer work, or part-time roles to demonstrate practical experience.",
			Impact:     "Shows practical application of skills",
		})
	}

	// 3. Title specificity.
	if profile.Experience.TitleCount < minTitleCount {
		suggestions = append(suggestions, types.Suggestion{
			Category:   "Experience",
			Priority:   types.PriorityMedium,
			Suggestion: "Use specific job titles and include quantifiable achievements (e.g., \"increased efficiency by 20%\").",
			Impact:     "Makes your experience more concrete and measurable",
		})
	}

	// 4. Education presence.
	if profile.Education.DegreeCount == 0 {
		suggestions = append(suggestions, types.Suggestion{
			Category:   "Education",
			Priority:   types.PriorityMedium,
			Suggestion: "Include any formal education, certifications, or relevant coursework.",
			Impact:     "Meets basic educational requirements for most positions",
		})
	}

	// 5. Content length.
	switch {
	case profile.SummaryStats.WordCount < minWordCount:
		suggestions = append(suggestions, types.Suggestion{
			Category:   "Content",
			Priority:   types.PriorityCritical,
			Suggestion: "Expand your resume with more detailed descriptions of your experience and achievements.",
			Impact:     "Provides more context for ATS matching and recruiter review",
		})
	case profile.SummaryStats.WordCount > maxWordCount:
		suggestions = append(suggestions, types.Suggestion{
			Category:   "Content",
			Priority:   types.PriorityLow,
			Suggestion: "Consider condensing your resume to focus on the most relevant and recent experiences.",
			Impact:     "Improves readability and focuses attention on key qualifications",
		})
	}

	// 6. Contact info completeness.
	if profile.ContactInfo.Email == "" {
		suggestions = append(suggestions, types.Suggestion{
			Category:   "Contact Info",
			Priority:   types.PriorityCritical,
			Suggestion: "Add a professional email address to your resume.",
			Impact:     "Essential for recruiters to contact you",
		})
	}
	if profile.ContactInfo.Phone == "" {
		suggestions = append(suggestions, types.Suggestion{
			Category:   "Contact Info",
			Priority:   types.PriorityHigh,
			Suggestion: "Add a phone number so recruiters can reach you directly.",
			Impact:     "Provides an immediate contact channel for time-sensitive openings",
		})
	}
	if profile.ContactInfo.LinkedIn == "" {
		suggestions = append(suggestions, types.Suggestion{
			Category:   "Contact Info",
			Priority:   types.PriorityHigh,
			Suggestion: "Include your LinkedIn profile URL to provide more context about your professional background.",
			Impact:     "Allows recruiters to learn more about your network and endorsements",
		})
	}

	// 7. Vocabulary diversity.
	if profile.Keywords.TotalWords > 0 {
		ratio := float64(profile.Keywords.UniqueWords) / float64(profile.Keywords.TotalWords)
		if ratio < minVocabularyRatio {
			suggestions = append(suggestions, types.Suggestion{
				Category:   "Keywords",
				Priority:   types.PriorityMedium,
				Suggestion: "Use more varied vocabulary and industry-specific terms throughout your resume.",
				Impact:     "Improves matching with diverse job descriptions and shows depth of knowledge",
			})
		}
	}

	return suggestions
}

// Package parsing turns raw résumé text into a structured candidate profile.
// Every sub-extraction is a total function over text: a section that cannot
// be recognized yields an empty or zero value, never an error.
package parsing

import (
	"github.com/jonathan/ats-engine/internal/keywords"
	"github.com/jonathan/ats-engine/internal/types"
)

// topKeywordLimit caps the keyword frequency list kept per profile.
const topKeywordLimit = 20

// Parse extracts a structured candidate profile from raw résumé text.
func Parse(text string) types.CandidateProfile {
	top, totalWords, uniqueWords := keywords.TopKeywords(text, topKeywordLimit)

	return types.CandidateProfile{
		RawText:     text,
		ContactInfo: extractContactInfo(text),
		Skills:      extractSkills(text),
		Experience:  extractExperience(text),
		Education:   extractEducation(text),
		Keywords: types.Keywords{
			TopKeywords: top,
			TotalWords:  totalWords,
			UniqueWords: uniqueWords,
		},
		SummaryStats: summaryStats(text),
	}
}

package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// degreePatterns cover full degree words, abbreviations with optional
// periods, and study-level words.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate|associate|diploma|certificate)\b`),
	regexp.MustCompile(`(?i)\b(b\.?a\.?|b\.?s\.?|m\.?a\.?|m\.?s\.?|ph\.?d\.?|m\.?b\.?a\.?)\b`),
	regexp.MustCompile(`(?i)\b(undergraduate|graduate|postgraduate)\b`),
}

var institutionPattern = regexp.MustCompile(`(?i)university|college|institute|school`)

// extractEducation collects degree mentions and flags whether any educational
// institution is named anywhere in the text.
func extractEducation(text string) types.Education {
	found := make(map[string]struct{})
	for _, pattern := range degreePatterns {
		for _, groups := range pattern.FindAllStringSubmatch(text, -1) {
			found[strings.ToLower(groups[1])] = struct{}{}
		}
	}

	degrees := make([]string, 0, len(found))
	for degree := range found {
		degrees = append(degrees, degree)
	}
	sort.Strings(degrees)

	return types.Education{
		Degrees:            degrees,
		EducationMentioned: institutionPattern.MatchString(text),
		DegreeCount:        len(degrees),
	}
}

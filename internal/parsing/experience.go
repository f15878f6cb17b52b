package parsing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// yearPattern matches four-digit years in the 19xx/20xx range.
var yearPattern = regexp.MustCompile(`\b(?:19|20)[0-9]{2}\b`)

// titleKeywords are matched as substrings of whole words, so "WebDeveloper"
// counts for "developer".
var titleKeywords = []string{
	"manager", "developer", "engineer", "analyst", "director", "specialist",
	"coordinator", "consultant", "lead", "senior", "junior", "intern",
}

var titlePatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(titleKeywords))
	for i, keyword := range titleKeywords {
		patterns[i] = regexp.MustCompile(`(?i)\b\w*` + keyword + `\w*\b`)
	}
	return patterns
}()

// extractExperience estimates years of experience from the spread of year
// mentions and collects potential job titles.
func extractExperience(text string) types.Experience {
	var years []int
	for _, match := range yearPattern.FindAllString(text, -1) {
		year, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		years = append(years, year)
	}

	// Only the extremes matter: estimated years is max-min when at least
	// two year mentions exist, never negative.
	estimated := 0
	if len(years) > 1 {
		minYear, maxYear := years[0], years[0]
		for _, y := range years[1:] {
			if y < minYear {
				minYear = y
			}
			if y > maxYear {
				maxYear = y
			}
		}
		estimated = maxYear - minYear
	}

	titles := extractTitles(text)

	return types.Experience{
		EstimatedYears:  estimated,
		YearsMentioned:  years,
		PotentialTitles: titles,
		TitleCount:      len(titles),
	}
}

func extractTitles(text string) []string {
	found := make(map[string]struct{})
	for _, pattern := range titlePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			found[strings.ToLower(match)] = struct{}{}
		}
	}

	titles := make([]string, 0, len(found))
	for title := range found {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

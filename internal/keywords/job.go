package keywords

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

const (
	// topJobKeywords caps the dynamic keyword list per posting.
	topJobKeywords = 30
	// technicalMultiplier doubles the score of detected technical terms.
	technicalMultiplier = 2.0
	// longTokenMultiplier boosts tokens longer than longTokenLength.
	longTokenMultiplier = 1.2
	longTokenLength     = 6
)

// acronymPattern matches all-caps acronyms of at least two letters in the
// original (non-lowercased) description.
var acronymPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// technicalSuffixes mark tokens ending in a technology-flavored suffix.
var technicalSuffixes = []string{
	"js", "sql", "api", "sdk", "ide", "ui", "ux", "css", "html", "xml", "json",
}

// technologyWhitelist is an explicit list of popular technologies treated as
// technical regardless of shape.
var technologyWhitelist = buildSet([]string{
	"python", "java", "javascript", "typescript", "golang", "rust", "ruby",
	"php", "swift", "kotlin", "scala", "react", "angular", "vue", "django",
	"flask", "spring", "docker", "kubernetes", "terraform", "jenkins",
	"aws", "azure", "gcp", "linux", "git", "mongodb", "postgresql", "mysql",
	"redis", "elasticsearch", "kafka", "graphql", "tensorflow", "pytorch",
})

// ExtractJobKeywords mines scored dynamic keywords from a job description.
//
// This is a two-stage selection-then-score pipeline: the 30 most frequent
// non-filler tokens are selected first, then each is scored as its raw
// frequency, doubled when it matches a detected technical term and boosted by
// 1.2 when longer than six characters (both multipliers can apply). Output
// order is the descending-frequency selection order, not re-sorted by final
// score.
func ExtractJobKeywords(description string) []types.DynamicKeyword {
	fc := newFrequencyCount()
	for _, token := range Tokenize(description) {
		if _, stop := jobStopWords[token]; stop {
			continue
		}
		fc.add(token)
	}

	technical := detectTechnicalTerms(description)

	selected := fc.top(topJobKeywords)
	result := make([]types.DynamicKeyword, 0, len(selected))
	for _, kw := range selected {
		score := float64(kw.Count)
		if _, ok := technical[kw.Word]; ok {
			score *= technicalMultiplier
		}
		if len(kw.Word) > longTokenLength {
			score *= longTokenMultiplier
		}
		result = append(result, types.DynamicKeyword{
			Keyword:   kw.Word,
			Score:     score,
			Frequency: kw.Count,
			Type:      "single",
		})
	}
	return result
}

// detectTechnicalTerms collects the lowercase technical vocabulary of a
// description via three pattern families: all-caps acronyms, technical
// suffixes, and the popular-technology whitelist.
func detectTechnicalTerms(description string) map[string]struct{} {
	terms := make(map[string]struct{})

	for _, acronym := range acronymPattern.FindAllString(description, -1) {
		terms[strings.ToLower(acronym)] = struct{}{}
	}

	for _, token := range Tokenize(description) {
		if _, ok := technologyWhitelist[token]; ok {
			terms[token] = struct{}{}
			continue
		}
		for _, suffix := range technicalSuffixes {
			if strings.HasSuffix(token, suffix) {
				terms[token] = struct{}{}
				break
			}
		}
	}

	return terms
}

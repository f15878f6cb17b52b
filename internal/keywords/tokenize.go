// Package keywords provides the lexical layer shared by résumé parsing and
// matching: tokenization, stop-word filtering, optional stemming, frequency
// statistics, and dynamic job-keyword extraction.
package keywords

import (
	"regexp"
	"strings"
)

// tokenPattern matches alphabetic runs of at least three characters.
var tokenPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

// Tokenize lowercases text and returns its alphabetic tokens of length >= 3.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// stopWords is the base stop-word set used for résumé keyword statistics and
// keyword-overlap scoring.
var stopWords = buildSet([]string{
	"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
	"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
	"how", "its", "may", "new", "now", "old", "see", "two", "who", "boy",
	"did", "she", "use", "way", "will", "have", "been", "that", "this",
	"with", "from", "they", "know", "want", "good", "much", "some", "time",
	"very", "when", "come", "here", "just", "like", "long", "make", "many",
	"over", "such", "take", "than", "them", "well", "were", "what", "your",
	"about", "after", "also", "back", "because", "before", "being", "between",
	"both", "could", "down", "during", "each", "few", "first", "into",
	"more", "most", "only", "other", "same", "should", "then", "there",
	"these", "those", "through", "under", "until", "where", "which", "while",
	"would", "their", "there", "against", "does", "doing", "further", "once",
	"own", "too", "any", "nor", "off", "above", "below", "again", "other",
})

// jobFillerWords extends the base set with job-posting boilerplate that
// carries no signal about the role itself.
var jobFillerWords = []string{
	"experience", "candidate", "candidates", "position", "role", "job",
	"work", "working", "team", "company", "required", "requirements",
	"requirement", "responsibilities", "responsibility", "skills", "skill",
	"ability", "abilities", "years", "must", "strong", "including",
	"preferred", "looking", "seeking", "join", "opportunity", "benefits",
	"salary", "apply", "applicant", "applicants", "qualifications",
	"qualified", "knowledge", "related", "plus", "etc", "within",
}

// jobStopWords is the extended stop-word set applied to job descriptions.
var jobStopWords = func() map[string]struct{} {
	set := make(map[string]struct{}, len(stopWords)+len(jobFillerWords))
	for w := range stopWords {
		set[w] = struct{}{}
	}
	for _, w := range jobFillerWords {
		set[w] = struct{}{}
	}
	return set
}()

func buildSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

package keywords

import (
	"sort"

	"github.com/jonathan/ats-engine/internal/types"
)

// frequencyCount tallies token frequencies while remembering the order in
// which tokens were first encountered, so ties sort stably.
type frequencyCount struct {
	counts map[string]int
	order  []string
}

func newFrequencyCount() *frequencyCount {
	return &frequencyCount{counts: make(map[string]int)}
}

func (fc *frequencyCount) add(token string) {
	if _, seen := fc.counts[token]; !seen {
		fc.order = append(fc.order, token)
	}
	fc.counts[token]++
}

// top returns up to limit (word, count) pairs sorted descending by count,
// with ties in first-encountered order.
func (fc *frequencyCount) top(limit int) []types.KeywordCount {
	ranked := make([]types.KeywordCount, 0, len(fc.order))
	for _, word := range fc.order {
		ranked = append(ranked, types.KeywordCount{Word: word, Count: fc.counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopKeywords computes frequency statistics over the meaningful tokens of
// text: stop words are dropped and the remaining tokens are stemmed when a
// stemming backend is registered. It returns the limit most frequent
// (word, count) pairs plus the total and unique kept-token counts.
func TopKeywords(text string, limit int) (top []types.KeywordCount, totalWords, uniqueWords int) {
	fc := newFrequencyCount()
	for _, token := range Tokenize(text) {
		if _, stop := stopWords[token]; stop {
			continue
		}
		fc.add(stemToken(token))
		totalWords++
	}
	return fc.top(limit), totalWords, len(fc.counts)
}

// ImportantWords returns the stop-word-filtered tokens of text, unstemmed,
// preserving occurrence order and multiplicity. This feeds the
// frequency-weighted keyword overlap score.
func ImportantWords(text string) []string {
	tokens := Tokenize(text)
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, stop := stopWords[token]; stop {
			continue
		}
		words = append(words, token)
	}
	return words
}

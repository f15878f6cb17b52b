package parsing

import (
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// summaryStats computes raw-text statistics. The average guards against a
// zero line count rather than dividing blindly.
func summaryStats(text string) types.SummaryStats {
	words := strings.Fields(text)
	lines := strings.Split(text, "\n")

	avg := 0.0
	if len(lines) > 0 {
		avg = float64(len(words)) / float64(len(lines))
	}

	return types.SummaryStats{
		CharacterCount:  len(text),
		WordCount:       len(words),
		LineCount:       len(lines),
		AvgWordsPerLine: avg,
	}
}

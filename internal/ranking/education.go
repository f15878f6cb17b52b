package ranking

import "strings"

// educationLevel is one entry of the fixed degree hierarchy. Kept as an
// ordered slice so substring lookup is deterministic.
type educationLevel struct {
	name string
	rank int
}

// educationHierarchy maps degree vocabulary to ordinal levels, high school
// lowest through doctorate highest.
var educationHierarchy = []educationLevel{
	{"high school", 1},
	{"certificate", 2},
	{"diploma", 3},
	{"associate", 4},
	{"bachelor", 5},
	{"undergraduate", 5},
	{"master", 6},
	{"mba", 6},
	{"phd", 7},
	{"doctorate", 7},
}

// educationRank returns the ordinal for a degree or requirement string, or 0
// when no hierarchy term appears in it.
func educationRank(text string) int {
	lower := strings.ToLower(text)
	for _, level := range educationHierarchy {
		if strings.Contains(lower, level.name) {
			return level.rank
		}
	}
	return 0
}

// bestEducationRank returns the highest ordinal among a candidate's degrees,
// 0 when none are recognized.
func bestEducationRank(degrees []string) int {
	best := 0
	for _, degree := range degrees {
		if rank := educationRank(degree); rank > best {
			best = rank
		}
	}
	return best
}

// Package ranking computes weighted, explainable match scores between a job
// posting and candidate profiles.
package ranking

import (
	"strings"

	"github.com/jonathan/ats-engine/internal/keywords"
	"github.com/jonathan/ats-engine/internal/types"
)

// Dimension weights. Each mode sums to 1.0; the dynamic mode is selected when
// the posting carries dynamic keywords.
const (
	skillsWeight     = 0.40
	experienceWeight = 0.25
	educationWeight  = 0.15
	keywordWeight    = 0.20

	skillsWeightDyn     = 0.35
	experienceWeightDyn = 0.20
	educationWeightDyn  = 0.15
	keywordWeightDyn    = 0.20
	dynamicWeight       = 0.10
)

const (
	// overqualifiedFactor caps candidates beyond twice the required years.
	overqualifiedFactor = 2
	overqualifiedScore  = 0.9
	// minExperienceScore floors the underqualified ratio.
	minExperienceScore = 0.1
	// partialEducationScore credits candidates with no recognized degree
	// when a level is required; never literally zero.
	partialEducationScore = 0.3
)

// skillsResult carries the skills sub-score plus the counts used for
// explanation text.
type skillsResult struct {
	score   float64
	matched int
	missing int
}

// scoreSkills computes the fraction of required skills matched. A required
// skill matches a candidate skill on exact equality, substring containment in
// either direction, or synonym-table membership.
func scoreSkills(requiredSkills, candidateSkills []string) skillsResult {
	if len(requiredSkills) == 0 {
		return skillsResult{score: 1.0}
	}

	candidates := make([]string, 0, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidates = append(candidates, strings.ToLower(strings.TrimSpace(skill)))
	}

	matched := 0
	for _, required := range requiredSkills {
		required = strings.ToLower(strings.TrimSpace(required))
		for _, candidate := range candidates {
			if skillMatches(required, candidate) {
				matched++
				break
			}
		}
	}

	return skillsResult{
		score:   float64(matched) / float64(len(requiredSkills)),
		matched: matched,
		missing: len(requiredSkills) - matched,
	}
}

func skillMatches(required, candidate string) bool {
	if required == candidate {
		return true
	}
	if strings.Contains(candidate, required) || strings.Contains(required, candidate) {
		return true
	}
	return synonymMatch(required, candidate)
}

// scoreExperience compares estimated candidate years against the requirement.
func scoreExperience(requiredYears, candidateYears int) float64 {
	if requiredYears == 0 {
		return 1.0
	}
	if candidateYears >= requiredYears {
		if candidateYears <= requiredYears*overqualifiedFactor {
			return 1.0
		}
		return overqualifiedScore
	}
	score := float64(candidateYears) / float64(requiredYears)
	if score < minExperienceScore {
		return minExperienceScore
	}
	return score
}

// scoreEducation maps both sides onto the degree hierarchy and compares
// ordinals. Candidates with no recognized degree get partial credit rather
// than zero.
func scoreEducation(requiredLevel string, degrees []string) float64 {
	if strings.TrimSpace(requiredLevel) == "" {
		return 1.0
	}

	required := educationRank(requiredLevel)
	candidate := bestEducationRank(degrees)

	switch {
	case candidate >= required:
		return 1.0
	case candidate == 0:
		return partialEducationScore
	default:
		score := float64(candidate) / float64(required)
		if score > 1.0 {
			return 1.0
		}
		return score
	}
}

// scoreKeywords computes frequency-weighted keyword overlap: each job keyword
// with frequency f contributes min(f, candidate frequency), normalized by the
// total job keyword weight.
func scoreKeywords(jobDescription, candidateText string) float64 {
	jobWords := keywords.ImportantWords(jobDescription)
	if len(jobWords) == 0 {
		return 1.0
	}

	jobFreq := make(map[string]int, len(jobWords))
	for _, word := range jobWords {
		jobFreq[word]++
	}
	candidateFreq := make(map[string]int)
	for _, word := range keywords.ImportantWords(candidateText) {
		candidateFreq[word]++
	}

	matchWeight := 0
	totalWeight := 0
	for word, f := range jobFreq {
		totalWeight += f
		if cf := candidateFreq[word]; cf > 0 {
			if cf < f {
				matchWeight += cf
			} else {
				matchWeight += f
			}
		}
	}

	if totalWeight == 0 {
		return 0
	}
	score := float64(matchWeight) / float64(totalWeight)
	if score > 1.0 {
		return 1.0
	}
	return score
}

// dynamicResult carries the dynamic keyword sub-score plus the matched-term
// count used for explanation text.
type dynamicResult struct {
	score   float64
	matched int
}

// scoreDynamicKeywords accumulates, for each persisted dynamic keyword found
// in the candidate text, min(1, occurrences/frequency) weighted by its score.
// Every keyword's weight lands in the denominator whether or not it matches.
func scoreDynamicKeywords(dynamicKeywords []types.DynamicKeyword, candidateText string) dynamicResult {
	if len(dynamicKeywords) == 0 {
		return dynamicResult{score: 1.0}
	}

	textLower := strings.ToLower(candidateText)

	contribution := 0.0
	totalWeight := 0.0
	matched := 0
	for _, kw := range dynamicKeywords {
		totalWeight += kw.Score
		occurrences := strings.Count(textLower, strings.ToLower(kw.Keyword))
		if occurrences == 0 {
			continue
		}
		matched++
		coverage := 1.0
		if kw.Frequency > 0 {
			coverage = float64(occurrences) / float64(kw.Frequency)
			if coverage > 1.0 {
				coverage = 1.0
			}
		}
		contribution += coverage * kw.Score
	}

	if totalWeight == 0 {
		return dynamicResult{score: 0, matched: matched}
	}
	score := contribution / totalWeight
	if score > 1.0 {
		score = 1.0
	}
	return dynamicResult{score: score, matched: matched}
}

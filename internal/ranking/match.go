package ranking

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-engine/internal/types"
)

// Score computes the match between one job and one candidate. It only reads
// its arguments and holds no state between calls.
func Score(job *types.JobPosting, candidate types.CandidateRecord) types.MatchResult {
	profile := &candidate.ParsedData
	hasDynamic := len(job.DynamicKeywords) > 0

	skills := scoreSkills(job.RequiredSkills, profile.Skills.AllSkills)
	experience := scoreExperience(job.ExperienceYears, profile.Experience.EstimatedYears)
	education := scoreEducation(job.EducationLevel, profile.Education.Degrees)
	keywordScore := scoreKeywords(job.Description, profile.RawText)

	var total float64
	var dynamic dynamicResult
	breakdown := types.MatchBreakdown{
		Skills:     toPercent(skills.score),
		Experience: toPercent(experience),
		Education:  toPercent(education),
		Keywords:   toPercent(keywordScore),
	}

	if hasDynamic {
		dynamic = scoreDynamicKeywords(job.DynamicKeywords, profile.RawText)
		breakdown.DynamicKeywords = toPercent(dynamic.score)
		total = skills.score*skillsWeightDyn +
			experience*experienceWeightDyn +
			education*educationWeightDyn +
			keywordScore*keywordWeightDyn +
			dynamic.score*dynamicWeight
	} else {
		total = skills.score*skillsWeight +
			experience*experienceWeight +
			education*educationWeight +
			keywordScore*keywordWeight
	}

	strengths, gaps := explain(explainInput{
		skills:         skills,
		experience:     experience,
		education:      education,
		dynamic:        dynamic,
		hasDynamic:     hasDynamic,
		requiredYears:  job.ExperienceYears,
		candidateYears: profile.Experience.EstimatedYears,
		requiredLevel:  job.EducationLevel,
	})

	return types.MatchResult{
		Candidate:  candidate,
		MatchScore: toPercent(total),
		Breakdown:  breakdown,
		Strengths:  strengths,
		Gaps:       gaps,
	}
}

// MatchCandidates scores every candidate against the job and returns results
// sorted descending by score. The sort is stable, so ties keep input order;
// callers pass candidates newest-upload-first, which makes ties favor recent
// uploads. Per-candidate scoring runs in parallel since each call only reads
// its own arguments.
func MatchCandidates(job *types.JobPosting, candidates []types.CandidateRecord) []types.MatchResult {
	results := make([]types.MatchResult, len(candidates))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			results[i] = Score(job, candidate)
			return nil
		})
	}
	_ = g.Wait() // scoring never fails

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return results
}

// toPercent converts a unit score to a percentage rounded to two decimals.
func toPercent(score float64) float64 {
	return math.Round(score*100*100) / 100
}

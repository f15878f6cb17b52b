package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/types"
)

func backendJob() *types.JobPosting {
	return &types.JobPosting{
		ID:              "job_test",
		Title:           "Backend Engineer",
		Description:     "Python backend services on AWS",
		RequiredSkills:  []string{"python", "aws"},
		ExperienceYears: 3,
	}
}

func candidateWith(id string, profile types.CandidateProfile) types.CandidateRecord {
	return types.CandidateRecord{
		ID:         id,
		Filename:   id + ".pdf",
		UploadDate: "2026-08-01T12:00:00Z",
		ParsedData: profile,
	}
}

func strongBackendProfile() types.CandidateProfile {
	return types.CandidateProfile{
		RawText: "Python services deployed to AWS since 2020",
		Skills:  types.Skills{AllSkills: []string{"aws", "python"}, SkillCount: 2},
		Experience: types.Experience{
			EstimatedYears: 4,
			YearsMentioned: []int{2020, 2024},
		},
		Education: types.Education{Degrees: []string{"bachelor"}, DegreeCount: 1},
	}
}

func TestScore_StrongCandidate(t *testing.T) {
	result := Score(backendJob(), candidateWith("a", strongBackendProfile()))

	assert.Equal(t, 100.0, result.Breakdown.Skills)
	assert.Equal(t, 100.0, result.Breakdown.Experience)
	assert.Equal(t, 100.0, result.Breakdown.Education)
	assert.GreaterOrEqual(t, result.MatchScore, 80.0)
	assert.LessOrEqual(t, result.MatchScore, 100.0)
	assert.Contains(t, result.Strengths, "Strong skills match (2 relevant skills)")
	assert.Contains(t, result.Strengths, "Perfect experience level")
}

func TestScore_EmptyProfile(t *testing.T) {
	result := Score(backendJob(), candidateWith("b", types.CandidateProfile{}))

	assert.Equal(t, 0.0, result.Breakdown.Skills)
	assert.Equal(t, 10.0, result.Breakdown.Experience)
	// No education requirement on the job, so that dimension stays perfect.
	assert.Equal(t, 100.0, result.Breakdown.Education)
	assert.Contains(t, result.Gaps, "Limited skills match (missing 2 key skills)")
	assert.Contains(t, result.Gaps, "Needs 3 more years of experience")
}

func TestScore_DynamicModeFillsBreakdown(t *testing.T) {
	job := backendJob()
	job.DynamicKeywords = []types.DynamicKeyword{
		{Keyword: "python", Score: 2.0, Frequency: 1, Type: "single"},
	}

	result := Score(job, candidateWith("a", strongBackendProfile()))
	assert.Equal(t, 100.0, result.Breakdown.DynamicKeywords)
	assert.Contains(t, result.Strengths, "Strong alignment with job-specific terms (1 matched)")
}

func TestMatchCandidates_SortedDescending(t *testing.T) {
	candidates := []types.CandidateRecord{
		candidateWith("weak", types.CandidateProfile{}),
		candidateWith("strong", strongBackendProfile()),
	}

	results := MatchCandidates(backendJob(), candidates)
	require.Len(t, results, 2)
	assert.Equal(t, "strong", results[0].Candidate.ID)
	assert.Equal(t, "weak", results[1].Candidate.ID)
	assert.Greater(t, results[0].MatchScore, results[1].MatchScore)
}

func TestMatchCandidates_TiesKeepInputOrder(t *testing.T) {
	candidates := []types.CandidateRecord{
		candidateWith("newest", strongBackendProfile()),
		candidateWith("older", strongBackendProfile()),
	}

	results := MatchCandidates(backendJob(), candidates)
	require.Len(t, results, 2)
	assert.Equal(t, results[0].MatchScore, results[1].MatchScore)
	assert.Equal(t, "newest", results[0].Candidate.ID)
	assert.Equal(t, "older", results[1].Candidate.ID)
}

func TestScore_PartialSkillsOutrankNoSkills(t *testing.T) {
	job := &types.JobPosting{
		ID:              "job_ml",
		Title:           "ML Engineer",
		RequiredSkills:  []string{"Python", "AWS"},
		ExperienceYears: 3,
		EducationLevel:  "bachelor",
	}
	profile := types.CandidateProfile{
		Skills:     types.Skills{AllSkills: []string{"python", "machine learning"}, SkillCount: 2},
		Experience: types.Experience{EstimatedYears: 5},
		Education:  types.Education{Degrees: []string{"bachelor"}, DegreeCount: 1},
	}
	noSkills := profile
	noSkills.Skills = types.Skills{}

	partial := Score(job, candidateWith("partial", profile))
	assert.Equal(t, 50.0, partial.Breakdown.Skills)
	assert.Equal(t, 100.0, partial.Breakdown.Experience)
	assert.Equal(t, 100.0, partial.Breakdown.Education)

	blank := Score(job, candidateWith("blank", noSkills))
	assert.Equal(t, 0.0, blank.Breakdown.Skills)
	assert.Greater(t, partial.MatchScore, blank.MatchScore)
}

func TestMatchCandidates_Empty(t *testing.T) {
	assert.Empty(t, MatchCandidates(backendJob(), nil))
}

func TestMatchCandidates_ScoresWithinPercentRange(t *testing.T) {
	candidates := []types.CandidateRecord{
		candidateWith("a", strongBackendProfile()),
		candidateWith("b", types.CandidateProfile{}),
	}

	for _, result := range MatchCandidates(backendJob(), candidates) {
		assert.GreaterOrEqual(t, result.MatchScore, 0.0)
		assert.LessOrEqual(t, result.MatchScore, 100.0)
	}
}

func TestToPercent_RoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 33.33, toPercent(1.0/3.0))
	assert.Equal(t, 100.0, toPercent(1.0))
	assert.Equal(t, 0.0, toPercent(0.0))
}

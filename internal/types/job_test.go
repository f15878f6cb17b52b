package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequiredSkills_SplitsAndTrims(t *testing.T) {
	skills := ParseRequiredSkills(" python , aws,  docker ")
	assert.Equal(t, []string{"python", "aws", "docker"}, skills)
}

func TestParseRequiredSkills_DropsEmptyEntries(t *testing.T) {
	assert.Equal(t, []string{"go"}, ParseRequiredSkills(",go,,"))
	assert.Empty(t, ParseRequiredSkills(""))
	assert.Empty(t, ParseRequiredSkills(" , ,"))
}

func TestJobPostingValidate_Valid(t *testing.T) {
	job := JobPosting{Title: "Backend Engineer", ExperienceYears: 3}
	assert.NoError(t, job.Validate())
}

func TestJobPostingValidate_MissingTitle(t *testing.T) {
	job := JobPosting{ExperienceYears: 1}
	assert.Error(t, job.Validate())
}

func TestJobPostingValidate_NegativeExperienceYears(t *testing.T) {
	job := JobPosting{Title: "X", ExperienceYears: -1}
	assert.Error(t, job.Validate())
}

func TestNewCandidateRecord_PopulatesIdentityAndTimestamp(t *testing.T) {
	profile := CandidateProfile{RawText: "text"}
	record := NewCandidateRecord("stored.pdf", "resume.pdf", profile)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "stored.pdf", record.Filename)
	assert.Equal(t, "resume.pdf", record.OriginalFilename)
	assert.Equal(t, profile, record.ParsedData)
	require.NotEmpty(t, record.UploadDate)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, record.UploadDate)
}

func TestNewCandidateRecord_UniqueIDs(t *testing.T) {
	a := NewCandidateRecord("a.pdf", "a.pdf", CandidateProfile{})
	b := NewCandidateRecord("b.pdf", "b.pdf", CandidateProfile{})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSortByUploadDesc_NewestFirst(t *testing.T) {
	records := []CandidateRecord{
		{ID: "old", UploadDate: "2026-01-05T09:00:00Z"},
		{ID: "new", UploadDate: "2026-08-01T12:00:00Z"},
		{ID: "mid", UploadDate: "2026-03-20T18:30:00Z"},
	}

	SortByUploadDesc(records)
	assert.Equal(t, "new", records[0].ID)
	assert.Equal(t, "mid", records[1].ID)
	assert.Equal(t, "old", records[2].ID)
}

func TestSortByUploadDesc_TiesKeepInputOrder(t *testing.T) {
	records := []CandidateRecord{
		{ID: "first", UploadDate: "2026-08-01T12:00:00Z"},
		{ID: "second", UploadDate: "2026-08-01T12:00:00Z"},
	}

	SortByUploadDesc(records)
	assert.Equal(t, "first", records[0].ID)
	assert.Equal(t, "second", records[1].ID)
}

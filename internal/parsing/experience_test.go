package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExperience_YearSpread(t *testing.T) {
	exp := extractExperience("Worked at Acme from 2018 to 2022 on billing.")
	assert.Equal(t, 4, exp.EstimatedYears)
	assert.Equal(t, []int{2018, 2022}, exp.YearsMentioned)
}

func TestExtractExperience_SingleYearEstimatesZero(t *testing.T) {
	exp := extractExperience("Joined in 2020.")
	assert.Equal(t, 0, exp.EstimatedYears)
	assert.Equal(t, []int{2020}, exp.YearsMentioned)
}

func TestExtractExperience_UsesExtremesNotOrder(t *testing.T) {
	exp := extractExperience("2021, 2015, 2019 and 2023")
	assert.Equal(t, 8, exp.EstimatedYears)
}

func TestExtractExperience_IgnoresNonYearNumbers(t *testing.T) {
	exp := extractExperience("Served 21000 customers; ref 1850; id 20225.")
	assert.Empty(t, exp.YearsMentioned)
	assert.Equal(t, 0, exp.EstimatedYears)
}

func TestExtractTitles_WholeWordSubstrings(t *testing.T) {
	titles := extractTitles("Senior Developer and WebDeveloper roles")
	assert.Equal(t, []string{"developer", "senior", "webdeveloper"}, titles)
}

func TestExtractTitles_CaseInsensitiveAndDeduplicated(t *testing.T) {
	titles := extractTitles("ENGINEER engineer Engineer")
	assert.Equal(t, []string{"engineer"}, titles)
}

func TestExtractExperience_TitleCount(t *testing.T) {
	exp := extractExperience("Project Manager, then Engineering Lead")
	assert.Equal(t, len(exp.PotentialTitles), exp.TitleCount)
	assert.Contains(t, exp.PotentialTitles, "manager")
	assert.Contains(t, exp.PotentialTitles, "lead")
}

package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_FindsAndCategorizes(t *testing.T) {
	text := "Experienced in Python, React and AWS. Built services with PostgreSQL."

	skills := extractSkills(text)
	assert.Equal(t, []string{"aws", "postgresql", "python", "react"}, skills.AllSkills)
	assert.Equal(t, 4, skills.SkillCount)
	assert.Equal(t, []string{"python"}, skills.Categorized["programming"])
	assert.Equal(t, []string{"react"}, skills.Categorized["web_development"])
	assert.Equal(t, []string{"postgresql"}, skills.Categorized["databases"])
	assert.Equal(t, []string{"aws"}, skills.Categorized["cloud"])
}

func TestExtractSkills_SubstringMatchIsDeliberate(t *testing.T) {
	// No word-boundary requirement: "java" is found inside "JavaScript".
	skills := extractSkills("Expert JavaScript programmer")
	assert.Contains(t, skills.AllSkills, "java")
	assert.Contains(t, skills.AllSkills, "javascript")
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	skills := extractSkills("KUBERNETES and Docker")
	assert.Contains(t, skills.AllSkills, "kubernetes")
	assert.Contains(t, skills.AllSkills, "docker")
}

func TestExtractSkills_NoneFound(t *testing.T) {
	skills := extractSkills("I enjoy hiking and cooking.")
	assert.Empty(t, skills.AllSkills)
	assert.Empty(t, skills.Categorized)
	assert.Equal(t, 0, skills.SkillCount)
}

func TestExtractSkills_CountMatchesSet(t *testing.T) {
	skills := extractSkills("python python python and mysql")
	assert.Equal(t, len(skills.AllSkills), skills.SkillCount)
	assert.Equal(t, 2, skills.SkillCount)
}

package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_AlphabeticRuns(t *testing.T) {
	tokens := Tokenize("Go 2 Kubernetes, re-deploys! C++")
	assert.Equal(t, []string{"kubernetes", "deploys"}, tokens)
}

func TestTokenize_MinimumLength(t *testing.T) {
	tokens := Tokenize("a an the cat")
	assert.Equal(t, []string{"the", "cat"}, tokens)
}

func TestTopKeywords_EmptyText(t *testing.T) {
	top, total, unique := TopKeywords("", 20)
	assert.Len(t, top, 0)
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, unique)
}

func TestTopKeywords_FrequencyOrder(t *testing.T) {
	SetStemmer(nil)
	defer SetStemmer(snowballStemmer{})

	top, total, unique := TopKeywords("docker docker docker python python linux", 20)
	require.Len(t, top, 3)
	assert.Equal(t, "docker", top[0].Word)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, "python", top[1].Word)
	assert.Equal(t, 2, top[1].Count)
	assert.Equal(t, "linux", top[2].Word)
	assert.Equal(t, 6, total)
	assert.Equal(t, 3, unique)
}

func TestTopKeywords_TiesKeepFirstEncounteredOrder(t *testing.T) {
	SetStemmer(nil)
	defer SetStemmer(snowballStemmer{})

	top, _, _ := TopKeywords("zebra apple zebra apple mango", 20)
	require.Len(t, top, 3)
	// zebra and apple tie at 2; zebra was seen first.
	assert.Equal(t, "zebra", top[0].Word)
	assert.Equal(t, "apple", top[1].Word)
	assert.Equal(t, "mango", top[2].Word)
}

func TestTopKeywords_Limit(t *testing.T) {
	top, _, _ := TopKeywords("alpha beta gamma delta epsilon", 2)
	assert.Len(t, top, 2)
}

func TestTopKeywords_DropsStopWords(t *testing.T) {
	_, total, _ := TopKeywords("the and for python", 20)
	assert.Equal(t, 1, total)
}

func TestTopKeywords_StemsWithDefaultBackend(t *testing.T) {
	top, _, unique := TopKeywords("testing tested tests", 20)
	require.Len(t, top, 1)
	assert.Equal(t, "test", top[0].Word)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, 1, unique)
}

func TestImportantWords_FiltersWithoutStemming(t *testing.T) {
	words := ImportantWords("Running the Kubernetes cluster and running it daily")
	assert.Equal(t, []string{"running", "kubernetes", "cluster", "running", "daily"}, words)
}

func TestImportantWords_EmptyText(t *testing.T) {
	assert.Empty(t, ImportantWords(""))
}

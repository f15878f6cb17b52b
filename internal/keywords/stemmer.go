package keywords

import "github.com/kljensen/snowball/english"

// Stemmer reduces a token to its stem. Stemming is an optional capability:
// keyword statistics fall back to unstemmed tokens when no backend is
// registered.
type Stemmer interface {
	Stem(word string) string
}

var stemmer Stemmer = snowballStemmer{}

// SetStemmer replaces the registered stemming backend. Passing nil disables
// stemming.
func SetStemmer(s Stemmer) {
	stemmer = s
}

func stemToken(word string) string {
	if stemmer == nil {
		return word
	}
	return stemmer.Stem(word)
}

// snowballStemmer backs the Stemmer capability with the Snowball English
// (Porter2) algorithm.
type snowballStemmer struct{}

func (snowballStemmer) Stem(word string) string {
	return english.Stem(word, false)
}

// Package vectorizer turns normalized text into the fixed-width TF-IDF
// feature vector the classifier artifact was trained on. The artifact is a
// vocabulary file (term per line, line number = feature index) plus an IDF
// weight tensor in safetensors format.
package vectorizer

import (
	"fmt"
	"math"
	"strings"
)

// TFIDF transforms normalized text into L2-normalized TF-IDF vectors.
// Read-only after construction; safe for concurrent use.
type TFIDF struct {
	vocab *vocab
	idf   []float32
}

// New loads the vocabulary and IDF weights and validates that their
// dimensions agree.
func New(vocabPath, idfPath string) (*TFIDF, error) {
	v, err := loadVocab(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("vectorizer: %w", err)
	}

	idf, err := loadIDF(idfPath)
	if err != nil {
		return nil, fmt.Errorf("vectorizer: %w", err)
	}

	if len(idf) != v.size() {
		return nil, fmt.Errorf("vectorizer: IDF dim %d != vocabulary size %d",
			len(idf), v.size())
	}

	return &TFIDF{vocab: v, idf: idf}, nil
}

// Dim returns the feature vector dimensionality.
func (t *TFIDF) Dim() int {
	return t.vocab.size()
}

// Transform produces the TF-IDF feature vector for normalized text: raw term
// counts over vocabulary terms, scaled by IDF, then L2-normalized. Terms
// outside the vocabulary are ignored. Empty input (or input with no known
// terms) yields the zero vector, which is a valid feature vector.
func (t *TFIDF) Transform(normalized string) []float32 {
	vec := make([]float32, t.vocab.size())
	if normalized == "" {
		return vec
	}

	for _, term := range strings.Fields(normalized) {
		if i, ok := t.vocab.index(term); ok {
			vec[i] += t.idf[i]
		}
	}

	var sumSq float64
	for _, x := range vec {
		sumSq += float64(x) * float64(x)
	}
	if sumSq == 0 {
		return vec
	}
	norm := float32(math.Sqrt(sumSq))
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

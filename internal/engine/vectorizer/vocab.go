package vectorizer

import (
	"bufio"
	"fmt"
	"os"
)

// vocab holds the TF-IDF vocabulary loaded from a terms file.
// Feature indices are determined by line number (0-indexed).
type vocab struct {
	termToIndex map[string]int
	terms       []string
}

// loadVocab reads a terms file where each line is a term and the line number
// (0-indexed) is the feature index.
func loadVocab(path string) (*vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	defer f.Close()

	var terms []string
	termToIndex := make(map[string]int, 8192)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		term := scanner.Text()
		termToIndex[term] = len(terms)
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read error: %w", err)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("vocab: file is empty: %s", path)
	}

	return &vocab{termToIndex: termToIndex, terms: terms}, nil
}

// index returns the feature index for the given term.
func (v *vocab) index(term string) (int, bool) {
	i, ok := v.termToIndex[term]
	return i, ok
}

// size returns the number of terms in the vocabulary.
func (v *vocab) size() int {
	return len(v.terms)
}

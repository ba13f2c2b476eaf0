package embedding

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"healthbot/internal/domain"
)

// wordPattern matches a letter followed by letters or combining
// marks. Bengali vowel signs and the virama are category M, not L,
// so a bare \p{L}+ would split words like "ব্যথা" apart.
var wordPattern = regexp.MustCompile(`\p{L}[\p{L}\p{M}]*`)

// TFIDF is a fitted term-frequency / inverse-document-frequency
// vector space over the catalog phrases. It is built exactly once by
// Fit and immutable afterwards; queries are projected into the fixed
// space and never extend the vocabulary.
type TFIDF struct {
	vocabulary map[string]int
	idf        []float64
	dimension  int
}

// Fit builds the vocabulary and IDF weights from the catalog phrases.
// The vocabulary is sorted so the mapping from term to dimension is
// identical across runs.
func Fit(phrases []string) (*TFIDF, error) {
	if len(phrases) == 0 {
		return nil, fmt.Errorf("%w: no reference phrases", domain.ErrEmptyVocabulary)
	}
	df := make(map[string]int)
	for _, text := range phrases {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: reference phrases contain no tokens", domain.ErrEmptyVocabulary)
	}

	t := &TFIDF{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
		dimension:  len(terms),
	}
	n := float64(len(phrases))
	for i, term := range terms {
		t.vocabulary[term] = i
		// Smoothed IDF, never zero, so every vocabulary term
		// contributes to the direction of its phrase vector.
		t.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return t, nil
}

// Dimension returns the size of the vector space.
func (t *TFIDF) Dimension() int { return t.dimension }

// Project maps text into the fitted space. Tokens outside the
// vocabulary get zero weight; text with no known tokens projects to
// the zero vector. The result is L2-normalized when non-zero.
func (t *TFIDF) Project(text string) []float64 {
	vec := make([]float64, t.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range Tokenize(text) {
		total++
		if idx, ok := t.vocabulary[tok]; ok {
			tf[idx]++
		}
	}
	if total == 0 || len(tf) == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * t.idf[idx]
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Tokenize lowercases text and splits it into Unicode-letter runs.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

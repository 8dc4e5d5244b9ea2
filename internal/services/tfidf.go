package services

import (
	"context"
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// TFIDFEncoder is a local encoder whose vector space is the vocabulary of the
// prepared corpus. It is read-only after Prepare.
type TFIDFEncoder struct {
	vocabulary   map[string]int
	idf          []float64
	dimension    int
	prepared     bool
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// NewTFIDFEncoder returns an unprepared TF-IDF encoder.
func NewTFIDFEncoder() *TFIDFEncoder {
	return &TFIDFEncoder{
		vocabulary:   make(map[string]int),
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]+(?:['’+#.][\p{L}\p{N}]+)*`),
		stopwords:    tfidfStopwords(),
	}
}

func (e *TFIDFEncoder) Name() string { return "tfidf" }

// Prepare implements CorpusPreparer. An empty corpus yields a zero-dimension
// space.
func (e *TFIDFEncoder) Prepare(corpus []string) error {
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range e.tokenize(text) {
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

	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		e.vocabulary[term] = i
		// smoothed idf
		e.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	e.dimension = len(terms)
	e.prepared = true
	return nil
}

func (e *TFIDFEncoder) Dimension() int { return e.dimension }

// Encode implements Encoder. Text without known terms encodes to the zero
// vector.
func (e *TFIDFEncoder) Encode(_ context.Context, text string) ([]float32, error) {
	if !e.prepared {
		return nil, &EncodingError{Encoder: e.Name(), Cause: errors.New("not prepared")}
	}

	tf := make(map[int]int)
	total := 0
	for _, tok := range e.tokenize(text) {
		if idx, ok := e.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}

	weights := make([]float64, e.dimension)
	for idx, count := range tf {
		weights[idx] = float64(count) / float64(total) * e.idf[idx]
	}
	// summed in index order so equal inputs give bit-identical vectors
	norm := 0.0
	for _, w := range weights {
		norm += w * w
	}
	norm = math.Sqrt(norm)

	vec := make([]float32, e.dimension)
	if norm == 0 {
		return vec, nil
	}
	for i, w := range weights {
		vec[i] = float32(w / norm)
	}
	return vec, nil
}

func (e *TFIDFEncoder) tokenize(text string) []string {
	raw := e.tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, stop := e.stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func tfidfStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "for", "to", "of", "in", "on", "at", "by", "with",
		"as", "is", "are", "was", "were", "be", "it", "this", "that", "from", "who", "has", "have",
		"i", "need", "someone", "me", "find", "name", "skills", "experience", "years", "projects",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

package matching

import (
	"math"
	"sort"
)

// VectorSpace maps vocabulary terms to dimension indexes with per-term IDF
// weights. It is fitted once from the job corpus and then shared read-only:
// the same space must vectorize both the candidate and every job, or the
// similarity scores are meaningless.
type VectorSpace struct {
	index map[string]int
	idf   []float64
	terms []string
}

// FitVectorSpace builds a VectorSpace from tokenized corpus documents.
// IDF uses the smoothed form log((1+N)/(1+df)) + 1 so weights stay positive
// even for terms present in every document.
func FitVectorSpace(docs [][]string) (*VectorSpace, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, tok := range doc {
			if tok == "" || seen[tok] {
				continue
			}
			seen[tok] = true
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil, ErrEmptyCorpus
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	s := &VectorSpace{
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
		terms: terms,
	}
	n := float64(len(docs))
	for i, term := range terms {
		s.index[term] = i
		s.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return s, nil
}

func (s *VectorSpace) Dimension() int {
	if s == nil {
		return 0
	}
	return len(s.terms)
}

// Transform projects tokens into the fitted space using tf-idf weighting.
// Terms outside the vocabulary are dropped silently.
func (s *VectorSpace) Transform(tokens []string) []float64 {
	vec := make([]float64, s.Dimension())
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[int]int, len(tokens))
	total := 0
	for _, tok := range tokens {
		idx, ok := s.index[tok]
		if !ok {
			continue
		}
		counts[idx]++
		total++
	}
	if total == 0 {
		return vec
	}

	for idx, count := range counts {
		tf := float64(count) / float64(total)
		vec[idx] = tf * s.idf[idx]
	}
	return vec
}

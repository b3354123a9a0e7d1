package matching

import "math"

// Classifier is a multinomial Naive Bayes model over the fitted vocabulary,
// trained on (job text, job title) pairs. Its per-title probabilities act as
// a relevance likelihood that is blended with cosine similarity.
type Classifier struct {
	space      *VectorSpace
	classes    []string
	classIndex map[string]int
	logPrior   []float64
	logLike    [][]float64
}

// TrainClassifier fits the model with Laplace smoothing. Documents sharing a
// label (duplicate job titles) are pooled into one class.
func TrainClassifier(space *VectorSpace, docs [][]string, labels []string) *Classifier {
	if space == nil || len(docs) == 0 || len(docs) != len(labels) {
		return nil
	}

	c := &Classifier{
		space:      space,
		classIndex: make(map[string]int),
	}
	for _, label := range labels {
		if _, ok := c.classIndex[label]; ok {
			continue
		}
		c.classIndex[label] = len(c.classes)
		c.classes = append(c.classes, label)
	}

	dim := space.Dimension()
	counts := make([][]float64, len(c.classes))
	totals := make([]float64, len(c.classes))
	docsPerClass := make([]float64, len(c.classes))
	for i := range counts {
		counts[i] = make([]float64, dim)
	}

	for i, doc := range docs {
		cls := c.classIndex[labels[i]]
		docsPerClass[cls]++
		for _, tok := range doc {
			idx, ok := space.index[tok]
			if !ok {
				continue
			}
			counts[cls][idx]++
			totals[cls]++
		}
	}

	c.logPrior = make([]float64, len(c.classes))
	c.logLike = make([][]float64, len(c.classes))
	n := float64(len(docs))
	for cls := range c.classes {
		c.logPrior[cls] = math.Log(docsPerClass[cls] / n)
		c.logLike[cls] = make([]float64, dim)
		denom := totals[cls] + float64(dim)
		for t := 0; t < dim; t++ {
			c.logLike[cls][t] = math.Log((counts[cls][t] + 1) / denom)
		}
	}
	return c
}

// ClassIndex returns the class position for a label, or -1 when the label
// was never trained.
func (c *Classifier) ClassIndex(label string) int {
	if c == nil {
		return -1
	}
	idx, ok := c.classIndex[label]
	if !ok {
		return -1
	}
	return idx
}

// Proba returns the posterior probability per class for the given tokens.
// Tokens outside the vocabulary are ignored; when none remain it returns
// nil, which callers treat as "no signal".
func (c *Classifier) Proba(tokens []string) []float64 {
	if c == nil || len(c.classes) == 0 {
		return nil
	}

	inVocab := 0
	logp := make([]float64, len(c.classes))
	copy(logp, c.logPrior)
	for _, tok := range tokens {
		idx, ok := c.space.index[tok]
		if !ok {
			continue
		}
		inVocab++
		for cls := range logp {
			logp[cls] += c.logLike[cls][idx]
		}
	}
	if inVocab == 0 {
		return nil
	}

	// softmax with max subtraction for numeric stability
	maxLog := logp[0]
	for _, v := range logp[1:] {
		if v > maxLog {
			maxLog = v
		}
	}
	sum := 0.0
	out := make([]float64, len(logp))
	for i, v := range logp {
		out[i] = math.Exp(v - maxLog)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

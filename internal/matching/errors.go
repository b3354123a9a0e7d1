package matching

import "errors"

var (
	// ErrEmptyCorpus is returned when a vector space is fitted over zero
	// job documents: no vocabulary can be built.
	ErrEmptyCorpus = errors.New("empty job corpus")

	// ErrInvalidCandidate is returned when a candidate reaches the engine
	// with negative years of experience. Callers validate first; this is a
	// defensive check.
	ErrInvalidCandidate = errors.New("invalid candidate profile")
)

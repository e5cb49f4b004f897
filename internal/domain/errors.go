package domain

import "errors"

var (
	// ErrEmptyCorpus signals retrieval against a corpus with no documents.
	ErrEmptyCorpus = errors.New("corpus is empty")
	// ErrPolisherUnavailable signals that the answer polisher is not configured
	// or not reachable.
	ErrPolisherUnavailable = errors.New("polisher unavailable")
)

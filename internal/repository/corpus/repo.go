package corpus

import (
	"context"
	"sync"

	"github.com/acadex-io/acadex/internal/domain/document"
)

// Repo is the in-memory document corpus. Documents are append-only and
// identified by insertion position; the slice order is the ranking
// tie-break order. The RWMutex exists only because the HTTP transport
// serves retrievals and appends concurrently — the retrieval semantics
// themselves are single-threaded.
type Repo struct {
	mu   sync.RWMutex
	docs []document.Document
}

// New creates an empty corpus repository.
func New() *Repo {
	return &Repo{}
}

// NewSeeded creates a repository pre-loaded with the given documents.
func NewSeeded(docs []document.Document) *Repo {
	r := New()
	r.docs = append(r.docs, docs...)
	return r
}

// Append adds a document to the end of the corpus. No deduplication,
// no validation.
func (r *Repo) Append(_ context.Context, doc document.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, doc)
	return nil
}

// Snapshot returns the documents in insertion order. The returned slice
// is a copy; retrieval iterates it without holding the lock.
func (r *Repo) Snapshot(_ context.Context) ([]document.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	docs := make([]document.Document, len(r.docs))
	copy(docs, r.docs)
	return docs, nil
}

// Len returns the current corpus size.
func (r *Repo) Len(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs), nil
}

package retrieval

import (
	"context"

	"github.com/acadex-io/acadex/internal/domain/document"
)

// CorpusReader provides snapshot access to the corpus in insertion order.
type CorpusReader interface {
	Snapshot(ctx context.Context) ([]document.Document, error)
}

// CorpusAppender appends documents to the corpus.
type CorpusAppender interface {
	Append(ctx context.Context, doc document.Document) error
}

// Corpus is the full storage contract for the retriever.
type Corpus interface {
	CorpusReader
	CorpusAppender
}

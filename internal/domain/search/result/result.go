package result

import "github.com/acadex-io/acadex/internal/domain/document"

// Result is a single retrieval hit.
type Result struct {
	rank    int
	score   float64
	content string
	attrs   document.Attributes
}

// New creates a retrieval result. rank is the 1-based position in the
// returned sequence; score is the Jaccard similarity in [0, 1].
func New(rank int, score float64, content string, attrs document.Attributes) Result {
	return Result{rank: rank, score: score, content: content, attrs: attrs}
}

// Rank returns the 1-based position.
func (r *Result) Rank() int { return r.rank }

// Score returns the similarity score.
func (r *Result) Score() float64 { return r.score }

// Distance returns 1 - score (display convenience).
func (r *Result) Distance() float64 { return 1 - r.score }

// Content returns the document text.
func (r *Result) Content() string { return r.content }

// Attributes returns the document metadata.
func (r *Result) Attributes() document.Attributes { return r.attrs }

// Category returns the document category attribute.
func (r *Result) Category() string { return r.attrs.Category }

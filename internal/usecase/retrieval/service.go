package retrieval

import (
	"context"
	"fmt"
	"sort"

	"github.com/acadex-io/acadex/internal/domain"
	"github.com/acadex-io/acadex/internal/domain/document"
	"github.com/acadex-io/acadex/internal/domain/search/result"
)

const (
	// OversampleFactor is how many unfiltered candidates RetrieveByCategory
	// ranks per requested result before applying the category filter. The
	// pool cap means matching documents ranked below topK*3 overall are
	// missed; that approximation is intentional and kept.
	OversampleFactor = 3

	// DefaultRelevanceThreshold is the EvaluateRelevance cutoff when the
	// caller has no opinion.
	DefaultRelevanceThreshold = 0.2
)

// Service ranks corpus documents against a text query by token Jaccard
// similarity. All reads are pure; AddDocument is the only mutation.
type Service struct {
	corpus Corpus
}

// New creates a retrieval service over the given corpus.
func New(corpus Corpus) *Service {
	return &Service{corpus: corpus}
}

// Retrieve returns the topK most similar documents, highest score first.
// Equal scores keep corpus insertion order. The result length is
// min(topK, corpus size); topK <= 0 yields an empty slice. Retrieval
// against a corpus with no documents at all is ErrEmptyCorpus.
func (s *Service) Retrieve(ctx context.Context, query string, topK int) ([]result.Result, error) {
	docs, err := s.corpus.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot corpus: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	type scored struct {
		doc   document.Document
		score float64
	}
	ranked := make([]scored, 0, len(docs))
	for _, d := range docs {
		ranked = append(ranked, scored{doc: d, score: Similarity(query, d.Content())})
	}

	// Stable sort keyed on score alone: ties keep insertion order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if topK < 0 {
		topK = 0
	}
	if topK > len(ranked) {
		topK = len(ranked)
	}

	results := make([]result.Result, 0, topK)
	for i, r := range ranked[:topK] {
		results = append(results, result.New(i+1, r.score, r.doc.Content(), r.doc.Attributes()))
	}
	return results, nil
}

// RetrieveByCategory ranks an oversampled unfiltered pool of
// topK*OversampleFactor candidates, keeps only exact category matches in
// pool order, and truncates to topK. Ranks are the positions in the
// unfiltered pool, so a filtered sequence can carry gaps. Because the
// pool is capped, this can return fewer than topK matches even when more
// exist in the corpus.
func (s *Service) RetrieveByCategory(
	ctx context.Context, query, category string, topK int,
) ([]result.Result, error) {
	if topK < 0 {
		topK = 0
	}
	pool, err := s.Retrieve(ctx, query, topK*OversampleFactor)
	if err != nil {
		return nil, err
	}

	filtered := make([]result.Result, 0, topK)
	for _, r := range pool {
		if r.Category() != category {
			continue
		}
		filtered = append(filtered, r)
		if len(filtered) == topK {
			break
		}
	}
	return filtered, nil
}

// AddDocument appends a document to the corpus. No deduplication and no
// shape validation; the document is visible to all subsequent retrievals.
func (s *Service) AddDocument(ctx context.Context, text string, attrs document.Attributes) error {
	if err := s.corpus.Append(ctx, document.New(text, attrs)); err != nil {
		return fmt.Errorf("append document: %w", err)
	}
	return nil
}

// EvaluateRelevance scores query against an ad-hoc document text (not
// from the corpus) and reports whether the similarity meets threshold.
func (s *Service) EvaluateRelevance(_ context.Context, query, docText string, threshold float64) bool {
	return Similarity(query, docText) >= threshold
}

package intent

import (
	"context"
	"strings"

	domintent "github.com/acadex-io/acadex/internal/domain/intent"
)

// fallbackConfidence is reported when no keywords match and the
// classifier defaults to the most general category.
const fallbackConfidence = 0.5

// Classification is a predicted intent with its confidence.
type Classification struct {
	Intent     domintent.Intent
	Confidence float64
}

// Service classifies student queries into intent categories by keyword
// hit counting. Offline and deterministic.
type Service struct{}

// New creates an intent classification service.
func New() *Service {
	return &Service{}
}

// Classify predicts the intent of query. Each keyword found as a
// substring of the lower-cased query counts one hit; the intent with the
// most hits wins (classification order breaks ties). Zero hits falls
// back to academic_policy. Confidence is hits scaled by half the query
// word count, capped at 1.0.
func (s *Service) Classify(_ context.Context, query string) Classification {
	lower := strings.ToLower(query)

	best := domintent.AcademicPolicy
	bestHits := 0
	for _, candidate := range domintent.All() {
		hits := 0
		for _, kw := range intentKeywords[candidate] {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = candidate
			bestHits = hits
		}
	}

	if bestHits == 0 {
		return Classification{Intent: domintent.AcademicPolicy, Confidence: fallbackConfidence}
	}

	words := len(strings.Fields(lower))
	confidence := float64(bestHits) / (float64(words) / 2)
	if confidence > 1.0 {
		confidence = 1.0
	}
	return Classification{Intent: best, Confidence: confidence}
}

// ClassifyBatch classifies multiple queries.
func (s *Service) ClassifyBatch(ctx context.Context, queries []string) []Classification {
	out := make([]Classification, 0, len(queries))
	for _, q := range queries {
		out = append(out, s.Classify(ctx, q))
	}
	return out
}

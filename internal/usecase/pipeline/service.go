package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	domintent "github.com/acadex-io/acadex/internal/domain/intent"
	"github.com/acadex-io/acadex/internal/domain/search/request"
	"github.com/acadex-io/acadex/internal/domain/search/result"
	"github.com/acadex-io/acadex/internal/logger"
	"github.com/acadex-io/acadex/internal/metrics"
	"github.com/acadex-io/acadex/internal/usecase/extract"
	"github.com/acadex-io/acadex/internal/usecase/respond"
	"github.com/acadex-io/acadex/internal/usecase/verify"
)

// DefaultHistoryLimit bounds the in-memory conversation history.
const DefaultHistoryLimit = 50

// Answer is the full outcome of one pipeline run: the rendered response
// plus every stage's intermediate output for callers that surface them.
type Answer struct {
	Query          string
	Intent         domintent.Intent
	Confidence     float64
	Documents      []result.Result
	Interpretation extract.Interpretation
	Verification   verify.Report
	Response       string
	Followups      []string
	Polished       bool
	Cached         bool
}

// Exchange is one completed query/response pair in the conversation.
type Exchange struct {
	Query    string
	Intent   domintent.Intent
	Response string
}

// Service orchestrates classify, retrieve, extract, verify, respond.
// Each stage boundary returns an explicit error; there is no catch-all.
type Service struct {
	classifier Classifier
	retriever  Retriever
	extractor  Extractor
	verifier   Verifier
	responder  Responder

	topK         int
	cache        *gocache.Cache
	mu           sync.Mutex
	history      []Exchange
	historyLimit int
}

// New creates a pipeline coordinator with the default top-k and history
// limit and no answer cache.
func New(
	classifier Classifier,
	retriever Retriever,
	extractor Extractor,
	verifier Verifier,
	responder Responder,
) *Service {
	return &Service{
		classifier:   classifier,
		retriever:    retriever,
		extractor:    extractor,
		verifier:     verifier,
		responder:    responder,
		topK:         request.DefaultTopK,
		historyLimit: DefaultHistoryLimit,
	}
}

// WithTopK sets how many documents each query retrieves.
func (s *Service) WithTopK(topK int) *Service {
	if topK > 0 {
		s.topK = topK
	}
	return s
}

// WithCache enables the TTL answer cache keyed by normalized query.
func (s *Service) WithCache(ttl time.Duration) *Service {
	if ttl > 0 {
		s.cache = gocache.New(ttl, 2*ttl)
	}
	return s
}

// WithHistoryLimit bounds the conversation history length.
func (s *Service) WithHistoryLimit(limit int) *Service {
	if limit > 0 {
		s.historyLimit = limit
	}
	return s
}

// Process runs query through the whole pipeline.
func (s *Service) Process(ctx context.Context, query string) (Answer, error) {
	log := logger.FromContext(ctx)

	key := normalizeQuery(query)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			metrics.AnswerCacheTotal.WithLabelValues("hit").Inc()
			answer := v.(Answer)
			answer.Cached = true
			return answer, nil
		}
		metrics.AnswerCacheTotal.WithLabelValues("miss").Inc()
	}

	cls := s.classifier.Classify(ctx, query)
	log.Debug("intent classified",
		zap.String("intent", cls.Intent.String()),
		zap.Float64("confidence", cls.Confidence),
	)

	docs, err := s.retriever.RetrieveByCategory(ctx, query, cls.Intent.String(), s.topK)
	if err != nil {
		return Answer{}, fmt.Errorf("retrieve documents: %w", err)
	}
	for _, d := range docs {
		metrics.RetrievalScore.Observe(d.Score())
	}

	interp := s.extractor.Interpret(ctx, docs)
	report := s.verifier.Verify(ctx, interp)

	rendered, err := s.responder.Respond(ctx, respond.Input{
		Intent:         cls.Intent,
		Interpretation: interp,
		Documents:      docs,
	})
	if err != nil {
		return Answer{}, fmt.Errorf("render response: %w", err)
	}

	answer := Answer{
		Query:          query,
		Intent:         cls.Intent,
		Confidence:     cls.Confidence,
		Documents:      docs,
		Interpretation: interp,
		Verification:   report,
		Response:       rendered.Text,
		Followups:      rendered.Followups,
		Polished:       rendered.Polished,
	}

	metrics.PipelineQueriesTotal.WithLabelValues(cls.Intent.String()).Inc()
	s.record(Exchange{Query: query, Intent: cls.Intent, Response: rendered.Text})

	if s.cache != nil {
		s.cache.SetDefault(key, answer)
	}
	return answer, nil
}

// History returns a copy of the conversation history, oldest first.
func (s *Service) History() []Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Exchange, len(s.history))
	copy(out, s.history)
	return out
}

// Reset clears the conversation history.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func (s *Service) record(e Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, e)
	if len(s.history) > s.historyLimit {
		s.history = s.history[len(s.history)-s.historyLimit:]
	}
}

// normalizeQuery collapses whitespace and case for cache keying.
func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

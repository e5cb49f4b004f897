package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/acadex-io/acadex/internal/domain"
	"github.com/acadex-io/acadex/internal/domain/document"
	domintent "github.com/acadex-io/acadex/internal/domain/intent"
	"github.com/acadex-io/acadex/internal/domain/search/request"
	healthuc "github.com/acadex-io/acadex/internal/usecase/health"
	"github.com/acadex-io/acadex/internal/usecase/pipeline"
	"github.com/acadex-io/acadex/internal/usecase/retrieval"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the advisory pipeline over HTTP.
type Server struct {
	pipeline      *pipeline.Service
	search        *retrieval.Service
	corpus        healthuc.CorpusCounter
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	pipe *pipeline.Service,
	search *retrieval.Service,
	corpus healthuc.CorpusCounter,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		pipeline: pipe,
		search:   search,
		corpus:   corpus,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyCorpus, http.StatusServiceUnavailable, codeEmptyCorpus),
	}
	return s
}

// Routes registers all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/query", s.Query)
	r.Get("/v1/search", s.Search)
	r.Post("/v1/documents", s.AddDocument)
	r.Get("/v1/intents", s.ListIntents)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Query handles POST /v1/query.
func (s *Server) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query is required")
		return
	}
	if len(req.Query) > request.MaxQueryLength {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			"query too long (max "+strconv.Itoa(request.MaxQueryLength)+" chars)")
		return
	}

	answer, err := s.pipeline.Process(r.Context(), req.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answerToResponse(answer))
}

// Search handles GET /v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	topK := request.DefaultTopK
	if raw := q.Get("top_k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "top_k must be an integer")
			return
		}
		topK = n
	}

	req, err := request.New(q.Get("q"), q.Get("category"), topK)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	var results []SearchResultItem
	if req.Category() != "" {
		rs, err := s.search.RetrieveByCategory(r.Context(), req.Query(), req.Category(), req.TopK())
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		results = searchResultsToItems(rs)
	} else {
		rs, err := s.search.Retrieve(r.Context(), req.Query(), req.TopK())
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		results = searchResultsToItems(rs)
	}

	writeJSON(w, http.StatusOK, SearchResponse{Items: results, Total: len(results)})
}

// AddDocument handles POST /v1/documents.
func (s *Server) AddDocument(w http.ResponseWriter, r *http.Request) {
	var req AddDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "text is required")
		return
	}

	attrs := document.Attributes{Category: req.Category, Extra: req.Attributes}
	if err := s.search.AddDocument(r.Context(), req.Text, attrs); err != nil {
		s.handleDomainError(w, err)
		return
	}

	n, err := s.corpus.Len(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AddDocumentResponse{Documents: n})
}

// ListIntents handles GET /v1/intents.
func (s *Server) ListIntents(w http.ResponseWriter, r *http.Request) {
	intents := domintent.All()
	items := make([]IntentItem, len(intents))
	for i, in := range intents {
		items[i] = IntentItem{Name: in.String(), Description: in.Description()}
	}
	writeJSON(w, http.StatusOK, IntentListResponse{Items: items})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyCorpus,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

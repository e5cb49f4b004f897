package httpapi

import (
	"github.com/acadex-io/acadex/internal/domain/policy"
	"github.com/acadex-io/acadex/internal/domain/search/result"
	"github.com/acadex-io/acadex/internal/usecase/extract"
	"github.com/acadex-io/acadex/internal/usecase/pipeline"
	"github.com/acadex-io/acadex/internal/usecase/verify"
)

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes returned in ErrorResponse.Code.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeEmptyCorpus      = "empty_corpus"
	codeInternalError    = "internal_error"
)

// QueryRequest is the body of POST /v1/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the full pipeline answer for one query.
type QueryResponse struct {
	Query        string             `json:"query"`
	Intent       string             `json:"intent"`
	Confidence   float64            `json:"confidence"`
	Documents    []SearchResultItem `json:"documents"`
	Facts        []FindingItem      `json:"facts"`
	Requirements []string           `json:"requirements,omitempty"`
	Verification VerificationItem   `json:"verification"`
	Response     string             `json:"response"`
	Followups    []string           `json:"followups,omitempty"`
	Polished     bool               `json:"polished"`
	Cached       bool               `json:"cached"`
}

// SearchResultItem is one ranked retrieval hit.
type SearchResultItem struct {
	Rank       int               `json:"rank"`
	Score      float64           `json:"score"`
	Distance   float64           `json:"distance"`
	Content    string            `json:"content"`
	Category   string            `json:"category,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// SearchResponse is the body of GET /v1/search.
type SearchResponse struct {
	Items []SearchResultItem `json:"items"`
	Total int                `json:"total"`
}

// FindingItem is the extracted facts of one source document.
type FindingItem struct {
	Category     string   `json:"category,omitempty"`
	Source       string   `json:"source"`
	GPA          *float64 `json:"gpa,omitempty"`
	SATScore     *int     `json:"sat_score,omitempty"`
	ACTScore     *int     `json:"act_score,omitempty"`
	Deadline     string   `json:"deadline,omitempty"`
	CreditHours  *int     `json:"credit_hours,omitempty"`
	MinimumGrade string   `json:"minimum_grade,omitempty"`
}

// VerificationItem is the sanity-check report for extracted facts.
type VerificationItem struct {
	Verified     bool     `json:"verified"`
	Issues       []string `json:"issues,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
	QualityScore float64  `json:"quality_score"`
}

// AddDocumentRequest is the body of POST /v1/documents.
type AddDocumentRequest struct {
	Text       string            `json:"text"`
	Category   string            `json:"category,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// AddDocumentResponse reports the corpus size after an append.
type AddDocumentResponse struct {
	Documents int `json:"documents"`
}

// IntentItem describes one supported intent.
type IntentItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IntentListResponse is the body of GET /v1/intents.
type IntentListResponse struct {
	Items []IntentItem `json:"items"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func searchResultToItem(r *result.Result) SearchResultItem {
	attrs := r.Attributes()
	return SearchResultItem{
		Rank:       r.Rank(),
		Score:      r.Score(),
		Distance:   r.Distance(),
		Content:    r.Content(),
		Category:   attrs.Category,
		Attributes: attrs.Extra,
	}
}

func searchResultsToItems(rs []result.Result) []SearchResultItem {
	items := make([]SearchResultItem, len(rs))
	for i := range rs {
		items[i] = searchResultToItem(&rs[i])
	}
	return items
}

func findingToItem(f policy.Finding) FindingItem {
	return FindingItem{
		Category:     f.Category,
		Source:       f.Source,
		GPA:          f.Facts.GPA,
		SATScore:     f.Facts.SATScore,
		ACTScore:     f.Facts.ACTScore,
		Deadline:     f.Facts.Deadline,
		CreditHours:  f.Facts.CreditHours,
		MinimumGrade: f.Facts.MinimumGrade,
	}
}

func interpretationToItems(in extract.Interpretation) []FindingItem {
	items := make([]FindingItem, len(in.Findings))
	for i, f := range in.Findings {
		items[i] = findingToItem(f)
	}
	return items
}

func verificationToItem(r verify.Report) VerificationItem {
	return VerificationItem{
		Verified:     r.Verified,
		Issues:       r.Issues,
		Warnings:     r.Warnings,
		QualityScore: r.QualityScore,
	}
}

func answerToResponse(a pipeline.Answer) QueryResponse {
	return QueryResponse{
		Query:        a.Query,
		Intent:       a.Intent.String(),
		Confidence:   a.Confidence,
		Documents:    searchResultsToItems(a.Documents),
		Facts:        interpretationToItems(a.Interpretation),
		Requirements: a.Interpretation.Requirements,
		Verification: verificationToItem(a.Verification),
		Response:     a.Response,
		Followups:    a.Followups,
		Polished:     a.Polished,
		Cached:       a.Cached,
	}
}

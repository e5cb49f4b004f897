package request

import "fmt"

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed query length.
	MaxQueryLength = 4096
	// DefaultTopK is the caller-facing default result count.
	DefaultTopK = 3
)

// Request is a normalized retrieval query. Query may be empty (it simply
// scores 0 against everything); a negative top-k collapses to zero, which
// yields an empty result sequence.
type Request struct {
	query    string
	category string
	topK     int
}

// New validates and normalizes retrieval parameters. category is optional;
// when empty the request is an unrestricted top-k search.
func New(query, category string, topK int) (Request, error) {
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if topK < 0 {
		topK = 0
	}
	return Request{query: query, category: category, topK: topK}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Category returns the category filter, empty for unrestricted search.
func (r *Request) Category() string { return r.category }

// TopK returns the number of results requested.
func (r *Request) TopK() int { return r.topK }

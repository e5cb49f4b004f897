package pipeline

import (
	"context"

	"github.com/acadex-io/acadex/internal/domain/search/result"
	"github.com/acadex-io/acadex/internal/usecase/extract"
	"github.com/acadex-io/acadex/internal/usecase/intent"
	"github.com/acadex-io/acadex/internal/usecase/respond"
	"github.com/acadex-io/acadex/internal/usecase/verify"
)

// Classifier predicts the query intent.
type Classifier interface {
	Classify(ctx context.Context, query string) intent.Classification
}

// Retriever returns category-scoped ranked documents for the query.
type Retriever interface {
	RetrieveByCategory(ctx context.Context, query, category string, topK int) ([]result.Result, error)
}

// Extractor pulls structured policy facts out of retrieved documents.
type Extractor interface {
	Interpret(ctx context.Context, docs []result.Result) extract.Interpretation
}

// Verifier sanity-checks an interpretation.
type Verifier interface {
	Verify(ctx context.Context, in extract.Interpretation) verify.Report
}

// Responder renders the student-facing answer.
type Responder interface {
	Respond(ctx context.Context, in respond.Input) (respond.Answer, error)
}

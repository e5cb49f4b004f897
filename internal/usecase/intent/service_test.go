package intent

import (
	"context"
	"testing"

	domintent "github.com/acadex-io/acadex/internal/domain/intent"
)

func TestClassify(t *testing.T) {
	svc := New()
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  domintent.Intent
	}{
		{
			name:  "admission query",
			query: "What is the eligibility for BS Electrical Engineering?",
			want:  domintent.Admission,
		},
		{
			name:  "exam query",
			query: "When is the final exam scheduled?",
			want:  domintent.Exam,
		},
		{
			name:  "scholarship query",
			query: "Am I eligible for scholarships?",
			want:  domintent.Scholarship,
		},
		{
			name:  "academic policy query",
			query: "What is the minimum GPA to maintain good academic standing?",
			want:  domintent.AcademicPolicy,
		},
		{
			name:  "no keywords falls back to academic policy",
			query: "hello there",
			want:  domintent.AcademicPolicy,
		},
		{
			name:  "empty query falls back",
			query: "",
			want:  domintent.AcademicPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Classify(ctx, tt.query)
			if got.Intent != tt.want {
				t.Errorf("Classify(%q).Intent = %s, want %s", tt.query, got.Intent, tt.want)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Errorf("confidence %f out of [0,1]", got.Confidence)
			}
		})
	}
}

func TestClassify_FallbackConfidence(t *testing.T) {
	svc := New()
	got := svc.Classify(context.Background(), "unrelated words entirely")
	if got.Confidence != fallbackConfidence {
		t.Errorf("fallback confidence = %f, want %f", got.Confidence, fallbackConfidence)
	}
}

func TestClassify_ConfidenceCapped(t *testing.T) {
	svc := New()
	// Single-word query with a keyword hit: raw confidence 1/(0.5) = 2.
	got := svc.Classify(context.Background(), "scholarship")
	if got.Intent != domintent.Scholarship {
		t.Fatalf("intent = %s, want scholarship", got.Intent)
	}
	if got.Confidence != 1.0 {
		t.Errorf("confidence = %f, want capped 1.0", got.Confidence)
	}
}

func TestClassifyBatch(t *testing.T) {
	svc := New()
	queries := []string{
		"What financial aid options are available?",
		"Can I retake the midterm?",
	}
	got := svc.ClassifyBatch(context.Background(), queries)
	if len(got) != 2 {
		t.Fatalf("expected 2 classifications, got %d", len(got))
	}
	if got[0].Intent != domintent.Scholarship {
		t.Errorf("first intent = %s, want scholarship", got[0].Intent)
	}
	if got[1].Intent != domintent.Exam {
		t.Errorf("second intent = %s, want exam", got[1].Intent)
	}
}

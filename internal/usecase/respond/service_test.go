package respond

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/acadex-io/acadex/internal/domain/document"
	domintent "github.com/acadex-io/acadex/internal/domain/intent"
	"github.com/acadex-io/acadex/internal/domain/policy"
	"github.com/acadex-io/acadex/internal/domain/search/result"
	"github.com/acadex-io/acadex/internal/usecase/extract"
)

type stubPolisher struct {
	out string
	err error
}

func (p *stubPolisher) Polish(_ context.Context, _ string, _ []string) (string, error) {
	return p.out, p.err
}

func admissionInput() Input {
	return Input{
		Intent: domintent.Admission,
		Interpretation: extract.Interpretation{
			Findings: []policy.Finding{
				{
					Category: "admission",
					Facts: policy.Facts{
						GPA:      policy.FloatPtr(3.2),
						SATScore: policy.IntPtr(1400),
						Deadline: "March 31",
					},
				},
			},
		},
	}
}

func TestRespond_Admission(t *testing.T) {
	svc := New(nil)
	answer, err := svc.Respond(context.Background(), admissionInput())
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}

	for _, want := range []string{
		"ADMISSION REQUIREMENTS",
		"Minimum GPA: 3.2",
		"SAT Score: 1400 or higher",
		"Application Deadline: March 31",
		"Next steps:",
	} {
		if !strings.Contains(answer.Text, want) {
			t.Errorf("answer missing %q:\n%s", want, answer.Text)
		}
	}
	if len(answer.Followups) != 3 {
		t.Errorf("expected 3 followups, got %d", len(answer.Followups))
	}
	if answer.Polished {
		t.Error("answer should not be marked polished without a polisher")
	}
}

func TestRespond_AdmissionFallbackBullet(t *testing.T) {
	svc := New(nil)
	answer, err := svc.Respond(context.Background(), Input{Intent: domintent.Admission})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(answer.Text, "Submit your application and supporting documents") {
		t.Errorf("expected fallback bullet:\n%s", answer.Text)
	}
}

func TestRespond_ExamNotesFollowRetrievedText(t *testing.T) {
	svc := New(nil)
	in := Input{
		Intent: domintent.Exam,
		Documents: []result.Result{
			result.New(1, 0.4,
				"Exam retake policy: Students can retake courses for grade improvement",
				document.Attributes{Category: "exam"}),
		},
	}
	answer, err := svc.Respond(context.Background(), in)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(answer.Text, "retake courses for grade improvement") {
		t.Errorf("expected retake note:\n%s", answer.Text)
	}
	if strings.Contains(answer.Text, "academic calendar") {
		t.Errorf("schedule note should not appear without schedule text:\n%s", answer.Text)
	}
}

func TestRespond_ScholarshipAndPolicy(t *testing.T) {
	svc := New(nil)

	t.Run("scholarship", func(t *testing.T) {
		answer, err := svc.Respond(context.Background(), Input{Intent: domintent.Scholarship})
		if err != nil {
			t.Fatalf("Respond: %v", err)
		}
		if !strings.Contains(answer.Text, "SCHOLARSHIP INFORMATION") ||
			!strings.Contains(answer.Text, "FAFSA") {
			t.Errorf("unexpected scholarship answer:\n%s", answer.Text)
		}
	})

	t.Run("academic policy", func(t *testing.T) {
		in := Input{
			Intent: domintent.AcademicPolicy,
			Interpretation: extract.Interpretation{
				Findings: []policy.Finding{
					{Category: "academic_policy", Facts: policy.Facts{GPA: policy.FloatPtr(2.0)}},
				},
			},
		}
		answer, err := svc.Respond(context.Background(), in)
		if err != nil {
			t.Fatalf("Respond: %v", err)
		}
		if !strings.Contains(answer.Text, "Minimum GPA to maintain good standing: 2") {
			t.Errorf("expected standing bullet:\n%s", answer.Text)
		}
	})
}

func TestRespond_UnknownIntentUsesGeneric(t *testing.T) {
	svc := New(nil)
	answer, err := svc.Respond(context.Background(), Input{Intent: domintent.Intent("housing")})
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(answer.Text, "No information available for your query") {
		t.Errorf("expected generic empty answer:\n%s", answer.Text)
	}
	if len(answer.Followups) != 0 {
		t.Errorf("unknown intent should have no followups, got %v", answer.Followups)
	}
}

func TestRespond_PolisherApplied(t *testing.T) {
	svc := New(&stubPolisher{out: "polished answer"})
	answer, err := svc.Respond(context.Background(), admissionInput())
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if answer.Text != "polished answer" || !answer.Polished {
		t.Errorf("polish not applied: %+v", answer)
	}
}

func TestRespond_PolisherFailureFallsBack(t *testing.T) {
	svc := New(&stubPolisher{err: errors.New("provider down")})
	answer, err := svc.Respond(context.Background(), admissionInput())
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if answer.Polished {
		t.Error("failed polish must not mark answer polished")
	}
	if !strings.Contains(answer.Text, "ADMISSION REQUIREMENTS") {
		t.Errorf("expected templated fallback:\n%s", answer.Text)
	}
}

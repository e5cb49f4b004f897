package verify

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/acadex-io/acadex/internal/domain/policy"
	"github.com/acadex-io/acadex/internal/usecase/extract"
)

func TestVerify_ValidFacts(t *testing.T) {
	svc := New()
	in := extract.Interpretation{
		Findings: []policy.Finding{
			{
				Category: "admission",
				Facts: policy.Facts{
					GPA:      policy.FloatPtr(3.2),
					SATScore: policy.IntPtr(1400),
					ACTScore: policy.IntPtr(32),
					Deadline: "March 31",
				},
			},
		},
	}

	report := svc.Verify(context.Background(), in)
	if !report.Verified {
		t.Errorf("expected verified, got issues: %v", report.Issues)
	}
	if len(report.Issues) != 0 || len(report.Warnings) != 0 {
		t.Errorf("unexpected issues %v / warnings %v", report.Issues, report.Warnings)
	}
	if report.QualityScore != 1.0 {
		t.Errorf("quality = %f, want 1.0", report.QualityScore)
	}
}

func TestVerify_InvalidGPA(t *testing.T) {
	svc := New()
	in := extract.Interpretation{
		Findings: []policy.Finding{
			{Category: "exam", Facts: policy.Facts{GPA: policy.FloatPtr(5.0)}},
		},
	}

	report := svc.Verify(context.Background(), in)
	if report.Verified {
		t.Error("expected verification failure for GPA 5.0")
	}
	if len(report.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", report.Issues)
	}
	if !strings.Contains(report.Issues[0], "5") {
		t.Errorf("issue %q should name the value", report.Issues[0])
	}
}

func TestVerify_UnusualScoresWarn(t *testing.T) {
	svc := New()
	tests := []struct {
		name  string
		facts policy.Facts
	}{
		{"SAT too high", policy.Facts{SATScore: policy.IntPtr(2000)}},
		{"SAT too low", policy.Facts{SATScore: policy.IntPtr(200)}},
		{"ACT too high", policy.Facts{ACTScore: policy.IntPtr(40)}},
		{"credits too high", policy.Facts{CreditHours: policy.IntPtr(500)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := extract.Interpretation{
				Findings: []policy.Finding{{Category: "exam", Facts: tt.facts}},
			}
			report := svc.Verify(context.Background(), in)
			if !report.Verified {
				t.Error("warnings must not fail verification")
			}
			if len(report.Warnings) != 1 {
				t.Errorf("expected 1 warning, got %v", report.Warnings)
			}
		})
	}
}

func TestVerify_QualityDeduction(t *testing.T) {
	svc := New()
	// One issue (bad GPA) + one warning (bad SAT): 1 - 0.1 - 0.05 = 0.85.
	in := extract.Interpretation{
		Findings: []policy.Finding{
			{
				Category: "exam",
				Facts: policy.Facts{
					GPA:      policy.FloatPtr(-1.0),
					SATScore: policy.IntPtr(1700),
				},
			},
		},
	}
	report := svc.Verify(context.Background(), in)
	if math.Abs(report.QualityScore-0.85) > 1e-9 {
		t.Errorf("quality = %f, want 0.85", report.QualityScore)
	}
}

func TestVerify_QualityFloor(t *testing.T) {
	svc := New()
	findings := make([]policy.Finding, 0, 12)
	for i := 0; i < 12; i++ {
		findings = append(findings, policy.Finding{
			Category: "exam",
			Facts:    policy.Facts{GPA: policy.FloatPtr(9.9)},
		})
	}
	report := svc.Verify(context.Background(), extract.Interpretation{Findings: findings})
	if report.QualityScore != 0 {
		t.Errorf("quality = %f, want floored 0", report.QualityScore)
	}
}

func TestVerify_ThinAdmissionDataWarns(t *testing.T) {
	svc := New()
	in := extract.Interpretation{
		Findings: []policy.Finding{
			{Category: "admission", Facts: policy.Facts{GPA: policy.FloatPtr(3.0)}},
		},
	}
	report := svc.Verify(context.Background(), in)
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "missing key details") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected completeness warning, got %v", report.Warnings)
	}
}

func TestFormatReport(t *testing.T) {
	clean := FormatReport(Report{Verified: true, QualityScore: 1.0})
	if !strings.Contains(clean, "No issues detected") {
		t.Errorf("clean report missing all-clear line: %q", clean)
	}

	dirty := FormatReport(Report{
		Verified:     false,
		Issues:       []string{"Invalid GPA value: 5"},
		QualityScore: 0.9,
	})
	if !strings.Contains(dirty, "Issues Found") || !strings.Contains(dirty, "Invalid GPA") {
		t.Errorf("dirty report missing issue detail: %q", dirty)
	}
}

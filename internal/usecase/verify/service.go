package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/acadex-io/acadex/internal/usecase/extract"
)

// Known valid ranges for extracted numeric fields.
const (
	gpaMin, gpaMax       = 0.0, 4.0
	satMin, satMax       = 400, 1600
	actMin, actMax       = 1, 36
	creditMin, creditMax = 1, 200
)

// Penalty weights for the quality score.
const (
	issuePenalty   = 0.1
	warningPenalty = 0.05
)

// Report is the outcome of sanity-checking an interpretation. Issues are
// hard failures (out-of-range values that cannot be real); warnings flag
// unusual or thin data without failing verification.
type Report struct {
	Verified     bool
	Issues       []string
	Warnings     []string
	QualityScore float64
}

// Service sanity-checks extracted policy facts against known ranges.
type Service struct{}

// New creates a verification service.
func New() *Service {
	return &Service{}
}

// Verify checks every finding's facts. QualityScore starts at 1.0 and
// loses 0.1 per issue and 0.05 per warning, floored at 0.
func (s *Service) Verify(_ context.Context, in extract.Interpretation) Report {
	report := Report{Verified: true}

	for _, f := range in.Findings {
		facts := f.Facts
		if facts.GPA != nil && (*facts.GPA < gpaMin || *facts.GPA > gpaMax) {
			report.Issues = append(report.Issues, fmt.Sprintf("Invalid GPA value: %g", *facts.GPA))
			report.Verified = false
		}
		if facts.SATScore != nil && (*facts.SATScore < satMin || *facts.SATScore > satMax) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("SAT score %d is unusual", *facts.SATScore))
		}
		if facts.ACTScore != nil && (*facts.ACTScore < actMin || *facts.ACTScore > actMax) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("ACT score %d is unusual", *facts.ACTScore))
		}
		if facts.CreditHours != nil && (*facts.CreditHours < creditMin || *facts.CreditHours > creditMax) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Credit hours %d is unusual", *facts.CreditHours))
		}
	}

	s.checkCompleteness(in, &report)

	deduction := float64(len(report.Issues))*issuePenalty + float64(len(report.Warnings))*warningPenalty
	report.QualityScore = 1.0 - deduction
	if report.QualityScore < 0 {
		report.QualityScore = 0
	}
	return report
}

// checkCompleteness warns when admission findings lack key details:
// at least two of GPA, a test score, and a deadline are expected.
func (s *Service) checkCompleteness(in extract.Interpretation, report *Report) {
	for _, f := range in.Findings {
		if f.Category != "admission" {
			continue
		}
		present := 0
		if f.Facts.GPA != nil {
			present++
		}
		if f.Facts.SATScore != nil || f.Facts.ACTScore != nil {
			present++
		}
		if f.Facts.Deadline != "" {
			present++
		}
		if present < 2 {
			report.Warnings = append(report.Warnings, "Admission information may be missing key details")
		}
	}
}

// FormatReport renders a human-readable verification summary.
func FormatReport(r Report) string {
	var b strings.Builder
	b.WriteString("[VERIFICATION REPORT]\n")
	if r.Verified {
		b.WriteString("Status: Verified\n")
	} else {
		b.WriteString("Status: Issues Found\n")
	}
	fmt.Fprintf(&b, "Data Quality Score: %.0f%%\n", r.QualityScore*100)

	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "Issue: %s\n", issue)
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", warning)
	}
	if len(r.Issues) == 0 && len(r.Warnings) == 0 {
		b.WriteString("No issues detected. All information verified.\n")
	}
	return b.String()
}

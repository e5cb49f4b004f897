package extract

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/acadex-io/acadex/internal/domain/policy"
	"github.com/acadex-io/acadex/internal/domain/search/result"
)

// sourceExcerptLen bounds the source quote carried with each finding.
const sourceExcerptLen = 80

var (
	gpaPattern      = regexp.MustCompile(`(?i)(?:minimum|min|GPA).*?(\d+\.\d+)`)
	satPattern      = regexp.MustCompile(`(?i)SAT\s+(?:score)?.*?(\d{3,4})`)
	actPattern      = regexp.MustCompile(`(?i)ACT\s+(?:score)?.*?(\d{2,3})`)
	deadlinePattern = regexp.MustCompile(`(?:deadline|due|by|before).*?([A-Za-z]+\s+\d+)`)
	creditPattern   = regexp.MustCompile(`(?i)(\d+)\s+(?:credit|hour)`)
	gradePattern    = regexp.MustCompile(`(?:grade|Grade)\s+([A-F])`)
)

// requirementKeywords mark a comma-separated clause as a requirement.
var requirementKeywords = []string{"require", "must", "need"}

// Interpretation is the structured output of extraction over a document
// set: per-document findings plus the flat requirement clauses.
type Interpretation struct {
	Findings     []policy.Finding
	Requirements []string
}

// Service pulls structured policy fields out of retrieved document text
// with regular expressions. Documents with no extractable fields produce
// no finding.
type Service struct{}

// New creates an extraction service.
func New() *Service {
	return &Service{}
}

// Interpret extracts policy facts and requirement clauses from the
// given retrieval results.
func (s *Service) Interpret(_ context.Context, docs []result.Result) Interpretation {
	var out Interpretation
	for _, doc := range docs {
		facts := extractFacts(doc.Content())
		if !facts.IsEmpty() {
			out.Findings = append(out.Findings, policy.Finding{
				Category: doc.Category(),
				Source:   excerpt(doc.Content()),
				Facts:    facts,
			})
		}
		out.Requirements = append(out.Requirements, extractRequirements(doc.Content())...)
	}
	return out
}

func extractFacts(text string) policy.Facts {
	var facts policy.Facts

	if m := gpaPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			facts.GPA = policy.FloatPtr(v)
		}
	}
	if m := satPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			facts.SATScore = policy.IntPtr(v)
		}
	}
	if m := actPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			facts.ACTScore = policy.IntPtr(v)
		}
	}
	if m := deadlinePattern.FindStringSubmatch(text); m != nil {
		facts.Deadline = m[1]
	}
	if m := creditPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			facts.CreditHours = policy.IntPtr(v)
		}
	}
	if m := gradePattern.FindStringSubmatch(text); m != nil {
		facts.MinimumGrade = m[1]
	}
	return facts
}

// extractRequirements harvests comma-separated clauses mentioning a
// requirement keyword. Clauses of 10 chars or less are noise and dropped.
func extractRequirements(text string) []string {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "require") && !strings.Contains(lower, "must") {
		return nil
	}

	var reqs []string
	for _, clause := range strings.Split(text, ",") {
		clauseLower := strings.ToLower(clause)
		for _, kw := range requirementKeywords {
			if strings.Contains(clauseLower, kw) {
				if trimmed := strings.TrimSpace(clause); len(trimmed) > 10 {
					reqs = append(reqs, trimmed)
				}
				break
			}
		}
	}
	return reqs
}

func excerpt(text string) string {
	if len(text) <= sourceExcerptLen {
		return text
	}
	return text[:sourceExcerptLen] + "..."
}

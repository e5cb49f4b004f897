package respond

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domintent "github.com/acadex-io/acadex/internal/domain/intent"
	"github.com/acadex-io/acadex/internal/domain/search/result"
	"github.com/acadex-io/acadex/internal/logger"
	"github.com/acadex-io/acadex/internal/usecase/extract"
)

// Polisher rewrites a rendered answer for tone without adding facts.
// Implementations must treat sources as the only allowed ground truth.
type Polisher interface {
	Polish(ctx context.Context, answer string, sources []string) (string, error)
}

// Input carries everything the renderer needs for one answer.
type Input struct {
	Intent         domintent.Intent
	Interpretation extract.Interpretation
	Documents      []result.Result
}

// Answer is the rendered student-facing response.
type Answer struct {
	Text      string
	Followups []string
	Polished  bool
}

// Service renders per-intent templated answers from extracted facts.
// A configured Polisher is best-effort: any failure falls back to the
// templated text.
type Service struct {
	polisher Polisher
}

// New creates a responder. polisher may be nil (polishing disabled).
func New(polisher Polisher) *Service {
	return &Service{polisher: polisher}
}

// Respond renders the answer for in and attaches follow-up suggestions.
func (s *Service) Respond(ctx context.Context, in Input) (Answer, error) {
	name := templateName(in.Intent)
	data := buildTemplateData(in)

	var b strings.Builder
	if err := responseTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return Answer{}, fmt.Errorf("render %s response: %w", name, err)
	}

	answer := Answer{
		Text:      b.String(),
		Followups: followupSuggestions[in.Intent.String()],
	}

	if s.polisher != nil {
		sources := make([]string, 0, len(in.Documents))
		for _, d := range in.Documents {
			sources = append(sources, d.Content())
		}
		polished, err := s.polisher.Polish(ctx, answer.Text, sources)
		if err != nil {
			logger.FromContext(ctx).Warn("answer polish failed, using templated text", zap.Error(err))
		} else if polished != "" {
			answer.Text = polished
			answer.Polished = true
		}
	}

	return answer, nil
}

func templateName(i domintent.Intent) string {
	if i.IsValid() {
		return i.String()
	}
	return "generic"
}

func buildTemplateData(in Input) templateData {
	var data templateData

	for _, f := range in.Interpretation.Findings {
		facts := f.Facts
		switch in.Intent {
		case domintent.Admission:
			if facts.GPA != nil {
				data.Bullets = append(data.Bullets, fmt.Sprintf("Minimum GPA: %g", *facts.GPA))
			}
			if facts.SATScore != nil {
				data.Bullets = append(data.Bullets, fmt.Sprintf("SAT Score: %d or higher", *facts.SATScore))
			}
			if facts.ACTScore != nil {
				data.Bullets = append(data.Bullets, fmt.Sprintf("ACT Score: %d or higher", *facts.ACTScore))
			}
			if facts.Deadline != "" {
				data.Bullets = append(data.Bullets, "Application Deadline: "+facts.Deadline)
			}
		case domintent.Scholarship:
			if facts.GPA != nil {
				data.Bullets = append(data.Bullets, fmt.Sprintf("Minimum GPA: %g", *facts.GPA))
			}
		case domintent.AcademicPolicy:
			if facts.GPA != nil {
				data.Bullets = append(data.Bullets,
					fmt.Sprintf("Minimum GPA to maintain good standing: %g", *facts.GPA))
			}
			if facts.CreditHours != nil {
				data.Bullets = append(data.Bullets,
					fmt.Sprintf("Total credit hours required: %d", *facts.CreditHours))
			}
		}
	}

	switch in.Intent {
	case domintent.Admission:
		if len(data.Bullets) == 0 {
			data.Bullets = []string{"Submit your application and supporting documents"}
		}
	case domintent.Exam:
		data.Notes = examNotes(in.Documents)
	case domintent.AcademicPolicy:
		data.Bullets = append(data.Bullets,
			"Maximum 18 credit hours per semester",
			"Minimum 2.0 GPA requirement",
		)
	default:
		if !in.Intent.IsValid() {
			data.Bullets = genericBullets(in)
		}
	}

	return data
}

// examNotes derives hint lines from what the retrieved text mentions.
func examNotes(docs []result.Result) []string {
	var all strings.Builder
	for _, d := range docs {
		all.WriteString(strings.ToLower(d.Content()))
		all.WriteByte(' ')
	}
	text := all.String()

	var notes []string
	if strings.Contains(text, "schedule") {
		notes = append(notes, "Check the academic calendar for exam dates")
	}
	if strings.Contains(text, "grading") {
		notes = append(notes, "Final grades are calculated based on course policies")
	}
	if strings.Contains(text, "retake") {
		notes = append(notes, "You may retake courses for grade improvement")
	}
	if len(notes) == 0 {
		notes = append(notes, "No exam details matched your question")
	}
	return notes
}

func genericBullets(in Input) []string {
	if len(in.Interpretation.Requirements) > 0 {
		return in.Interpretation.Requirements
	}
	if len(in.Documents) == 0 {
		return []string{"No information available for your query"}
	}
	bullets := make([]string, 0, len(in.Documents))
	for _, d := range in.Documents {
		bullets = append(bullets, d.Content())
	}
	return bullets
}

package intent

import domintent "github.com/acadex-io/acadex/internal/domain/intent"

// intentKeywords maps each intent to the phrases whose presence in a
// query counts toward that intent. Multi-word phrases match as
// substrings, so "bs " (trailing space) catches program prefixes
// without matching words like "absence".
var intentKeywords = map[domintent.Intent][]string{
	domintent.Admission: {
		"admission", "eligible", "eligibility", "application", "requirements",
		"enroll", "enrollment", "accepted", "acceptance", "degree program",
		"apply", "entrance exam", "gpa requirement", "sat", "act", "apply for",
		"program", "bs ", "ba ", "major", "undergraduate", "graduate",
	},
	domintent.Exam: {
		"exam", "test", "quiz", "assessment", "midterm", "final", "grade",
		"score", "result", "schedule", "retake", "exam policy", "grading",
		"when is", "exam date", "test score", "marks", "gpa calculation",
	},
	domintent.Scholarship: {
		"scholarship", "financial aid", "grant", "funding", "tuition waiver",
		"financial assistance", "sponsor", "sponsorship", "award",
		"merit scholarship", "need-based", "stipend", "loan", "fafsa",
		"eligible for", "qualify", "financial",
	},
	domintent.AcademicPolicy: {
		"policy", "academic policy", "requirement", "gpa", "standing",
		"regulation", "rule", "course registration", "credit hour",
		"academic standing", "probation", "dismissal", "prerequisite",
		"minimum gpa", "maintain", "register", "credit", "hours",
	},
}

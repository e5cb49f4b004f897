package intent

// Intent is a query intent category. The four categories mirror the
// corpus document categories, so a classified intent doubles as a
// retrieval category filter.
type Intent string

const (
	// Admission covers eligibility and application questions.
	Admission Intent = "admission"
	// Exam covers exams, grading, and assessment questions.
	Exam Intent = "exam"
	// Scholarship covers scholarships and financial aid questions.
	Scholarship Intent = "scholarship"
	// AcademicPolicy covers academic rules and requirements. It is also
	// the fallback when no keywords match.
	AcademicPolicy Intent = "academic_policy"
)

// All returns the supported intents in classification order.
func All() []Intent {
	return []Intent{Admission, Exam, Scholarship, AcademicPolicy}
}

// IsValid reports whether i is a recognized intent.
func (i Intent) IsValid() bool {
	switch i {
	case Admission, Exam, Scholarship, AcademicPolicy:
		return true
	}
	return false
}

// String returns the intent label.
func (i Intent) String() string { return string(i) }

// Description returns a human-readable description of the intent.
func (i Intent) Description() string {
	switch i {
	case Admission:
		return "Questions about university admission eligibility and requirements"
	case Exam:
		return "Questions about exams, grades, and assessment-related topics"
	case Scholarship:
		return "Questions about scholarships and financial aid"
	case AcademicPolicy:
		return "Questions about academic policies, regulations, and requirements"
	}
	return "Unknown intent"
}

package policy

// Facts holds the structured fields extracted from one document's text.
// Nil pointer / empty string means the field was absent.
type Facts struct {
	GPA          *float64
	SATScore     *int
	ACTScore     *int
	Deadline     string
	CreditHours  *int
	MinimumGrade string
}

// IsEmpty reports whether no field was extracted.
func (f Facts) IsEmpty() bool {
	return f.GPA == nil && f.SATScore == nil && f.ACTScore == nil &&
		f.Deadline == "" && f.CreditHours == nil && f.MinimumGrade == ""
}

// Finding pairs extracted facts with their source document.
type Finding struct {
	Category string
	Source   string // leading excerpt of the source document text
	Facts    Facts
}

// FloatPtr returns a pointer to v. Helper for building Facts literals.
func FloatPtr(v float64) *float64 { return &v }

// IntPtr returns a pointer to v. Helper for building Facts literals.
func IntPtr(v int) *int { return &v }

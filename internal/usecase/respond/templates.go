package respond

import "text/template"

// templateData feeds the per-intent response templates. Bullets are
// pre-built from extracted facts; Notes carry intent-specific hints
// derived from the retrieved text.
type templateData struct {
	Bullets []string
	Notes   []string
}

var responseTemplates = template.Must(template.New("responses").Parse(`
{{- define "admission" -}}
ADMISSION REQUIREMENTS
----------------------------------------
{{range .Bullets}}- {{.}}
{{end -}}
Next steps:
1. Verify your eligibility
2. Prepare your documents
3. Submit your application before the deadline
4. Monitor application status
{{- end}}

{{- define "exam" -}}
EXAM INFORMATION
----------------------------------------
{{range .Notes}}- {{.}}
{{end -}}
Important:
- Visit your course page for specific exam times
- Contact your instructor for exam details
- Review exam policies on the registrar website
{{- end}}

{{- define "scholarship" -}}
SCHOLARSHIP INFORMATION
----------------------------------------
Eligibility:
{{range .Bullets}}- {{.}}
{{end -}}
- Full-time enrollment status
- Good academic standing

Available scholarships:
- Merit-based scholarships
- Need-based financial aid
- Department-specific scholarships

Application process:
1. Complete the FAFSA form
2. Explore available scholarships
3. Submit scholarship applications
4. Await award notification
{{- end}}

{{- define "academic_policy" -}}
ACADEMIC POLICY INFORMATION
----------------------------------------
Key requirements:
{{range .Bullets}}- {{.}}
{{end -}}
Contact the registrar for the full policy text.
{{- end}}

{{- define "generic" -}}
INFORMATION
----------------------------------------
{{range .Bullets}}- {{.}}
{{end -}}
{{range .Notes}}- {{.}}
{{end -}}
{{- end}}
`))

// followupSuggestions maps an intent label to suggested next questions.
var followupSuggestions = map[string][]string{
	"admission": {
		"What documents do I need to submit?",
		"When should I take the entrance exam?",
		"What is the application fee?",
	},
	"exam": {
		"How is my final grade calculated?",
		"Can I retake the exam?",
		"When will results be posted?",
	},
	"scholarship": {
		"How much funding can I receive?",
		"When is the scholarship application deadline?",
		"What is the renewal criteria?",
	},
	"academic_policy": {
		"What happens if my GPA drops?",
		"How many credits can I take?",
		"What is the withdrawal deadline?",
	},
}

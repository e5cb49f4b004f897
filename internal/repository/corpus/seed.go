package corpus

import "github.com/acadex-io/acadex/internal/domain/document"

// SeedDocuments returns the built-in education corpus: 14 documents
// across the four categories. Used when no corpus file is configured;
// config/corpus.yaml carries the same set as an editable asset.
func SeedDocuments() []document.Document {
	seed := []struct {
		text     string
		category string
		extra    map[string]string
	}{
		{
			text:     "BS Electrical Engineering admission requirements: Minimum GPA 3.2, SAT score 1400+, ACT score 32+, completion of physics and chemistry courses, application deadline March 31",
			category: "admission",
			extra:    map[string]string{"program": "BS Electrical Engineering"},
		},
		{
			text:     "BS Computer Science eligibility criteria: Minimum GPA 3.0, strong mathematical foundation, SAT 1350+, ACT 31+, admission test required, rolling admission until seats fill",
			category: "admission",
			extra:    map[string]string{"program": "BS Computer Science"},
		},
		{
			text:     "General admission process: Online application, transcripts, test scores, essay, 2 recommendation letters, application fee $50, decision within 6 weeks",
			category: "admission",
			extra:    map[string]string{"program": "General"},
		},
		{
			text:     "Final exam schedule: Fall semester finals held December 10-20, Spring semester finals held May 5-15, summer exams June 20-July 5, exam schedule posted 2 weeks before",
			category: "exam",
			extra:    map[string]string{"topic": "Exam Schedule"},
		},
		{
			text:     "Grading policy: A (90-100), B (80-89), C (70-79), D (60-69), F (below 60), GPA calculation uses 4.0 scale, plus/minus grading for A/B/C grades, grade appeals within 30 days",
			category: "exam",
			extra:    map[string]string{"topic": "Grading Policy"},
		},
		{
			text:     "Exam retake policy: Students can retake courses for grade improvement, only latest grade counts toward GPA, 2 retakes per course maximum, must wait 1 semester between retakes",
			category: "exam",
			extra:    map[string]string{"topic": "Retake Policy"},
		},
		{
			text:     "Merit scholarships: Full tuition coverage for students with 3.8+ GPA and 1500+ SAT score, half tuition for 3.5+ GPA and 1400+ SAT, automatically awarded to eligible applicants",
			category: "scholarship",
			extra:    map[string]string{"scholarship_type": "Merit-Based"},
		},
		{
			text:     "Need-based financial aid: Available for students with FAFSA EFC below 50000, grants up to $10000/year, low-interest loans 3.5% APR, work-study jobs $15/hour",
			category: "scholarship",
			extra:    map[string]string{"scholarship_type": "Need-Based"},
		},
		{
			text:     "Department scholarships: Engineering scholarship $5000/year for top students, business school scholarship $7500/year, science scholarship $6000/year, separate application required",
			category: "scholarship",
			extra:    map[string]string{"scholarship_type": "Department-Specific"},
		},
		{
			text:     "Academic standing: Maintain minimum 2.0 GPA to remain in good standing, below 2.0 GPA results in academic probation, dismissal after 2 consecutive semesters on probation",
			category: "academic_policy",
			extra:    map[string]string{"policy": "Academic Standing"},
		},
		{
			text:     "Course registration: Priority registration for seniors, then juniors, sophomores, freshmen. Registration opens 2 weeks before semester. Maximum 18 credit hours per semester.",
			category: "academic_policy",
			extra:    map[string]string{"policy": "Registration"},
		},
		{
			text:     "Prerequisite policy: Students must complete prerequisite courses with C grade or higher, prerequisite waivers available with department chair approval, verified through course history system",
			category: "academic_policy",
			extra:    map[string]string{"policy": "Prerequisites"},
		},
		{
			text:     "General education requirements: All students must complete 30 credit hours in general education including English, Mathematics, Science, Social Studies, Humanities. Specific courses listed in catalog.",
			category: "academic_policy",
			extra:    map[string]string{"policy": "Gen Ed Requirements"},
		},
		{
			text:     "Degree completion: Bachelor's degree requires 120 credit hours minimum, GPA 2.0 or above, completion of all program and general education requirements, maximum 7 years to complete",
			category: "academic_policy",
			extra:    map[string]string{"policy": "Degree Requirements"},
		},
	}

	docs := make([]document.Document, 0, len(seed))
	for _, s := range seed {
		docs = append(docs, document.New(s.text, document.Attributes{
			Category: s.category,
			Extra:    s.extra,
		}))
	}
	return docs
}

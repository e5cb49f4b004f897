package retrieval

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name  string
		query string
		doc   string
		want  float64
	}{
		{
			name:  "identical text",
			query: "BS Electrical Engineering admission",
			doc:   "BS Electrical Engineering admission",
			want:  1.0,
		},
		{
			name:  "identical after case folding and dedup",
			query: "gpa GPA gpa",
			doc:   "GPA",
			want:  1.0,
		},
		{
			name:  "no overlap",
			query: "minimum GPA",
			doc:   "Scholarship deadlines vary by department",
			want:  0.0,
		},
		{
			name:  "stop words alone yield zero",
			query: "the and or",
			doc:   "a an is are",
			want:  0.0,
		},
		{
			name:  "both empty",
			query: "",
			doc:   "",
			want:  0.0,
		},
		{
			name:  "partial overlap",
			query: "exam schedule",
			doc:   "final exam dates",
			// Q={exam,schedule}, D={final,exam,dates}: 1/4
			want: 0.25,
		},
		{
			name:  "punctuation stays attached to tokens",
			query: "engineering",
			doc:   "engineering?",
			want:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.query, tt.doc)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.query, tt.doc, got, tt.want)
			}
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := "minimum GPA to maintain good standing"
	b := "Minimum GPA 3.2, SAT score 1400+"
	if Similarity(a, b) != Similarity(b, a) {
		t.Errorf("similarity is not symmetric: %f vs %f", Similarity(a, b), Similarity(b, a))
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"", "some document text"},
		{"exam exam exam", "exam"},
		{"completely unrelated words here", "Grading policy: A (90-100)"},
		{"minimum GPA", "Minimum GPA to maintain good standing is 2.0"},
	}
	for _, p := range pairs {
		score := Similarity(p[0], p[1])
		if score < 0 || score > 1 {
			t.Errorf("Similarity(%q, %q) = %f out of [0,1]", p[0], p[1], score)
		}
	}
}

package model

// SectionConfig is the per-section marking policy.
type SectionConfig struct {
	TotalQuestions   int     `json:"total_questions"`
	MaxToAnswer      int     `json:"max_to_answer"`
	MarksPerQuestion float64 `json:"marks_per_question"`
	NegativeMarking  float64 `json:"negative_marking"`
}

// MaxScore is the highest achievable score in the section.
func (sc SectionConfig) MaxScore() float64 {
	return float64(sc.MaxToAnswer) * sc.MarksPerQuestion
}

// ExamConfig is the static exam policy. Immutable for the session.
type ExamConfig struct {
	TotalTimeMinutes int                       `json:"total_time_minutes"`
	Sections         map[Section]SectionConfig `json:"sections"`
}

// DurationSeconds is the full exam duration in seconds.
func (c ExamConfig) DurationSeconds() int {
	return c.TotalTimeMinutes * 60
}

// TotalQuestions is the number of questions across all sections.
func (c ExamConfig) TotalQuestions() int {
	n := 0
	for _, sc := range c.Sections {
		n += sc.TotalQuestions
	}
	return n
}

// TotalMarks is the highest achievable overall score.
func (c ExamConfig) TotalMarks() float64 {
	total := 0.0
	for _, sc := range c.Sections {
		total += sc.MaxScore()
	}
	return total
}

// DefaultExamConfig returns the CSIR NET Physical Sciences pattern:
// 180 minutes, 75 questions, 200 marks.
func DefaultExamConfig() ExamConfig {
	return ExamConfig{
		TotalTimeMinutes: 180,
		Sections: map[Section]SectionConfig{
			SectionPartA: {TotalQuestions: 20, MaxToAnswer: 15, MarksPerQuestion: 2.0, NegativeMarking: 0.5},
			SectionPartB: {TotalQuestions: 25, MaxToAnswer: 20, MarksPerQuestion: 3.5, NegativeMarking: 0.875},
			SectionPartC: {TotalQuestions: 30, MaxToAnswer: 20, MarksPerQuestion: 5.0, NegativeMarking: 1.25},
		},
	}
}

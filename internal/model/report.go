package model

import "time"

// SectionResult is the scored breakdown for one section.
type SectionResult struct {
	Section          Section `json:"section"`
	Score            float64 `json:"score"`
	Attempted        int     `json:"attempted"`
	Correct          int     `json:"correct"`
	Wrong            int     `json:"wrong"`
	MarksPerQuestion float64 `json:"marks_per_question"`
	NegativeMarking  float64 `json:"negative_marking"`
	MaxScore         float64 `json:"max_score"`
	// Percentage of MaxScore achieved, clamped at 0 for negative scores.
	// Used for the result progress bars.
	Percentage float64 `json:"percentage"`
}

// Report is the final score card for a finished session.
type Report struct {
	TotalScore      float64         `json:"total_score"`
	TotalMarks      float64         `json:"total_marks"`
	Correct         int             `json:"correct"`
	Wrong           int             `json:"wrong"`
	Attempted       int             `json:"attempted"`
	AccuracyPercent int             `json:"accuracy_percent"`
	Sections        []SectionResult `json:"sections"`
}

// ResultRecord is the archival payload queued at finalization and persisted
// by the result worker. The live session never depends on it.
type ResultRecord struct {
	SessionID  string    `json:"session_id"`
	TestID     int       `json:"test_id"`
	TestTitle  string    `json:"test_title"`
	Candidate  string    `json:"candidate"`
	TotalScore float64   `json:"total_score"`
	Correct    int       `json:"correct"`
	Wrong      int       `json:"wrong"`
	Attempted  int       `json:"attempted"`
	Accuracy   int       `json:"accuracy"`
	FinishedAt time.Time `json:"finished_at"`
}

package model

// CreateSessionRequest is the payload for selecting a test. The candidate
// name is display-only.
type CreateSessionRequest struct {
	TestID    int    `json:"test_id" binding:"required,min=1"`
	Candidate string `json:"candidate" binding:"omitempty,max=100"`
}

// SelectOptionRequest records an option choice on a question.
type SelectOptionRequest struct {
	QuestionID  int `json:"question_id" binding:"required,min=1"`
	OptionIndex int `json:"option_index" binding:"min=0,max=9"`
}

// QuestionRequest targets a single question (clear, mark, save-and-next).
type QuestionRequest struct {
	QuestionID int `json:"question_id" binding:"required,min=1"`
}

// NavigateRequest jumps to a question in the palette.
type NavigateRequest struct {
	TargetQuestionID int `json:"target_question_id" binding:"required,min=1"`
}

// SubmitRequest finishes the exam. Confirm must be true; the confirmation
// step lives server-side so a stray click cannot finalize.
type SubmitRequest struct {
	Confirm bool `json:"confirm"`
}

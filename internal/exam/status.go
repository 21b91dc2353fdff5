package exam

// Phase enumerates the lifecycle of a session. The catalog "phase" of the
// UI has no session yet, so it does not appear here.
type Phase string

const (
	PhaseInstructions Phase = "INSTRUCTIONS"
	PhaseActive       Phase = "ACTIVE"
	PhaseCompleted    Phase = "COMPLETED"
)

// QuestionStatus is the derived display state of a question in the palette.
type QuestionStatus string

const (
	StatusNotVisited        QuestionStatus = "NOT_VISITED"
	StatusNotAnswered       QuestionStatus = "NOT_ANSWERED"
	StatusAnswered          QuestionStatus = "ANSWERED"
	StatusMarked            QuestionStatus = "MARKED"
	StatusMarkedAndAnswered QuestionStatus = "MARKED_AND_ANSWERED"
)

// PaletteSummary is the per-status count shown next to the palette legend.
type PaletteSummary struct {
	NotVisited        int `json:"not_visited"`
	NotAnswered       int `json:"not_answered"`
	Answered          int `json:"answered"`
	Marked            int `json:"marked"`
	MarkedAndAnswered int `json:"marked_and_answered"`
}

// deriveStatus computes a question's status from the answer, mark and touch
// flags. Keeping this a pure derivation makes the answered/marked status
// invariants hold by construction instead of by hand-synchronized maps.
func deriveStatus(answered, marked, touched bool) QuestionStatus {
	switch {
	case answered && marked:
		return StatusMarkedAndAnswered
	case answered:
		return StatusAnswered
	case marked:
		return StatusMarked
	case touched:
		return StatusNotAnswered
	default:
		return StatusNotVisited
	}
}

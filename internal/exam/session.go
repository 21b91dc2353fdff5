// Package exam implements the mock-test session state machine: question
// status transitions, per-section attempt caps, navigation and the
// countdown that forces submission at zero.
package exam

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"
)

// Session is a single candidate's run through one mock test. It is created
// fresh when a test is selected and discarded when the candidate returns to
// the catalog; nothing is persisted across sessions.
//
// All exported methods take the session lock, so a Session is safe for the
// one-writer-many-readers access pattern of the HTTP handlers and the
// timer goroutine.
type Session struct {
	ID        uuid.UUID
	TestID    int
	TestTitle string
	Candidate string
	CreatedAt time.Time

	mu        sync.Mutex
	phase     Phase
	questions []model.Question
	byID      map[int]int // question id -> index into questions
	cfg       model.ExamConfig

	answers   map[int]int      // question id -> selected option index
	marked    map[int]struct{} // marked for review
	visited   map[int]struct{} // has been the current question at least once
	touched   map[int]struct{} // visited-and-left or acted upon; drives NOT_ANSWERED
	current   int              // current question id
	remaining int              // seconds left on the clock
}

// NewSession builds a fresh session over the given ordered question set.
// The first question is current and counts as visited.
func NewSession(test model.MockTest, questions []model.Question, cfg model.ExamConfig, candidate string) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	byID := make(map[int]int, len(questions))
	for i, q := range questions {
		byID[q.ID] = i
	}

	first := questions[0].ID
	return &Session{
		ID:        uuid.New(),
		TestID:    test.ID,
		TestTitle: test.Title,
		Candidate: candidate,
		CreatedAt: time.Now(),
		phase:     PhaseInstructions,
		questions: questions,
		byID:      byID,
		cfg:       cfg,
		answers:   make(map[int]int),
		marked:    make(map[int]struct{}),
		visited:   map[int]struct{}{first: {}},
		touched:   make(map[int]struct{}),
		current:   first,
		remaining: cfg.DurationSeconds(),
	}, nil
}

// Config returns the session's exam policy.
func (s *Session) Config() model.ExamConfig { return s.cfg }

// Questions returns the loaded question sequence, answer key included.
// Callers must not mutate it.
func (s *Session) Questions() []model.Question { return s.questions }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Remaining returns the seconds left on the clock.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// ─── Lifecycle ──────────────────────────────────────────────────────

// Begin moves the session from the instructions phase to the active exam.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case PhaseActive:
		return ErrAlreadyStarted
	case PhaseCompleted:
		return ErrAlreadyFinalized
	}
	s.phase = PhaseActive
	return nil
}

// Finalize ends the active exam. It reports whether this call performed the
// transition, so submission side effects run exactly once regardless of
// whether the trigger was the candidate or the clock.
func (s *Session) Finalize() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalizeLocked()
}

func (s *Session) finalizeLocked() bool {
	if s.phase != PhaseActive {
		return false
	}
	s.phase = PhaseCompleted
	return true
}

// Tick advances the countdown by one second. Outside the active phase it is
// a no-op, so a straggling tick scheduled before finalization can never
// mutate the clock. It returns true when this tick exhausted the clock and
// finalized the session.
func (s *Session) Tick() (expired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive {
		return false
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		return s.finalizeLocked()
	}
	return false
}

// ─── Navigation and answers ─────────────────────────────────────────

// SelectOption records an answer. A question whose section already has
// MaxToAnswer answered questions is rejected — unless the question itself
// is among them, since changing an existing choice consumes no cap budget.
func (s *Session) SelectOption(questionID, optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive {
		return ErrSessionNotActive
	}
	q, ok := s.questionLocked(questionID)
	if !ok {
		return ErrQuestionNotFound
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return ErrOptionOutOfRange
	}
	if _, answered := s.answers[questionID]; !answered {
		if s.sectionAnsweredLocked(q.Section) >= s.cfg.Sections[q.Section].MaxToAnswer {
			return ErrSectionLimit
		}
	}
	s.answers[questionID] = optionIndex
	return nil
}

// ClearAnswer removes the recorded answer, leaving the mark flag alone.
func (s *Session) ClearAnswer(questionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive {
		return ErrSessionNotActive
	}
	if _, ok := s.questionLocked(questionID); !ok {
		return ErrQuestionNotFound
	}
	delete(s.answers, questionID)
	s.touched[questionID] = struct{}{}
	return nil
}

// ToggleMark flips the mark-for-review flag and then advances to the next
// question. The advance is part of the action, mirroring the CBT
// convention of "mark for review & next". Marking never touches the
// attempt cap.
func (s *Session) ToggleMark(questionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive {
		return ErrSessionNotActive
	}
	if _, ok := s.questionLocked(questionID); !ok {
		return ErrQuestionNotFound
	}
	if _, isMarked := s.marked[questionID]; isMarked {
		delete(s.marked, questionID)
	} else {
		s.marked[questionID] = struct{}{}
	}
	// Even an unmark leaves the question attempted-but-skipped, never
	// back to NOT_VISITED.
	s.touched[questionID] = struct{}{}
	s.advanceLocked(questionID, +1)
	return nil
}

// SaveAndNext finalizes the question's status from its current answer and
// mark state and advances. It never changes the answer or mark sets.
func (s *Session) SaveAndNext(questionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive {
		return ErrSessionNotActive
	}
	if _, ok := s.questionLocked(questionID); !ok {
		return ErrQuestionNotFound
	}
	s.touched[questionID] = struct{}{}
	s.advanceLocked(questionID, +1)
	return nil
}

// Navigate jumps to the target question. The question being left is marked
// attempted-but-skipped if no action was taken on it. A target outside the
// paper is a no-op, not an error.
func (s *Session) Navigate(targetQuestionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive {
		return ErrSessionNotActive
	}
	s.navigateLocked(targetQuestionID)
	return nil
}

// Next moves to the following question; a no-op past the end of the paper.
func (s *Session) Next(questionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive {
		return ErrSessionNotActive
	}
	s.advanceLocked(questionID, +1)
	return nil
}

// Previous moves to the preceding question; a no-op before the start.
func (s *Session) Previous(questionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive {
		return ErrSessionNotActive
	}
	s.advanceLocked(questionID, -1)
	return nil
}

func (s *Session) advanceLocked(fromID, step int) {
	idx, ok := s.byID[fromID]
	if !ok {
		return
	}
	next := idx + step
	if next < 0 || next >= len(s.questions) {
		return
	}
	s.navigateLocked(s.questions[next].ID)
}

func (s *Session) navigateLocked(targetID int) {
	if _, ok := s.byID[targetID]; !ok {
		return
	}
	// Leaving a question without acting on it marks it as seen-but-skipped.
	s.touched[s.current] = struct{}{}
	s.visited[targetID] = struct{}{}
	s.current = targetID
}

// ─── Derived state ──────────────────────────────────────────────────

func (s *Session) questionLocked(id int) (model.Question, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return model.Question{}, false
	}
	return s.questions[idx], true
}

func (s *Session) sectionAnsweredLocked(sec model.Section) int {
	n := 0
	for id := range s.answers {
		if s.questions[s.byID[id]].Section == sec {
			n++
		}
	}
	return n
}

func (s *Session) statusLocked(id int) QuestionStatus {
	_, answered := s.answers[id]
	_, marked := s.marked[id]
	_, touched := s.touched[id]
	return deriveStatus(answered, marked, touched)
}

// Snapshot is a read-only view of the session for transport.
type Snapshot struct {
	ID                   uuid.UUID              `json:"id"`
	TestID               int                    `json:"test_id"`
	TestTitle            string                 `json:"test_title"`
	Candidate            string                 `json:"candidate,omitempty"`
	Phase                Phase                  `json:"phase"`
	CurrentQuestionID    int                    `json:"current_question_id"`
	TimeRemainingSeconds int                    `json:"time_remaining_seconds"`
	Answers              map[int]int            `json:"answers"`
	Statuses             map[int]QuestionStatus `json:"statuses"`
	MarkedForReview      []int                  `json:"marked_for_review"`
	Visited              []int                  `json:"visited"`
	Palette              PaletteSummary         `json:"palette"`
	SectionAttempted     map[model.Section]int  `json:"section_attempted"`
}

// Snapshot derives the full palette view under the lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:                   s.ID,
		TestID:               s.TestID,
		TestTitle:            s.TestTitle,
		Candidate:            s.Candidate,
		Phase:                s.phase,
		CurrentQuestionID:    s.current,
		TimeRemainingSeconds: s.remaining,
		Answers:              make(map[int]int, len(s.answers)),
		Statuses:             make(map[int]QuestionStatus, len(s.questions)),
		MarkedForReview:      make([]int, 0, len(s.marked)),
		Visited:              make([]int, 0, len(s.visited)),
		SectionAttempted:     make(map[model.Section]int, len(s.cfg.Sections)),
	}

	for id, opt := range s.answers {
		snap.Answers[id] = opt
	}
	for id := range s.marked {
		snap.MarkedForReview = append(snap.MarkedForReview, id)
	}
	for id := range s.visited {
		snap.Visited = append(snap.Visited, id)
	}
	sort.Ints(snap.MarkedForReview)
	sort.Ints(snap.Visited)

	for _, q := range s.questions {
		st := s.statusLocked(q.ID)
		snap.Statuses[q.ID] = st
		switch st {
		case StatusNotVisited:
			snap.Palette.NotVisited++
		case StatusNotAnswered:
			snap.Palette.NotAnswered++
		case StatusAnswered:
			snap.Palette.Answered++
		case StatusMarked:
			snap.Palette.Marked++
		case StatusMarkedAndAnswered:
			snap.Palette.MarkedAndAnswered++
		}
		if _, ok := s.answers[q.ID]; ok {
			snap.SectionAttempted[q.Section]++
		}
	}

	return snap
}

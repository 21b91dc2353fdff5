package exam_test

import (
	"testing"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/exam"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"
)

func testConfig() model.ExamConfig {
	return model.ExamConfig{
		TotalTimeMinutes: 1,
		Sections: map[model.Section]model.SectionConfig{
			model.SectionPartA: {TotalQuestions: 3, MaxToAnswer: 2, MarksPerQuestion: 2.0, NegativeMarking: 0.5},
			model.SectionPartB: {TotalQuestions: 2, MaxToAnswer: 2, MarksPerQuestion: 3.5, NegativeMarking: 0.875},
		},
	}
}

func testQuestions(cfg model.ExamConfig) []model.Question {
	var questions []model.Question
	id := 1
	for _, sec := range model.SectionOrder {
		sc, ok := cfg.Sections[sec]
		if !ok {
			continue
		}
		for i := 0; i < sc.TotalQuestions; i++ {
			questions = append(questions, model.Question{
				ID:            id,
				Section:       sec,
				Text:          "sample",
				Options:       []string{"a", "b", "c", "d"},
				CorrectOption: 1,
			})
			id++
		}
	}
	return questions
}

func newActiveSession(t *testing.T) *exam.Session {
	t.Helper()
	cfg := testConfig()
	sess, err := exam.NewSession(model.MockTest{ID: 1, Title: "Sample"}, testQuestions(cfg), cfg, "")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := sess.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	return sess
}

func TestNewSessionInitialState(t *testing.T) {
	cfg := testConfig()
	sess, err := exam.NewSession(model.MockTest{ID: 1, Title: "Sample"}, testQuestions(cfg), cfg, "Asha")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if sess.Phase() != exam.PhaseInstructions {
		t.Fatalf("expected instructions phase, got %s", sess.Phase())
	}
	if sess.Remaining() != cfg.DurationSeconds() {
		t.Fatalf("expected %d seconds, got %d", cfg.DurationSeconds(), sess.Remaining())
	}

	snap := sess.Snapshot()
	if snap.CurrentQuestionID != 1 {
		t.Fatalf("expected current question 1, got %d", snap.CurrentQuestionID)
	}
	if len(snap.Visited) != 1 || snap.Visited[0] != 1 {
		t.Fatalf("expected only question 1 visited, got %v", snap.Visited)
	}
	// The first question is on screen but nothing has happened to it yet.
	if snap.Palette.NotVisited != len(snap.Statuses) {
		t.Fatalf("expected all %d questions not visited, got %+v", len(snap.Statuses), snap.Palette)
	}
}

func TestNewSessionRejectsEmptyPaper(t *testing.T) {
	_, err := exam.NewSession(model.MockTest{ID: 1}, nil, testConfig(), "")
	if err != exam.ErrNoQuestions {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestBeginPhaseGuards(t *testing.T) {
	sess := newActiveSession(t)

	if err := sess.Begin(); err != exam.ErrAlreadyStarted {
		t.Fatalf("expected ErrAlreadyStarted, got %v", err)
	}
	sess.Finalize()
	if err := sess.Begin(); err != exam.ErrAlreadyFinalized {
		t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
	}
}

func TestActionsRejectedBeforeStart(t *testing.T) {
	cfg := testConfig()
	sess, err := exam.NewSession(model.MockTest{ID: 1}, testQuestions(cfg), cfg, "")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := sess.SelectOption(1, 0); err != exam.ErrSessionNotActive {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}
	if err := sess.ToggleMark(1); err != exam.ErrSessionNotActive {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}
	if err := sess.Navigate(2); err != exam.ErrSessionNotActive {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}
}

func TestSelectOptionValidation(t *testing.T) {
	sess := newActiveSession(t)

	if err := sess.SelectOption(99, 0); err != exam.ErrQuestionNotFound {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
	if err := sess.SelectOption(1, -1); err != exam.ErrOptionOutOfRange {
		t.Fatalf("expected ErrOptionOutOfRange for -1, got %v", err)
	}
	if err := sess.SelectOption(1, 4); err != exam.ErrOptionOutOfRange {
		t.Fatalf("expected ErrOptionOutOfRange for 4, got %v", err)
	}
}

func TestSectionAttemptCap(t *testing.T) {
	sess := newActiveSession(t)

	// Part A allows two answers out of three questions.
	if err := sess.SelectOption(1, 0); err != nil {
		t.Fatalf("answer 1: %v", err)
	}
	if err := sess.SelectOption(2, 1); err != nil {
		t.Fatalf("answer 2: %v", err)
	}
	if err := sess.SelectOption(3, 2); err != exam.ErrSectionLimit {
		t.Fatalf("expected ErrSectionLimit, got %v", err)
	}

	// Changing an already-answered question consumes no cap budget.
	if err := sess.SelectOption(1, 3); err != nil {
		t.Fatalf("re-answer 1: %v", err)
	}
	snap := sess.Snapshot()
	if snap.Answers[1] != 3 {
		t.Fatalf("expected answer 3 on question 1, got %d", snap.Answers[1])
	}

	// Clearing frees a slot for another question in the section.
	if err := sess.ClearAnswer(2); err != nil {
		t.Fatalf("clear 2: %v", err)
	}
	if err := sess.SelectOption(3, 2); err != nil {
		t.Fatalf("answer 3 after clear: %v", err)
	}

	// The cap is per section: Part B is still wide open.
	if err := sess.SelectOption(4, 0); err != nil {
		t.Fatalf("answer 4: %v", err)
	}
	if err := sess.SelectOption(5, 0); err != nil {
		t.Fatalf("answer 5: %v", err)
	}
}

func TestFullPatternSixteenthAnswerRejected(t *testing.T) {
	cfg := model.DefaultExamConfig()
	sess, err := exam.NewSession(model.MockTest{ID: 1}, testQuestions(cfg), cfg, "")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := sess.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}

	for id := 1; id <= 15; id++ {
		if err := sess.SelectOption(id, 0); err != nil {
			t.Fatalf("answer %d: %v", id, err)
		}
	}
	if err := sess.SelectOption(16, 0); err != exam.ErrSectionLimit {
		t.Fatalf("expected ErrSectionLimit on 16th Part A answer, got %v", err)
	}

	snap := sess.Snapshot()
	if snap.SectionAttempted[model.SectionPartA] != 15 {
		t.Fatalf("expected 15 attempted in Part A, got %d", snap.SectionAttempted[model.SectionPartA])
	}
}

func TestMarkToggleTwiceLeavesNotAnswered(t *testing.T) {
	sess := newActiveSession(t)

	if err := sess.ToggleMark(1); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if st := sess.Snapshot().Statuses[1]; st != exam.StatusMarked {
		t.Fatalf("expected MARKED, got %s", st)
	}

	if err := sess.ToggleMark(1); err != nil {
		t.Fatalf("unmark: %v", err)
	}
	// Unmarking never returns a question to NOT_VISITED.
	if st := sess.Snapshot().Statuses[1]; st != exam.StatusNotAnswered {
		t.Fatalf("expected NOT_ANSWERED after double toggle, got %s", st)
	}
}

func TestMarkAdvancesToNextQuestion(t *testing.T) {
	sess := newActiveSession(t)

	if err := sess.ToggleMark(1); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if cur := sess.Snapshot().CurrentQuestionID; cur != 2 {
		t.Fatalf("expected current question 2 after mark, got %d", cur)
	}
}

func TestMarkDoesNotConsumeCap(t *testing.T) {
	sess := newActiveSession(t)

	if err := sess.SelectOption(1, 0); err != nil {
		t.Fatalf("answer 1: %v", err)
	}
	if err := sess.SelectOption(2, 0); err != nil {
		t.Fatalf("answer 2: %v", err)
	}
	// Part A is at its cap; marking question 3 must still succeed.
	if err := sess.ToggleMark(3); err != nil {
		t.Fatalf("mark at cap: %v", err)
	}
}

func TestClearKeepsMarkFlag(t *testing.T) {
	sess := newActiveSession(t)

	if err := sess.SelectOption(1, 0); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := sess.ToggleMark(1); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if st := sess.Snapshot().Statuses[1]; st != exam.StatusMarkedAndAnswered {
		t.Fatalf("expected MARKED_AND_ANSWERED, got %s", st)
	}

	if err := sess.ClearAnswer(1); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if st := sess.Snapshot().Statuses[1]; st != exam.StatusMarked {
		t.Fatalf("expected MARKED after clear, got %s", st)
	}
}

func TestSelectThenClearRoundTrip(t *testing.T) {
	sess := newActiveSession(t)

	if err := sess.SelectOption(1, 2); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if st := sess.Snapshot().Statuses[1]; st != exam.StatusAnswered {
		t.Fatalf("expected ANSWERED, got %s", st)
	}

	if err := sess.ClearAnswer(1); err != nil {
		t.Fatalf("clear: %v", err)
	}
	snap := sess.Snapshot()
	if _, ok := snap.Answers[1]; ok {
		t.Fatalf("expected answer removed, got %v", snap.Answers)
	}
	if st := snap.Statuses[1]; st != exam.StatusNotAnswered {
		t.Fatalf("expected NOT_ANSWERED after clear, got %s", st)
	}
}

func TestNavigateMarksLeftQuestionSkipped(t *testing.T) {
	sess := newActiveSession(t)

	if err := sess.Navigate(4); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	snap := sess.Snapshot()
	if snap.CurrentQuestionID != 4 {
		t.Fatalf("expected current 4, got %d", snap.CurrentQuestionID)
	}
	if st := snap.Statuses[1]; st != exam.StatusNotAnswered {
		t.Fatalf("expected question 1 NOT_ANSWERED after leaving it, got %s", st)
	}
	// The target has only been arrived at, not left.
	if st := snap.Statuses[4]; st != exam.StatusNotVisited {
		t.Fatalf("expected question 4 NOT_VISITED, got %s", st)
	}
}

func TestNavigationBoundsAreNoOps(t *testing.T) {
	sess := newActiveSession(t)

	if err := sess.Previous(1); err != nil {
		t.Fatalf("previous at start: %v", err)
	}
	if cur := sess.Snapshot().CurrentQuestionID; cur != 1 {
		t.Fatalf("expected current to stay at 1, got %d", cur)
	}

	if err := sess.Navigate(5); err != nil {
		t.Fatalf("navigate to last: %v", err)
	}
	if err := sess.Next(5); err != nil {
		t.Fatalf("next at end: %v", err)
	}
	if cur := sess.Snapshot().CurrentQuestionID; cur != 5 {
		t.Fatalf("expected current to stay at 5, got %d", cur)
	}

	if err := sess.Navigate(99); err != nil {
		t.Fatalf("navigate to unknown: %v", err)
	}
	if cur := sess.Snapshot().CurrentQuestionID; cur != 5 {
		t.Fatalf("expected unknown target ignored, got current %d", cur)
	}
}

func TestTickCountsDownAndExpires(t *testing.T) {
	sess := newActiveSession(t)
	total := sess.Remaining()

	for i := 0; i < total-1; i++ {
		if sess.Tick() {
			t.Fatalf("clock expired early at tick %d", i+1)
		}
	}
	if sess.Remaining() != 1 {
		t.Fatalf("expected 1 second left, got %d", sess.Remaining())
	}

	if !sess.Tick() {
		t.Fatal("expected final tick to expire the clock")
	}
	if sess.Phase() != exam.PhaseCompleted {
		t.Fatalf("expected COMPLETED after expiry, got %s", sess.Phase())
	}

	// A straggling tick after finalization changes nothing.
	if sess.Tick() {
		t.Fatal("tick after finalize must not report expiry again")
	}
	if sess.Remaining() != 0 {
		t.Fatalf("expected clock pinned at 0, got %d", sess.Remaining())
	}
}

func TestTickBeforeStartIsNoOp(t *testing.T) {
	cfg := testConfig()
	sess, err := exam.NewSession(model.MockTest{ID: 1}, testQuestions(cfg), cfg, "")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if sess.Tick() {
		t.Fatal("tick in instructions phase must not expire")
	}
	if sess.Remaining() != cfg.DurationSeconds() {
		t.Fatalf("expected clock untouched, got %d", sess.Remaining())
	}
}

func TestFinalizeExactlyOnce(t *testing.T) {
	sess := newActiveSession(t)

	if err := sess.SelectOption(1, 2); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !sess.Finalize() {
		t.Fatal("first finalize must perform the transition")
	}
	if sess.Finalize() {
		t.Fatal("second finalize must be a no-op")
	}

	// Answers survive finalization for scoring.
	snap := sess.Snapshot()
	if snap.Answers[1] != 2 {
		t.Fatalf("expected answer preserved, got %v", snap.Answers)
	}
	if err := sess.SelectOption(2, 0); err != exam.ErrSessionNotActive {
		t.Fatalf("expected ErrSessionNotActive after finalize, got %v", err)
	}
}

func TestSnapshotPaletteCountsSumToTotal(t *testing.T) {
	sess := newActiveSession(t)

	_ = sess.SelectOption(1, 0)
	_ = sess.ToggleMark(2)
	_ = sess.SelectOption(4, 1)
	_ = sess.ToggleMark(4)
	_ = sess.Navigate(5)

	snap := sess.Snapshot()
	p := snap.Palette
	sum := p.NotVisited + p.NotAnswered + p.Answered + p.Marked + p.MarkedAndAnswered
	if sum != len(snap.Statuses) {
		t.Fatalf("palette counts sum to %d, want %d (%+v)", sum, len(snap.Statuses), p)
	}
	if p.Answered != 1 || p.Marked != 1 || p.MarkedAndAnswered != 1 {
		t.Fatalf("unexpected palette %+v", p)
	}
}

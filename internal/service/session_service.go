package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/config"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/exam"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/provider"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/scoring"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/store"
)

// Domain errors.
var (
	ErrTestNotFound         = errors.New("mock test not found")
	ErrSessionNotFound      = errors.New("exam session not found")
	ErrConfirmationRequired = errors.New("submission requires explicit confirmation")
)

// SessionService orchestrates exam sessions: the phase transitions
// catalog → instructions → active → result, the per-session countdown, and
// result archival on finalization. Each session has at most one timer
// goroutine, cancelled deterministically when the session leaves the
// active phase.
type SessionService struct {
	store   *store.SessionStore
	catalog *provider.Catalog
	bank    provider.QuestionSource
	cfg     model.ExamConfig
	rdb     *redis.Client // nil disables the result queue
	log     zerolog.Logger

	mu     sync.Mutex
	timers map[uuid.UUID]context.CancelFunc
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	sessions *store.SessionStore,
	catalog *provider.Catalog,
	bank provider.QuestionSource,
	cfg model.ExamConfig,
	rdb *redis.Client,
	log zerolog.Logger,
) *SessionService {
	return &SessionService{
		store:   sessions,
		catalog: catalog,
		bank:    bank,
		cfg:     cfg,
		rdb:     rdb,
		log:     log.With().Str("component", "session_service").Logger(),
		timers:  make(map[uuid.UUID]context.CancelFunc),
	}
}

// Create builds a fresh session for the chosen test: all maps empty, the
// first question current and visited, the clock at the full duration. The
// session starts in the instructions phase.
func (s *SessionService) Create(testID int, candidate string) (exam.Snapshot, error) {
	test, ok := s.catalog.FindTest(testID)
	if !ok {
		return exam.Snapshot{}, ErrTestNotFound
	}

	questions := s.bank.Questions(testID)
	sess, err := exam.NewSession(test, questions, s.cfg, candidate)
	if err != nil {
		return exam.Snapshot{}, err
	}

	s.store.Put(sess)
	s.log.Info().
		Str("session_id", sess.ID.String()).
		Int("test_id", testID).
		Int("questions", len(questions)).
		Msg("Session created")

	return sess.Snapshot(), nil
}

// Start confirms the instructions and enters the active exam phase,
// starting the countdown.
func (s *SessionService) Start(id uuid.UUID) (exam.Snapshot, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return exam.Snapshot{}, ErrSessionNotFound
	}
	if err := sess.Begin(); err != nil {
		return exam.Snapshot{}, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.timers[id] = cancel
	s.mu.Unlock()
	go s.runTimer(ctx, sess)

	s.log.Info().Str("session_id", id.String()).Msg("Exam started")
	return sess.Snapshot(), nil
}

// runTimer drives the one-second countdown. The session itself decides
// when the clock expires; the goroutine only schedules ticks and reacts to
// the single terminal event, so a tick can never mutate a finalized
// session.
func (s *SessionService) runTimer(ctx context.Context, sess *exam.Session) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if sess.Tick() {
				s.clearTimer(sess.ID)
				s.log.Info().Str("session_id", sess.ID.String()).Msg("Time over, exam auto-submitted")
				s.archive(sess)
				return
			}
		}
	}
}

// Submit finalizes the exam on the candidate's request. Confirm must be
// true: the confirmation prompt is part of the submission contract, not a
// UI nicety.
func (s *SessionService) Submit(id uuid.UUID, confirm bool) (exam.Snapshot, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return exam.Snapshot{}, ErrSessionNotFound
	}
	if !confirm {
		return exam.Snapshot{}, ErrConfirmationRequired
	}

	switch sess.Phase() {
	case exam.PhaseInstructions:
		return exam.Snapshot{}, exam.ErrSessionNotActive
	case exam.PhaseCompleted:
		return exam.Snapshot{}, exam.ErrAlreadyFinalized
	}

	if sess.Finalize() {
		s.stopTimer(id)
		s.log.Info().Str("session_id", id.String()).Msg("Exam submitted")
		s.archive(sess)
	}
	return sess.Snapshot(), nil
}

// Result computes the score card for a finalized session.
func (s *SessionService) Result(id uuid.UUID) (model.Report, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return model.Report{}, ErrSessionNotFound
	}
	if sess.Phase() != exam.PhaseCompleted {
		return model.Report{}, exam.ErrSessionNotScored
	}
	snap := sess.Snapshot()
	return scoring.Score(sess.Questions(), snap.Answers, sess.Config()), nil
}

// Discard drops the session, stopping its timer. Used when the candidate
// returns to the catalog; nothing is persisted.
func (s *SessionService) Discard(id uuid.UUID) error {
	if _, ok := s.store.Get(id); !ok {
		return ErrSessionNotFound
	}
	s.stopTimer(id)
	s.store.Delete(id)
	s.log.Info().Str("session_id", id.String()).Msg("Session discarded")
	return nil
}

// Snapshot returns the current palette view of a session.
func (s *SessionService) Snapshot(id uuid.UUID) (exam.Snapshot, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return exam.Snapshot{}, ErrSessionNotFound
	}
	return sess.Snapshot(), nil
}

// Session exposes the raw session for streaming consumers.
func (s *SessionService) Session(id uuid.UUID) (*exam.Session, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// ─── Question actions ───────────────────────────────────────────────

// SelectOption records an answer, subject to the section attempt cap.
func (s *SessionService) SelectOption(id uuid.UUID, questionID, optionIndex int) (exam.Snapshot, error) {
	return s.apply(id, func(sess *exam.Session) error {
		return sess.SelectOption(questionID, optionIndex)
	})
}

// ClearAnswer removes the recorded answer for a question.
func (s *SessionService) ClearAnswer(id uuid.UUID, questionID int) (exam.Snapshot, error) {
	return s.apply(id, func(sess *exam.Session) error {
		return sess.ClearAnswer(questionID)
	})
}

// ToggleMark flips mark-for-review and advances to the next question.
func (s *SessionService) ToggleMark(id uuid.UUID, questionID int) (exam.Snapshot, error) {
	return s.apply(id, func(sess *exam.Session) error {
		return sess.ToggleMark(questionID)
	})
}

// SaveAndNext confirms the question and advances.
func (s *SessionService) SaveAndNext(id uuid.UUID, questionID int) (exam.Snapshot, error) {
	return s.apply(id, func(sess *exam.Session) error {
		return sess.SaveAndNext(questionID)
	})
}

// Navigate jumps to a question from the palette.
func (s *SessionService) Navigate(id uuid.UUID, targetQuestionID int) (exam.Snapshot, error) {
	return s.apply(id, func(sess *exam.Session) error {
		return sess.Navigate(targetQuestionID)
	})
}

func (s *SessionService) apply(id uuid.UUID, action func(*exam.Session) error) (exam.Snapshot, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return exam.Snapshot{}, ErrSessionNotFound
	}
	if err := action(sess); err != nil {
		return exam.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// ─── Timer bookkeeping and archival ─────────────────────────────────

func (s *SessionService) stopTimer(id uuid.UUID) {
	s.mu.Lock()
	cancel, ok := s.timers[id]
	delete(s.timers, id)
	s.mu.Unlock()
	if ok {
		cancel()
	}
}

// clearTimer forgets a timer without cancelling it; used from inside the
// timer goroutine itself, which is already terminating.
func (s *SessionService) clearTimer(id uuid.UUID) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()
}

// Close stops every running timer. Called on shutdown.
func (s *SessionService) Close() {
	s.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(s.timers))
	for id, cancel := range s.timers {
		cancels = append(cancels, cancel)
		delete(s.timers, id)
	}
	s.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

// archive queues the scored result for background persistence. The live
// session does not depend on this: a queue failure only costs the archive
// row.
func (s *SessionService) archive(sess *exam.Session) {
	if s.rdb == nil {
		return
	}

	snap := sess.Snapshot()
	report := scoring.Score(sess.Questions(), snap.Answers, sess.Config())

	record := model.ResultRecord{
		SessionID:  sess.ID.String(),
		TestID:     sess.TestID,
		TestTitle:  sess.TestTitle,
		Candidate:  sess.Candidate,
		TotalScore: report.TotalScore,
		Correct:    report.Correct,
		Wrong:      report.Wrong,
		Attempted:  report.Attempted,
		Accuracy:   report.AccuracyPercent,
		FinishedAt: time.Now(),
	}

	raw, err := json.Marshal(record)
	if err != nil {
		s.log.Error().Err(err).Msg("Marshal result record failed")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.rdb.RPush(ctx, config.WorkerKey.PersistResultsQueue, raw).Err(); err != nil {
		s.log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("Queue result failed")
	}
}

package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/config"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/exam"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/provider"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/service"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/store"
)

func newSessionService(t *testing.T, rdb *redis.Client) *service.SessionService {
	t.Helper()
	cfg := model.DefaultExamConfig()
	catalog := provider.NewCatalog()
	bank := provider.NewGeneratedBank(catalog, cfg)
	svc := service.NewSessionService(store.NewSessionStore(), catalog, bank, cfg, rdb, zerolog.Nop())
	t.Cleanup(svc.Close)
	return svc
}

func TestCreateUnknownTest(t *testing.T) {
	svc := newSessionService(t, nil)

	if _, err := svc.Create(999, ""); err != service.ErrTestNotFound {
		t.Fatalf("expected ErrTestNotFound, got %v", err)
	}
}

func TestCreateStartSubmitFlow(t *testing.T) {
	svc := newSessionService(t, nil)

	snap, err := svc.Create(1, "Asha")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if snap.Phase != exam.PhaseInstructions {
		t.Fatalf("expected instructions phase, got %s", snap.Phase)
	}
	if snap.TimeRemainingSeconds != 180*60 {
		t.Fatalf("expected full clock, got %d", snap.TimeRemainingSeconds)
	}

	// Submitting from the instructions page is premature.
	if _, err := svc.Submit(snap.ID, true); err != exam.ErrSessionNotActive {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}

	snap, err = svc.Start(snap.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.Phase != exam.PhaseActive {
		t.Fatalf("expected active phase, got %s", snap.Phase)
	}
	if _, err := svc.Start(snap.ID); err != exam.ErrAlreadyStarted {
		t.Fatalf("expected ErrAlreadyStarted, got %v", err)
	}

	if _, err := svc.SelectOption(snap.ID, 1, 0); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := svc.Result(snap.ID); err != exam.ErrSessionNotScored {
		t.Fatalf("expected ErrSessionNotScored before submit, got %v", err)
	}

	// The confirmation flag is part of the contract, not a UI nicety.
	if _, err := svc.Submit(snap.ID, false); err != service.ErrConfirmationRequired {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}

	snap, err = svc.Submit(snap.ID, true)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if snap.Phase != exam.PhaseCompleted {
		t.Fatalf("expected completed phase, got %s", snap.Phase)
	}
	if _, err := svc.Submit(snap.ID, true); err != exam.ErrAlreadyFinalized {
		t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
	}

	report, err := svc.Result(snap.ID)
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if report.Attempted != 1 {
		t.Fatalf("expected 1 attempted, got %d", report.Attempted)
	}
}

func TestQuestionActionsRoundTrip(t *testing.T) {
	svc := newSessionService(t, nil)

	snap, err := svc.Create(1, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := snap.ID
	if _, err := svc.Start(id); err != nil {
		t.Fatalf("start: %v", err)
	}

	if snap, err = svc.SelectOption(id, 1, 2); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if snap.Answers[1] != 2 {
		t.Fatalf("expected answer recorded, got %v", snap.Answers)
	}

	if snap, err = svc.ToggleMark(id, 1); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if snap.Statuses[1] != exam.StatusMarkedAndAnswered {
		t.Fatalf("expected MARKED_AND_ANSWERED, got %s", snap.Statuses[1])
	}

	if snap, err = svc.ClearAnswer(id, 1); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if snap.Statuses[1] != exam.StatusMarked {
		t.Fatalf("expected MARKED after clear, got %s", snap.Statuses[1])
	}

	if snap, err = svc.Navigate(id, 40); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if snap.CurrentQuestionID != 40 {
		t.Fatalf("expected current 40, got %d", snap.CurrentQuestionID)
	}

	if snap, err = svc.SaveAndNext(id, 40); err != nil {
		t.Fatalf("save-next: %v", err)
	}
	if snap.CurrentQuestionID != 41 {
		t.Fatalf("expected current 41, got %d", snap.CurrentQuestionID)
	}
}

func TestDiscardRemovesSession(t *testing.T) {
	svc := newSessionService(t, nil)

	snap, err := svc.Create(1, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Discard(snap.ID); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if _, err := svc.Snapshot(snap.ID); err != service.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := svc.Discard(snap.ID); err != service.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound on second discard, got %v", err)
	}
}

func TestUnknownSessionID(t *testing.T) {
	svc := newSessionService(t, nil)
	id := uuid.New()

	if _, err := svc.Start(id); err != service.ErrSessionNotFound {
		t.Fatalf("start: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.SelectOption(id, 1, 0); err != service.ErrSessionNotFound {
		t.Fatalf("answer: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Result(id); err != service.ErrSessionNotFound {
		t.Fatalf("result: expected ErrSessionNotFound, got %v", err)
	}
}

func TestSubmitQueuesResultRecord(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc := newSessionService(t, client)

	snap, err := svc.Create(5, "Asha")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Start(snap.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.SelectOption(snap.ID, 1, 1); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := svc.Submit(snap.ID, true); err != nil {
		t.Fatalf("submit: %v", err)
	}

	ctx := context.Background()
	raw, err := client.LPop(ctx, config.WorkerKey.PersistResultsQueue).Result()
	if err != nil {
		t.Fatalf("expected one queued record: %v", err)
	}
	var record model.ResultRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if record.SessionID != snap.ID.String() || record.TestID != 5 || record.Candidate != "Asha" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.Attempted != 1 {
		t.Fatalf("expected 1 attempted, got %d", record.Attempted)
	}
	if time.Since(record.FinishedAt) > time.Minute {
		t.Fatalf("stale finished_at: %v", record.FinishedAt)
	}
}

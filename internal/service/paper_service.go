package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/config"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/provider"
)

// SectionRules is the per-section summary shown on the instructions page.
type SectionRules struct {
	Section          model.Section `json:"section"`
	TotalQuestions   int           `json:"total_questions"`
	MaxToAnswer      int           `json:"max_to_answer"`
	MarksPerQuestion float64       `json:"marks_per_question"`
	NegativeMarking  float64       `json:"negative_marking"`
}

// PaperPayload is the candidate-facing paper: rules and questions, never
// the answer key.
type PaperPayload struct {
	TestID          int                   `json:"test_id"`
	Title           string                `json:"title"`
	DurationMinutes int                   `json:"duration_minutes"`
	TotalMarks      float64               `json:"total_marks"`
	Sections        []SectionRules        `json:"sections"`
	Questions       []model.PaperQuestion `json:"questions"`
}

// PaperService builds candidate papers and caches them. Papers are
// deterministic per test id, so the cache can be prewarmed at startup.
// With no Redis configured it degrades to a process-local cache.
type PaperService struct {
	bank    provider.QuestionSource
	catalog *provider.Catalog
	cfg     model.ExamConfig
	rdb     *redis.Client // nil disables the shared cache
	log     zerolog.Logger

	mu    sync.RWMutex
	local map[int]*PaperPayload
}

// NewPaperService creates a new PaperService.
func NewPaperService(bank provider.QuestionSource, catalog *provider.Catalog, cfg model.ExamConfig, rdb *redis.Client, log zerolog.Logger) *PaperService {
	return &PaperService{
		bank:    bank,
		catalog: catalog,
		cfg:     cfg,
		rdb:     rdb,
		log:     log.With().Str("component", "paper_service").Logger(),
		local:   make(map[int]*PaperPayload),
	}
}

// Paper returns the candidate paper for a test id, from cache when possible.
func (s *PaperService) Paper(ctx context.Context, testID int) (*PaperPayload, error) {
	test, ok := s.catalog.FindTest(testID)
	if !ok {
		return nil, ErrTestNotFound
	}

	s.mu.RLock()
	if payload, hit := s.local[testID]; hit {
		s.mu.RUnlock()
		return payload, nil
	}
	s.mu.RUnlock()

	if s.rdb != nil {
		key := config.CacheKey.TestPaperKey(testID)
		raw, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var payload PaperPayload
			if err := json.Unmarshal([]byte(raw), &payload); err == nil {
				s.storeLocal(testID, &payload)
				return &payload, nil
			}
			s.log.Warn().Int("test_id", testID).Msg("Corrupt cached paper, rebuilding")
		} else if err != redis.Nil {
			s.log.Warn().Err(err).Msg("Redis paper lookup failed, building locally")
		}
	}

	payload := s.build(test)
	s.storeLocal(testID, payload)

	if s.rdb != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal paper: %w", err)
		}
		if err := s.rdb.Set(ctx, config.CacheKey.TestPaperKey(testID), raw, 0).Err(); err != nil {
			s.log.Warn().Err(err).Int("test_id", testID).Msg("Failed to cache paper")
		}
	}

	return payload, nil
}

// Prewarm caches every catalog paper before traffic arrives.
func (s *PaperService) Prewarm(ctx context.Context) error {
	for _, t := range s.catalog.ListTests() {
		if _, err := s.Paper(ctx, t.ID); err != nil {
			return fmt.Errorf("prewarm test %d: %w", t.ID, err)
		}
	}
	s.log.Info().Int("tests", len(s.catalog.ListTests())).Msg("Paper cache prewarmed")
	return nil
}

func (s *PaperService) build(test model.MockTest) *PaperPayload {
	questions := s.bank.Questions(test.ID)

	payload := &PaperPayload{
		TestID:          test.ID,
		Title:           test.Title,
		DurationMinutes: s.cfg.TotalTimeMinutes,
		TotalMarks:      s.cfg.TotalMarks(),
		Questions:       make([]model.PaperQuestion, 0, len(questions)),
	}
	for _, sec := range model.SectionOrder {
		sc := s.cfg.Sections[sec]
		payload.Sections = append(payload.Sections, SectionRules{
			Section:          sec,
			TotalQuestions:   sc.TotalQuestions,
			MaxToAnswer:      sc.MaxToAnswer,
			MarksPerQuestion: sc.MarksPerQuestion,
			NegativeMarking:  sc.NegativeMarking,
		})
	}
	for _, q := range questions {
		payload.Questions = append(payload.Questions, q.ForCandidate())
	}
	return payload
}

func (s *PaperService) storeLocal(testID int, payload *PaperPayload) {
	s.mu.Lock()
	s.local[testID] = payload
	s.mu.Unlock()
}

package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/config"
	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/model"
)

const (
	ResultBatchSize    = 50
	ResultBatchTimeout = 2 * time.Second
	ResultPollTimeout  = 1 * time.Second
)

// ResultWorker consumes the result queue and archives scored sessions to
// PostgreSQL in batches. It is purely an audit trail: the running exam
// never reads this table.
type ResultWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewResultWorker creates a new ResultWorker.
func NewResultWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *ResultWorker {
	return &ResultWorker{
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "result_worker").Logger(),
	}
}

// Start begins the worker loop with batching. Call in a goroutine.
func (w *ResultWorker) Start(ctx context.Context) {
	w.log.Info().Msg("ResultWorker started")

	batch := make([]*model.ResultRecord, 0, ResultBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= ResultBatchSize || time.Since(lastFlush) >= ResultBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, ResultPollTimeout, config.WorkerKey.PersistResultsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var rec model.ResultRecord
			if err := json.Unmarshal([]byte(item[1]), &rec); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			batch = append(batch, &rec)
		}
	}
}

func (w *ResultWorker) flushSafe(ctx context.Context, batch []*model.ResultRecord) {
	if len(batch) == 0 {
		return
	}

	if err := w.bulkInsert(ctx, batch); err != nil {
		w.log.Warn().Err(err).Msg("Bulk result insert failed, using fallback")

		for _, rec := range batch {
			if err := w.insertSingle(ctx, rec); err != nil {
				w.log.Error().Err(err).Str("session_id", rec.SessionID).Msg("insertSingle failed — requeueing")
				raw, _ := json.Marshal(rec)
				w.rdb.RPush(ctx, config.WorkerKey.PersistResultsQueue, raw)
			}
		}
	}
}

// bulkInsert archives a batch with a single UNNEST statement.
func (w *ResultWorker) bulkInsert(ctx context.Context, batch []*model.ResultRecord) error {
	n := len(batch)

	sessionIDs := make([]uuid.UUID, 0, n)
	testIDs := make([]int, 0, n)
	titles := make([]string, 0, n)
	candidates := make([]string, 0, n)
	scores := make([]float64, 0, n)
	corrects := make([]int, 0, n)
	wrongs := make([]int, 0, n)
	attempteds := make([]int, 0, n)
	accuracies := make([]int, 0, n)
	finishedAts := make([]time.Time, 0, n)

	for _, rec := range batch {
		sid, err := uuid.Parse(rec.SessionID)
		if err != nil {
			return err
		}
		sessionIDs = append(sessionIDs, sid)
		testIDs = append(testIDs, rec.TestID)
		titles = append(titles, rec.TestTitle)
		candidates = append(candidates, rec.Candidate)
		scores = append(scores, rec.TotalScore)
		corrects = append(corrects, rec.Correct)
		wrongs = append(wrongs, rec.Wrong)
		attempteds = append(attempteds, rec.Attempted)
		accuracies = append(accuracies, rec.Accuracy)
		finishedAts = append(finishedAts, rec.FinishedAt)
	}

	query := `
		INSERT INTO exam_results
			(session_id, test_id, test_title, candidate, total_score,
			 correct, wrong, attempted, accuracy, finished_at)
		SELECT * FROM UNNEST(
			$1::uuid[], $2::int[], $3::text[], $4::text[], $5::float8[],
			$6::int[], $7::int[], $8::int[], $9::int[], $10::timestamptz[]
		)
		ON CONFLICT (session_id) DO NOTHING
	`

	_, err := w.pool.Exec(ctx, query,
		sessionIDs, testIDs, titles, candidates, scores,
		corrects, wrongs, attempteds, accuracies, finishedAts,
	)
	return err
}

func (w *ResultWorker) insertSingle(ctx context.Context, rec *model.ResultRecord) error {
	sid, err := uuid.Parse(rec.SessionID)
	if err != nil {
		return err
	}

	_, err = w.pool.Exec(ctx,
		`INSERT INTO exam_results
			(session_id, test_id, test_title, candidate, total_score,
			 correct, wrong, attempted, accuracy, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (session_id) DO NOTHING`,
		sid, rec.TestID, rec.TestTitle, rec.Candidate, rec.TotalScore,
		rec.Correct, rec.Wrong, rec.Attempted, rec.Accuracy, rec.FinishedAt,
	)
	return err
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jagadishkatam/tis/internal/db"
	"github.com/jagadishkatam/tis/internal/model"
)

// StageResult holds metrics from the result-staging phase.
type StageResult struct {
	PeriodScoreRows int64
	DeltaRows       int64
	Duration        time.Duration
}

// Stage COPY-loads the per-(patient, period) totals and the per-patient
// deltas into Postgres through channel-backed CopyFromSources.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID uuid.UUID, res *ComputeResult) (*StageResult, error) {
	start := time.Now()

	scoreCh := make(chan *model.PeriodScoreRow, len(res.Totals))
	for _, t := range res.Totals {
		scoreCh <- &model.PeriodScoreRow{
			RunID:     runID,
			PatientID: t.PatientID,
			Period:    t.Period,
			TIS:       t.TIS,
		}
	}
	close(scoreCh)

	scoreRows, err := pool.CopyFrom(ctx,
		pgx.Identifier{"tis", "patient_period_scores"},
		model.PeriodScoreColumns(),
		db.NewChannelSource(scoreCh),
	)
	if err != nil {
		return nil, fmt.Errorf("stage period scores: %w", err)
	}

	deltaCh := make(chan *model.DeltaRow, len(res.Deltas))
	for _, d := range res.Deltas {
		deltaCh <- &model.DeltaRow{
			RunID:       runID,
			PatientID:   d.PatientID,
			TISPrevious: d.Previous,
			TISNew:      d.New,
			DeltaTIS:    d.Delta,
		}
	}
	close(deltaCh)

	deltaRows, err := pool.CopyFrom(ctx,
		pgx.Identifier{"tis", "patient_deltas"},
		model.DeltaColumns(),
		db.NewChannelSource(deltaCh),
	)
	if err != nil {
		return nil, fmt.Errorf("stage deltas: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("period_scores", scoreRows).
		Int64("deltas", deltaRows).
		Str("duration", dur.String()).
		Msg("staging complete")

	return &StageResult{
		PeriodScoreRows: scoreRows,
		DeltaRows:       deltaRows,
		Duration:        dur,
	}, nil
}

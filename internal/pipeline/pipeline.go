package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jagadishkatam/tis/internal/config"
	"github.com/jagadishkatam/tis/internal/model"
	"github.com/jagadishkatam/tis/internal/score"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full scoring pipeline: preflight → load → score →
// stage → finalize.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()

	classes := cfg.MedClasses()
	periods := score.Periods{Previous: cfg.Periods.Previous, New: cfg.Periods.New}

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyScored {
		log.Info().
			Int64("source_file_id", pf.SourceFileID).
			Str("sha256", pf.FileSHA256).
			Msg("file already scored, skipping (use --force to re-run)")
		return &model.RunSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			SourceFileID:  pf.SourceFileID,
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Load
	log.Info().Msg("loading dispensing records")
	if err := UpdateRunStatus(ctx, pool, pf.RunID, "loading"); err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}

	loadResult, err := Load(ctx, log, pf.FilePath)
	if err != nil {
		_ = FinishRun(ctx, pool, pf.RunID, "failed")
		return nil, &PipelineError{Phase: "load", Err: err}
	}

	// Phase 3: Score + reshape + delta (pure, in-memory)
	log.Info().Msg("scoring")
	if err := UpdateRunStatus(ctx, pool, pf.RunID, "scoring"); err != nil {
		return nil, &PipelineError{Phase: "score", Err: err}
	}
	computeResult := Compute(log, loadResult.Rows, classes, periods)

	// Phase 4: Stage results into Postgres
	log.Info().Msg("staging results")
	if err := UpdateRunStatus(ctx, pool, pf.RunID, "staging"); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	stageResult, err := Stage(ctx, pool, log, pf.RunID, computeResult)
	if err != nil {
		_ = FinishRun(ctx, pool, pf.RunID, "failed")
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	// Phase 5: Finalize
	log.Info().Msg("finalizing")
	finalizeDur, err := Finalize(ctx, pool, log, pf.SourceFileID, pf.RunID, cfg.Activate)
	if err != nil {
		_ = FinishRun(ctx, pool, pf.RunID, "failed")
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	summary := &model.RunSummary{
		FilePath:         pf.FilePath,
		FileSHA256:       pf.FileSHA256,
		SourceFileID:     pf.SourceFileID,
		RunID:            pf.RunID.String(),
		RowsRead:         loadResult.RowsRead,
		RowsRejected:     loadResult.RowsRejected,
		RowsScored:       int64(len(computeResult.Scored)),
		Patients:         int64(len(computeResult.Deltas)),
		PeriodScoreRows:  stageResult.PeriodScoreRows,
		DeltaRows:        stageResult.DeltaRows,
		DurationLoad:     loadResult.Duration,
		DurationScore:    computeResult.Duration,
		DurationStage:    stageResult.Duration,
		DurationFinalize: finalizeDur,
		DurationTotal:    time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_rejected", summary.RowsRejected).
		Int64("patients", summary.Patients).
		Int64("period_scores", summary.PeriodScoreRows).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("scoring pipeline complete")

	return summary, nil
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/jagadishkatam/tis/internal/sql"
)

// Finalize marks the run complete, optionally activates it as the current
// run for its source file, and runs ANALYZE on the result tables.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, sourceFileID int64, runID uuid.UUID, activate bool) (time.Duration, error) {
	start := time.Now()

	if err := FinishRun(ctx, pool, runID, "complete"); err != nil {
		return 0, fmt.Errorf("mark run complete: %w", err)
	}

	if activate {
		tag, err := pool.Exec(ctx, embedsql.DeactivateOlderRuns, sourceFileID, runID)
		if err != nil {
			return 0, fmt.Errorf("deactivate older runs: %w", err)
		}
		log.Info().Int64("deactivated", tag.RowsAffected()).Msg("older runs deactivated")

		if _, err := pool.Exec(ctx, embedsql.ActivateRun, runID); err != nil {
			return 0, fmt.Errorf("activate run: %w", err)
		}
		log.Info().Str("run_id", runID.String()).Msg("run activated")
	}

	if _, err := pool.Exec(ctx, embedsql.AnalyzeScores); err != nil {
		return 0, fmt.Errorf("analyze period scores: %w", err)
	}
	if _, err := pool.Exec(ctx, embedsql.AnalyzeDeltas); err != nil {
		return 0, fmt.Errorf("analyze deltas: %w", err)
	}
	log.Info().Msg("ANALYZE complete")

	return time.Since(start), nil
}

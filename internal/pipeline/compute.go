package pipeline

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/jagadishkatam/tis/internal/model"
	"github.com/jagadishkatam/tis/internal/score"
)

// ComputeResult holds the outputs of the in-memory scoring stages.
type ComputeResult struct {
	Scored   []*score.ScoredRecord
	Totals   []score.PeriodTotal
	Wide     []score.WideRow
	Deltas   []score.Delta
	Duration time.Duration
}

// Compute runs the pure scoring stages over the loaded records: per-class
// flagging and TIS, reshape to per-(patient, period) totals, wide pivot, and
// the between-period delta.
func Compute(log zerolog.Logger, rows []model.DispensingRow, classes []model.MedClass, periods score.Periods) *ComputeResult {
	start := time.Now()

	scored := score.ScoreAll(rows, classes)
	deduped := score.Deduplicate(scored, classes)
	totals := score.SumByPatientPeriod(score.ToLong(deduped, classes))
	wide := score.ToWide(totals)
	deltas := score.Deltas(wide, periods)

	dur := time.Since(start)
	log.Info().
		Int("records_scored", len(scored)).
		Int("period_totals", len(totals)).
		Int("patients", len(wide)).
		Str("duration", dur.String()).
		Msg("scoring complete")

	return &ComputeResult{
		Scored:   scored,
		Totals:   totals,
		Wide:     wide,
		Deltas:   deltas,
		Duration: dur,
	}
}

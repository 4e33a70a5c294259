package model

import "github.com/google/uuid"

// PeriodScoreRow is one aggregated TIS value per patient and period, the
// long-form result loaded into tis.patient_period_scores.
type PeriodScoreRow struct {
	RunID     uuid.UUID
	PatientID string
	Period    string
	TIS       float64
}

// PeriodScoreColumns returns the ordered column names for COPY into
// tis.patient_period_scores.
func PeriodScoreColumns() []string {
	return []string{"run_id", "patient_id", "period", "tis"}
}

// CopyValues returns the row values in PeriodScoreColumns order.
func (r *PeriodScoreRow) CopyValues() []any {
	return []any{r.RunID, r.PatientID, r.Period, r.TIS}
}

// DeltaRow is the final per-patient result: one TIS value per configured
// period and their signed difference. DeltaTIS is nil when the patient lacks
// either period.
type DeltaRow struct {
	RunID       uuid.UUID
	PatientID   string
	TISPrevious *float64
	TISNew      *float64
	DeltaTIS    *float64
}

// DeltaColumns returns the ordered column names for COPY into
// tis.patient_deltas.
func DeltaColumns() []string {
	return []string{"run_id", "patient_id", "tis_previous", "tis_new", "delta_tis"}
}

// CopyValues returns the row values in DeltaColumns order.
func (r *DeltaRow) CopyValues() []any {
	return []any{r.RunID, r.PatientID, r.TISPrevious, r.TISNew, r.DeltaTIS}
}

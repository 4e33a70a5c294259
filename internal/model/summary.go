package model

import "time"

// RunSummary captures metrics from a single scoring run.
type RunSummary struct {
	FilePath         string
	FileSHA256       string
	SourceFileID     int64
	RunID            string
	RowsRead         int64
	RowsRejected     int64
	RowsScored       int64
	Patients         int64
	PeriodScoreRows  int64
	DeltaRows        int64
	DurationLoad     time.Duration
	DurationScore    time.Duration
	DurationStage    time.Duration
	DurationFinalize time.Duration
	DurationTotal    time.Duration
}

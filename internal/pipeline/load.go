package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/jagadishkatam/tis/internal/model"
	"github.com/jagadishkatam/tis/internal/normalize"
	"github.com/jagadishkatam/tis/internal/parquetread"
)

const readBatchSize = 1024

// LoadResult holds the in-memory record table and metrics from the load phase.
type LoadResult struct {
	Rows         []model.DispensingRow
	RowsRead     int64
	RowsRejected int64
	Duration     time.Duration
}

// Load streams all dispensing records from the Parquet file into memory.
// Rows that fail boundary validation (empty identifiers, non-finite numerics)
// are rejected with the offending row number logged; the load continues.
func Load(ctx context.Context, log zerolog.Logger, filePath string) (*LoadResult, error) {
	start := time.Now()

	reader, err := parquetread.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("load open: %w", err)
	}
	defer reader.Close()

	rows := make([]model.DispensingRow, 0, reader.NumRows())
	buf := make([]model.DispensingRow, readBatchSize)

	var rowNum, rowsRejected int64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			rowNum++
			if valErr := normalize.ValidateRow(&buf[i]); valErr != nil {
				rowsRejected++
				log.Warn().Err(valErr).Int64("row", rowNum).Msg("row rejected")
				continue
			}
			rows = append(rows, buf[i])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read parquet at row %d: %w", rowNum, readErr)
		}
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_read", rowNum).
		Int64("rows_rejected", rowsRejected).
		Str("duration", dur.String()).
		Msg("load complete")

	return &LoadResult{
		Rows:         rows,
		RowsRead:     rowNum,
		RowsRejected: rowsRejected,
		Duration:     dur,
	}, nil
}

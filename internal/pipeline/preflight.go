package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jagadishkatam/tis/internal/normalize"
	"github.com/jagadishkatam/tis/internal/parquetread"
	embedsql "github.com/jagadishkatam/tis/internal/sql"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the file.
	FileSHA256 string
	// FileSize is the file size in bytes from os.Stat.
	FileSize int64
	// SourceFileID is the DB primary key for this input file, inserted or
	// looked up by sha256.
	SourceFileID int64
	// RunID is a freshly generated UUIDv4 identifying this scoring run.
	// Zero when AlreadyScored is true.
	RunID uuid.UUID
	// NumRows is the total row count reported by the Parquet file metadata.
	NumRows int64
	// AlreadyScored is true when the file already has a complete run and
	// force mode is off, signaling the pipeline can skip this file.
	AlreadyScored bool
}

// Preflight hashes the file, validates the Parquet schema, registers the
// source file, and creates the run record. With force set, prior runs for
// the same file are deleted before the new run is created.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	reader, err := parquetread.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	defer reader.Close()

	if err := parquetread.ValidateSchema(reader.Schema()); err != nil {
		return nil, fmt.Errorf("preflight validate: %w", err)
	}

	numRows := reader.NumRows()

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("rows", numRows).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	sourceFileID, err := registerSourceFile(ctx, pool, filePath, sha, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("preflight register file: %w", err)
	}

	if !force {
		var complete bool
		if err := pool.QueryRow(ctx, embedsql.HasCompleteRun, sourceFileID).Scan(&complete); err != nil {
			return nil, fmt.Errorf("preflight check runs: %w", err)
		}
		if complete {
			return &PreflightResult{
				FilePath:      filePath,
				FileSHA256:    sha,
				FileSize:      stat.Size(),
				SourceFileID:  sourceFileID,
				NumRows:       numRows,
				AlreadyScored: true,
			}, nil
		}
	} else {
		// Re-run: drop prior runs and their results (FK cascade).
		if _, err := pool.Exec(ctx, embedsql.DeleteRunsForFile, sourceFileID); err != nil {
			return nil, fmt.Errorf("preflight delete prior runs: %w", err)
		}
	}

	runID := uuid.New()
	if _, err := pool.Exec(ctx, embedsql.CreateRun, runID, sourceFileID); err != nil {
		return nil, fmt.Errorf("preflight create run: %w", err)
	}

	return &PreflightResult{
		FilePath:     filePath,
		FileSHA256:   sha,
		FileSize:     stat.Size(),
		SourceFileID: sourceFileID,
		RunID:        runID,
		NumRows:      numRows,
	}, nil
}

func registerSourceFile(ctx context.Context, pool *pgxpool.Pool, filePath, sha string, fileSize int64) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, embedsql.RegisterSourceFile,
		filepath.Base(filePath), sha, fileSize,
	).Scan(&id)
	if err == pgx.ErrNoRows {
		// Already registered (ON CONFLICT DO NOTHING returned no rows).
		if err2 := pool.QueryRow(ctx, embedsql.LookupSourceFile, sha).Scan(&id); err2 != nil {
			return 0, fmt.Errorf("lookup existing source file: %w", err2)
		}
		return id, nil
	}
	if err != nil {
		return 0, fmt.Errorf("register source file: %w", err)
	}
	return id, nil
}

// UpdateRunStatus updates the run's status.
func UpdateRunStatus(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateRunStatus, runID, status)
	return err
}

// FinishRun sets a terminal status and stamps finished_at.
func FinishRun(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, status string) error {
	_, err := pool.Exec(ctx, embedsql.FinishRun, runID, status)
	return err
}

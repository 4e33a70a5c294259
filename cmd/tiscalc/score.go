package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jagadishkatam/tis/internal/db"
	"github.com/jagadishkatam/tis/internal/exitcode"
	"github.com/jagadishkatam/tis/internal/logging"
	"github.com/jagadishkatam/tis/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a Parquet file of dispensing records and load results",
	RunE:  runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.BoolVar(&cfg.Force, "force", false, "Re-score even if file SHA already has a complete run")
	f.BoolVar(&cfg.Activate, "activate", false, "Mark this run as the active one for its source file")
	_ = scoreCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if cfgFile != "" {
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := pipeline.Run(ctx, pool, log, &cfg)
	if err != nil {
		if pe, ok := err.(*pipeline.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("scoring failed")
			switch pe.Phase {
			case "preflight":
				os.Exit(exitcode.ValidationError)
			case "stage", "finalize":
				os.Exit(exitcode.StageError)
			default:
				os.Exit(exitcode.ScoreError)
			}
		}
		log.Error().Err(err).Msg("scoring failed")
		os.Exit(exitcode.ScoreError)
	}

	fmt.Printf("Scoring complete: %d rows read, %d patients, %d period scores (%.1fs)\n",
		summary.RowsRead, summary.Patients, summary.PeriodScoreRows, summary.DurationTotal.Seconds())
	return nil
}

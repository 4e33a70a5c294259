package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jagadishkatam/tis/internal/exitcode"
	"github.com/jagadishkatam/tis/internal/logging"
	"github.com/jagadishkatam/tis/internal/model"
	"github.com/jagadishkatam/tis/internal/normalize"
	"github.com/jagadishkatam/tis/internal/parquetread"
	"github.com/jagadishkatam/tis/internal/score"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if cfgFile != "" {
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	reader, err := parquetread.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open parquet file")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	if err := parquetread.ValidateSchema(reader.Schema()); err != nil {
		log.Error().Err(err).Msg("schema validation failed")
		os.Exit(exitcode.ValidationError)
	}

	numRows := reader.NumRows()
	classes := cfg.MedClasses()

	// Sample rows to estimate the class and period split
	sampleSize := int64(1000)
	if sampleSize > numRows {
		sampleSize = numRows
	}

	classCounts := make(map[string]int64)
	periodCounts := make(map[string]int64)
	patients := make(map[string]bool)
	var unrecognized int64

	buf := make([]model.DispensingRow, 256)
	var sampled int64

	for sampled < sampleSize {
		n, readErr := reader.Read(buf)
		for i := 0; i < n && sampled < sampleSize; i++ {
			sampled++
			row := &buf[i]
			patients[row.PatientID] = true
			periodCounts[row.Period]++

			flags := score.Indicators(row.MedClass, classes)
			matched := false
			for _, c := range classes {
				if flags[c.Column] == 1 {
					classCounts[c.Name]++
					matched = true
				}
			}
			if !matched {
				unrecognized++
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			log.Error().Err(readErr).Msg("failed to read sample rows")
			os.Exit(exitcode.ValidationError)
		}
	}

	fmt.Println("=== tiscalc plan ===")
	fmt.Printf("File:       %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:    %s\n", sha)
	fmt.Printf("Size:       %d bytes\n", stat.Size())
	fmt.Printf("Total rows: %d\n", numRows)
	fmt.Printf("Sampled:    %d rows, %d patients\n", sampled, len(patients))
	fmt.Printf("Periods:    previous=%q new=%q\n", cfg.Periods.Previous, cfg.Periods.New)
	fmt.Println()
	fmt.Println("Class distribution (sampled):")

	for _, c := range classes {
		count := classCounts[c.Name]
		if count > 0 && sampled > 0 {
			projected := count * numRows / sampled
			fmt.Printf("  %-15s %6d sampled → ~%d projected rows\n", c.Name, count, projected)
		}
	}
	if unrecognized > 0 {
		fmt.Printf("  %-15s %6d sampled (excluded from scoring)\n", "unrecognized", unrecognized)
	}

	fmt.Println()
	fmt.Println("Period distribution (sampled):")
	for period, count := range periodCounts {
		fmt.Printf("  %-15s %6d\n", period, count)
	}
	fmt.Println("\nSchema validation: OK")

	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jagadishkatam/tis/internal/config"
)

var cfg config.Config

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tiscalc",
	Short: "Therapeutic Intensity Score calculator",
	Long:  "Reads antihypertensive dispensing records from Parquet, computes per-class TIS, aggregates per patient and period, and loads the results into Postgres.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("TIS_DB_URL"), "Postgres connection string (or set TIS_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfgFile, "config", "", "Path to YAML config with classes and period names")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

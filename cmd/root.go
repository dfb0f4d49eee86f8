package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/labour/internal/config"
	"github.com/Tiliavir/labour/internal/roster"
	"github.com/Tiliavir/labour/internal/storage"
)

var (
	configPath string
	inputPath  string
	strict     bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "labour",
	Short: "Labour – hourly and per-period labour breakdown from clock punches",
	Long: `labour reads employees and their clock-in/clock-out punches, splits every
punch into hourly buckets and reports the hours worked per day and per
labour period (05-12, 12-18, 18-23, 23-05).`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.labour/config.json)")
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "Dataset file (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail if any punch is rejected")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(punchesCmd)
}

// setup loads the config and installs the process-wide logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := loaded.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	cfg = loaded
	return nil
}

// loadRoster reads the dataset and applies every punch. Rejected records
// are logged and skipped unless --strict is set.
func loadRoster() (*roster.Roster, error) {
	path := inputPath
	if path == "" {
		path = cfg.Report.Input
	}

	ds, err := storage.LoadDataset(path)
	if err != nil {
		return nil, err
	}

	r, rejected := roster.Build(ds)
	for _, rej := range rejected {
		attrs := []any{"error", rej.Err}
		if rej.Punch != nil {
			attrs = append(attrs,
				"employee_id", rej.Punch.EmployeeID,
				"clock_in", rej.Punch.ClockIn,
				"clock_out", rej.Punch.ClockOut)
		}
		if rej.Employee != nil {
			attrs = append(attrs, "employee_id", rej.Employee.ID)
		}
		slog.Warn("record rejected", attrs...)
	}
	slog.Debug("dataset loaded", "path", path, "employees", r.Len(), "punches", len(ds.Clocks), "rejected", len(rejected))

	if strict && len(rejected) > 0 {
		return nil, fmt.Errorf("%d record(s) rejected in %s", len(rejected), path)
	}
	return r, nil
}

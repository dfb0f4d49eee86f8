package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/labour/internal/model"
	"github.com/Tiliavir/labour/internal/roster"
	"github.com/Tiliavir/labour/internal/storage"
	"github.com/Tiliavir/labour/internal/timecalc"
)

var (
	exportOutput   string
	exportFormat   string
	exportEmployee int64
	exportFrom     string
	exportTo       string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the labour report of every employee to a file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOutput, "output", "", `Output file, "-" for stdout (default from config)`)
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: json, yaml (default from config)")
	exportCmd.Flags().Int64Var(&exportEmployee, "employee", 0, "Only export this employee id (0 = all)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "First date to include (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Last date to include (YYYY-MM-DD)")
}

func runExport(cmd *cobra.Command, args []string) error {
	rng, err := timecalc.ParseRange(exportFrom, exportTo)
	if err != nil {
		return err
	}

	format, err := storage.ParseFormat(firstNonEmpty(exportFormat, cfg.Report.Format))
	if err != nil {
		return err
	}

	r, err := loadRoster()
	if err != nil {
		return err
	}

	docs, err := selectReports(r, exportEmployee, rng)
	if err != nil {
		return err
	}

	out := firstNonEmpty(exportOutput, cfg.Report.Output)
	if out == "-" {
		return storage.Encode(cmd.OutOrStdout(), docs, format)
	}
	if err := storage.SaveReport(out, docs, format); err != nil {
		return err
	}
	slog.Info("report exported", "path", out, "format", format, "employees", len(docs))
	return nil
}

// selectReports returns the report of one employee, or of all when id is 0.
func selectReports(r *roster.Roster, id int64, rng timecalc.Range) ([]model.EmployeeReport, error) {
	if id == 0 {
		return r.Reports(rng), nil
	}
	e, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return []model.EmployeeReport{e.Report(rng)}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// csvEscape quotes a CSV field if it contains special characters.
func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

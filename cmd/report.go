package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/labour/internal/labour"
	"github.com/Tiliavir/labour/internal/roster"
	"github.com/Tiliavir/labour/internal/storage"
	"github.com/Tiliavir/labour/internal/timecalc"
)

var (
	reportFormat   string
	reportEmployee int64
	reportFrom     string
	reportTo       string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show labour hours per day and period",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
	reportCmd.Flags().Int64Var(&reportEmployee, "employee", 0, "Only show this employee id (0 = all)")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "First date to include (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "Last date to include (YYYY-MM-DD)")
}

func runReport(cmd *cobra.Command, args []string) error {
	rng, err := timecalc.ParseRange(reportFrom, reportTo)
	if err != nil {
		return err
	}

	r, err := loadRoster()
	if err != nil {
		return err
	}

	var employees []*roster.Employee
	if reportEmployee != 0 {
		e, err := r.Get(reportEmployee)
		if err != nil {
			return err
		}
		employees = []*roster.Employee{e}
	} else {
		employees = r.Employees()
	}

	out := cmd.OutOrStdout()
	switch reportFormat {
	case "csv":
		printCSV(out, employees, rng)
	case "json":
		docs, err := selectReports(r, reportEmployee, rng)
		if err != nil {
			return err
		}
		return storage.Encode(out, docs, storage.FormatJSON)
	case "md":
		printTable(out, employees, rng)
	default:
		return fmt.Errorf("unsupported format %q (want md, csv or json)", reportFormat)
	}
	return nil
}

func printCSV(w io.Writer, employees []*roster.Employee, rng timecalc.Range) {
	fmt.Fprintln(w, "employee_id,first_name,last_name,date,total,period1,period2,period3,period4")
	for _, e := range employees {
		for _, d := range labour.ReportBetween(e.Ledger, rng) {
			fmt.Fprintf(w, "%d,%s,%s,%s,%.1f,%.1f,%.1f,%.1f,%.1f\n",
				e.ID, csvEscape(e.FirstName), csvEscape(e.LastName), d.Date, d.Total,
				d.Periods.Period1, d.Periods.Period2, d.Periods.Period3, d.Periods.Period4)
		}
	}
}

const rule = "------------------------------------------------------"

func printTable(w io.Writer, employees []*roster.Employee, rng timecalc.Range) {
	for i, e := range employees {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s (#%d)\n", e.FirstName, e.LastName, e.ID)
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "%-12s%7s%9s%9s%9s%9s\n", "Date", "Total", "Period1", "Period2", "Period3", "Period4")

		// Sum in seconds so the footer is not built from rounded rows.
		var total int64
		var periods [4]int64
		for _, day := range e.Ledger.Days() {
			if !rng.Contains(day.Date()) {
				continue
			}
			d := day.Report()
			fmt.Fprintf(w, "%-12s%7.1f%9.1f%9.1f%9.1f%9.1f\n", d.Date, d.Total,
				d.Periods.Period1, d.Periods.Period2, d.Periods.Period3, d.Periods.Period4)
			total += day.Total()
			for j, s := range day.PeriodSeconds() {
				periods[j] += s
			}
		}

		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "%-12s%7.1f%9.1f%9.1f%9.1f%9.1f\n", "Total", labour.RoundHours(total),
			labour.RoundHours(periods[0]), labour.RoundHours(periods[1]),
			labour.RoundHours(periods[2]), labour.RoundHours(periods[3]))
		fmt.Fprintf(w, "Worked %s\n", timecalc.FormatDuration(total))
	}
}

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/labour/internal/labour"
	"github.com/Tiliavir/labour/internal/timecalc"
)

var punchesEmployee int64

var punchesCmd = &cobra.Command{
	Use:   "punches",
	Short: "List the accepted punches of one employee",
	Args:  cobra.NoArgs,
	RunE:  runPunches,
}

func init() {
	punchesCmd.Flags().Int64Var(&punchesEmployee, "employee", 0, "Employee id (required)")
}

func runPunches(cmd *cobra.Command, args []string) error {
	if punchesEmployee == 0 {
		return errors.New("--employee is required")
	}

	r, err := loadRoster()
	if err != nil {
		return err
	}
	e, err := r.Get(punchesEmployee)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (#%d)\n", e.FirstName, e.LastName, e.ID)
	printPunches(cmd.OutOrStdout(), e.Punches)
	return nil
}

// printPunches groups punches by clock-in date and prints them.
func printPunches(w io.Writer, punches []labour.Interval) {
	if len(punches) == 0 {
		fmt.Fprintln(w, "No punches found.")
		return
	}

	var currentDay timecalc.Date
	for _, p := range punches {
		day := p.Date()
		if day != currentDay {
			fmt.Fprintln(w, day)
			currentDay = day
		}

		endStr := p.End().Format("15:04:05")
		if !timecalc.SameDay(p.Start(), p.End()) {
			endStr = p.End().Format(timecalc.ClockLayout)
		}
		fmt.Fprintf(w, "  %s–%s  (%s)\n", p.Start().Format("15:04:05"), endStr, formatElapsed(p.Seconds()))
	}
}

func formatElapsed(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

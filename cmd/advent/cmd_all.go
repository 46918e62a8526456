package main

import (
	"github.com/spf13/cobra"

	"advent/internal/report"
)

// allCmd solves every registered day
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every day in order",
	Long: `Solves all days in ascending order against their puzzle inputs and
prints each day's answers with per-day and total timing. The first
failing day aborts the run.`,
	RunE: runAll,
}

func runAll(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	reports, err := a.runner.RunAll()
	if err != nil {
		return err
	}
	cmd.Print(report.RenderAll(reports))
	return nil
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"advent/internal/report"
)

// runCmd solves a single day
var runCmd = &cobra.Command{
	Use:   "run [day]",
	Short: "Solve one day against its puzzle input",
	Long: `Solves both parts of a single day and prints the answers with timing.

Example:
  advent run 13`,
	Args: cobra.ExactArgs(1),
	RunE: runDay,
}

func runDay(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", args[0], err)
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	rep, err := a.runner.Run(day)
	if err != nil {
		return err
	}
	cmd.Print(report.Render(rep))
	return nil
}

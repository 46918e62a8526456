package main

import (
	"github.com/spf13/cobra"

	"advent/internal/report"
)

// listCmd prints the implemented days
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the implemented days",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	cmd.Print(report.RenderList(a.registry))
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/internal/report"
	"advent/internal/solver"
)

// checkCmd compares solved answers to the ones recorded in config
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every day against recorded answers",
	Long: `Solves all days and compares the results to the answers recorded in
the config file's answers section. Days without recorded answers are
skipped. Exits non-zero if any day fails.

Example config entry:
  answers:
    1:
      part_one: "514579"
      part_two: "241861950"`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	return checkAnswers(cmd, a)
}

// checkAnswers solves the app's registered days and compares each to the
// recorded answers.
func checkAnswers(cmd *cobra.Command, a *app) error {
	failed := 0
	for _, day := range a.registry.Days() {
		rep, err := a.runner.Run(day)
		if err != nil {
			return err
		}

		result := report.CheckResult{Report: rep, Status: report.CheckSkip}
		if want, ok := a.cfg.Answers[day]; ok {
			result.Want = solver.Result{PartOne: want.PartOne, PartTwo: want.PartTwo}
			if rep.Result == result.Want {
				result.Status = report.CheckPass
			} else {
				result.Status = report.CheckFail
				failed++
				logger.Warn("answer mismatch",
					zap.Int("day", day),
					zap.String("got_part_one", rep.Result.PartOne),
					zap.String("want_part_one", want.PartOne),
					zap.String("got_part_two", rep.Result.PartTwo),
					zap.String("want_part_two", want.PartTwo))
			}
		}
		cmd.Println(report.RenderCheck(result))
	}

	if failed > 0 {
		return fmt.Errorf("%d day(s) failed the answer check", failed)
	}
	return nil
}

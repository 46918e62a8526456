// Package report renders solver results for the terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"advent/internal/solver"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	timingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	skipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Render formats one day's report as a short block.
func Render(r solver.RunReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("Day %d: %s", r.Day, r.Title)))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("part one:"), answerStyle.Render(r.Result.PartOne))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("part two:"), answerStyle.Render(r.Result.PartTwo))
	fmt.Fprintf(&b, "  %s\n", timingStyle.Render(formatElapsed(r.Elapsed)))
	return b.String()
}

// RenderAll formats every report followed by the total elapsed time.
func RenderAll(reports []solver.RunReport) string {
	var b strings.Builder
	var total time.Duration
	for _, r := range reports {
		b.WriteString(Render(r))
		total += r.Elapsed
	}
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render(fmt.Sprintf("%d days in", len(reports))),
		answerStyle.Render(formatElapsed(total)))
	return b.String()
}

// RenderList formats the registered days as a table of contents.
func RenderList(registry *solver.Registry) string {
	var b strings.Builder
	for _, day := range registry.Days() {
		s, err := registry.Lookup(day)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s  %s\n",
			labelStyle.Render(fmt.Sprintf("%2d", day)),
			answerStyle.Render(s.Title()))
	}
	return b.String()
}

// CheckStatus is the outcome of comparing one day against its recorded
// answers.
type CheckStatus int

const (
	// CheckPass means both parts matched the recorded answers.
	CheckPass CheckStatus = iota
	// CheckFail means at least one part differed.
	CheckFail
	// CheckSkip means no answers are recorded for the day.
	CheckSkip
)

// CheckResult pairs a day's report with its comparison outcome.
type CheckResult struct {
	Report solver.RunReport
	Status CheckStatus
	Want   solver.Result
}

// RenderCheck formats one comparison outcome as a single line.
func RenderCheck(c CheckResult) string {
	day := labelStyle.Render(fmt.Sprintf("day %2d", c.Report.Day))
	switch c.Status {
	case CheckPass:
		return fmt.Sprintf("%s %s  %s", passStyle.Render("PASS"), day, timingStyle.Render(formatElapsed(c.Report.Elapsed)))
	case CheckFail:
		return fmt.Sprintf("%s %s  got %s / %s, want %s / %s",
			failStyle.Render("FAIL"), day,
			c.Report.Result.PartOne, c.Report.Result.PartTwo,
			c.Want.PartOne, c.Want.PartTwo)
	default:
		return fmt.Sprintf("%s %s  no recorded answers", skipStyle.Render("SKIP"), day)
	}
}

// formatElapsed trims duration noise below the useful resolution.
func formatElapsed(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Microsecond).String()
	}
}

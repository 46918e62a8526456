// Package day06 tallies customs declaration answers per group.
package day06

import (
	"strconv"
	"strings"

	"advent/internal/solver"
)

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 6 }
func (*Solver) Title() string { return "Custom Customs" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	groups := parseGroups(input)

	anyone := 0
	everyone := 0
	for _, g := range groups {
		anyone += g.countAnyone()
		everyone += g.countEveryone()
	}

	return solver.Result{
		PartOne: strconv.Itoa(anyone),
		PartTwo: strconv.Itoa(everyone),
	}, nil
}

// group holds one line of answers per person.
type group []string

func parseGroups(input string) []group {
	var groups []group
	for _, block := range strings.Split(strings.TrimSpace(input), "\n\n") {
		var g group
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				g = append(g, line)
			}
		}
		if len(g) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// countAnyone counts questions answered yes by at least one person.
func (g group) countAnyone() int {
	seen := make(map[rune]bool)
	for _, person := range g {
		for _, q := range person {
			seen[q] = true
		}
	}
	return len(seen)
}

// countEveryone counts questions answered yes by every person.
func (g group) countEveryone() int {
	counts := make(map[rune]int)
	for _, person := range g {
		for _, q := range person {
			counts[q]++
		}
	}
	total := 0
	for _, n := range counts {
		if n == len(g) {
			total++
		}
	}
	return total
}

// Package day10 chains joltage adapters and counts arrangements.
package day10

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advent/internal/solver"
)

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 10 }
func (*Solver) Title() string { return "Adapter Array" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	adapters, err := parseAdapters(input)
	if err != nil {
		return solver.Result{}, err
	}
	if len(adapters) == 0 {
		return solver.Result{}, fmt.Errorf("no adapters in input")
	}

	ones, threes, err := countDifferences(adapters)
	if err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		PartOne: strconv.Itoa(ones * threes),
		PartTwo: strconv.FormatInt(countArrangements(adapters), 10),
	}, nil
}

// parseAdapters returns the adapter joltages sorted ascending, with the
// charging outlet (0) and the built-in adapter (max + 3) included.
func parseAdapters(input string) ([]int, error) {
	adapters := []int{0}
	for _, field := range strings.Fields(input) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("failed to parse joltage %q: %w", field, err)
		}
		adapters = append(adapters, n)
	}
	if len(adapters) == 1 {
		return nil, nil
	}
	sort.Ints(adapters)
	adapters = append(adapters, adapters[len(adapters)-1]+3)
	return adapters, nil
}

func countDifferences(adapters []int) (ones, threes int, err error) {
	for i := 1; i < len(adapters); i++ {
		switch adapters[i] - adapters[i-1] {
		case 1:
			ones++
		case 2:
		case 3:
			threes++
		default:
			return 0, 0, fmt.Errorf("adapters %d and %d differ by more than 3 jolts", adapters[i-1], adapters[i])
		}
	}
	return ones, threes, nil
}

// countArrangements counts the distinct ways to chain a subset of the
// adapters from the outlet to the device. Paths to each adapter are
// accumulated from the up-to-three reachable predecessors.
func countArrangements(adapters []int) int64 {
	paths := make([]int64, len(adapters))
	paths[0] = 1
	for i := 1; i < len(adapters); i++ {
		for j := i - 1; j >= 0 && adapters[i]-adapters[j] <= 3; j-- {
			paths[i] += paths[j]
		}
	}
	return paths[len(paths)-1]
}

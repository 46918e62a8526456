// Package day09 breaks the XMAS cipher's sliding-window sum check.
package day09

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solver"
)

const preambleLen = 25

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 9 }
func (*Solver) Title() string { return "Encoding Error" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	numbers, err := parseNumbers(input)
	if err != nil {
		return solver.Result{}, err
	}

	invalid, err := findInvalid(numbers, preambleLen)
	if err != nil {
		return solver.Result{}, err
	}

	weakness, err := findWeakness(numbers, invalid)
	if err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		PartOne: strconv.FormatInt(invalid, 10),
		PartTwo: strconv.FormatInt(weakness, 10),
	}, nil
}

func parseNumbers(input string) ([]int64, error) {
	var numbers []int64
	for _, line := range strings.Fields(input) {
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse number %q: %w", line, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// findInvalid returns the first number that is not the sum of two
// distinct numbers among the preceding window.
func findInvalid(numbers []int64, window int) (int64, error) {
	for i := window; i < len(numbers); i++ {
		if !hasPairSum(numbers[i-window:i], numbers[i]) {
			return numbers[i], nil
		}
	}
	return 0, fmt.Errorf("every number is a valid pair sum")
}

func hasPairSum(window []int64, target int64) bool {
	for i := 0; i < len(window); i++ {
		for j := i + 1; j < len(window); j++ {
			if window[i]+window[j] == target {
				return true
			}
		}
	}
	return false
}

// findWeakness locates a contiguous run of at least two numbers summing
// to target and returns the run's smallest plus largest value.
func findWeakness(numbers []int64, target int64) (int64, error) {
	lo, hi := 0, 1
	sum := numbers[0]
	for hi <= len(numbers) {
		switch {
		case sum == target && hi-lo >= 2:
			return runWeakness(numbers[lo:hi]), nil
		case sum < target || hi-lo < 2:
			if hi == len(numbers) {
				hi++
				continue
			}
			sum += numbers[hi]
			hi++
		default:
			sum -= numbers[lo]
			lo++
		}
	}
	return 0, fmt.Errorf("no contiguous run sums to %d", target)
}

func runWeakness(run []int64) int64 {
	min, max := run[0], run[0]
	for _, n := range run[1:] {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	return min + max
}

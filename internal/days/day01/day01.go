// Package day01 solves Report Repair: find which expense report entries
// sum to 2020 and multiply them together.
//
// For part one, once the list is sorted, anything larger than 2020 minus
// the smallest entry can be discarded, which gives a new maximum, which in
// turn gives a new minimum. Narrowing the bounds recursively either meets
// in the middle or lands on the pair. Part two fixes each entry in turn and
// runs the pair search against the remainder.
package day01

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advent/internal/solver"
)

const targetSum = 2020

// Solver implements day 1.
type Solver struct{}

// New returns the day 1 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 1 }
func (*Solver) Title() string { return "Report Repair" }

// Solve finds the pair and triple of entries summing to 2020 and answers
// with their products.
func (s *Solver) Solve(input string) (solver.Result, error) {
	entries := parseEntries(input)
	if len(entries) < 3 {
		return solver.Result{}, fmt.Errorf("expected at least 3 entries, got %d", len(entries))
	}

	a, b, ok := findPairSum(entries, targetSum)
	if !ok {
		return solver.Result{}, fmt.Errorf("no pair of entries sums to %d", targetSum)
	}

	x, y, z, ok := findTripleSum(entries, targetSum)
	if !ok {
		return solver.Result{}, fmt.Errorf("no triple of entries sums to %d", targetSum)
	}

	return solver.Result{
		PartOne: strconv.Itoa(a * b),
		PartTwo: strconv.Itoa(x * y * z),
	}, nil
}

// parseEntries reads one integer per line, skipping anything unparsable.
func parseEntries(input string) []int {
	var entries []int
	for _, line := range strings.Split(input, "\n") {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			entries = append(entries, n)
		}
	}
	return entries
}

// findPairSum sorts the entries and narrows the candidate bounds from both
// ends until a pair summing to target is found or the bounds meet.
func findPairSum(entries []int, target int) (int, int, bool) {
	if len(entries) < 2 {
		return 0, 0, false
	}
	sort.Ints(entries)
	return findPairSumIter(entries, target, 0, len(entries)-1)
}

// findPairSumIter assumes entries is sorted. Take the lowest entry as part
// of the sum and binary-search the largest entry that keeps the pair at or
// under the target; if neither bound completes the pair, tighten the lower
// bound the same way and recurse.
func findPairSumIter(entries []int, target, minIdx, maxIdx int) (int, int, bool) {
	min, max := entries[minIdx], entries[maxIdx]
	if min+max == target {
		return min, max, true
	}

	newMaxIdx := findNewBound(entries, target-min, minIdx+1, maxIdx)
	newMax := entries[newMaxIdx]
	if min+newMax == target {
		return min, newMax, true
	}

	newMinIdx := findNewBound(entries, target-newMax, minIdx, newMaxIdx-1)
	if newMinIdx+1 >= newMaxIdx {
		return 0, 0, false
	}

	return findPairSumIter(entries, target, newMinIdx, newMaxIdx)
}

// findNewBound binary-searches the largest index in [minIdx, maxIdx] whose
// value is at most target.
func findNewBound(entries []int, target, minIdx, maxIdx int) int {
	midIdx := (minIdx + maxIdx) / 2
	if midIdx == minIdx {
		return minIdx
	}
	if entries[midIdx] > target {
		return findNewBound(entries, target, minIdx, midIdx)
	}
	return findNewBound(entries, target, midIdx, maxIdx)
}

// findTripleSum fixes each entry in turn and looks for a pair in the rest
// of the sorted list completing the target sum.
func findTripleSum(entries []int, target int) (int, int, int, bool) {
	if len(entries) < 3 {
		return 0, 0, 0, false
	}
	sort.Ints(entries)
	maxIdx := len(entries) - 1
	for i := 0; i+3 < len(entries); i++ {
		a := entries[i]
		b, c, ok := findPairSumIter(entries, target-a, i+1, maxIdx)
		if ok {
			return a, b, c, true
		}
	}
	return 0, 0, 0, false
}

// Package day15 plays the elves' memory game.
package day15

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solver"
)

const (
	partOneTurns = 2020
	partTwoTurns = 30000000
)

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 15 }
func (*Solver) Title() string { return "Rambunctious Recitation" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	seeds, err := parseSeeds(input)
	if err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		PartOne: strconv.Itoa(play(seeds, partOneTurns)),
		PartTwo: strconv.Itoa(play(seeds, partTwoTurns)),
	}, nil
}

func parseSeeds(input string) ([]int, error) {
	var seeds []int
	for _, field := range strings.Split(strings.TrimSpace(input), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("failed to parse starting number %q: %w", field, err)
		}
		seeds = append(seeds, n)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no starting numbers in input")
	}
	return seeds, nil
}

// play returns the number spoken on the given turn. Each spoken number
// maps to the turn it was last said; a number seen before is followed
// by the gap since that turn, otherwise by zero.
func play(seeds []int, turns int) int {
	if turns <= len(seeds) {
		return seeds[turns-1]
	}
	lastSpoken := make(map[int]int, turns/8)
	for i, n := range seeds[:len(seeds)-1] {
		lastSpoken[n] = i + 1
	}
	current := seeds[len(seeds)-1]
	for turn := len(seeds); turn < turns; turn++ {
		next := 0
		if prev, ok := lastSpoken[current]; ok {
			next = turn - prev
		}
		lastSpoken[current] = turn
		current = next
	}
	return current
}

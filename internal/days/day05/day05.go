// Package day05 decodes binary-space-partitioned boarding passes.
package day05

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advent/internal/solver"
)

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 5 }
func (*Solver) Title() string { return "Binary Boarding" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	ids, err := parseSeatIDs(input)
	if err != nil {
		return solver.Result{}, err
	}
	if len(ids) == 0 {
		return solver.Result{}, fmt.Errorf("no boarding passes in input")
	}

	sort.Ints(ids)
	highest := ids[len(ids)-1]

	seat, err := findMissingSeat(ids)
	if err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		PartOne: strconv.Itoa(highest),
		PartTwo: strconv.Itoa(seat),
	}, nil
}

func parseSeatIDs(input string) ([]int, error) {
	var ids []int
	for _, line := range strings.Fields(input) {
		id, err := seatID(line)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// seatID treats the pass as a 10-bit number where B and R are ones.
func seatID(pass string) (int, error) {
	if len(pass) != 10 {
		return 0, fmt.Errorf("boarding pass %q is not 10 characters", pass)
	}
	id := 0
	for _, c := range pass {
		id <<= 1
		switch c {
		case 'B', 'R':
			id |= 1
		case 'F', 'L':
		default:
			return 0, fmt.Errorf("boarding pass %q has invalid character %q", pass, c)
		}
	}
	return id, nil
}

// findMissingSeat expects ids to be sorted and returns the single gap
// between two occupied seats.
func findMissingSeat(ids []int) (int, error) {
	for i := 1; i < len(ids); i++ {
		if ids[i]-ids[i-1] == 2 {
			return ids[i] - 1, nil
		}
	}
	return 0, fmt.Errorf("no empty seat between occupied seats")
}

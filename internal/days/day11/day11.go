// Package day11 simulates seating rules until the layout stabilizes.
package day11

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solver"
)

type cell byte

const (
	floor    cell = '.'
	empty    cell = 'L'
	occupied cell = '#'
)

type layout [][]cell

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 11 }
func (*Solver) Title() string { return "Seating System" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	seats, err := parseLayout(input)
	if err != nil {
		return solver.Result{}, err
	}

	adjacent := stabilize(seats, countAdjacent, 4)
	visible := stabilize(seats, countVisible, 5)

	return solver.Result{
		PartOne: strconv.Itoa(adjacent.countOccupied()),
		PartTwo: strconv.Itoa(visible.countOccupied()),
	}, nil
}

func parseLayout(input string) (layout, error) {
	var seats layout
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]cell, len(line))
		for i := 0; i < len(line); i++ {
			switch c := cell(line[i]); c {
			case floor, empty, occupied:
				row[i] = c
			default:
				return nil, fmt.Errorf("invalid seat character %q", line[i])
			}
		}
		seats = append(seats, row)
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("empty seat layout")
	}
	return seats, nil
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type neighborFunc func(l layout, row, col int) int

func countAdjacent(l layout, row, col int) int {
	count := 0
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		if r >= 0 && r < len(l) && c >= 0 && c < len(l[r]) && l[r][c] == occupied {
			count++
		}
	}
	return count
}

// countVisible looks past floor cells to the first seat in each
// direction.
func countVisible(l layout, row, col int) int {
	count := 0
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		for r >= 0 && r < len(l) && c >= 0 && c < len(l[r]) {
			if l[r][c] != floor {
				if l[r][c] == occupied {
					count++
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
	return count
}

// step applies one round of the rules and reports whether anything
// changed.
func (l layout) step(neighbors neighborFunc, tolerance int) (layout, bool) {
	next := make(layout, len(l))
	changed := false
	for r, row := range l {
		next[r] = make([]cell, len(row))
		for c, seat := range row {
			n := seat
			switch {
			case seat == empty && neighbors(l, r, c) == 0:
				n = occupied
				changed = true
			case seat == occupied && neighbors(l, r, c) >= tolerance:
				n = empty
				changed = true
			}
			next[r][c] = n
		}
	}
	return next, changed
}

func stabilize(l layout, neighbors neighborFunc, tolerance int) layout {
	for {
		next, changed := l.step(neighbors, tolerance)
		if !changed {
			return l
		}
		l = next
	}
}

func (l layout) countOccupied() int {
	count := 0
	for _, row := range l {
		for _, seat := range row {
			if seat == occupied {
				count++
			}
		}
	}
	return count
}

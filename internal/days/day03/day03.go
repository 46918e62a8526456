// Package day03 solves Toboggan Trajectory: count trees hit sliding down a
// repeating forest grid at fixed slopes.
package day03

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solver"
)

// Solver implements day 3.
type Solver struct{}

// New returns the day 3 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 3 }
func (*Solver) Title() string { return "Toboggan Trajectory" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	grid, err := parseGrid(input)
	if err != nil {
		return solver.Result{}, err
	}

	count31 := countTrees(grid, 3, 1)

	product := countTrees(grid, 1, 1) *
		count31 *
		countTrees(grid, 5, 1) *
		countTrees(grid, 7, 1) *
		countTrees(grid, 1, 2)

	return solver.Result{
		PartOne: strconv.Itoa(count31),
		PartTwo: strconv.Itoa(product),
	}, nil
}

// parseGrid reads lines of '.' and '#' into rows of booleans, true for a
// tree.
func parseGrid(input string) ([][]bool, error) {
	var grid [][]bool
	for y, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		if len(line) == 0 {
			return nil, fmt.Errorf("blank row at line %d", y+1)
		}
		row := make([]bool, len(line))
		for x, c := range line {
			switch c {
			case '#':
				row[x] = true
			case '.':
			default:
				return nil, fmt.Errorf("unexpected character %q at line %d", c, y+1)
			}
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// countTrees walks the grid from the top-left at the given slope, wrapping
// horizontally, and counts the trees passed through.
func countTrees(grid [][]bool, right, down int) int {
	x, trees := 0, 0
	for y := 0; y < len(grid); y += down {
		row := grid[y]
		if row[x%len(row)] {
			trees++
		}
		x += right
	}
	return trees
}

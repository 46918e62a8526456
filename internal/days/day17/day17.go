// Package day17 boots the Conway cubes pocket dimension.
package day17

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solver"
)

const bootCycles = 6

// point is a position in up to four dimensions. Unused dimensions stay
// zero.
type point [4]int

type grid struct {
	active map[point]bool
	dims   int
}

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 17 }
func (*Solver) Title() string { return "Conway Cubes" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	threeD, err := parseGrid(input, 3)
	if err != nil {
		return solver.Result{}, err
	}
	fourD, err := parseGrid(input, 4)
	if err != nil {
		return solver.Result{}, err
	}

	for i := 0; i < bootCycles; i++ {
		threeD = threeD.step()
		fourD = fourD.step()
	}

	return solver.Result{
		PartOne: strconv.Itoa(len(threeD.active)),
		PartTwo: strconv.Itoa(len(fourD.active)),
	}, nil
}

func parseGrid(input string, dims int) (*grid, error) {
	if dims < 3 || dims > 4 {
		return nil, fmt.Errorf("grid must have 3 or 4 dimensions, got %d", dims)
	}
	g := &grid{active: make(map[point]bool), dims: dims}
	for y, line := range strings.Split(strings.TrimSpace(input), "\n") {
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
				g.active[point{x, y, 0, 0}] = true
			case '.':
			default:
				return nil, fmt.Errorf("invalid cube character %q", line[x])
			}
		}
	}
	return g, nil
}

// neighbors visits every neighboring point in the grid's dimensions.
func (g *grid) neighbors(p point, visit func(point)) {
	var walk func(point, int)
	walk = func(q point, dim int) {
		if dim == g.dims {
			if q != p {
				visit(q)
			}
			return
		}
		for d := -1; d <= 1; d++ {
			q[dim] = p[dim] + d
			walk(q, dim+1)
		}
	}
	walk(p, 0)
}

// step applies one boot cycle. Active cubes with two or three active
// neighbors survive; inactive cubes with exactly three activate.
func (g *grid) step() *grid {
	counts := make(map[point]int, len(g.active)*8)
	for p := range g.active {
		g.neighbors(p, func(q point) {
			counts[q]++
		})
	}

	next := &grid{active: make(map[point]bool, len(g.active)), dims: g.dims}
	for p, n := range counts {
		if n == 3 || (n == 2 && g.active[p]) {
			next.active[p] = true
		}
	}
	return next
}

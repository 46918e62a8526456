// Package day12 steers the ferry by direct moves and by waypoint.
package day12

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solver"
)

type action struct {
	kind  byte
	value int
}

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 12 }
func (*Solver) Title() string { return "Rain Risk" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	actions, err := parseActions(input)
	if err != nil {
		return solver.Result{}, err
	}

	direct, err := navigateDirect(actions)
	if err != nil {
		return solver.Result{}, err
	}
	waypoint, err := navigateWaypoint(actions)
	if err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		PartOne: strconv.Itoa(direct),
		PartTwo: strconv.Itoa(waypoint),
	}, nil
}

func parseActions(input string) ([]action, error) {
	var actions []action
	for _, line := range strings.Fields(input) {
		if len(line) < 2 {
			return nil, fmt.Errorf("failed to parse action %q", line)
		}
		kind := line[0]
		switch kind {
		case 'N', 'S', 'E', 'W', 'L', 'R', 'F':
		default:
			return nil, fmt.Errorf("unknown action %q", line)
		}
		value, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to parse action value in %q: %w", line, err)
		}
		if (kind == 'L' || kind == 'R') && value%90 != 0 {
			return nil, fmt.Errorf("turn %q is not a multiple of 90 degrees", line)
		}
		actions = append(actions, action{kind: kind, value: value})
	}
	return actions, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// navigateDirect moves the ship itself, starting facing east, and
// returns the Manhattan distance from the origin.
func navigateDirect(actions []action) (int, error) {
	x, y := 0, 0
	dx, dy := 1, 0
	for _, a := range actions {
		switch a.kind {
		case 'N':
			y += a.value
		case 'S':
			y -= a.value
		case 'E':
			x += a.value
		case 'W':
			x -= a.value
		case 'L':
			for i := 0; i < a.value/90; i++ {
				dx, dy = -dy, dx
			}
		case 'R':
			for i := 0; i < a.value/90; i++ {
				dx, dy = dy, -dx
			}
		case 'F':
			x += dx * a.value
			y += dy * a.value
		}
	}
	return abs(x) + abs(y), nil
}

// navigateWaypoint moves a waypoint relative to the ship and moves the
// ship toward it, returning the Manhattan distance from the origin.
func navigateWaypoint(actions []action) (int, error) {
	x, y := 0, 0
	wx, wy := 10, 1
	for _, a := range actions {
		switch a.kind {
		case 'N':
			wy += a.value
		case 'S':
			wy -= a.value
		case 'E':
			wx += a.value
		case 'W':
			wx -= a.value
		case 'L':
			for i := 0; i < a.value/90; i++ {
				wx, wy = -wy, wx
			}
		case 'R':
			for i := 0; i < a.value/90; i++ {
				wx, wy = wy, -wx
			}
		case 'F':
			x += wx * a.value
			y += wy * a.value
		}
	}
	return abs(x) + abs(y), nil
}

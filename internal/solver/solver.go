// Package solver defines the contract every puzzle day implements and the
// registry the CLI selects days from. Days are fully independent of each
// other; the registry is the only composition point in the program.
package solver

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownDay is returned when a day number has no registered solver.
var ErrUnknownDay = errors.New("unknown day")

// Result holds the two answers a day produces. Answers are kept as strings
// because several days produce values that read better unformatted (large
// products, timestamps).
type Result struct {
	PartOne string
	PartTwo string
}

// Solver is one self-contained puzzle day: parse a text input, compute both
// part answers.
type Solver interface {
	// Day returns the day number, unique within a registry.
	Day() int
	// Title returns the puzzle's name, e.g. "Report Repair".
	Title() string
	// Solve parses the raw puzzle input and computes both answers.
	// Malformed input is fatal to the run and reported as an error.
	Solve(input string) (Result, error)
}

// Registry maps day numbers to solvers.
type Registry struct {
	mu    sync.RWMutex
	byDay map[int]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byDay: make(map[int]Solver)}
}

// Register adds a solver. Duplicate day numbers are rejected.
func (r *Registry) Register(s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := s.Day()
	if day < 1 {
		return fmt.Errorf("invalid day %d: day numbers start at 1", day)
	}
	if _, exists := r.byDay[day]; exists {
		return fmt.Errorf("day %d is already registered", day)
	}
	r.byDay[day] = s
	return nil
}

// Lookup returns the solver for a day, or ErrUnknownDay.
func (r *Registry) Lookup(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byDay[day]
	if !ok {
		return nil, fmt.Errorf("invalid day %d: %w", day, ErrUnknownDay)
	}
	return s, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make([]int, 0, len(r.byDay))
	for day := range r.byDay {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

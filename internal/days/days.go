// Package days wires every implemented puzzle day into a registry.
package days

import (
	"fmt"

	"advent/internal/days/day01"
	"advent/internal/days/day02"
	"advent/internal/days/day03"
	"advent/internal/days/day04"
	"advent/internal/days/day05"
	"advent/internal/days/day06"
	"advent/internal/days/day07"
	"advent/internal/days/day08"
	"advent/internal/days/day09"
	"advent/internal/days/day10"
	"advent/internal/days/day11"
	"advent/internal/days/day12"
	"advent/internal/days/day13"
	"advent/internal/days/day14"
	"advent/internal/days/day15"
	"advent/internal/days/day16"
	"advent/internal/days/day17"
	"advent/internal/solver"
)

// RegisterAll registers every day solver on the registry.
func RegisterAll(r *solver.Registry) error {
	solvers := []solver.Solver{
		day01.New(),
		day02.New(),
		day03.New(),
		day04.New(),
		day05.New(),
		day06.New(),
		day07.New(),
		day08.New(),
		day09.New(),
		day10.New(),
		day11.New(),
		day12.New(),
		day13.New(),
		day14.New(),
		day15.New(),
		day16.New(),
		day17.New(),
	}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return fmt.Errorf("failed to register day %d: %w", s.Day(), err)
		}
	}
	return nil
}

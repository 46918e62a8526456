// Package day13 finds shuttle departures matching the timetable.
package day13

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solver"
)

// bus is an in-service bus and its position in the timetable.
type bus struct {
	id     int64
	offset int64
}

type schedule struct {
	earliest int64
	buses    []bus
}

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 13 }
func (*Solver) Title() string { return "Shuttle Search" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	sched, err := parseSchedule(input)
	if err != nil {
		return solver.Result{}, err
	}

	id, wait := sched.earliestBus()
	timestamp, err := sched.alignedTimestamp()
	if err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		PartOne: strconv.FormatInt(id*wait, 10),
		PartTwo: strconv.FormatInt(timestamp, 10),
	}, nil
}

func parseSchedule(input string) (*schedule, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("schedule needs a timestamp line and a bus line")
	}
	earliest, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse earliest timestamp %q: %w", lines[0], err)
	}
	buses, err := parseBuses(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, err
	}
	return &schedule{earliest: earliest, buses: buses}, nil
}

func parseBuses(line string) ([]bus, error) {
	var buses []bus
	for i, field := range strings.Split(line, ",") {
		if field == "x" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse bus id %q: %w", field, err)
		}
		buses = append(buses, bus{id: id, offset: int64(i)})
	}
	if len(buses) == 0 {
		return nil, fmt.Errorf("no buses in service")
	}
	return buses, nil
}

// earliestBus returns the first bus departing at or after the earliest
// timestamp, and how long the wait is.
func (s *schedule) earliestBus() (id, wait int64) {
	wait = int64(-1)
	for _, b := range s.buses {
		w := (b.id - s.earliest%b.id) % b.id
		if wait < 0 || w < wait {
			id, wait = b.id, w
		}
	}
	return id, wait
}

// alignedTimestamp returns the earliest timestamp where every bus
// departs at its timetable offset. Buses are merged one congruence at
// a time; the ids are pairwise coprime so the step is their product.
func (s *schedule) alignedTimestamp() (int64, error) {
	t := int64(0)
	step := int64(1)
	for _, b := range s.buses {
		limit := step * b.id
		for (t+b.offset)%b.id != 0 {
			t += step
			if t >= limit {
				return 0, fmt.Errorf("no aligned timestamp for bus %d", b.id)
			}
		}
		step = limit
	}
	return t, nil
}

package solver

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// InputSource supplies the raw puzzle input for a day. Satisfied by
// input.Store.
type InputSource interface {
	Read(day int) (string, error)
}

// RunReport is the outcome of executing one day against its real input.
type RunReport struct {
	Day     int
	Title   string
	Result  Result
	Elapsed time.Duration
}

// Runner executes registered days against their puzzle inputs, timing each
// run.
type Runner struct {
	registry *Registry
	inputs   InputSource
	logger   *zap.Logger
}

// NewRunner wires a registry to an input source. A nil logger disables run
// logging.
func NewRunner(registry *Registry, inputs InputSource, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{registry: registry, inputs: inputs, logger: logger}
}

// Run executes a single day: load input, solve, time it.
func (r *Runner) Run(day int) (RunReport, error) {
	s, err := r.registry.Lookup(day)
	if err != nil {
		return RunReport{}, err
	}

	input, err := r.inputs.Read(day)
	if err != nil {
		return RunReport{}, fmt.Errorf("day %d: %w", day, err)
	}

	r.logger.Debug("solving", zap.Int("day", day), zap.String("title", s.Title()))
	start := time.Now()
	result, err := s.Solve(input)
	elapsed := time.Since(start)
	if err != nil {
		return RunReport{}, fmt.Errorf("day %d: %w", day, err)
	}

	r.logger.Info("solved",
		zap.Int("day", day),
		zap.String("part_one", result.PartOne),
		zap.String("part_two", result.PartTwo),
		zap.Duration("elapsed", elapsed))

	return RunReport{Day: day, Title: s.Title(), Result: result, Elapsed: elapsed}, nil
}

// RunAll executes every registered day in ascending order. The first failing
// day aborts the whole run.
func (r *Runner) RunAll() ([]RunReport, error) {
	days := r.registry.Days()
	reports := make([]RunReport, 0, len(days))
	for _, day := range days {
		report, err := r.Run(day)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

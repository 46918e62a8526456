// Package day14 runs the docking program's bitmask memory writes.
package day14

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"advent/internal/solver"
)

const maskBits = 36

var memRe = regexp.MustCompile(`^mem\[(\d+)\] = (\d+)$`)

// mask holds a 36-bit mask split into its components. ones and zeros
// force bits on and off; floating marks X positions.
type mask struct {
	ones     uint64
	zeros    uint64
	floating uint64
}

type statement struct {
	mask    *mask
	address uint64
	value   uint64
}

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 14 }
func (*Solver) Title() string { return "Docking Data" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	program, err := parseProgram(input)
	if err != nil {
		return solver.Result{}, err
	}

	valueSum, err := runValueMask(program)
	if err != nil {
		return solver.Result{}, err
	}
	addressSum, err := runAddressMask(program)
	if err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		PartOne: strconv.FormatUint(valueSum, 10),
		PartTwo: strconv.FormatUint(addressSum, 10),
	}, nil
}

func parseMask(s string) (*mask, error) {
	if len(s) != maskBits {
		return nil, fmt.Errorf("mask %q is not %d bits", s, maskBits)
	}
	m := &mask{}
	for _, c := range s {
		m.ones <<= 1
		m.zeros <<= 1
		m.floating <<= 1
		switch c {
		case '1':
			m.ones |= 1
		case '0':
			m.zeros |= 1
		case 'X':
			m.floating |= 1
		default:
			return nil, fmt.Errorf("invalid mask character %q in %q", c, s)
		}
	}
	return m, nil
}

func parseProgram(input string) ([]statement, error) {
	var program []statement
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "mask = "); ok {
			m, err := parseMask(rest)
			if err != nil {
				return nil, err
			}
			program = append(program, statement{mask: m})
			continue
		}
		m := memRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("failed to parse statement %q", line)
		}
		address, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse address in %q: %w", line, err)
		}
		value, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value in %q: %w", line, err)
		}
		program = append(program, statement{address: address, value: value})
	}
	return program, nil
}

// runValueMask applies the mask to written values and sums memory.
func runValueMask(program []statement) (uint64, error) {
	memory := make(map[uint64]uint64)
	var current *mask
	for _, st := range program {
		if st.mask != nil {
			current = st.mask
			continue
		}
		if current == nil {
			return 0, fmt.Errorf("memory write before any mask")
		}
		memory[st.address] = st.value&^current.zeros | current.ones
	}
	return sumMemory(memory), nil
}

// runAddressMask applies the mask to addresses, expanding floating bits
// to every combination, and sums memory.
func runAddressMask(program []statement) (uint64, error) {
	memory := make(map[uint64]uint64)
	var current *mask
	for _, st := range program {
		if st.mask != nil {
			current = st.mask
			continue
		}
		if current == nil {
			return 0, fmt.Errorf("memory write before any mask")
		}
		base := st.address&^current.floating | current.ones
		for _, addr := range expandFloating(base, current.floating) {
			memory[addr] = st.value
		}
	}
	return sumMemory(memory), nil
}

// expandFloating returns base with every combination of the floating
// bits set and cleared.
func expandFloating(base, floating uint64) []uint64 {
	addrs := []uint64{base}
	for bit := uint64(1); bit < 1<<maskBits; bit <<= 1 {
		if floating&bit == 0 {
			continue
		}
		for _, a := range addrs {
			addrs = append(addrs, a|bit)
		}
	}
	return addrs
}

func sumMemory(memory map[uint64]uint64) uint64 {
	var sum uint64
	for _, v := range memory {
		sum += v
	}
	return sum
}

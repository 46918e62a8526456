// Package day08 interprets the handheld console's boot code.
package day08

import (
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solver"
)

type opcode int

const (
	opAcc opcode = iota
	opJmp
	opNop
)

type instruction struct {
	op  opcode
	arg int
}

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 8 }
func (*Solver) Title() string { return "Handheld Halting" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	program, err := parseProgram(input)
	if err != nil {
		return solver.Result{}, err
	}

	accBeforeLoop, terminated := run(program)
	if terminated {
		return solver.Result{}, fmt.Errorf("boot code terminated without looping")
	}

	accFixed, err := runRepaired(program)
	if err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		PartOne: strconv.Itoa(accBeforeLoop),
		PartTwo: strconv.Itoa(accFixed),
	}, nil
}

func parseProgram(input string) ([]instruction, error) {
	var program []instruction
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, argStr, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("failed to parse instruction %q", line)
		}
		arg, err := strconv.Atoi(argStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse argument in %q: %w", line, err)
		}
		var op opcode
		switch name {
		case "acc":
			op = opAcc
		case "jmp":
			op = opJmp
		case "nop":
			op = opNop
		default:
			return nil, fmt.Errorf("unknown instruction %q", name)
		}
		program = append(program, instruction{op: op, arg: arg})
	}
	return program, nil
}

// run executes the program until it either loops or runs off the end.
// It returns the accumulator value and whether the program terminated.
// A jump below instruction 0 never terminates.
func run(program []instruction) (int, bool) {
	visited := make([]bool, len(program))
	acc := 0
	pc := 0
	for pc < len(program) {
		if pc < 0 || visited[pc] {
			return acc, false
		}
		visited[pc] = true
		switch program[pc].op {
		case opAcc:
			acc += program[pc].arg
			pc++
		case opJmp:
			pc += program[pc].arg
		case opNop:
			pc++
		}
	}
	return acc, true
}

// runRepaired flips one jmp/nop at a time until the program terminates.
func runRepaired(program []instruction) (int, error) {
	patched := make([]instruction, len(program))
	for i, inst := range program {
		var flipped opcode
		switch inst.op {
		case opJmp:
			flipped = opNop
		case opNop:
			flipped = opJmp
		default:
			continue
		}
		copy(patched, program)
		patched[i].op = flipped
		if acc, terminated := run(patched); terminated {
			return acc, nil
		}
	}
	return 0, fmt.Errorf("no single jmp/nop swap makes the boot code terminate")
}

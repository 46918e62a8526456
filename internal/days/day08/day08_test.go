package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6`

func TestParseProgram(t *testing.T) {
	program, err := parseProgram(exampleInput)
	require.NoError(t, err)
	require.Len(t, program, 9)

	assert.Equal(t, instruction{op: opNop, arg: 0}, program[0])
	assert.Equal(t, instruction{op: opAcc, arg: 1}, program[1])
	assert.Equal(t, instruction{op: opJmp, arg: -3}, program[4])
	assert.Equal(t, instruction{op: opAcc, arg: -99}, program[5])
}

func TestParseProgramInvalid(t *testing.T) {
	_, err := parseProgram("hlt +1")
	assert.Error(t, err)

	_, err = parseProgram("acc one")
	assert.Error(t, err)
}

func TestRunDetectsLoop(t *testing.T) {
	program, err := parseProgram(exampleInput)
	require.NoError(t, err)

	acc, terminated := run(program)
	assert.False(t, terminated)
	assert.Equal(t, 5, acc)
}

func TestRunJumpBeforeStart(t *testing.T) {
	program, err := parseProgram("jmp -2")
	require.NoError(t, err)

	acc, terminated := run(program)
	assert.False(t, terminated)
	assert.Equal(t, 0, acc)
}

func TestRunRepairedNegativeJumpCandidate(t *testing.T) {
	// Flipping the nop would jump before the program start; the repair
	// search must skip past that candidate instead of crashing.
	program, err := parseProgram("nop -5\njmp -1")
	require.NoError(t, err)

	acc, err := runRepaired(program)
	require.NoError(t, err)
	assert.Equal(t, 0, acc)
}

func TestRunRepaired(t *testing.T) {
	program, err := parseProgram(exampleInput)
	require.NoError(t, err)

	acc, err := runRepaired(program)
	require.NoError(t, err)
	assert.Equal(t, 8, acc)
}

func TestSolve(t *testing.T) {
	result, err := New().Solve(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "5", result.PartOne)
	assert.Equal(t, "8", result.PartTwo)
}

package day14

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const valueInput = `mask = XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X
mem[8] = 11
mem[7] = 101
mem[8] = 0`

const addressInput = `mask = 000000000000000000000000000000X1001X
mem[42] = 100
mask = 00000000000000000000000000000000X0XX
mem[26] = 1`

func TestParseMask(t *testing.T) {
	m, err := parseMask("XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X")
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<6), m.ones)
	assert.Equal(t, uint64(1<<1), m.zeros)

	_, err = parseMask("XXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X")
	assert.Error(t, err) // 35 characters

	_, err = parseMask("XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0Y")
	assert.Error(t, err)
}

func TestParseProgram(t *testing.T) {
	program, err := parseProgram(valueInput)
	require.NoError(t, err)
	require.Len(t, program, 4)

	assert.NotNil(t, program[0].mask)
	assert.Equal(t, uint64(8), program[1].address)
	assert.Equal(t, uint64(11), program[1].value)
}

func TestParseProgramInvalid(t *testing.T) {
	_, err := parseProgram("mem[8] == 11")
	assert.Error(t, err)
}

func TestRunValueMask(t *testing.T) {
	program, err := parseProgram(valueInput)
	require.NoError(t, err)

	sum, err := runValueMask(program)
	require.NoError(t, err)
	assert.Equal(t, uint64(165), sum)
}

func TestRunAddressMask(t *testing.T) {
	program, err := parseProgram(addressInput)
	require.NoError(t, err)

	sum, err := runAddressMask(program)
	require.NoError(t, err)
	assert.Equal(t, uint64(208), sum)
}

func TestWriteBeforeMask(t *testing.T) {
	program, err := parseProgram("mem[8] = 11")
	require.NoError(t, err)

	_, err = runValueMask(program)
	assert.Error(t, err)
	_, err = runAddressMask(program)
	assert.Error(t, err)
}

func TestExpandFloating(t *testing.T) {
	addrs := expandFloating(0b11010, 0b100001)
	assert.ElementsMatch(t, []uint64{0b011010, 0b011011, 0b111010, 0b111011}, addrs)
}

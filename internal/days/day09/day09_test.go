package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `35
20
15
25
47
40
62
55
65
95
102
117
150
182
127
219
299
277
309
576`

func TestFindInvalid(t *testing.T) {
	numbers, err := parseNumbers(exampleInput)
	require.NoError(t, err)

	invalid, err := findInvalid(numbers, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(127), invalid)
}

func TestFindInvalidAllValid(t *testing.T) {
	_, err := findInvalid([]int64{1, 2, 3, 5, 8}, 2)
	assert.Error(t, err)
}

func TestFindWeakness(t *testing.T) {
	numbers, err := parseNumbers(exampleInput)
	require.NoError(t, err)

	// The run 15 25 47 40 sums to 127; 15 + 47 = 62.
	weakness, err := findWeakness(numbers, 127)
	require.NoError(t, err)
	assert.Equal(t, int64(62), weakness)
}

func TestFindWeaknessRequiresRunOfTwo(t *testing.T) {
	// 40 alone matches the target but a run needs two numbers.
	_, err := findWeakness([]int64{40, 100}, 40)
	assert.Error(t, err)
}

func TestParseNumbersInvalid(t *testing.T) {
	_, err := parseNumbers("12\nforty\n")
	assert.Error(t, err)
}

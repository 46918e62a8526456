package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatID(t *testing.T) {
	tests := []struct {
		pass string
		want int
	}{
		{"FBFBBFFRLR", 357},
		{"BFFFBBFRRR", 567},
		{"FFFBBBFRRR", 119},
		{"BBFFBBFRLL", 820},
	}
	for _, tt := range tests {
		t.Run(tt.pass, func(t *testing.T) {
			id, err := seatID(tt.pass)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestSeatIDInvalid(t *testing.T) {
	_, err := seatID("FBFBBFFRL")
	assert.Error(t, err)

	_, err = seatID("FBFBBFFRLX")
	assert.Error(t, err)
}

func TestFindMissingSeat(t *testing.T) {
	seat, err := findMissingSeat([]int{117, 118, 119, 121, 122})
	require.NoError(t, err)
	assert.Equal(t, 120, seat)

	_, err = findMissingSeat([]int{117, 118, 119})
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	// Seats 117, 118, 119 and 121 with 120 unoccupied.
	input := "FFFBBBFRLR\nFFFBBBFRRL\nFFFBBBFRRR\nFFFBBBBLLR\n"
	result, err := New().Solve(input)
	require.NoError(t, err)
	assert.Equal(t, "121", result.PartOne)
	assert.Equal(t, "120", result.PartTwo)
}

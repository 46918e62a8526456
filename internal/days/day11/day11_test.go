package day11

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL`

func mustParse(t *testing.T, input string) layout {
	t.Helper()
	l, err := parseLayout(input)
	require.NoError(t, err)
	return l
}

func TestParseLayout(t *testing.T) {
	l := mustParse(t, exampleInput)
	require.Len(t, l, 10)
	assert.Equal(t, []cell{empty, floor, empty, empty, floor, empty, empty, floor, empty, empty}, l[0])

	_, err := parseLayout("L.X")
	assert.Error(t, err)
}

func TestStepAdjacent(t *testing.T) {
	l := mustParse(t, exampleInput)

	afterOne, changed := l.step(countAdjacent, 4)
	assert.True(t, changed)
	want := mustParse(t, strings.ReplaceAll(exampleInput, "L", "#"))
	if diff := cmp.Diff(want, afterOne); diff != "" {
		t.Errorf("layout after one round mismatch (-want +got):\n%s", diff)
	}
}

func TestStabilizeAdjacent(t *testing.T) {
	l := stabilize(mustParse(t, exampleInput), countAdjacent, 4)
	assert.Equal(t, 37, l.countOccupied())
}

func TestStabilizeVisible(t *testing.T) {
	l := stabilize(mustParse(t, exampleInput), countVisible, 5)
	assert.Equal(t, 26, l.countOccupied())
}

func TestCountVisible(t *testing.T) {
	l := mustParse(t, `.......#.
...#.....
.#.......
.........
..#L....#
....#....
.........
#........
...#.....`)
	assert.Equal(t, 8, countVisible(l, 4, 3))

	blocked := mustParse(t, `.##.##.
#.#.#.#
##...##
...L...
##...##
#.#.#.#
.##.##.`)
	assert.Equal(t, 0, countVisible(blocked, 3, 3))
}

func TestSolve(t *testing.T) {
	result, err := New().Solve(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, "37", result.PartOne)
	assert.Equal(t, "26", result.PartTwo)
}

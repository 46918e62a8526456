package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const errorRateInput = `class: 1-3 or 5-7
row: 6-11 or 33-44
seat: 13-40 or 45-50

your ticket:
7,1,14

nearby tickets:
7,3,47
40,4,50
55,2,20
38,6,12`

const fieldOrderInput = `class: 0-1 or 4-19
row: 0-5 or 8-19
seat: 0-13 or 16-19

your ticket:
11,12,13

nearby tickets:
3,9,18
15,1,5
5,14,9`

func TestParseNotes(t *testing.T) {
	n, err := parseNotes(errorRateInput)
	require.NoError(t, err)

	require.Len(t, n.rules, 3)
	assert.Equal(t, rule{
		name:   "class",
		ranges: [2]valueRange{{min: 1, max: 3}, {min: 5, max: 7}},
	}, n.rules[0])
	assert.Equal(t, ticket{7, 1, 14}, n.mine)
	require.Len(t, n.nearby, 4)
	assert.Equal(t, ticket{55, 2, 20}, n.nearby[2])
}

func TestParseNotesInvalid(t *testing.T) {
	_, err := parseNotes("class: 1-3 or 5-7")
	assert.Error(t, err)

	_, err = parseNotes("class: 1-3\n\nyour ticket:\n7\n\nnearby tickets:\n7")
	assert.Error(t, err)
}

func TestScanTickets(t *testing.T) {
	n, err := parseNotes(errorRateInput)
	require.NoError(t, err)

	errorRate, valid := n.scanTickets()
	assert.Equal(t, 71, errorRate)
	assert.Equal(t, []ticket{{7, 3, 47}}, valid)
}

func TestDeduceFields(t *testing.T) {
	n, err := parseNotes(fieldOrderInput)
	require.NoError(t, err)

	_, valid := n.scanTickets()
	require.Len(t, valid, 3)

	fields, err := n.deduceFields(valid)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"row": 0, "class": 1, "seat": 2}, fields)
}

func TestDepartureProduct(t *testing.T) {
	fields := map[string]int{
		"departure location": 0,
		"departure station":  2,
		"arrival track":      1,
	}
	product, err := departureProduct(fields, ticket{11, 12, 13})
	require.NoError(t, err)
	assert.Equal(t, int64(11*13), product)

	_, err = departureProduct(map[string]int{"class": 0}, ticket{11})
	assert.Error(t, err)
}

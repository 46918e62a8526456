// Package day02 solves Password Philosophy: count how many password lines
// satisfy their embedded policy, under two interpretations of that policy.
package day02

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"advent/internal/solver"
)

var lineRe = regexp.MustCompile(`^(\d+)-(\d+) ([a-z]): ([a-z]+)$`)

// policy holds the two numbers and the letter from the front of a line.
type policy struct {
	min    int
	max    int
	letter byte
}

// Solver implements day 2.
type Solver struct{}

// New returns the day 2 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 2 }
func (*Solver) Title() string { return "Password Philosophy" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	countRental := 0
	countToboggan := 0
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		p, password, err := parseLine(line)
		if err != nil {
			return solver.Result{}, err
		}
		if validForCount(p, password) {
			countRental++
		}
		if validForPositions(p, password) {
			countToboggan++
		}
	}

	return solver.Result{
		PartOne: strconv.Itoa(countRental),
		PartTwo: strconv.Itoa(countToboggan),
	}, nil
}

// parseLine splits a "1-3 a: abcde" line into its policy and password.
func parseLine(line string) (policy, string, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return policy{}, "", fmt.Errorf("malformed password line %q", line)
	}
	min, _ := strconv.Atoi(m[1])
	max, _ := strconv.Atoi(m[2])
	return policy{min: min, max: max, letter: m[3][0]}, m[4], nil
}

// validForCount is the part 1 rule: the letter must occur between min and
// max times inclusive.
func validForCount(p policy, password string) bool {
	count := strings.Count(password, string(p.letter))
	return count >= p.min && count <= p.max
}

// validForPositions is the part 2 rule: exactly one of the 1-based
// positions min and max holds the letter.
func validForPositions(p policy, password string) bool {
	if len(password) < p.max {
		return false
	}
	a := password[p.min-1]
	b := password[p.max-1]
	return a != b && (a == p.letter || b == p.letter)
}

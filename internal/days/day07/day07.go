// Package day07 resolves nested luggage containment rules.
package day07

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"advent/internal/solver"
)

const targetBag = "shiny gold"

var (
	ruleRe    = regexp.MustCompile(`^([a-z ]+) bags contain (.+)\.$`)
	contentRe = regexp.MustCompile(`^(\d+) ([a-z ]+) bags?$`)
)

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 7 }
func (*Solver) Title() string { return "Handy Haversacks" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	rules, err := parseRules(input)
	if err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		PartOne: strconv.Itoa(rules.countContainers(targetBag)),
		PartTwo: strconv.Itoa(rules.countContents(targetBag)),
	}, nil
}

// content is one entry on the right-hand side of a rule.
type content struct {
	color string
	count int
}

type ruleSet map[string][]content

func parseRules(input string) (ruleSet, error) {
	rules := make(ruleSet)
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := ruleRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("failed to parse rule %q", line)
		}
		color, rhs := m[1], m[2]
		if rhs == "no other bags" {
			rules[color] = nil
			continue
		}
		var contents []content
		for _, part := range strings.Split(rhs, ", ") {
			cm := contentRe.FindStringSubmatch(part)
			if cm == nil {
				return nil, fmt.Errorf("failed to parse bag contents %q in rule %q", part, line)
			}
			count, err := strconv.Atoi(cm[1])
			if err != nil {
				return nil, fmt.Errorf("failed to parse bag count %q: %w", cm[1], err)
			}
			contents = append(contents, content{color: cm[2], count: count})
		}
		rules[color] = contents
	}
	return rules, nil
}

// countContainers returns how many bag colors can eventually contain
// at least one bag of the given color.
func (r ruleSet) countContainers(color string) int {
	memo := make(map[string]bool)
	total := 0
	for outer := range r {
		if outer != color && r.contains(outer, color, memo) {
			total++
		}
	}
	return total
}

func (r ruleSet) contains(outer, color string, memo map[string]bool) bool {
	if v, ok := memo[outer]; ok {
		return v
	}
	found := false
	for _, c := range r[outer] {
		if c.color == color || r.contains(c.color, color, memo) {
			found = true
			break
		}
	}
	memo[outer] = found
	return found
}

// countContents returns the number of bags required inside one bag of
// the given color.
func (r ruleSet) countContents(color string) int {
	return r.contentsOf(color, make(map[string]int))
}

func (r ruleSet) contentsOf(color string, memo map[string]int) int {
	if v, ok := memo[color]; ok {
		return v
	}
	total := 0
	for _, c := range r[color] {
		total += c.count * (1 + r.contentsOf(c.color, memo))
	}
	memo[color] = total
	return total
}

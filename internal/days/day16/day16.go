// Package day16 validates nearby tickets and deduces field order.
package day16

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"advent/internal/solver"
)

var ruleRe = regexp.MustCompile(`^([a-z ]+): (\d+)-(\d+) or (\d+)-(\d+)$`)

type valueRange struct {
	min, max int
}

func (r valueRange) contains(v int) bool { return v >= r.min && v <= r.max }

type rule struct {
	name   string
	ranges [2]valueRange
}

func (r rule) matches(v int) bool {
	return r.ranges[0].contains(v) || r.ranges[1].contains(v)
}

type ticket []int

type notes struct {
	rules  []rule
	mine   ticket
	nearby []ticket
}

type Solver struct{}

func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 16 }
func (*Solver) Title() string { return "Ticket Translation" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	n, err := parseNotes(input)
	if err != nil {
		return solver.Result{}, err
	}

	errorRate, valid := n.scanTickets()

	fields, err := n.deduceFields(valid)
	if err != nil {
		return solver.Result{}, err
	}
	product, err := departureProduct(fields, n.mine)
	if err != nil {
		return solver.Result{}, err
	}

	return solver.Result{
		PartOne: strconv.Itoa(errorRate),
		PartTwo: strconv.FormatInt(product, 10),
	}, nil
}

func parseNotes(input string) (*notes, error) {
	sections := strings.Split(strings.TrimSpace(input), "\n\n")
	if len(sections) != 3 {
		return nil, fmt.Errorf("expected 3 sections in notes, got %d", len(sections))
	}

	n := &notes{}
	for _, line := range strings.Split(sections[0], "\n") {
		r, err := parseRule(line)
		if err != nil {
			return nil, err
		}
		n.rules = append(n.rules, r)
	}

	mineLines := strings.Split(sections[1], "\n")
	if len(mineLines) != 2 || mineLines[0] != "your ticket:" {
		return nil, fmt.Errorf("malformed your-ticket section")
	}
	mine, err := parseTicket(mineLines[1])
	if err != nil {
		return nil, err
	}
	n.mine = mine

	nearbyLines := strings.Split(sections[2], "\n")
	if len(nearbyLines) < 2 || nearbyLines[0] != "nearby tickets:" {
		return nil, fmt.Errorf("malformed nearby-tickets section")
	}
	for _, line := range nearbyLines[1:] {
		tk, err := parseTicket(line)
		if err != nil {
			return nil, err
		}
		n.nearby = append(n.nearby, tk)
	}
	return n, nil
}

func parseRule(line string) (rule, error) {
	m := ruleRe.FindStringSubmatch(line)
	if m == nil {
		return rule{}, fmt.Errorf("failed to parse field rule %q", line)
	}
	var bounds [4]int
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(m[i+2])
		if err != nil {
			return rule{}, fmt.Errorf("failed to parse bound in %q: %w", line, err)
		}
		bounds[i] = v
	}
	return rule{
		name: m[1],
		ranges: [2]valueRange{
			{min: bounds[0], max: bounds[1]},
			{min: bounds[2], max: bounds[3]},
		},
	}, nil
}

func parseTicket(line string) (ticket, error) {
	var tk ticket
	for _, field := range strings.Split(line, ",") {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ticket value %q: %w", field, err)
		}
		tk = append(tk, v)
	}
	return tk, nil
}

// scanTickets sums the values on nearby tickets that match no rule at
// all and returns the tickets with every value accounted for.
func (n *notes) scanTickets() (errorRate int, valid []ticket) {
	for _, tk := range n.nearby {
		ok := true
		for _, v := range tk {
			if !n.anyRuleMatches(v) {
				errorRate += v
				ok = false
			}
		}
		if ok {
			valid = append(valid, tk)
		}
	}
	return errorRate, valid
}

func (n *notes) anyRuleMatches(v int) bool {
	for _, r := range n.rules {
		if r.matches(v) {
			return true
		}
	}
	return false
}

// deduceFields assigns each rule to a ticket position. Candidates are
// narrowed by repeatedly fixing positions with a single remaining rule.
func (n *notes) deduceFields(valid []ticket) (map[string]int, error) {
	candidates := make([]map[string]bool, len(n.mine))
	for pos := range candidates {
		candidates[pos] = make(map[string]bool, len(n.rules))
		for _, r := range n.rules {
			ok := true
			for _, tk := range valid {
				if pos >= len(tk) || !r.matches(tk[pos]) {
					ok = false
					break
				}
			}
			if ok {
				candidates[pos][r.name] = true
			}
		}
	}

	fields := make(map[string]int, len(n.rules))
	for len(fields) < len(n.rules) {
		fixed := ""
		for pos, names := range candidates {
			if len(names) != 1 {
				continue
			}
			for name := range names {
				fixed = name
				fields[name] = pos
			}
			break
		}
		if fixed == "" {
			return nil, fmt.Errorf("field positions are ambiguous")
		}
		for _, names := range candidates {
			delete(names, fixed)
		}
	}
	return fields, nil
}

// departureProduct multiplies my ticket's values for the six
// departure-prefixed fields.
func departureProduct(fields map[string]int, mine ticket) (int64, error) {
	product := int64(1)
	found := false
	for name, pos := range fields {
		if !strings.HasPrefix(name, "departure") {
			continue
		}
		if pos >= len(mine) {
			return 0, fmt.Errorf("field %q is past the end of my ticket", name)
		}
		product *= int64(mine[pos])
		found = true
	}
	if !found {
		return 0, fmt.Errorf("no departure fields in notes")
	}
	return product, nil
}

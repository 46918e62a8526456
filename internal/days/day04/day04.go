// Package day04 solves Passport Processing: normalize key:value records
// spread over multiple lines, then count records that are structurally
// complete (part 1) and records whose field values also validate (part 2).
package day04

import (
	"regexp"
	"strconv"
	"strings"

	"advent/internal/solver"
)

var (
	fieldRe      = regexp.MustCompile(`([a-z]{3}):(\S+)`)
	yearRe       = regexp.MustCompile(`^\d{4}$`)
	heightRe     = regexp.MustCompile(`^(\d{2,3})(cm|in)$`)
	hairColorRe  = regexp.MustCompile(`^#[a-f0-9]{6}$`)
	eyeColorRe   = regexp.MustCompile(`^(amb|blu|brn|gry|grn|hzl|oth)$`)
	passportIDRe = regexp.MustCompile(`^[0-9]{9}$`)
)

// passport holds the raw fields of one record. Absent fields are empty
// strings; cid is ignored entirely.
type passport map[string]string

// Solver implements day 4.
type Solver struct{}

// New returns the day 4 solver.
func New() *Solver { return &Solver{} }

func (*Solver) Day() int      { return 4 }
func (*Solver) Title() string { return "Passport Processing" }

func (s *Solver) Solve(input string) (solver.Result, error) {
	passports := parsePassports(input)

	complete := 0
	valid := 0
	for _, p := range passports {
		if p.hasRequiredFields() {
			complete++
		}
		if p.isValid() {
			valid++
		}
	}

	return solver.Result{
		PartOne: strconv.Itoa(complete),
		PartTwo: strconv.Itoa(valid),
	}, nil
}

// parsePassports splits the input on blank lines and collects the
// key:value pairs of each record.
func parsePassports(input string) []passport {
	var passports []passport
	building := passport{}

	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(building) > 0 {
				passports = append(passports, building)
				building = passport{}
			}
			continue
		}
		for _, m := range fieldRe.FindAllStringSubmatch(line, -1) {
			building[m[1]] = m[2]
		}
	}

	if len(building) > 0 {
		passports = append(passports, building)
	}
	return passports
}

// hasRequiredFields is the part 1 rule: all fields except cid must be
// present.
func (p passport) hasRequiredFields() bool {
	for _, key := range []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"} {
		if p[key] == "" {
			return false
		}
	}
	return true
}

// isValid is the part 2 rule: every required field must also hold a valid
// value.
func (p passport) isValid() bool {
	return isValidYear(p["byr"], 1920, 2002) &&
		isValidYear(p["iyr"], 2010, 2020) &&
		isValidYear(p["eyr"], 2020, 2030) &&
		isValidHeight(p["hgt"]) &&
		hairColorRe.MatchString(p["hcl"]) &&
		eyeColorRe.MatchString(p["ecl"]) &&
		passportIDRe.MatchString(p["pid"])
}

// isValidYear checks for exactly four digits within [min, max].
func isValidYear(value string, min, max int) bool {
	if !yearRe.MatchString(value) {
		return false
	}
	year, _ := strconv.Atoi(value)
	return year >= min && year <= max
}

// isValidHeight checks a number with a cm or in suffix against the unit's
// range: 150-193cm or 59-76in.
func isValidHeight(value string) bool {
	m := heightRe.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	n, _ := strconv.Atoi(m[1])
	if m[2] == "cm" {
		return n >= 150 && n <= 193
	}
	return n >= 59 && n <= 76
}

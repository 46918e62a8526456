package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const part1Data = `ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in`

const part2Invalid = `eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007`

const part2Valid = `pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719`

func TestParsePassports(t *testing.T) {
	passports := parsePassports(part1Data)
	require.Len(t, passports, 4)

	assert.Equal(t, "1937", passports[0]["byr"])
	assert.Equal(t, "147", passports[0]["cid"])
	assert.Equal(t, "860033327", passports[0]["pid"])
	assert.Empty(t, passports[1]["hgt"])
	assert.Empty(t, passports[2]["cid"])
	assert.Equal(t, "59in", passports[3]["hgt"])
}

func TestHasRequiredFields(t *testing.T) {
	passports := parsePassports(part1Data)
	require.Len(t, passports, 4)

	complete := make([]bool, len(passports))
	for i, p := range passports {
		complete[i] = p.hasRequiredFields()
	}
	assert.Equal(t, []bool{true, false, true, false}, complete)
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, isValidYear("2002", 1920, 2002))
	assert.False(t, isValidYear("2003", 1920, 2002))
	assert.False(t, isValidYear("1919", 1920, 2002))
	assert.False(t, isValidYear("", 1920, 2002))
}

func TestIsValidHeight(t *testing.T) {
	assert.True(t, isValidHeight("60in"))
	assert.True(t, isValidHeight("190cm"))
	assert.False(t, isValidHeight("190in"))
	assert.False(t, isValidHeight("190"))
	assert.False(t, isValidHeight(""))
}

func TestFieldPatterns(t *testing.T) {
	t.Run("hair color", func(t *testing.T) {
		assert.True(t, hairColorRe.MatchString("#123abc"))
		assert.False(t, hairColorRe.MatchString("#123abz"))
		assert.False(t, hairColorRe.MatchString("123abc"))
	})

	t.Run("eye color", func(t *testing.T) {
		assert.True(t, eyeColorRe.MatchString("brn"))
		assert.False(t, eyeColorRe.MatchString("wat"))
	})

	t.Run("passport id", func(t *testing.T) {
		assert.True(t, passportIDRe.MatchString("000000001"))
		assert.True(t, passportIDRe.MatchString("123456789"))
		assert.False(t, passportIDRe.MatchString("00000001"))
		assert.False(t, passportIDRe.MatchString("0123456789"))
		assert.False(t, passportIDRe.MatchString("abcdefghi"))
	})
}

func TestIsValid(t *testing.T) {
	for _, p := range parsePassports(part2Invalid) {
		assert.False(t, p.isValid())
	}
	for _, p := range parsePassports(part2Valid) {
		assert.True(t, p.isValid())
	}
}

func TestSolve(t *testing.T) {
	result, err := New().Solve(part1Data)
	require.NoError(t, err)
	assert.Equal(t, "2", result.PartOne)
	assert.Equal(t, "2", result.PartTwo)
}

// Package day03 solves "Rucksack Reorganization".
package day03

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/maisem/aoc2022"
)

//go:embed day03.go
var source []byte

// Puzzle returns the registration for day 3.
func Puzzle() aoc.Puzzle {
	return aoc.Puzzle{Day: 3, Solver: Solver{}, Source: source}
}

type Solver struct{}

const groupSize = 3

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(r rune) uint64 {
	switch {
	case r >= 'a' && r <= 'z':
		return uint64(r-'a') + 1
	case r >= 'A' && r <= 'Z':
		return uint64(r-'A') + 27
	}
	panic(fmt.Sprintf("invalid item %q", r))
}

// commonItem returns the first item of first that is also in every one of
// rest.
func commonItem(first string, rest ...string) rune {
	for _, c := range first {
		found := true
		for _, s := range rest {
			if !strings.ContainsRune(s, c) {
				found = false
				break
			}
		}
		if found {
			return c
		}
	}
	panic(fmt.Sprintf("no common item in %q %q", first, rest))
}

func trim(line string) string {
	return strings.TrimRight(line, " \t\r\n")
}

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (Solver) SolveA(in aoc.Input) uint64 {
	var sum uint64
	aoc.ForLines(in, func(line string) {
		items := trim(line)
		if len(items)%2 != 0 {
			panic(fmt.Sprintf("odd rucksack %q", items))
		}
		half := len(items) / 2
		c := commonItem(items[:half], items[half:])
		aoc.Debugf("%s: %c", items, c)
		sum += Priority(c)
	})
	return sum
}

// want=70
func (Solver) SolveB(in aoc.Input) uint64 {
	var (
		sum   uint64
		group []string
	)
	aoc.ForLines(in, func(line string) {
		group = append(group, trim(line))
		if len(group) < groupSize {
			return
		}
		c := commonItem(group[0], group[1:]...)
		aoc.Debugf("%v: %c", group, c)
		sum += Priority(c)
		group = group[:0]
	})
	if len(group) != 0 {
		panic(fmt.Sprintf("%d rucksacks left over, want groups of %d", len(group), groupSize))
	}
	return sum
}

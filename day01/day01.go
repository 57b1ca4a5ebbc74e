// Package day01 solves "Calorie Counting": blank-line separated groups of
// numbers, ranked by their totals.
package day01

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/maisem/aoc2022"
)

//go:embed day01.go
var source []byte

// Puzzle returns the registration for day 1.
func Puzzle() aoc.Puzzle {
	return aoc.Puzzle{Day: 1, Solver: Solver{}, Source: source}
}

type Solver struct{}

// groupTotals returns the total of every group in in, sorted ascending.
// Groups are runs of non-blank lines; a group is closed by a blank line or
// by the end of the input.
func groupTotals(in aoc.Input) []uint64 {
	var (
		totals  []uint64
		pending strings.Builder
	)
	flush := func() {
		group := pending.String()
		pending.Reset()
		var nums []uint64
		for _, l := range strings.Split(group, "\n") {
			if strings.TrimSpace(l) == "" {
				continue
			}
			nums = append(nums, aoc.Uint(l))
		}
		if len(nums) == 0 {
			return
		}
		total := aoc.Sum(nums...)
		aoc.Debugf("group %v = %d", nums, total)
		totals = append(totals, total)
	}
	aoc.ForLines(in, func(line string) {
		if strings.TrimSpace(line) == "" {
			flush()
			return
		}
		pending.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			pending.WriteByte('\n')
		}
	})
	flush()

	slices.Sort(totals)
	return totals
}

// topN returns the sum of the n largest totals.
func topN(totals []uint64, n int) uint64 {
	if len(totals) < n {
		panic(fmt.Sprintf("need at least %d groups, got %d", n, len(totals)))
	}
	top := slices.Clone(totals[len(totals)-n:])
	slices.Reverse(top)
	return aoc.Sum(top...)
}

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (Solver) SolveA(in aoc.Input) uint64 {
	return topN(groupTotals(in), 1)
}

// want=45000
func (Solver) SolveB(in aoc.Input) uint64 {
	return topN(groupTotals(in), 3)
}

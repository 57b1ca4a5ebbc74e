// The aoc2022 command prints both answers for one day:
//
//	aoc2022 [-sample] [-debug] [day]
//
// The input for day N is read from NN.in.txt in the working directory.
package main

import (
	"github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/day01"
	"github.com/maisem/aoc2022/day02"
	"github.com/maisem/aoc2022/day03"
)

func main() {
	aoc.Run(
		day01.Puzzle(),
		day02.Puzzle(),
		day03.Puzzle(),
	)
}

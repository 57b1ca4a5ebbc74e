// Package day02 solves "Rock Paper Scissors": scoring a strategy guide of
// rounds.
package day02

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/maisem/aoc2022"
)

//go:embed day02.go
var source []byte

// Puzzle returns the registration for day 2.
func Puzzle() aoc.Puzzle {
	return aoc.Puzzle{Day: 2, Solver: Solver{}, Source: source}
}

type Solver struct{}

// Choice is a hand shape. Its value is its rank, which is also the score
// for playing it.
type Choice uint8

const (
	Rock Choice = iota + 1
	Paper
	Scissors
)

func (c Choice) String() string {
	switch c {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return fmt.Sprintf("Choice(%d)", uint8(c))
}

func (c Choice) valid() bool {
	return c >= Rock && c <= Scissors
}

// Rank returns 1, 2 or 3 for Rock, Paper and Scissors.
func (c Choice) Rank() uint64 {
	if !c.valid() {
		panic(fmt.Sprintf("invalid choice %d", uint8(c)))
	}
	return uint64(c)
}

// Add steps n times around the cycle. c.Add(1) is the choice that beats c.
func (c Choice) Add(n int) Choice {
	r := int(c.Rank()) - 1
	r = ((r+n)%3 + 3) % 3
	return Choice(r + 1)
}

// Sub steps n times backwards around the cycle. c.Sub(1) is the choice c
// beats.
func (c Choice) Sub(n int) Choice {
	return c.Add(-n)
}

// Compare returns +1 if c beats o, -1 if o beats c and 0 if they are the
// same. This is the cyclic dominance, not the order of the ranks: Rock
// beats Scissors.
func (c Choice) Compare(o Choice) int {
	switch {
	case c == o:
		return 0
	case c == o.Add(1):
		return 1
	case o == c.Add(1):
		return -1
	}
	panic(fmt.Sprintf("incomparable choices %v and %v", c, o))
}

// Outcome is the result of a round from the player's point of view.
type Outcome uint8

const (
	Lose Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Points is 0, 3 or 6.
func (o Outcome) Points() uint64 {
	switch o {
	case Lose:
		return 0
	case Draw:
		return 3
	case Win:
		return 6
	}
	panic(fmt.Sprintf("invalid outcome %d", uint8(o)))
}

// Round is one line of the strategy guide.
type Round struct {
	Opponent Choice
	Player   Choice
}

func (r Round) Outcome() Outcome {
	switch r.Player.Compare(r.Opponent) {
	case 1:
		return Win
	case 0:
		return Draw
	default:
		return Lose
	}
}

func (r Round) Score() uint64 {
	return r.Outcome().Points() + r.Player.Rank()
}

// ChoiceFor returns what to play against opponent to get want.
func ChoiceFor(opponent Choice, want Outcome) Choice {
	switch want {
	case Win:
		return opponent.Add(1)
	case Lose:
		return opponent.Sub(1)
	case Draw:
		return opponent
	}
	panic(fmt.Sprintf("invalid outcome %d", uint8(want)))
}

// The opponent plays A, B or C and the player X, Y or Z.
var (
	opponentChoices = map[byte]Choice{'A': Rock, 'B': Paper, 'C': Scissors}
	playerChoices   = map[byte]Choice{'X': Rock, 'Y': Paper, 'Z': Scissors}
)

func parseOpponent(b byte) Choice {
	c, ok := opponentChoices[b]
	if !ok {
		panic(fmt.Sprintf("unexpected opponent choice %q", b))
	}
	return c
}

func parsePlayer(b byte) Choice {
	c, ok := playerChoices[b]
	if !ok {
		panic(fmt.Sprintf("unexpected player choice %q", b))
	}
	return c
}

func parseOutcome(b byte) Outcome {
	switch b {
	case 'X':
		return Lose
	case 'Y':
		return Draw
	case 'Z':
		return Win
	}
	panic(fmt.Sprintf("unexpected outcome %q", b))
}

// fields splits line into its two single character tokens.
func fields(line string) (byte, byte) {
	f := strings.Fields(line)
	if len(f) != 2 {
		panic(fmt.Sprintf("want 2 tokens, got %q", line))
	}
	return aoc.Byte(f[0]), aoc.Byte(f[1])
}

func parseRound(line string) Round {
	opp, own := fields(line)
	return Round{Opponent: parseOpponent(opp), Player: parsePlayer(own)}
}

func parseTargetRound(line string) Round {
	opp, want := fields(line)
	o := parseOpponent(opp)
	return Round{Opponent: o, Player: ChoiceFor(o, parseOutcome(want))}
}

func totalScore(in aoc.Input, parse func(string) Round) uint64 {
	var total uint64
	aoc.ForLines(in, func(line string) {
		r := parse(line)
		aoc.Debugf("%v vs %v: %v", r.Player, r.Opponent, r.Outcome())
		total += r.Score()
	})
	return total
}

/*
want=15

A Y
B X
C Z
*/
func (Solver) SolveA(in aoc.Input) uint64 {
	return totalScore(in, parseRound)
}

// want=12
func (Solver) SolveB(in aoc.Input) uint64 {
	return totalScore(in, parseTargetRound)
}

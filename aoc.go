// Package aoc are quick & dirty utilities for running Advent of Code 2022
// solutions. (forked from maisem/aoc)
package aoc

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

// DefaultDay is the day run when no day is given on the command line.
const DefaultDay = 2

// Solver solves both parts of a single day. Each call consumes its Input.
type Solver interface {
	SolveA(Input) uint64
	SolveB(Input) uint64
}

// Puzzle is a registered day.
type Puzzle struct {
	Day    int
	Solver Solver

	// Source is the Go source declaring the Solver methods. Samples are
	// read from the doc comments of SolveA and SolveB.
	Source []byte
}

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples keyed by the name of the function
// they document. A sample without input reuses the previous one's.
func extractSamples(filename string, src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, filename, src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

type part struct {
	name  string
	fn    string
	solve func(Input) uint64
}

func (p Puzzle) parts() []part {
	return []part{
		{name: "A", fn: "SolveA", solve: p.Solver.SolveA},
		{name: "B", fn: "SolveB", solve: p.Solver.SolveB},
	}
}

type SampleResult struct {
	Part string
	Got  uint64
	Want string
}

func (r SampleResult) OK() bool {
	return strconv.FormatUint(r.Got, 10) == r.Want
}

// CheckSamples runs every part that has a sample and returns the results
// in part order.
func (p Puzzle) CheckSamples() []SampleResult {
	samples := extractSamples(fmt.Sprintf("day%02d.go", p.Day), p.Source)
	var out []SampleResult
	for _, pt := range p.parts() {
		s, ok := samples[pt.fn]
		if !ok {
			continue
		}
		out = append(out, SampleResult{
			Part: pt.name,
			Got:  pt.solve(NewSampleInput(s.input)),
			Want: s.want,
		})
	}
	return out
}

var (
	flagDebug  bool
	flagSample bool
)

func init() {
	flag.BoolVar(&flagSample, "sample", false, "only run samples")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
}

var initFlags = sync.OnceFunc(flag.Parse)

// Debugf prints a trace line when running with -debug.
func Debugf(format string, args ...any) {
	if flagDebug {
		fmt.Printf(format+"\n", args...)
	}
}

func register(puzzles []Puzzle) map[int]Puzzle {
	byDay := make(map[int]Puzzle, len(puzzles))
	for _, p := range puzzles {
		if _, dup := byDay[p.Day]; dup {
			log.Fatalf("day %d registered twice", p.Day)
		}
		byDay[p.Day] = p
	}
	return byDay
}

// parseDay returns the day selected by args, or DefaultDay if args is
// empty.
func parseDay(args []string) (int, error) {
	if len(args) == 0 {
		return DefaultDay, nil
	}
	d, err := strconv.Atoi(args[0])
	if err != nil || d < 0 {
		return 0, fmt.Errorf("bad day %q", args[0])
	}
	return d, nil
}

func lookup(days map[int]Puzzle, day int) (Puzzle, error) {
	p, ok := days[day]
	if !ok {
		known := maps.Keys(days)
		slices.Sort(known)
		return Puzzle{}, fmt.Errorf("no day %d; have %v", day, known)
	}
	return p, nil
}

func runSamples(p Puzzle) {
	fmt.Println("Running day", p.Day)
	for _, r := range p.CheckSamples() {
		if !r.OK() {
			fmt.Printf("part %s: %v ❌; want %v\n", r.Part, r.Got, r.Want)
			continue
		}
		fmt.Printf("part %s sample: %v ✅\n", r.Part, r.Got)
	}
}

// runDay solves both parts of p from its input file and writes the
// answers to w.
func runDay(w io.Writer, p Puzzle) {
	// Each part gets its own input; an Input can only be read once.
	inA := OpenInput(p.Day)
	inB := OpenInput(p.Day)

	t0 := time.Now()
	a := p.Solver.SolveA(inA)
	Debugf("part A took %v", time.Since(t0).Round(time.Microsecond))
	t0 = time.Now()
	b := p.Solver.SolveB(inB)
	Debugf("part B took %v", time.Since(t0).Round(time.Microsecond))

	fmt.Fprintf(w, "A:%d B:%d\n", a, b)
}

// Run selects a day from the first command line argument and prints both
// answers for it.
func Run(puzzles ...Puzzle) {
	initFlags()
	days := register(puzzles)

	day, err := parseDay(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	p, err := lookup(days, day)
	if err != nil {
		log.Fatal(err)
	}
	if flagSample {
		runSamples(p)
		return
	}
	runDay(os.Stdout, p)
}

package aoc

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/maisem/aoc2022/internal/aoctest"
)

func readAll(in Input) []string {
	var out []string
	ForLines(in, func(line string) {
		out = append(out, line)
	})
	return out
}

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input

other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input

other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=45000`,
			want: sample{
				want: "45000",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
	if _, ok := parseSample("// SolveA returns the answer."); ok {
		t.Errorf("ParseSample matched a plain doc comment")
	}
}

const fakeSource = `package fake

/*
want=3

a
b
c
*/
func (lineCounter) SolveA() {}

// want=4
func (lineCounter) SolveB() {}
`

type lineCounter struct{}

func (lineCounter) SolveA(in Input) uint64 { return uint64(len(readAll(in))) }
func (lineCounter) SolveB(in Input) uint64 { return uint64(len(readAll(in))) }

func TestExtractSamples(t *testing.T) {
	got := extractSamples("fake.go", []byte(fakeSource))
	want := map[string]sample{
		"SolveA": {want: "3", input: "a\nb\nc\n"},
		"SolveB": {want: "4", input: "a\nb\nc\n"},
	}
	if len(got) != len(want) {
		t.Fatalf("extractSamples = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("extractSamples[%s] = %v, want %v", k, got[k], v)
		}
	}
}

func TestCheckSamples(t *testing.T) {
	got := Puzzle{Day: 9, Solver: lineCounter{}, Source: []byte(fakeSource)}.CheckSamples()
	want := []SampleResult{
		{Part: "A", Got: 3, Want: "3"},
		{Part: "B", Got: 3, Want: "4"},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("CheckSamples = %v, want %v", got, want)
	}
	if !got[0].OK() || got[1].OK() {
		t.Errorf("OK() = %v, %v; want true, false", got[0].OK(), got[1].OK())
	}
}

func TestSampleInput(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "a", want: []string{"a\n"}},
		{in: "a\nb\n", want: []string{"a\n", "b\n"}},
		{
			in: `
			A Y
			B X

			C Z
			`,
			want: []string{"\n", "A Y\n", "B X\n", "\n", "C Z\n", "\n"},
		},
	}
	for _, tt := range tests {
		if got := readAll(NewSampleInput(tt.in)); !slices.Equal(got, tt.want) {
			t.Errorf("NewSampleInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSampleInputSinglePass(t *testing.T) {
	in := NewSampleInput("a\nb")
	readAll(in)
	if line, ok := in.Next(); ok {
		t.Errorf("Next after exhaustion = %q, true", line)
	}
}

func TestFileInput(t *testing.T) {
	tests := []struct {
		content string
		want    []string
	}{
		{content: "", want: nil},
		{content: "1\n2\n3", want: []string{"1\n", "2\n", "3"}},
		{content: "1\n\n2\n", want: []string{"1\n", "\n", "2\n"}},
	}
	dir := t.TempDir()
	for i, tt := range tests {
		name := filepath.Join(dir, InputName(i))
		if err := os.WriteFile(name, []byte(tt.content), 0644); err != nil {
			t.Fatal(err)
		}
		in := OpenFile(name)
		if got := readAll(in); !slices.Equal(got, tt.want) {
			t.Errorf("OpenFile(%q) lines = %q, want %q", tt.content, got, tt.want)
		}
		if _, ok := in.Next(); ok {
			t.Errorf("Next after EOF returned a line")
		}
	}
}

func TestFileInputMissing(t *testing.T) {
	aoctest.MustPanic(t, "OpenFile", func() {
		OpenFile(filepath.Join(t.TempDir(), "nope.in.txt"))
	})
}

func TestInputName(t *testing.T) {
	for day, want := range map[int]string{1: "01.in.txt", 3: "03.in.txt", 12: "12.in.txt"} {
		if got := InputName(day); got != want {
			t.Errorf("InputName(%d) = %q, want %q", day, got, want)
		}
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{args: nil, want: DefaultDay},
		{args: []string{"1"}, want: 1},
		{args: []string{"3", "extra"}, want: 3},
		{args: []string{"x"}, wantErr: true},
		{args: []string{"-1"}, wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseDay(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDay(%q) err = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDay(%q) = %d, want %d", tt.args, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	days := register([]Puzzle{
		{Day: 2, Solver: lineCounter{}},
		{Day: 1, Solver: lineCounter{}},
	})
	if p, err := lookup(days, 2); err != nil || p.Day != 2 {
		t.Errorf("lookup(2) = %v, %v", p.Day, err)
	}
	_, err := lookup(days, 7)
	if err == nil {
		t.Fatal("lookup(7) succeeded")
	}
	if !strings.Contains(err.Error(), "[1 2]") {
		t.Errorf("lookup(7) error = %q, want known days listed", err)
	}
}

// countSum counts the lines for part A and adds them up for part B.
type countSum struct{}

func (countSum) SolveA(in Input) uint64 { return uint64(len(readAll(in))) }
func (countSum) SolveB(in Input) uint64 {
	var sum uint64
	ForLines(in, func(line string) { sum += Uint(line) })
	return sum
}

func TestRunDay(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "05.in.txt"), []byte("10\n10\n10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	var out strings.Builder
	runDay(&out, Puzzle{Day: 5, Solver: countSum{}})
	if got, want := out.String(), "A:3 B:30\n"; got != want {
		t.Errorf("runDay output = %q, want %q", got, want)
	}
}

func TestRunDayMissingInput(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	var out strings.Builder
	aoctest.MustPanic(t, "runDay without 05.in.txt", func() {
		runDay(&out, Puzzle{Day: 5, Solver: countSum{}})
	})
	if out.Len() != 0 {
		t.Errorf("runDay wrote %q before failing", out.String())
	}
}

func TestUint(t *testing.T) {
	if got := Uint(" 1000\n"); got != 1000 {
		t.Errorf("Uint = %d, want 1000", got)
	}
	for _, s := range []string{"", "-1", "12a", "1 2"} {
		aoctest.MustPanic(t, "Uint("+s+")", func() { Uint(s) })
	}
}

func TestByte(t *testing.T) {
	if got := Byte("X"); got != 'X' {
		t.Errorf("Byte = %q, want 'X'", got)
	}
	for _, s := range []string{"", "XY"} {
		aoctest.MustPanic(t, "Byte("+s+")", func() { Byte(s) })
	}
}

func TestSum(t *testing.T) {
	if got := Sum[uint64](); got != 0 {
		t.Errorf("Sum() = %d, want 0", got)
	}
	if got := Sum(uint64(1), 2, 3); got != 6 {
		t.Errorf("Sum(1, 2, 3) = %d, want 6", got)
	}
}

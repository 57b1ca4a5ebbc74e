package aoc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Input is a single pass sequence of lines. Every line keeps its "\n"
// terminator, except possibly the last line of a file that doesn't end in
// one.
type Input interface {
	// Next returns the next line. ok is false once the input is exhausted.
	Next() (line string, ok bool)
}

// ForLines calls onLine for each remaining line of in.
func ForLines(in Input, onLine func(line string)) {
	for {
		line, ok := in.Next()
		if !ok {
			return
		}
		onLine(line)
	}
}

// InputName returns the name of the puzzle input file for day.
func InputName(day int) string {
	return fmt.Sprintf("%02d.in.txt", day)
}

// OpenInput opens the puzzle input for day from the working directory.
func OpenInput(day int) *FileInput {
	return OpenFile(InputName(day))
}

// FileInput is an Input backed by a file on disk.
type FileInput struct {
	f *os.File
	r *bufio.Reader
}

// OpenFile opens name for reading. It panics if the file can't be opened.
func OpenFile(name string) *FileInput {
	f := MustGet(os.Open(name))
	return &FileInput{
		f: f,
		r: bufio.NewReader(f),
	}
}

func (fi *FileInput) Next() (string, bool) {
	if fi.r == nil {
		return "", false
	}
	line, err := fi.r.ReadString('\n')
	if err == io.EOF {
		fi.close()
		return line, line != ""
	}
	if err != nil {
		fi.close()
		panic(fmt.Sprintf("reading %s: %v", fi.f.Name(), err))
	}
	return line, true
}

func (fi *FileInput) close() {
	MustDo(fi.f.Close())
	fi.r = nil
}

// SampleInput is an in-memory Input, used for samples and tests.
type SampleInput struct {
	lines []string
}

// NewSampleInput returns an Input over the lines of s. Each line has its
// surrounding whitespace trimmed and is terminated with "\n", so samples
// can be indented in source.
func NewSampleInput(s string) *SampleInput {
	raw := strings.Split(s, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l) + "\n"
	}
	return &SampleInput{lines: lines}
}

func (si *SampleInput) Next() (string, bool) {
	if len(si.lines) == 0 {
		return "", false
	}
	line := si.lines[0]
	si.lines = si.lines[1:]
	return line, true
}

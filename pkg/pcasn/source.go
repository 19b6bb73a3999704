package pcasn

import (
	"bufio"
	"io"
	"strings"
)

// DefaultMaxLineSize is the longest physical line NewLineSource accepts.
const DefaultMaxLineSize = 1024 * 1024

// LineSource is a forward-only supplier of text lines.
//
// Next returns the next line without its terminator and false once the
// source is exhausted or broken. Err reports the failure, if any, after
// Next returned false.
type LineSource interface {
	Next() (string, bool)
	Err() error
}

type scannerSource struct {
	sc *bufio.Scanner
}

// NewLineSource reads lines from r. Both "\n" and "\r\n" terminate a line.
func NewLineSource(r io.Reader) LineSource {
	return newScannerSource(r, DefaultMaxLineSize)
}

func newScannerSource(r io.Reader, maxLine int) *scannerSource {
	sc := bufio.NewScanner(r)
	if maxLine <= 0 {
		maxLine = DefaultMaxLineSize
	}
	initial := 64 * 1024
	if initial > maxLine {
		initial = maxLine
	}
	sc.Buffer(make([]byte, 0, initial), maxLine)
	return &scannerSource{sc: sc}
}

func (s *scannerSource) Next() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}
	return s.sc.Text(), true
}

func (s *scannerSource) Err() error {
	return s.sc.Err()
}

type sliceSource struct {
	lines []string
}

// Lines returns a LineSource over the given in-memory lines.
func Lines(lines ...string) LineSource {
	return &sliceSource{lines: lines}
}

// StringSource splits text into lines.
func StringSource(text string) LineSource {
	return NewLineSource(strings.NewReader(text))
}

func (s *sliceSource) Next() (string, bool) {
	if len(s.lines) == 0 {
		return "", false
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, true
}

func (s *sliceSource) Err() error { return nil }

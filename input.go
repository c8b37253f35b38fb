package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// eol is the rune Peek and Next return at the end of a line.
const eol = '\n'

// Input is a single line of input being scanned. The terminating newline is
// not part of the line; Peek reports it once the line is exhausted.
type Input struct {
	line []rune
	pos  int
}

// NewInput creates an Input over src. If src contains a newline, the input
// ends before it.
func NewInput(src string) *Input {
	if k := strings.IndexByte(src, '\n'); k >= 0 {
		src = src[:k]
	}
	return &Input{line: []rune(src)}
}

// ReadLine reads one line from src. The result is io.EOF only if src has no
// more runes at all; a final line without a newline is returned normally.
func ReadLine(src io.RuneScanner) (*Input, error) {
	var in Input
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if in.line == nil {
					return nil, io.EOF
				}
				return &in, nil
			}
			return nil, err
		}
		if r == '\n' {
			if in.line == nil {
				in.line = []rune{}
			}
			return &in, nil
		}
		in.line = append(in.line, r)
	}
}

// Peek returns the next rune without consuming it.
func (in *Input) Peek() rune {
	if in.pos >= len(in.line) {
		return eol
	}
	return in.line[in.pos]
}

// Next consumes and returns the next rune. At the end of the line, Next
// returns '\n' and consumes nothing.
func (in *Input) Next() rune {
	r := in.Peek()
	if r != eol {
		in.pos++
	}
	return r
}

// AtEOL returns whether the line is exhausted.
func (in *Input) AtEOL() bool {
	return in.pos >= len(in.line)
}

// Col returns the 1-based column of the next rune.
func (in *Input) Col() int {
	return in.pos + 1
}

// SkipBlanks consumes horizontal whitespace.
func (in *Input) SkipBlanks() {
	for in.pos < len(in.line) && isBlank(in.line[in.pos]) {
		in.pos++
	}
}

// Word consumes a maximal run of letters and digits.
func (in *Input) Word() string {
	start := in.pos
	for in.pos < len(in.line) && isWordRune(in.line[in.pos]) {
		in.pos++
	}
	return string(in.line[start:in.pos])
}

// Number consumes a floating-point literal: digits, an optional fraction,
// and an optional exponent. An exponent marker not followed by digits is
// left unconsumed, so "2e" scans as 2 followed by e. Literals too large for
// float64 are infinite.
func (in *Input) Number() (float64, error) {
	start := in.pos
	in.digits()
	if in.Peek() == '.' {
		in.pos++
		in.digits()
	}
	if r := in.Peek(); r == 'e' || r == 'E' {
		k := in.pos + 1
		if k < len(in.line) && (in.line[k] == '+' || in.line[k] == '-') {
			k++
		}
		if k < len(in.line) && isDigit(in.line[k]) {
			in.pos = k
			in.digits()
		}
	}
	text := string(in.line[start:in.pos])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			// ParseFloat already rounded to ±Inf or ±0.
			return v, nil
		}
		return 0, &SyntaxError{Col: start + 1, Msg: "invalid number " + strconv.Quote(text)}
	}
	return v, nil
}

// Rest consumes and returns the remainder of the line.
func (in *Input) Rest() string {
	s := string(in.line[in.pos:])
	in.pos = len(in.line)
	return s
}

func (in *Input) digits() {
	for in.pos < len(in.line) && isDigit(in.line[in.pos]) {
		in.pos++
	}
}

func isBlank(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWordRune(r rune) bool {
	return isLetter(r) || unicode.IsDigit(r)
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

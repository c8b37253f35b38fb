package calc

import "strconv"

// SyntaxError is the error for any line that cannot be evaluated. It
// implements InputError.
type SyntaxError struct {
	// Col is the column of the rune at which the error was detected.
	Col int
	// Msg describes the problem.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based column of the
	// rune that caused it.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)

// syntaxErr creates a SyntaxError at the next rune of in.
func syntaxErr(in *Input, msg string) error {
	return &SyntaxError{Col: in.Col(), Msg: msg}
}

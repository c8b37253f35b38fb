package calc

import (
	"math"
	"strconv"
)

// expression := ['-'] term (('+'|'-') term)*
// term       := factor (('*'|'/') factor)*
// factor     := primary ('^' primary)*
// primary    := num | name expression | name | '(' expression ')'

// Evaluate reads one expression from in and returns its value. Evaluation
// stops at the first rune that cannot continue the expression, which is left
// unconsumed; checking for trailing input is up to the caller. Errors are
// always *SyntaxError.
//
// Division by zero and functions outside their domains produce infinities or
// NaN without error. The ^ operator is the exception: a NaN power is an
// error.
func Evaluate(in *Input, syms *Symbols) (float64, error) {
	return expression(in, syms)
}

// EvalString evaluates src as a complete expression.
func EvalString(src string, syms *Symbols) (float64, error) {
	in := NewInput(src)
	v, err := Evaluate(in, syms)
	if err != nil {
		return 0, err
	}
	if err := endOfLine(in); err != nil {
		return 0, err
	}
	return v, nil
}

// endOfLine requires that nothing but blanks remain in the input.
func endOfLine(in *Input) error {
	in.SkipBlanks()
	if !in.AtEOL() {
		return syntaxErr(in, "extra data after end of expression")
	}
	return nil
}

func expression(in *Input, syms *Symbols) (float64, error) {
	in.SkipBlanks()
	neg := false
	if in.Peek() == '-' {
		in.Next()
		neg = true
	}
	v, err := term(in, syms)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	in.SkipBlanks()
	for in.Peek() == '+' || in.Peek() == '-' {
		op := in.Next()
		r, err := term(in, syms)
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += r
		} else {
			v -= r
		}
		in.SkipBlanks()
	}
	return v, nil
}

func term(in *Input, syms *Symbols) (float64, error) {
	v, err := factor(in, syms)
	if err != nil {
		return 0, err
	}
	in.SkipBlanks()
	for in.Peek() == '*' || in.Peek() == '/' {
		op := in.Next()
		r, err := factor(in, syms)
		if err != nil {
			return 0, err
		}
		if op == '*' {
			v *= r
		} else {
			v /= r
		}
		in.SkipBlanks()
	}
	return v, nil
}

// factor parses exponentiations. Unlike the usual convention, ^ groups to
// the left: 2^3^2 is 64.
func factor(in *Input, syms *Symbols) (float64, error) {
	v, err := primary(in, syms)
	if err != nil {
		return 0, err
	}
	in.SkipBlanks()
	for in.Peek() == '^' {
		col := in.Col()
		in.Next()
		r, err := primary(in, syms)
		if err != nil {
			return 0, err
		}
		if illegalPow(v, r) {
			return 0, &SyntaxError{Col: col, Msg: "illegal values for ^ operator"}
		}
		v = math.Pow(v, r)
		in.SkipBlanks()
	}
	return v, nil
}

// illegalPow reports whether x^y is undefined. math.Pow gives 1 for 1^NaN
// and (±1)^±Inf, but those are undefined too. x^0 is 1 even for NaN x.
func illegalPow(x, y float64) bool {
	if math.IsNaN(y) || math.Abs(x) == 1 && math.IsInf(y, 0) {
		return true
	}
	return math.IsNaN(math.Pow(x, y))
}

func primary(in *Input, syms *Symbols) (float64, error) {
	in.SkipBlanks()
	r := in.Peek()
	switch {
	case isDigit(r):
		return in.Number()
	case isLetter(r):
		col := in.Col()
		name := in.Word()
		e, ok := syms.Lookup(name)
		if !ok {
			return 0, &SyntaxError{Col: col, Msg: "unknown variable " + strconv.Quote(name)}
		}
		if !e.IsFunc() {
			return e.Value, nil
		}
		// The argument is a whole expression, so sin x + 1 is sin(x+1).
		x, err := expression(in, syms)
		if err != nil {
			return 0, err
		}
		return e.Func.Call(x), nil
	case r == '(':
		in.Next()
		v, err := expression(in, syms)
		if err != nil {
			return 0, err
		}
		in.SkipBlanks()
		if in.Peek() != ')' {
			return 0, syntaxErr(in, "missing right parenthesis")
		}
		in.Next()
		return v, nil
	case in.AtEOL():
		return 0, syntaxErr(in, "end-of-line encountered in the middle of an expression")
	case r == ')':
		return 0, syntaxErr(in, "extra right parenthesis")
	case r == '+', r == '-', r == '*', r == '/':
		return 0, syntaxErr(in, "misplaced operator")
	default:
		return 0, syntaxErr(in, "unexpected character "+strconv.QuoteRune(r))
	}
}

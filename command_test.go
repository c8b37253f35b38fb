package calc_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestExec(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    calc.Result
	}{
		{"print", "print 2+3*4", calc.Result{Cmd: calc.Print, Value: 14}},
		{"print-upper", "PRINT 1", calc.Result{Cmd: calc.Print, Value: 1}},
		{"print-blanks", "  print   7  ", calc.Result{Cmd: calc.Print, Value: 7}},
		{"print-paren", "print(2)", calc.Result{Cmd: calc.Print, Value: 2}},
		{"let", "let x = 10", calc.Result{Cmd: calc.Let, Name: "x", Value: 10}},
		{"let-mixed", "Let y=2^3", calc.Result{Cmd: calc.Let, Name: "y", Value: 8}},
		{"let-pi", "let pi = 1", calc.Result{Cmd: calc.Let, Name: "pi", Value: 1}},
		{"let-digits", "let x2 = sqrt 4", calc.Result{Cmd: calc.Let, Name: "x2", Value: 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			syms := calc.NewSymbols()
			r, err := calc.Exec(calc.NewInput(c.src), syms)
			if err != nil {
				t.Fatalf("%q gave error: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q gave wrong result: want %+v, got %+v", c.src, c.r, r)
			}
			if r.Cmd != calc.Let {
				return
			}
			e, ok := syms.Lookup(r.Name)
			if !ok || e != calc.Number(r.Value) {
				t.Errorf("%q bound %s to %+v (%t)", c.src, r.Name, e, ok)
			}
		})
	}
}

func TestExecSequence(t *testing.T) {
	syms := calc.NewSymbols()
	lines := []struct {
		src string
		v   float64
	}{
		{"let x = 10", 10},
		{"print x*2", 20},
		{"let x = x + 1", 11},
		{"let pi = 1", 1},
		{"print pi + x", 12},
	}
	for _, l := range lines {
		r, err := calc.Exec(calc.NewInput(l.src), syms)
		if err != nil {
			t.Fatalf("%q gave error: %v", l.src, err)
		}
		if r.Value != l.v {
			t.Errorf("%q gave %g, want %g", l.src, r.Value, l.v)
		}
	}
}

func TestExecError(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
		col  int
	}{
		{"empty", "", `(?i)'print' or 'let'`, 1},
		{"unknown", "show 1", `(?i)'print' or 'let'`, 1},
		{"symbol", "? 1", `(?i)'print' or 'let'`, 1},
		{"print-nothing", "print", `(?i)end-of-line`, 6},
		{"print-trailing", "print 1 2", `(?i)extra data`, 9},
		{"let-no-name", "let = 2", `(?i)variable name`, 5},
		{"let-digit-name", "let 2 = 3", `(?i)variable name`, 5},
		{"let-no-eq", "let x 2", `(?i)'='`, 7},
		{"let-no-expr", "let x =", `(?i)end-of-line`, 8},
		{"let-trailing", "let x = 1 )", `(?i)extra data`, 11},
		{"let-bad-expr", "let x = y", `(?i)unknown variable "y"`, 9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			syms := calc.NewSymbols()
			want := syms.Names()
			r, err := calc.Exec(calc.NewInput(c.src), syms)
			if err == nil {
				t.Fatalf("%q gave no error and result %+v", c.src, r)
			}
			var se *calc.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error was %#v, not SyntaxError", err)
			}
			if !regexp.MustCompile(c.msg).MatchString(se.Msg) {
				t.Errorf("%q gave message %q, want match for %s", c.src, se.Msg, c.msg)
			}
			if se.Col != c.col {
				t.Errorf("%q gave error at column %d, want %d", c.src, se.Col, c.col)
			}
			if got := syms.Names(); len(got) != len(want) {
				t.Errorf("failed command changed names to %q", got)
			}
		})
	}
}

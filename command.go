package calc

import "strings"

// Command is the kind of a command line.
type Command int8

const (
	// Print evaluates an expression.
	Print Command = iota + 1
	// Let binds the value of an expression to a name.
	Let
)

func (c Command) String() string {
	switch c {
	case Print:
		return "print"
	case Let:
		return "let"
	default:
		return "Command(?)"
	}
}

// Result is the outcome of a successful command.
type Result struct {
	Cmd Command
	// Name is the variable bound by a let command.
	Name  string
	Value float64
}

// Exec executes one command line. The command word is case-insensitive:
//
//	print <expression>
//	let <name> = <expression>
//
// A let command binds its name only if the entire line is valid, so a failed
// command never changes syms.
func Exec(in *Input, syms *Symbols) (Result, error) {
	in.SkipBlanks()
	col := in.Col()
	switch cmd := in.Word(); {
	case strings.EqualFold(cmd, "print"):
		v, err := Evaluate(in, syms)
		if err != nil {
			return Result{}, err
		}
		if err := endOfLine(in); err != nil {
			return Result{}, err
		}
		return Result{Cmd: Print, Value: v}, nil
	case strings.EqualFold(cmd, "let"):
		return let(in, syms)
	default:
		return Result{}, &SyntaxError{Col: col, Msg: "command must begin with 'print' or 'let'"}
	}
}

func let(in *Input, syms *Symbols) (Result, error) {
	in.SkipBlanks()
	if !isLetter(in.Peek()) {
		return Result{}, syntaxErr(in, "expected variable name after 'let'")
	}
	name := in.Word()
	in.SkipBlanks()
	if in.Peek() != '=' {
		return Result{}, syntaxErr(in, "expected '=' operator for 'let' command")
	}
	in.Next()
	v, err := Evaluate(in, syms)
	if err != nil {
		return Result{}, err
	}
	if err := endOfLine(in); err != nil {
		return Result{}, err
	}
	syms.Bind(name, v)
	return Result{Cmd: Let, Name: name, Value: v}, nil
}

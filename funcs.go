package calc

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Func identifies a built-in function of one variable. The zero Func is not
// a function.
type Func int8

const (
	NoFunc Func = iota
	Sin
	Cos
	Tan
	Abs
	Sqrt
	Log // natural logarithm
)

var funcnames = [...]string{
	NoFunc: "NoFunc",
	Sin:    "sin",
	Cos:    "cos",
	Tan:    "tan",
	Abs:    "abs",
	Sqrt:   "sqrt",
	Log:    "log",
}

func (f Func) String() string {
	if f < 0 || int(f) >= len(funcnames) {
		return "Func(" + strconv.Itoa(int(f)) + ")"
	}
	return funcnames[f]
}

// Call applies the function to x. Arguments outside the function's domain
// give NaN or an infinity rather than an error.
func (f Func) Call(x float64) float64 {
	switch f {
	case Sin:
		return math.Sin(x)
	case Cos:
		return math.Cos(x)
	case Tan:
		return math.Tan(x)
	case Abs:
		return math.Abs(x)
	case Sqrt:
		return math.Sqrt(x)
	case Log:
		return math.Log(x)
	default:
		panic("calc: call of invalid function " + f.String())
	}
}

// The seeded constants come from bigfloat rather than package math so that
// they share one source with any higher-precision computation. Rounded to
// float64, they equal math.Pi and math.E.

// constprec is the precision in bits to which the seeded constants are
// computed before rounding to float64.
const constprec = 64

// constant computes a value with f at constprec bits and rounds it to the
// nearest float64.
func constant(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(constprec)
	f(r)
	v, _ := r.Float64()
	return v
}

var (
	constpi = constant(bigfloat.Pi)
	conste  = constant(func(out *big.Float) *big.Float {
		one := new(big.Float).SetPrec(constprec).SetFloat64(1)
		return bigfloat.Exp(out, one)
	})
)

// builtins returns the default symbol table contents.
func builtins() map[string]Entry {
	return map[string]Entry{
		"pi":   Number(constpi),
		"e":    Number(conste),
		"sin":  Function(Sin),
		"cos":  Function(Cos),
		"tan":  Function(Tan),
		"abs":  Function(Abs),
		"sqrt": Function(Sqrt),
		"log":  Function(Log),
	}
}

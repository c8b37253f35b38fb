// Package calc implements a line-oriented calculator with variables.
//
// Each line is either "print expr", which evaluates an expression, or
// "let name = expr", which binds the value of an expression to a name for
// later lines. Expressions use + - * / and ^ over float64 values. Note that
// "^" groups to the left, so "2^3^2" is "(2^3)^2". The names pi and e are
// constants, and sin, cos, tan, abs, sqrt, and log (natural logarithm) take
// the whole remaining expression as their argument: "sqrt 2 + 2" is 2.
//
// Expressions are evaluated while they are read; there is no parse tree.
//
package calc

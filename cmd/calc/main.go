package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/log"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetDefaultsForClientTools()
	log.LoggerStaticFlagSetup()
	var (
		inname, verb string
		with         [][2]string
		quiet        bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&quiet, "q", false, "omit banner and prompts")
	flag.Parse()
	if flag.NArg() != 0 {
		log.Fatalf("unexpected arguments: %q", flag.Args())
	}

	syms := calc.NewSymbols()
	for _, d := range with {
		nm := d[0]
		if !validName(nm) {
			log.Fatalf("invalid variable name %q in -given", nm)
		}
		r, err := calc.EvalString(d[1], syms)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		log.LogVf("given %s = %g", nm, r)
		syms.Bind(nm, r)
	}

	in, err := infile(inname)
	if err != nil {
		log.Fatalf("%v", err)
	}
	s := calc.Session{
		In:     in,
		Out:    os.Stdout,
		Syms:   syms,
		Format: verb,
		Quiet:  quiet,
	}
	if err := s.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// validName reports whether nm can be referenced in an expression: a letter
// followed by letters and digits.
func validName(nm string) bool {
	r, _ := utf8.DecodeRuneInString(nm)
	if !unicode.IsLetter(r) {
		return false
	}
	return calc.NewInput(nm).Word() == nm
}

func infile(inname string) (io.Reader, error) {
	if inname == "" || inname == "-" {
		return bufio.NewReader(os.Stdin), nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, err
	}
	return bufio.NewReader(f), nil
}

package calc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
)

// Session is an interactive command loop. The zero values of its optional
// fields select the defaults.
type Session struct {
	// In supplies command lines.
	In io.Reader
	// Out receives results, error reports, and prompts.
	Out io.Writer
	// Syms is the symbol table. If nil, Run uses NewSymbols.
	Syms *Symbols
	// Format is the fmt verb for printed values. Default is %g.
	Format string
	// Prompt is written before each line. Default is "?  ".
	Prompt string
	// Quiet suppresses the banner, prompts, and closing message.
	Quiet bool

	werr error
}

const banner = `

Enter commands; press return to end.
Commands must have the form:

      print <expression>
  or
      let <variable> = <expression>
`

// Run executes commands until an empty line or the end of the input. Errors
// in commands are reported to s.Out and do not end the session. The result
// is an error only if reading or writing fails.
func (s *Session) Run() error {
	if s.Syms == nil {
		s.Syms = NewSymbols()
	}
	verb := s.Format
	if verb == "" {
		verb = "%g"
	}
	prompt := s.Prompt
	if prompt == "" {
		prompt = "?  "
	}
	src, ok := s.In.(io.RuneScanner)
	if !ok {
		src = bufio.NewReader(s.In)
	}
	if !s.Quiet {
		s.printf("%s", banner)
	}
	for n := 1; s.werr == nil; n++ {
		if !s.Quiet {
			s.printf("\n%s", prompt)
		}
		in, err := ReadLine(src)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		in.SkipBlanks()
		if in.AtEOL() {
			break
		}
		r, err := Exec(in, s.Syms)
		if err != nil {
			log.Debugf("line %d: %v", n, err)
			msg := err.Error()
			var se *SyntaxError
			if errors.As(err, &se) {
				msg = se.Msg
			}
			s.printf("\n*** Error in input:    %s\n", msg)
			s.printf("*** Discarding input:  %s\n", strings.TrimRight(in.Rest(), "\r"))
			continue
		}
		switch r.Cmd {
		case Print:
			log.LogVf("line %d: print %g", n, r.Value)
			s.printf("Value is "+verb+"\n", r.Value)
		case Let:
			log.LogVf("line %d: let %s = %g", n, r.Name, r.Value)
			s.printf("ok\n")
		}
	}
	if !s.Quiet {
		s.printf("\n\nDone.\n")
	}
	return s.werr
}

// printf writes to s.Out, keeping the first write error.
func (s *Session) printf(format string, args ...interface{}) {
	if s.werr != nil {
		return
	}
	_, s.werr = fmt.Fprintf(s.Out, format, args...)
}

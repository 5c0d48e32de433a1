// Package shell implements the interactive encode/decode loop.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bokysan/chucknorris/internal/util"
	"github.com/bokysan/chucknorris/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	OpEncode = "encode"
	OpDecode = "decode"
	OpExit   = "exit"
)

// Shell reads operations from In and writes prompts and results to Out. It keeps no state between
// operations.
type Shell struct {
	Encoder enc.Encoder
	In      io.Reader
	Out     io.Writer
}

// New creates a shell using the given encoder and streams
func New(encoder enc.Encoder, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		Encoder: encoder,
		In:      in,
		Out:     out,
	}
}

// Run loops until the user exits or the input ends. Only write and read errors are returned; codec
// failures are reported to the user and the loop continues.
func (s *Shell) Run() error {
	p := &prompter{
		scanner: util.NewLineScanner(s.In),
		out:     s.Out,
	}

	for {
		request, ok := p.ask("Please input operation (encode/decode/exit):")
		if !ok {
			return p.err()
		}

		switch request {
		case OpEncode:
			line, ok := p.ask("Input string:")
			if !ok {
				return p.err()
			}
			s.encode(p, line)
		case OpDecode:
			line, ok := p.ask("Input encoded string:")
			if !ok {
				return p.err()
			}
			s.decode(p, line)
		case OpExit:
			p.println("Bye!")
			return p.err()
		default:
			p.println(fmt.Sprintf("There is no '%s' operation", request))
		}
		p.println("")
	}
}

func (s *Shell) encode(p *prompter, line string) {
	data := []byte(line)
	if v, ok := s.Encoder.(enc.Validator); ok {
		if err := v.Validate(data); err != nil {
			p.println(err.Error())
			return
		}
	}
	p.println("Encoded string:")
	p.println(s.Encoder.Encode(data))
}

func (s *Shell) decode(p *prompter, line string) {
	res, err := s.Encoder.Decode(line)
	if err != nil {
		log.WithError(err).Debugf("Could not decode %q", line)
		p.println(err.Error())
		return
	}
	// Blank results are not shown
	if strings.TrimSpace(string(res)) != "" {
		p.println("Decoded string:")
		p.println(string(res))
	}
}

// prompter remembers the first I/O error, after which all operations are no-ops
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	werr    error
}

func (p *prompter) println(line string) {
	if p.werr != nil {
		return
	}
	if _, err := fmt.Fprintln(p.out, line); err != nil {
		p.werr = errors.WithStack(err)
	}
}

func (p *prompter) ask(prompt string) (string, bool) {
	p.println(prompt)
	if p.werr != nil || !p.scanner.Scan() {
		return "", false
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), true
}

func (p *prompter) err() error {
	if p.werr != nil {
		return p.werr
	}
	return errors.WithStack(p.scanner.Err())
}

package common

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bokysan/chucknorris/internal/util"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Transform converts one unit of input into one unit of output
type Transform func(string) (string, error)

// Streams are the input and outputs of a command
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// Process applies fn to the arguments joined with spaces or, when there are no arguments, to every
// line of the input. Results are written to Out, error messages to ErrOut. Processing continues after
// a failed line; all failures are returned together.
func (s Streams) Process(arguments []string, fn Transform) error {
	if len(arguments) > 0 {
		return s.processLine(1, strings.Join(arguments, " "), fn)
	}

	var errs error
	scanner := util.NewLineScanner(s.In)
	for n := 1; scanner.Scan(); n++ {
		if err := s.processLine(n, strings.TrimRight(scanner.Text(), "\r"), fn); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "Could not read input"))
	}
	return errs
}

func (s Streams) processLine(n int, line string, fn Transform) error {
	res, err := fn(line)
	if err != nil {
		log.WithError(err).Debugf("Line %d failed", n)
		if _, werr := fmt.Fprintln(s.ErrOut, err.Error()); werr != nil {
			return errors.WithStack(werr)
		}
		return errors.Wrapf(err, "line %d", n)
	}
	if _, err := fmt.Fprintln(s.Out, res); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// StdStreams returns the standard input and outputs of the process
func StdStreams() Streams {
	return Streams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

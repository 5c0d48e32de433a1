package logging

import (
	"io"
	"os"
	"strings"

	"github.com/bokysan/chucknorris/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Options describe how the log output should look like and where it should go
type Options struct {
	Verbose       []bool
	File          string
	Format        string
	Color         string
	FullTimestamp bool
	ReportCaller  bool
}

// GeneralOptions returns the logging options given on the command line or in the configuration file
func GeneralOptions() Options {
	o := Options{
		Verbose:       args.General.Verbose,
		Format:        args.General.LogFormat,
		Color:         args.General.LogColor,
		FullTimestamp: args.General.LogFullTimestamp,
		ReportCaller:  args.General.LogReportCaller,
	}
	if args.General.LogFile != nil {
		o.File = *args.General.LogFile
	}
	return o
}

// SetupLogging configures the standard logrus logger. Logs always go to stderr or to a file; stdout
// is reserved for the output of the commands. The returned closer releases the log file, if any.
func SetupLogging(o Options) (io.Closer, error) {
	SetVerbosity(o.Verbose)

	if o.ReportCaller {
		log.AddHook(&ContextHook{})
	}

	if o.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(o.Color))
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: o.FullTimestamp,
		})
	}
	log.SetReportCaller(o.ReportCaller)

	var closer io.Closer = nopCloser{}
	if o.File != "" && o.File != "-" {
		f, err := os.OpenFile(o.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not open log file %v", o.File)
		}
		log.SetOutput(f)
		closer = f
	} else {
		log.SetOutput(os.Stderr)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

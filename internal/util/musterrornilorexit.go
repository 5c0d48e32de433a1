package util

import (
	"errors"
	"fmt"
	"os"

	"github.com/bokysan/chucknorris/internal/util/enc"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

const (
	// ErrInvalidInput is the exit code used when the input could not be encoded or decoded
	ErrInvalidInput = 1
	ErrGeneric      = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object. Invalid codec input exits with ErrInvalidInput.
// Invalid input has already been reported to the user by the command, so it is only logged at debug
// level. Any other kind of error returns a generic error code - 99.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, flagsError.Message)
			log.Exit(0)
			return
		}
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(int(flagsError.Type))
		return
	}

	if errors.Is(err, enc.ErrInvalidEncoding) || errors.Is(err, enc.ErrNotASCII) {
		log.StandardLogger().WithError(err).Logf(log.DebugLevel, "Invalid input: %+v", err)
		log.Exit(ErrInvalidInput)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(ErrGeneric)
}

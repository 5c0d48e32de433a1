package common

import (
	"io"

	"github.com/bokysan/chucknorris/internal/logging"
	"github.com/bokysan/chucknorris/internal/util/enc"
)

// Setup prepares logging and the encoder for a command. The returned closer must be closed when the
// command finishes.
func Setup() (enc.Encoder, io.Closer, error) {
	closer, err := logging.SetupLogging(logging.GeneralOptions())
	if err != nil {
		return nil, nil, err
	}
	e, err := SelectedEncoder()
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return e, closer, nil
}

package common

import (
	"github.com/bokysan/chucknorris/internal/args"
	"github.com/bokysan/chucknorris/internal/util/enc"
	log "github.com/sirupsen/logrus"
)

// SelectedEncoder returns the encoder chosen with `--encoder` (ChuckNorris if none), configured with the rest of the codec options.
func SelectedEncoder() (enc.Encoder, error) {
	name := args.Codec.Encoder
	if name == "" {
		name = args.DefaultEncoder
	}
	e, err := enc.Find(name)
	if err != nil {
		return nil, err
	}
	if _, ok := e.(*enc.ChuckNorrisEncoder); ok && args.Codec.Lenient {
		e = &enc.ChuckNorrisEncoder{Lenient: true}
	}
	log.Debugf("Using encoder %v", e.Name())
	return e, nil
}

// Validate checks the input against encoders which restrict what they accept.
func Validate(e enc.Encoder, data []byte) error {
	if v, ok := e.(enc.Validator); ok {
		return v.Validate(data)
	}
	return nil
}

package enc

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownEncoder = errors.New("unknown encoder")

// Find returns the encoder with the given name or one-letter code. Names are not case-sensitive,
// codes are.
func Find(name string) (Encoder, error) {
	name = strings.TrimSpace(name)
	for _, e := range Encoders {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	if len(name) == 1 {
		for _, e := range Encoders {
			if e.Code() == name[0] {
				return e, nil
			}
		}
	}
	return nil, errors.Wrapf(ErrUnknownEncoder, "%q", name)
}

// Names returns the names of all known encoders.
func Names() []string {
	res := make([]string, 0, len(Encoders))
	for _, e := range Encoders {
		res = append(res, e.Name())
	}
	return res
}

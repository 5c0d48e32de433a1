package enc

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	cb32 = "abcdefghijklmnopqrstuvwxyz012345"
)

var lowerBase32Encoding = base32.NewEncoding(cb32).WithPadding(base32.NoPadding)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. Decoding is not case-sensitive.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return lowerBase32Encoding.EncodeToString(data)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	res, err := lowerBase32Encoding.DecodeString(strings.ToLower(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (b *Base32Encoder) TestPatterns() []string {
	return []string{
		"aA" + cb32,
	}
}

package enc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	bitsPerChar = 7

	// headOne marks a run of ones, headZero a run of zeros
	headOne  = "0"
	headZero = "00"

	countMark = '0'
	separator = ' '
)

var (
	// ErrInvalidEncoding is returned for any stream that does not match the encoder's output grammar.
	ErrInvalidEncoding = errors.New("Encode string is not valid.")

	// ErrNotASCII is returned by ChuckNorrisEncoder.Validate for characters outside of 0-127.
	ErrNotASCII = errors.New("input contains non-ASCII characters")
)

// Run is a maximal sequence of identical bits in the concatenated 7-bit representation of the input.
type Run struct {
	Bit    byte
	Length int
}

// Head returns the head token which introduces this run in the encoded stream.
func (r Run) Head() string {
	return head(r.Bit)
}

// Count returns the count token of this run: one zero per bit.
func (r Run) Count() string {
	return strings.Repeat(string(countMark), r.Length)
}

func head(bit byte) string {
	if bit == 1 {
		return headOne
	}
	return headZero
}

// Runs splits the 7-bit representation of data into runs. Only the low 7 bits of every byte are
// taken into account. Runs continue across character boundaries.
func Runs(data []byte) []Run {
	runs := make([]Run, 0)
	for _, ch := range data {
		for i := bitsPerChar - 1; i >= 0; i-- {
			bit := (ch >> uint(i)) & 1
			if n := len(runs); n > 0 && runs[n-1].Bit == bit {
				runs[n-1].Length++
				continue
			}
			runs = append(runs, Run{Bit: bit, Length: 1})
		}
	}
	return runs
}

// -------------------------------------------------------

// ChuckNorrisEncoder writes every run of bits as two tokens made only of zeros: a head telling
// whether the run is made of ones ("0") or zeros ("00") and a count with one zero per bit.
//
// Decoding is strict by default and refuses count tokens which contain anything else than zeros.
// Set Lenient to only look at the length of the count token.
type ChuckNorrisEncoder struct {
	Lenient bool
}

func (c *ChuckNorrisEncoder) Name() string {
	return "ChuckNorris"
}

func (c *ChuckNorrisEncoder) String() string {
	return fmt.Sprintf("%v(%v)", c.Name(), string(c.Code()))
}

func (c *ChuckNorrisEncoder) Code() byte {
	return 'C'
}

// Validate makes sure every character fits into 7 bits.
func (c *ChuckNorrisEncoder) Validate(data []byte) error {
	for i, ch := range data {
		if ch > 127 {
			return fmt.Errorf("%w: byte 0x%02x at position %d", ErrNotASCII, ch, i)
		}
	}
	return nil
}

// Encode never fails. Bytes above 127 lose their high bit; use Validate first if that matters.
func (c *ChuckNorrisEncoder) Encode(data []byte) string {
	var sb strings.Builder
	var last byte
	first := true

	for _, ch := range data {
		for i := bitsPerChar - 1; i >= 0; i-- {
			bit := (ch >> uint(i)) & 1
			if !first && bit == last {
				sb.WriteByte(countMark)
				continue
			}
			if !first {
				sb.WriteByte(separator)
			}
			first = false
			last = bit
			sb.WriteString(head(bit))
			sb.WriteByte(separator)
			sb.WriteByte(countMark)
		}
	}
	return sb.String()
}

func (c *ChuckNorrisEncoder) Decode(data string) ([]byte, error) {
	tokens := strings.FieldsFunc(data, func(r rune) bool {
		return r == separator
	})
	if len(tokens) == 0 || len(tokens)%2 != 0 {
		return nil, ErrInvalidEncoding
	}

	bits := make([]byte, 0, len(data))
	for i := 0; i < len(tokens); i += 2 {
		var bit byte
		switch tokens[i] {
		case headOne:
			bit = 1
		case headZero:
			bit = 0
		default:
			return nil, ErrInvalidEncoding
		}

		count := tokens[i+1]
		length := utf8.RuneCountInString(count)
		if !c.Lenient {
			if strings.Trim(count, string(countMark)) != "" {
				return nil, ErrInvalidEncoding
			}
			length = len(count)
		}
		for j := 0; j < length; j++ {
			bits = append(bits, bit)
		}
	}

	if len(bits) == 0 || len(bits)%bitsPerChar != 0 {
		return nil, ErrInvalidEncoding
	}

	res := make([]byte, 0, len(bits)/bitsPerChar)
	for i := 0; i < len(bits); i += bitsPerChar {
		var ch byte
		for _, bit := range bits[i : i+bitsPerChar] {
			ch = ch<<1 | bit
		}
		res = append(res, ch)
	}
	return res, nil
}

func (c *ChuckNorrisEncoder) TestPatterns() []string {
	return []string{
		"C",
		"CC",
		"Chuck Norris' keyboard doesn't have a Ctrl key because nothing controls Chuck Norris.",
		"\x00\x7f\x00\x7f",
	}
}

// EncodeChuckNorris encodes text with the default ChuckNorrisEncoder.
func EncodeChuckNorris(text string) string {
	return ChuckNorrisEncoding.Encode([]byte(text))
}

// DecodeChuckNorris decodes a stream produced by EncodeChuckNorris. It returns ErrInvalidEncoding
// and an empty string if the stream is malformed.
func DecodeChuckNorris(stream string) (string, error) {
	res, err := ChuckNorrisEncoding.Decode(stream)
	if err != nil {
		return "", err
	}
	return string(res), nil
}

package enc

import "fmt"

// -------------------------------------------------------

// RawEncoder passes the text through unchanged. Encoding and decoding with it prints the input back,
// which is handy to check what the terminal or the configuration actually delivers to the codec.
// Raw output may contain control characters.
type RawEncoder struct {
}

func (r *RawEncoder) Name() string {
	return "Raw"
}

func (r *RawEncoder) String() string {
	return fmt.Sprintf("%v(%v)", r.Name(), string(r.Code()))
}

func (r *RawEncoder) Code() byte {
	return 'R'
}

func (r *RawEncoder) Encode(data []byte) string {
	return string(data)
}

// Decode never fails: any line is valid raw text.
func (r *RawEncoder) Decode(data string) ([]byte, error) {
	return []byte(data), nil
}

func (r *RawEncoder) TestPatterns() []string {
	return []string{
		"Chuck Norris counted to infinity. Twice.",
		"\t\x00\x7f",
	}
}

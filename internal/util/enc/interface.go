package enc

// Encoder turns arbitrary data into text and back.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}

// Validator is implemented by encoders which only accept a subset of all possible inputs.
type Validator interface {
	Validate([]byte) error
}

var (
	ChuckNorrisEncoding = &ChuckNorrisEncoder{}
	RawEncoding         = &RawEncoder{}
	Base32Encoding      = &Base32Encoder{}
	Base64Encoding      = &Base64Encoder{}
	Base91Encoding      = &Base91Encoder{}
)

// Encoders lists all known encoders, the default one first.
var Encoders = []Encoder{
	ChuckNorrisEncoding,
	RawEncoding,
	Base32Encoding,
	Base64Encoding,
	Base91Encoding,
}

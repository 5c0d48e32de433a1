package enc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ChuckNorrisEmpty(t *testing.T) {
	require.Equal(t, "", EncodeChuckNorris(""))

	res, err := DecodeChuckNorris("")
	require.Equal(t, ErrInvalidEncoding, err)
	require.Equal(t, "", res)

	_, err = DecodeChuckNorris("    ")
	require.Equal(t, ErrInvalidEncoding, err)
}

func Test_ChuckNorrisSingleCharacter(t *testing.T) {
	// 'A' = 1000001
	encoded := EncodeChuckNorris("A")
	require.Equal(t, "0 0 00 00000 0 0", encoded)

	decoded, err := DecodeChuckNorris(encoded)
	require.NoError(t, err)
	require.Equal(t, "A", decoded)
}

func Test_ChuckNorrisRunsSpanCharacters(t *testing.T) {
	// 'C' = 1000011, "CC" = 10000111000011
	require.Equal(t, "0 0 00 0000 0 00", EncodeChuckNorris("C"))
	require.Equal(t, "0 0 00 0000 0 000 00 0000 0 00", EncodeChuckNorris("CC"))
}

func Test_ChuckNorrisZeroCharacterIsOneRun(t *testing.T) {
	encoded := EncodeChuckNorris("\x00")
	require.Equal(t, "00 0000000", encoded)

	runs := Runs([]byte{0, 0})
	require.Len(t, runs, 1)
	require.Equal(t, byte(0), runs[0].Bit)
	require.Equal(t, 14, runs[0].Length)
	require.Equal(t, "00", runs[0].Head())
	require.Equal(t, strings.Repeat("0", 14), runs[0].Count())
}

func Test_ChuckNorrisRoundTrip(t *testing.T) {
	all := make([]byte, 128)
	for k := range all {
		all[k] = byte(k)
	}

	tests := append(ChuckNorrisEncoding.TestPatterns(), string(all), "Hello World!", " ", "~~~")
	for _, test := range tests {
		encoded := EncodeChuckNorris(test)
		require.NotRegexp(t, "[^0 ]", encoded)
		require.False(t, strings.HasPrefix(encoded, " "))
		require.False(t, strings.HasSuffix(encoded, " "))
		require.NotContains(t, encoded, "  ")

		decoded, err := DecodeChuckNorris(encoded)
		require.NoError(t, err)
		require.Equal(t, test, decoded)
	}
}

func Test_ChuckNorrisInvalid(t *testing.T) {
	tests := map[string]string{
		"odd token count":  "0 00 0",
		"single token":     "0",
		"bad head":         "000 0",
		"head is not zero": "1 0000000",
		"not seven bits":   "0 000000",
		"eight bits":       "0 0000 00 0000",
		"count not zeros":  "00 00x0000",
	}
	for name, test := range tests {
		res, err := ChuckNorrisEncoding.Decode(test)
		require.Truef(t, errors.Is(err, ErrInvalidEncoding), "%s: expected invalid encoding for %q", name, test)
		require.Nil(t, res)
	}
	require.Equal(t, "Encode string is not valid.", ErrInvalidEncoding.Error())
}

func Test_ChuckNorrisExtraSpaces(t *testing.T) {
	encoded := EncodeChuckNorris("Norris")
	spaced := "  " + strings.ReplaceAll(encoded, " ", "   ") + " "

	decoded, err := DecodeChuckNorris(spaced)
	require.NoError(t, err)
	require.Equal(t, "Norris", decoded)
}

func Test_ChuckNorrisLenient(t *testing.T) {
	encoder := &ChuckNorrisEncoder{Lenient: true}

	// 'A' with count tokens made from other characters
	decoded, err := encoder.Decode("0 x 00 abcde 0 é")
	require.NoError(t, err)
	require.Equal(t, []byte("A"), decoded)

	_, err = encoder.Decode("000 0")
	require.Equal(t, ErrInvalidEncoding, err)

	_, err = ChuckNorrisEncoding.Decode("0 x 00 abcde 0 é")
	require.Equal(t, ErrInvalidEncoding, err)
}

func Test_ChuckNorrisValidate(t *testing.T) {
	require.NoError(t, ChuckNorrisEncoding.Validate([]byte("plain ascii \x00\x7f")))

	err := ChuckNorrisEncoding.Validate([]byte("naïve"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotASCII))
}

func Test_ChuckNorrisHighBitIsDropped(t *testing.T) {
	require.Equal(t, EncodeChuckNorris("\x41"), EncodeChuckNorris("\xc1"))
}

func Test_ChuckNorrisConcurrent(t *testing.T) {
	done := make(chan string, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			res, err := DecodeChuckNorris(EncodeChuckNorris("concurrent"))
			if err != nil {
				res = err.Error()
			}
			done <- res
		}()
	}
	for i := 0; i < cap(done); i++ {
		require.Equal(t, "concurrent", <-done)
	}
}

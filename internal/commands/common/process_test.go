package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bokysan/chucknorris/internal/args"
	"github.com/bokysan/chucknorris/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func upper(s string) (string, error) {
	if s == "bad" {
		return "", enc.ErrInvalidEncoding
	}
	return strings.ToUpper(s), nil
}

func Test_ProcessArguments(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	s := Streams{In: strings.NewReader("ignored\n"), Out: out, ErrOut: errOut}

	require.NoError(t, s.Process([]string{"chuck", "norris"}, upper))
	require.Equal(t, "CHUCK NORRIS\n", out.String())
	require.Empty(t, errOut.String())
}

func Test_ProcessLines(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	s := Streams{In: strings.NewReader("one\r\nbad\nthree\nbad"), Out: out, ErrOut: errOut}

	err := s.Process(nil, upper)
	require.Error(t, err)
	require.Equal(t, "ONE\nTHREE\n", out.String())
	require.Equal(t, "Encode string is not valid.\nEncode string is not valid.\n", errOut.String())

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	require.Contains(t, merr.Errors[0].Error(), "line 2")
	require.Contains(t, merr.Errors[1].Error(), "line 4")
	require.Equal(t, enc.ErrInvalidEncoding, errors.Cause(merr.Errors[0]))
}

func Test_SelectedEncoder(t *testing.T) {
	defer func(e string, l bool) {
		args.Codec.Encoder, args.Codec.Lenient = e, l
	}(args.Codec.Encoder, args.Codec.Lenient)

	args.Codec.Encoder, args.Codec.Lenient = "ChuckNorris", false
	e, err := SelectedEncoder()
	require.NoError(t, err)
	require.Equal(t, enc.ChuckNorrisEncoding, e)

	args.Codec.Lenient = true
	e, err = SelectedEncoder()
	require.NoError(t, err)
	require.Equal(t, &enc.ChuckNorrisEncoder{Lenient: true}, e)

	args.Codec.Encoder = "X"
	e, err = SelectedEncoder()
	require.NoError(t, err)
	require.Equal(t, enc.Base91Encoding, e)

	args.Codec.Encoder = "nope"
	_, err = SelectedEncoder()
	require.Error(t, err)
}

func Test_Validate(t *testing.T) {
	require.NoError(t, Validate(enc.Base64Encoding, []byte("żółw")))
	require.Error(t, Validate(enc.ChuckNorrisEncoding, []byte("żółw")))
}

func Test_ProcessLongLine(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	line := strings.Repeat("norris ", 20000)
	s := Streams{In: strings.NewReader(line + "\n"), Out: out, ErrOut: errOut}

	require.NoError(t, s.Process(nil, upper))
	require.Equal(t, strings.ToUpper(line)+"\n", out.String())
}

func Test_SelectedEncoderDefault(t *testing.T) {
	defer func(e string, l bool) {
		args.Codec.Encoder, args.Codec.Lenient = e, l
	}(args.Codec.Encoder, args.Codec.Lenient)

	args.Codec.Encoder, args.Codec.Lenient = "", false
	e, err := SelectedEncoder()
	require.NoError(t, err)
	require.Equal(t, enc.ChuckNorrisEncoding, e)
}

package util

import (
	"errors"
	"os"
	"sync"
	"testing"

	"bou.ke/monkey"
	"github.com/bokysan/chucknorris/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
var seqMutex sync.Mutex

// patchExit replaces os.Exit and returns the recorded exit code (-1 if not called) and an undo function
func patchExit() (*int, func()) {
	seqMutex.Lock()
	exitCode := -1
	patch := monkey.Patch(os.Exit, func(i int) {
		exitCode = i
	})
	return &exitCode, func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	exitCode, undo := patchExit()
	defer undo()

	MustErrorNilOrExit(nil)

	require.Equal(t, -1, *exitCode, "MustErrorNilOrExit exited the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	exitCode, undo := patchExit()
	defer undo()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrShortNameTooLong), *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	exitCode, undo := patchExit()
	defer undo()

	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp})

	require.Equal(t, 0, *exitCode)
}

func Test_MustErrorNilOrExit_InvalidEncoding(t *testing.T) {
	exitCode, undo := patchExit()
	defer undo()

	var errs error
	errs = multierror.Append(errs, pkgerrors.Wrapf(enc.ErrInvalidEncoding, "line %d", 2))

	MustErrorNilOrExit(errs)

	require.Equal(t, ErrInvalidInput, *exitCode)
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	exitCode, undo := patchExit()
	defer undo()

	MustErrorNilOrExit(errors.New("demo"))

	require.Equal(t, ErrGeneric, *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

package util

import (
	"bufio"
	"io"
)

// MaxLineSize limits the length of a single line read from the input. Encoded streams are up to four
// times longer than the text, so the bufio default of 64 KiB is not enough.
const MaxLineSize = 16 * 1024 * 1024

// NewLineScanner returns a scanner reading lines of up to MaxLineSize bytes
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), MaxLineSize)
	return scanner
}

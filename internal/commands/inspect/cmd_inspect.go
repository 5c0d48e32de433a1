package inspect

import (
	"fmt"
	"strings"

	"github.com/bokysan/chucknorris/internal/commands/common"
	"github.com/bokysan/chucknorris/internal/util/enc"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
)

// Command shows how text is split into runs of bits and which tokens every run produces. It only
// works with the ChuckNorris encoder.
type Command struct {
	Plain bool `long:"plain" env:"PLAIN" description:"Do not color the output"`

	streams common.Streams
}

func NewCommand() *Command {
	streams := common.StdStreams()
	streams.Out = ansi.NewAnsiStdout()
	return &Command{
		streams: streams,
	}
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	encoder, closer, err := common.Setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	return c.Run(encoder, args)
}

// Run prints the run table for the arguments or for every line of the input. Runs only exist for the
// ChuckNorris encoder; any other encoder is refused.
func (c *Command) Run(encoder enc.Encoder, args []string) error {
	cn, ok := encoder.(*enc.ChuckNorrisEncoder)
	if !ok {
		return errors.Errorf("inspect only supports the %v encoder, not %v", enc.ChuckNorrisEncoding.Name(), encoder.Name())
	}
	return c.streams.Process(args, func(text string) (string, error) {
		data := []byte(text)
		if err := cn.Validate(data); err != nil {
			return "", err
		}
		return c.table(text, enc.Runs(data)), nil
	})
}

func (c *Command) color(code string) string {
	if c.Plain {
		return ""
	}
	return code
}

func (c *Command) table(text string, runs []enc.Run) string {
	sb := &strings.Builder{}
	bits := 0
	for _, r := range runs {
		bits += r.Length
	}

	fmt.Fprintf(sb, "%s%q%s %s%d characters, %d bits, %d runs%s\n",
		c.color(common.Bold), text, c.color(common.Reset),
		c.color(common.DarkGray), len(text), bits, len(runs), c.color(common.Reset))
	for _, r := range runs {
		fmt.Fprintf(sb, "  %s%d%s x%-4d %s%s %s%s\n",
			c.color(common.Yellow), r.Bit, c.color(common.Reset), r.Length,
			c.color(common.White), r.Head(), r.Count(), c.color(common.Reset))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

package shell

import (
	"io"
	"os"

	"github.com/bokysan/chucknorris/internal/commands/common"
	"github.com/bokysan/chucknorris/internal/shell"
)

// Command starts the interactive encode/decode loop.
type Command struct {
	in  io.Reader
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	encoder, closer, err := common.Setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	return shell.New(encoder, c.in, c.out).Run()
}

package decode

import (
	"github.com/bokysan/chucknorris/internal/commands/common"
	"github.com/bokysan/chucknorris/internal/util/enc"
	log "github.com/sirupsen/logrus"
)

// Command decodes the stream given on the command line, or every line of the standard input.
type Command struct {
	streams common.Streams
}

func NewCommand() *Command {
	return &Command{
		streams: common.StdStreams(),
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

// Run decodes the arguments (or the input) with the given encoder
func (c *Command) Run(encoder enc.Encoder, args []string) error {
	return c.streams.Process(args, func(stream string) (string, error) {
		res, err := encoder.Decode(stream)
		if err != nil {
			return "", err
		}
		log.Tracef("Decoded %q as %q", stream, res)
		return string(res), nil
	})
}

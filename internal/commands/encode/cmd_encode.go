package encode

import (
	"github.com/bokysan/chucknorris/internal/commands/common"
	"github.com/bokysan/chucknorris/internal/util/enc"
	log "github.com/sirupsen/logrus"
)

// Command encodes the text given on the command line, or every line of the standard input.
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

// Run encodes the arguments (or the input) with the given encoder
func (c *Command) Run(encoder enc.Encoder, args []string) error {
	return c.streams.Process(args, func(text string) (string, error) {
		data := []byte(text)
		if err := common.Validate(encoder, data); err != nil {
			return "", err
		}
		res := encoder.Encode(data)
		log.Tracef("Encoded %q as %q", text, res)
		return res, nil
	})
}

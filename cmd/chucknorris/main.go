package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/chucknorris/internal/args"
	"github.com/bokysan/chucknorris/internal/commands/decode"
	"github.com/bokysan/chucknorris/internal/commands/encode"
	"github.com/bokysan/chucknorris/internal/commands/inspect"
	"github.com/bokysan/chucknorris/internal/commands/shell"
	"github.com/bokysan/chucknorris/internal/commands/version"
	cnFlags "github.com/bokysan/chucknorris/internal/flags"
	"github.com/bokysan/chucknorris/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// ChuckNorris is the main executable
type ChuckNorris struct {
	parser *flags.Parser
}

// NewChuckNorris will create a new instance of ChuckNorris and initialize the parser
func NewChuckNorris() *ChuckNorris {
	executablePath := path.Base(os.Args[0])

	cn := &ChuckNorris{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag),
	}

	cn.addGroup("General", "General options", &args.General)
	cn.setupConfiguration()
	cn.addGroup("Codec", "Codec options", &args.Codec)

	cn.addCommand("version", "Print the version", "Print the application version and exit", version.NewCommand())
	cn.addCommand("encode", "Encode text",
		"Encode the text given as arguments or, without arguments, every line of the standard input", encode.NewCommand())
	cn.addCommand("decode", "Decode a stream",
		"Decode the stream given as arguments or, without arguments, every line of the standard input", decode.NewCommand())
	cn.addCommand("inspect", "Show runs of bits",
		"Show how the text is split into runs of bits and the tokens emitted for every run. Only the ChuckNorris encoder is supported", inspect.NewCommand())
	cn.addCommand("shell", "Interactive mode",
		"Read encode/decode/exit operations from the standard input until exit", shell.NewCommand())

	return cn
}

func (cn *ChuckNorris) addGroup(name, description string, data interface{}) {
	if _, err := cn.parser.AddGroup(name, description, data); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

func (cn *ChuckNorris) addCommand(command, short, long string, data interface{}) {
	_, err := cn.parser.AddCommand(command, short, long, data)
	util.MustErrorNilOrExit(err)
}

// setupConfiguration makes `-c` load the YAML configuration file into the parser's groups and commands
func (cn *ChuckNorris) setupConfiguration() {
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return errors.WithStack(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		args.General.ConfigurationFilePath = file
		return cnFlags.NewYamlParser(cn.parser).ParseFile(file)
	}
}

// main reads the configuration file, if any, and runs the selected command
func main() {
	_, err := NewChuckNorris().parser.Parse()
	util.MustErrorNilOrExit(err)
}

package version

import (
	"fmt"
	"io"

	"github.com/bokysan/chucknorris/internal/commands/common"
	"github.com/bokysan/chucknorris/internal/version"
	"github.com/k0kubun/go-ansi"
)

// Command prints the version and build details of the application.
type Command struct {
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: ansi.NewAnsiStdout(),
	}
}

func (i *Command) String() string {
	return "Version details"
}

//noinspection GoUnusedParameter
func (i *Command) Execute(args []string) error {
	i.PrintVersion()
	i.detail("Git tag", version.GitTag)
	i.detail("Git branch", version.GitBranch)
	i.detail("Git state", version.GitState)
	i.detail("Go version", version.GoVersion)
	return nil
}

func (i *Command) detail(name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(i.out, common.DarkGray+" %-11s "+common.White+"%+v"+common.Reset+"\n", name, value)
}

// PrintVersion prints the banner with the version, build date and commit
func (i *Command) PrintVersion() {
	fmt.Fprintf(i.out, common.Bold+common.BackgroundBlue+
		common.LightGray+" CHUCKNORRIS - unary cipher encoder "+common.White+"%s"+common.LightGray+" "+common.Reset+"\n"+
		common.DarkGray+" Built on    "+common.White+"%+v\n"+
		common.DarkGray+" Git version "+common.White+"%+v"+common.Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}

package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/trielab/statetrie/cli/state"
	"github.com/urfave/cli"
)

// Version is the version of the tool, set at build time.
var Version string

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "statetrie\nVersion: %s\nGoVersion: %s\n",
		Version,
		runtime.Version(),
	)
}

// New creates a statetrie instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "statetrie"
	ctl.Version = Version
	ctl.Usage = "Merkle Patricia Trie state toolkit"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, state.NewCommands()...)
	return ctl
}

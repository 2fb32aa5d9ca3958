// Command simpak loads, inspects and checksums paksets.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/simpak/internal/vars"
)

type rootCmd struct {
	Version  versionCmd  `command:"version" description:"Show version information"`
	Load     loadCmd     `command:"load" description:"Load a pakset and report problems"`
	List     listCmd     `command:"list" description:"List registered objects of a pakset"`
	Info     infoCmd     `command:"info" description:"Show the node tree of one pak file"`
	Checksum checksumCmd `command:"checksum" description:"Print the pakset checksum"`
}

func main() {
	var root rootCmd
	parser := flags.NewParser(&root, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

type versionCmd struct{}

// Execute prints the version information.
func (c *versionCmd) Execute(_ []string) error {
	vars.Print()
	return nil
}

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/woozymasta/simpak/internal/pakfile"
)

type infoCmd struct {
	Args struct {
		Input string `positional-arg-name:"FILE" required:"true" description:"Pak file"`
	} `positional-args:"true"`

	Depth int `short:"d" long:"depth" default:"-1" description:"Deepest level to print (-1: all)"`
}

// Execute prints the header and node tree of one pak file.
func (c *infoCmd) Execute(_ []string) error {
	raw, err := os.ReadFile(c.Args.Input)
	if err != nil {
		return err
	}

	data, err := pakfile.Decompress(raw)
	if err != nil {
		return err
	}

	var tree strings.Builder
	nodes := 0
	hdr, walkErr := pakfile.Walk(bytes.NewReader(data), func(depth int, info pakfile.NodeInfo) error {
		nodes++
		if c.Depth < 0 || depth <= c.Depth {
			fmt.Fprintf(&tree, "%s%-4s children=%d size=%d\n",
				strings.Repeat("  ", depth), info.Type, info.Children, info.Size)
		}
		return nil
	})

	fmt.Printf("file:    %s\n", c.Args.Input)
	fmt.Printf("storage: %s\n", pakfile.Sniff(raw))
	fmt.Printf("comment: %q\n", strings.TrimSpace(hdr.Comment))
	fmt.Printf("version: %d\n", hdr.Version)
	fmt.Printf("nodes:   %d\n", nodes)
	fmt.Print(tree.String())

	return walkErr
}

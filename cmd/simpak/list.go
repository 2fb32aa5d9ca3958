package main

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/woozymasta/simpak/internal/obj"
)

type listCmd struct {
	LoadOptions `group:"Load Options"`

	Args struct {
		Output string `positional-arg-name:"OUT" description:"Output file (default: stdout)"`
	} `positional-args:"true"`

	Pakset string `short:"p" long:"pakset" description:"Pakset directory (overrides the config)"`
	Type   string `short:"t" long:"type" description:"Only list objects with this tag, e.g. VHCL"`
	Format string `short:"f" long:"format" choice:"yaml" choice:"json" default:"yaml" description:"Output format"`
}

// Execute dumps the registered objects.
func (c *listCmd) Execute(_ []string) error {
	var filter obj.Type
	if c.Type != "" {
		t, ok := obj.ParseType(c.Type)
		if !ok {
			return errors.Errorf("invalid type tag: %s", c.Type)
		}
		filter = t
	}

	s, err := c.load(c.Pakset)
	if err != nil {
		return err
	}

	out, err := encodeOutput(s.Registry().Objects(filter), strings.ToLower(c.Format))
	if err != nil {
		return err
	}

	return writeOutput(c.Args.Output, out)
}

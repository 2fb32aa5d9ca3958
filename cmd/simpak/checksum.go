package main

import (
	"fmt"
)

type checksumCmd struct {
	LoadOptions `group:"Load Options"`

	Args struct {
		Pakset string `positional-arg-name:"DIR" description:"Pakset directory (overrides the config)"`
	} `positional-args:"true"`

	Verbose bool `short:"v" long:"verbose" description:"Print the checksum of every object"`
}

// Execute prints the pakset checksum.
func (c *checksumCmd) Execute(_ []string) error {
	s, err := c.load(c.Args.Pakset)
	if err != nil {
		return err
	}

	sums := s.Checksums()
	if c.Verbose {
		for _, k := range sums.Keys() {
			sum, _ := sums.Get(k.Type, k.Name)
			fmt.Printf("%s %-4s %s\n", sum, k.Type, k.Name)
		}
	}

	fmt.Printf("%s %d objects\n", sums.Sum(), sums.Len())

	return nil
}

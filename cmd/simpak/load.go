package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/simpak/internal/config"
	"github.com/woozymasta/simpak/internal/loader"
	"github.com/woozymasta/simpak/internal/obj"
)

// LoadOptions are shared by every command that loads a pakset.
type LoadOptions struct {
	Config     string `short:"c" long:"config" description:"Config file (yaml or json)"`
	Addons     string `short:"a" long:"addons" description:"Addon directory loaded after the pakset"`
	Recursive  bool   `short:"r" long:"recursive" description:"Descend into subdirectories"`
	SkipBroken bool   `long:"skip-broken" description:"Skip unreadable pak files instead of failing"`
	Prefetch   int    `long:"prefetch" description:"Files read in parallel"`
	LogLevel   string `short:"l" long:"log-level" description:"Log level (trace, debug, info, warn, error)"`
}

// config merges the config file with the command line.
func (o *LoadOptions) config(pakset string) (config.Config, error) {
	cfg := config.Default()
	if o.Config != "" {
		var err error
		if cfg, err = config.Read(o.Config); err != nil {
			return cfg, err
		}
	}

	if pakset != "" {
		cfg.Pakset = pakset
	}
	if o.Addons != "" {
		cfg.Addons = o.Addons
	}
	if o.Recursive {
		cfg.Recursive = true
	}
	if o.SkipBroken {
		cfg.SkipBroken = true
	}
	if o.Prefetch > 0 {
		cfg.Prefetch = o.Prefetch
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}

	return cfg, cfg.Validate()
}

// load reads the configured pakset and addons.
func (o *LoadOptions) load(pakset string) (*loader.Session, error) {
	cfg, err := o.config(pakset)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	opts := cfg.Options(log)
	opts.Progress = func(done, total int) {
		log.WithFields(logrus.Fields{"done": done, "total": total}).Trace("progress")
	}

	base := os.DirFS(cfg.Pakset)
	var addons fs.FS
	if cfg.Addons != "" {
		addons = os.DirFS(cfg.Addons)
	}

	s, err := loader.Load(context.Background(), opts, base, addons)
	if err != nil {
		return s, errors.Wrapf(err, "load pakset %s", cfg.Pakset)
	}

	return s, nil
}

type loadCmd struct {
	LoadOptions `group:"Load Options"`

	Args struct {
		Pakset string `positional-arg-name:"DIR" description:"Pakset directory (overrides the config)"`
	} `positional-args:"true"`
}

// Execute loads the pakset and prints counts and the load report.
func (c *loadCmd) Execute(_ []string) error {
	s, err := c.load(c.Args.Pakset)
	if err != nil {
		return err
	}

	printCounts(s.Registry().Counts())
	fmt.Printf("checksum: %s\n", s.Checksums().Sum())

	return s.Report().Write(os.Stdout)
}

// printCounts prints the non-empty tables sorted by tag.
func printCounts(counts map[obj.Type]int) {
	types := make([]obj.Type, 0, len(counts))
	for t, n := range counts {
		if n > 0 {
			types = append(types, t)
		}
	}
	slices.SortFunc(types, func(a, b obj.Type) int {
		return strings.Compare(a.String(), b.String())
	})

	for _, t := range types {
		fmt.Printf("%-4s %d\n", t, counts[t])
	}
}

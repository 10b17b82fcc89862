package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

type Config struct {
	Path    string
	Engine  string
	Command string
	NoColor bool
}

func parseConfig(args []string, stderr io.Writer) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("dbsql", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.Engine, "engine", "e", DefaultEngine,
		fmt.Sprintf("embedded engine (%s)", strings.Join(engineNames(), ", ")))
	fs.StringVarP(&cfg.Command, "command", "c", "", "execute SQL once and exit")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: dbsql [flags] [database]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return cfg, fmt.Errorf("too many arguments")
	}

	cfg.Path = fs.Arg(0)
	return cfg, nil
}

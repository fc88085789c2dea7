package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	configPath string
	debug      bool
	quiet      bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configPath, "config", "", "filter configuration file (YAML)")
	fs.BoolVar(&c.debug, "debug", false, "log every observed invocation and its verdict to stderr")
	fs.BoolVar(&c.quiet, "quiet", false, "suppress the startup filter description")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.configPath == "" {
		fmt.Fprintln(os.Stderr, "-config is required")
		fs.Usage()
		return false
	}
	return true
}

// renderCommand formats an argument vector the way it would be typed in a
// shell, for debug output only.
func renderCommand(args []string) string {
	var b commandBuilder
	b.add(args...)
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cdbtrace/invocation-filter/config"
	"github.com/cdbtrace/invocation-filter/logging"
	"github.com/cdbtrace/invocation-filter/record"
)

// The command is the host harness around the classification core: it loads
// the filter configuration, reads observed invocation records from stdin
// (one JSON object per line, as produced by the capture side of the tool),
// and writes the resolved source-file path of every compiler call to stdout.
// Invocations that are not compiler calls, name no source file, or are
// cancelled produce no output.
func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	f, err := config.LoadFilter(params.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invocation-filter: %s\n", err)
		os.Exit(1)
	}

	debugLogger := logging.NullLogger()
	if params.debug {
		debugLogger = log.New(os.Stderr, "", log.LstdFlags)
	}

	if !params.quiet {
		printFilterDescription(os.Stderr, f)
	}

	var sink verdictSink = newConsoleSink(os.Stdout)
	reader := record.NewReader(os.Stdin)
	for {
		inv, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "invocation-filter: %s\n", err)
			os.Exit(1)
		}

		debugLogger.Printf("observed: %s (in %s)", renderCommand(inv.Args), inv.Dir)
		if path, ok := f.SourceFile(inv); ok {
			debugLogger.Printf("  source file: %s", path)
			sink.Put(path)
		} else {
			debugLogger.Printf("  no source file")
		}
	}
}

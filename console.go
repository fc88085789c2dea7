package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/cdbtrace/invocation-filter/filter"
)

// verdictSink receives the resolved source-file path of every invocation
// classified as a compiler call. Negative verdicts never reach the sink.
type verdictSink interface {
	Put(path string)
}

type consoleSink struct {
	out   io.Writer
	style *color.Color
}

func newConsoleSink(out io.Writer) *consoleSink {
	return &consoleSink{out: out, style: color.New(color.FgGreen)}
}

func (s *consoleSink) Put(path string) {
	fmt.Fprintln(s.out, s.style.Sprint(path))
}

func printFilterDescription(dest io.Writer, f *filter.Filter) {
	compilers, sourceFiles, cancelParameters := f.Describe()
	heading := color.New(color.Bold)
	fmt.Fprintln(dest, heading.Sprint("Filter loaded:"))
	fmt.Fprintf(dest, "  %d compiler pattern(s)\n", compilers)
	fmt.Fprintf(dest, "  %d source file pattern(s)\n", sourceFiles)
	fmt.Fprintf(dest, "  %d cancel parameter pattern(s)\n", cancelParameters)
}

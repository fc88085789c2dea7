// Package record defines the invocation records consumed by the
// classification filter, and a reader for the JSON-lines stream produced by
// the process-capture side of the tool.
package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Invocation is one observed program execution: its argument vector (the
// first element is the program name or path) and the working directory it
// ran in. Invocations are read-only to the filter.
type Invocation struct {
	Args []string `json:"args"`
	Dir  string   `json:"dir"`
}

// String renders the invocation for human-readable output; it is not a wire
// format.
func (inv Invocation) String() string {
	return fmt.Sprintf("[%s] in %s", strings.Join(inv.Args, " "), inv.Dir)
}

// Reader decodes a stream of invocation records, one JSON object per line.
// Blank lines are skipped.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Read returns the next invocation in the stream. It returns io.EOF when the
// stream is exhausted, and a line-numbered error for records that cannot be
// decoded.
func (r *Reader) Read() (Invocation, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" {
			continue
		}
		var inv Invocation
		if err := json.Unmarshal([]byte(text), &inv); err != nil {
			return Invocation{}, fmt.Errorf("invalid invocation record at line %d: %w", r.line, err)
		}
		return inv, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Invocation{}, err
	}
	return Invocation{}, io.EOF
}

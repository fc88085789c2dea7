package config

import (
	"fmt"
	"os"

	"github.com/cdbtrace/invocation-filter/filter"
)

// LoadFile reads and parses a configuration document from a file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration: %w", err)
	}
	return Parse(data, path)
}

// LoadFilter builds a Filter straight from a configuration file: read,
// parse, extract the filter rules, compile. Any failure along the way
// aborts with the underlying diagnostic; no partially built filter is ever
// returned.
func LoadFilter(path string) (*filter.Filter, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	rules, err := doc.FilterRules()
	if err != nil {
		return nil, err
	}
	return filter.New(rules)
}

// Package config reads the tool's YAML configuration document and extracts
// the filter rules from it. The document is kept as a node tree so that
// errors can name the offending member and its source line; an invalid
// configuration is never partially used.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cdbtrace/invocation-filter/filter"
)

// Document is a parsed configuration document. The name given at parse time
// (usually the file path) is echoed in diagnostics.
type Document struct {
	name string
	root *yaml.Node
}

// Parse parses a configuration document from raw YAML.
func Parse(data []byte, name string) (*Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("cannot parse configuration %s: %w", name, err)
	}
	root := &node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			root = nil
		} else {
			root = root.Content[0]
		}
	}
	return &Document{name: name, root: root}, nil
}

// FilterRules extracts the required "filter" group: three arrays of pattern
// strings named compilers, source_files, and cancel_parameters. A missing
// group, a missing member, or a member that is not a list of strings is an
// error.
func (d *Document) FilterRules() (filter.Rules, error) {
	group := lookup(d.root, "filter")
	if group == nil {
		return filter.Rules{}, fmt.Errorf("found no filter group in configuration %s", d.name)
	}

	compilers, err := d.stringList(group, "compilers")
	if err != nil {
		return filter.Rules{}, err
	}
	sourceFiles, err := d.stringList(group, "source_files")
	if err != nil {
		return filter.Rules{}, err
	}
	cancelParameters, err := d.stringList(group, "cancel_parameters")
	if err != nil {
		return filter.Rules{}, err
	}

	return filter.Rules{
		Compilers:        compilers,
		SourceFiles:      sourceFiles,
		CancelParameters: cancelParameters,
	}, nil
}

// lookup finds the value node for key in a mapping node.
func lookup(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func (d *Document) stringList(group *yaml.Node, name string) ([]string, error) {
	node := lookup(group, name)
	if node == nil {
		return nil, fmt.Errorf("could not find values for %q in configuration %s", name, d.name)
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("value for %q shall be a list of strings in configuration %s at line %d",
			name, d.name, node.Line)
	}
	values := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
			return nil, fmt.Errorf("value for %q shall be a list of strings in configuration %s at line %d",
				name, d.name, item.Line)
		}
		values = append(values, item.Value)
	}
	return values, nil
}

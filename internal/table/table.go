// Package table loads replacement tables from YAML.
//
// Two layouts are accepted. A mapping:
//
//	":)": "Hello"
//	":D": "Hi there"
//
// or a list of entries:
//
//	- from: ":)"
//	  to: "Hello"
//	- from: ":D"
//	  to: "Hi there"
//
// Entries are returned in document order in both cases.
package table

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrFormat   = errors.New("a table must be a mapping or a list of from/to entries")
	ErrEmptyKey = errors.New("empty key")
)

// Entry is a single replacement.
type Entry struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load reads and parses the table file.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Parse decodes a table. An empty document is an empty table.
func Parse(data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]

	switch root.Kind {
	case yaml.MappingNode:
		return parseMapping(root)
	case yaml.SequenceNode:
		return parseList(root)
	case yaml.ScalarNode:
		if root.ShortTag() == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("line %d: %w", root.Line, ErrFormat)
}

func parseMapping(root *yaml.Node) ([]Entry, error) {
	entries := make([]Entry, 0, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		var (
			key = root.Content[i]
			val = root.Content[i+1]
			e   Entry
		)
		if err := key.Decode(&e.From); err != nil {
			return nil, err
		}
		if err := val.Decode(&e.To); err != nil {
			return nil, err
		}
		if e.From == "" {
			return nil, fmt.Errorf("line %d: %w", key.Line, ErrEmptyKey)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseList(root *yaml.Node) ([]Entry, error) {
	entries := make([]Entry, 0, len(root.Content))

	for _, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: %w", item.Line, ErrFormat)
		}
		var e Entry
		if err := item.Decode(&e); err != nil {
			return nil, err
		}
		if e.From == "" {
			return nil, fmt.Errorf("line %d: %w", item.Line, ErrEmptyKey)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

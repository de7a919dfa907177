// Package snapshot saves and restores generator state in labelled JSON or
// YAML files. The state is stored as the hex encoding of the generator's raw
// little-endian state, which is also a valid byte seed for the same generator.
package snapshot

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/fysac/xorrand/registry"
)

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks a format from the file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Entry is the saved state of one generator.
type Entry struct {
	Generator string `json:"generator" yaml:"generator"`
	State     string `json:"state" yaml:"state"`
}

// Take records the current state of in.
func Take(in *registry.Instance) (Entry, error) {
	state, err := in.MarshalBinary()
	if err != nil {
		return Entry{}, err
	}
	return Entry{Generator: in.Kind.Name, State: hex.EncodeToString(state)}, nil
}

// Restore rebuilds the generator recorded in e.
func (e Entry) Restore() (*registry.Instance, error) {
	k, err := registry.Lookup(e.Generator)
	if err != nil {
		return nil, err
	}
	state, err := hex.DecodeString(e.State)
	if err != nil {
		return nil, fmt.Errorf("%s: state: %w", e.Generator, err)
	}
	return k.Restore(state)
}

// File is an ordered set of labelled entries. Labels keep insertion order;
// setting an existing label replaces its entry in place.
type File struct {
	entries *orderedmap.OrderedMap[string, Entry]
}

func NewFile() *File {
	return &File{entries: orderedmap.New[string, Entry]()}
}

func (f *File) Set(label string, e Entry) { f.entries.Set(label, e) }

func (f *File) Get(label string) (Entry, bool) { return f.entries.Get(label) }

func (f *File) Len() int { return f.entries.Len() }

// Labels returns the labels in file order.
func (f *File) Labels() []string {
	labels := make([]string, 0, f.entries.Len())
	for pair := f.entries.Oldest(); pair != nil; pair = pair.Next() {
		labels = append(labels, pair.Key)
	}
	return labels
}

// Encode renders f in the given format.
func (f *File) Encode(format Format) ([]byte, error) {
	if format == FormatYAML {
		return f.yaml()
	}
	return f.json()
}

func (f *File) json() ([]byte, error) {
	b, err := f.entries.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, b, "", "\t"); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func (f *File) yaml() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for pair := f.entries.Oldest(); pair != nil; pair = pair.Next() {
		var v yaml.Node
		if err := v.Encode(pair.Value); err != nil {
			return nil, err
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key}
		root.Content = append(root.Content, key, &v)
	}
	return yaml.Marshal(root)
}

// Decode parses a file in the given format and checks that every entry
// restores to a valid generator.
func Decode(b []byte, format Format) (*File, error) {
	var (
		f   *File
		err error
	)
	if format == FormatYAML {
		f, err = decodeYAML(b)
	} else {
		f, err = decodeJSON(b)
	}
	if err != nil {
		return nil, err
	}
	for pair := f.entries.Oldest(); pair != nil; pair = pair.Next() {
		if _, err := pair.Value.Restore(); err != nil {
			return nil, fmt.Errorf("entry %q: %w", pair.Key, err)
		}
	}
	return f, nil
}

func decodeJSON(b []byte) (*File, error) {
	f := NewFile()
	if err := f.entries.UnmarshalJSON(b); err != nil {
		return nil, err
	}
	return f, nil
}

func decodeYAML(b []byte) (*File, error) {
	f := NewFile()
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return f, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("snapshot is not a mapping of labels to entries")
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		var e Entry
		if err := root.Content[i+1].Decode(&e); err != nil {
			return nil, fmt.Errorf("entry %q: %w", root.Content[i].Value, err)
		}
		f.Set(root.Content[i].Value, e)
	}
	return f, nil
}

// Package record parses fixed-width data lines in-process using compiled
// schema columns. It applies the same slicing rules as the generated parsers
// and backs the parse command.
package record

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"
)

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value string
}

// Record is one parsed line. Fields keep declaration order.
type Record struct {
	Line   int // 1-based line number in the source, 0 for single lines
	Fields []Field
}

// Get returns the value of the named field.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// String renders "Record {a='x', b='y'}", matching the generated record types.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString("Record {")
	for i, f := range r.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s='%s'", f.Name, f.Value)
	}
	b.WriteString("}")
	return b.String()
}

// MarshalJSON encodes the record as an object with keys in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a mapping with keys in field order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.Fields {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
		)
	}
	return node, nil
}

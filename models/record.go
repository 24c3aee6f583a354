package models

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Record is an ordered mapping from field name to value, decoded from a
// single block. Keys keep the position of their first assignment.
// The zero value is an empty record ready to use.
type Record struct {
	keys   []string
	values map[string]FieldValue
}

// Set assigns a value, overwriting any earlier value for the same name.
func (r *Record) Set(name string, v FieldValue) {
	if r.values == nil {
		r.values = make(map[string]FieldValue)
	}
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = v
}

func (r Record) Get(name string) (FieldValue, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Keys returns field names in insertion order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r Record) Len() int { return len(r.keys) }

// Equal compares field sets and values. Order is not significant.
func (r Record) Equal(o Record) bool {
	if len(r.keys) != len(o.keys) {
		return false
	}
	for _, k := range r.keys {
		ov, ok := o.values[k]
		if !ok || !r.values[k].Equal(ov) {
			return false
		}
	}
	return true
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits a mapping node so field order survives encoding.
func (r Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range r.keys {
		var key, val yaml.Node
		if err := key.Encode(k); err != nil {
			return nil, err
		}
		if err := val.Encode(r.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

package models

import (
	"encoding/json"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FieldKind tags the variant held by a FieldValue.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldInt
	FieldFloat
	FieldPresence // field name appeared with no value
)

func (k FieldKind) String() string {
	switch k {
	case FieldInt:
		return "int"
	case FieldFloat:
		return "float"
	case FieldPresence:
		return "presence"
	default:
		return "string"
	}
}

// PresenceText is how a presence marker is rendered in output.
const PresenceText = "present"

// FieldValue is a typed value decoded from one block line.
// The zero value is the empty string.
type FieldValue struct {
	kind FieldKind
	i    int64
	f    float64
	s    string
}

// Present marks a field that appeared without a value.
var Present = FieldValue{kind: FieldPresence}

func IntValue(v int64) FieldValue     { return FieldValue{kind: FieldInt, i: v} }
func FloatValue(v float64) FieldValue { return FieldValue{kind: FieldFloat, f: v} }
func StringValue(v string) FieldValue { return FieldValue{kind: FieldString, s: v} }

func (v FieldValue) Kind() FieldKind  { return v.kind }
func (v FieldValue) IsPresence() bool { return v.kind == FieldPresence }

// Int returns the integer payload; ok is false for other kinds.
func (v FieldValue) Int() (int64, bool) { return v.i, v.kind == FieldInt }

// Float returns the float payload; ok is false for other kinds.
func (v FieldValue) Float() (float64, bool) { return v.f, v.kind == FieldFloat }

// Str returns the string payload; ok is false for other kinds.
func (v FieldValue) Str() (string, bool) { return v.s, v.kind == FieldString }

// Equal reports whether two values are the same. Integers and floats
// compare numerically, so 2000 equals 2000.0.
func (v FieldValue) Equal(o FieldValue) bool {
	if v.isNumber() && o.isNumber() {
		if v.kind == FieldInt && o.kind == FieldInt {
			return v.i == o.i
		}
		return v.number() == o.number()
	}
	if v.kind != o.kind {
		return false
	}
	return v.kind == FieldPresence || v.s == o.s
}

func (v FieldValue) isNumber() bool { return v.kind == FieldInt || v.kind == FieldFloat }

func (v FieldValue) number() float64 {
	if v.kind == FieldInt {
		return float64(v.i)
	}
	return v.f
}

// Interface returns the payload as a plain Go value for rendering.
func (v FieldValue) Interface() interface{} {
	switch v.kind {
	case FieldInt:
		return v.i
	case FieldFloat:
		return v.f
	case FieldPresence:
		return PresenceText
	default:
		return v.s
	}
}

func (v FieldValue) String() string {
	switch v.kind {
	case FieldInt:
		return strconv.FormatInt(v.i, 10)
	case FieldFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case FieldPresence:
		return PresenceText
	default:
		return v.s
	}
}

// formatFloat renders whole floats with a trailing ".0" so they stay
// distinguishable from ints once encoded.
func formatFloat(f float64) (string, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) >= 1e16 {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64) + ".0", true
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.kind == FieldFloat {
		if s, ok := formatFloat(v.f); ok {
			return []byte(s), nil
		}
	}
	return json.Marshal(v.Interface())
}

func (v FieldValue) MarshalYAML() (interface{}, error) {
	if v.kind == FieldFloat {
		if s, ok := formatFloat(v.f); ok {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}, nil
		}
	}
	return v.Interface(), nil
}

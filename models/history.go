package models

import "encoding/json"

// DecodedValue is one extracted value: a Record for block features or a
// trimmed string for scalar features.
type DecodedValue struct {
	block  bool
	record Record
	text   string
}

func ScalarValue(s string) DecodedValue { return DecodedValue{text: s} }
func BlockValue(r Record) DecodedValue  { return DecodedValue{block: true, record: r} }

func (v DecodedValue) IsBlock() bool { return v.block }

// Text returns the scalar text; empty for block values.
func (v DecodedValue) Text() string { return v.text }

// Record returns the decoded block; empty for scalar values.
func (v DecodedValue) Record() Record { return v.record }

// Equal is deep equality for blocks and string equality for scalars.
// A block never equals a scalar.
func (v DecodedValue) Equal(o DecodedValue) bool {
	if v.block != o.block {
		return false
	}
	if v.block {
		return v.record.Equal(o.record)
	}
	return v.text == o.text
}

func (v DecodedValue) MarshalJSON() ([]byte, error) {
	if v.block {
		return v.record.MarshalJSON()
	}
	return json.Marshal(v.text)
}

func (v DecodedValue) MarshalYAML() (interface{}, error) {
	if v.block {
		return v.record.MarshalYAML()
	}
	return v.text, nil
}

// History is the ordered sequence of distinct consecutive values a feature
// takes across one document.
type History []DecodedValue

// AnalysisResult maps a requested feature name to its history. Features
// without occurrences are absent.
type AnalysisResult map[string]History

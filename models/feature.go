// Package models defines the data structures shared by the catalog,
// decoder, tracker and analysis packages.
package models

// FeatureDefinition describes one named thing to extract from an RRC log.
// Pattern uses RE2 syntax. For block features the first capturing group
// holds the block body.
type FeatureDefinition struct {
	Name     string `json:"name" yaml:"name"`
	Pattern  string `json:"pattern" yaml:"pattern"`
	IsBlock  bool   `json:"is_block" yaml:"is_block"`
	Category string `json:"category" yaml:"category"` // e.g. "General", "Feature"
}

// Kind returns "block" or "scalar".
func (d FeatureDefinition) Kind() string {
	if d.IsBlock {
		return "block"
	}
	return "scalar"
}

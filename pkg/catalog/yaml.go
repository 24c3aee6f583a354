package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dtnitsch/rrc-change-tracker/models"
	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML layout of a catalog.
type File struct {
	Features []models.FeatureDefinition `yaml:"features"`
}

// ParseYAML decodes a YAML catalog. Unknown keys are rejected.
func ParseYAML(data []byte) (*Catalog, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(f.Features)
}

// LoadYAML reads and parses a YAML catalog file.
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// MarshalYAML renders c in the layout ParseYAML accepts.
func MarshalYAML(c *Catalog) ([]byte, error) {
	return yaml.Marshal(File{Features: c.Definitions()})
}

// Package catalog holds the registry of extractable RRC features.
//
// A Catalog is immutable once built and safe for concurrent use. Several
// catalogs, e.g. one per version of the signaling spec, can coexist.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dtnitsch/rrc-change-tracker/models"
	"github.com/dtnitsch/rrc-change-tracker/pkg/extractor"
)

var (
	ErrEmptyName      = errors.New("feature name is empty")
	ErrDuplicateName  = errors.New("duplicate feature name")
	ErrInvalidPattern = errors.New("invalid feature pattern")
)

// Entry is a registered feature with its compiled pattern.
type Entry struct {
	models.FeatureDefinition
	Matcher *regexp.Regexp
}

type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// New validates defs and compiles their patterns. Registration order is kept.
func New(defs []models.FeatureDefinition) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(defs)),
		byName:  make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		def.Name = strings.TrimSpace(def.Name)
		if def.Name == "" {
			return nil, fmt.Errorf("feature #%d: %w", i+1, ErrEmptyName)
		}
		if _, ok := c.byName[def.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, def.Name)
		}
		re, err := extractor.Compile(def.Pattern, def.IsBlock)
		if err != nil {
			return nil, fmt.Errorf("%w: feature %s: %v", ErrInvalidPattern, def.Name, err)
		}
		c.byName[def.Name] = len(c.entries)
		c.entries = append(c.entries, Entry{FeatureDefinition: def, Matcher: re})
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for static tables.
func MustNew(defs []models.FeatureDefinition) *Catalog {
	c, err := New(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the entry registered under name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

func (c *Catalog) Len() int { return len(c.entries) }

// Names returns feature names in registration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Definitions returns a copy of the registered definitions.
func (c *Catalog) Definitions() []models.FeatureDefinition {
	defs := make([]models.FeatureDefinition, len(c.entries))
	for i, e := range c.entries {
		defs[i] = e.FeatureDefinition
	}
	return defs
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	var cats []string
	seen := make(map[string]struct{})
	for _, e := range c.entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		cats = append(cats, e.Category)
	}
	return cats
}

// ByCategory returns the definitions whose category matches, ignoring case.
func (c *Catalog) ByCategory(category string) []models.FeatureDefinition {
	var defs []models.FeatureDefinition
	for _, e := range c.entries {
		if strings.EqualFold(e.Category, category) {
			defs = append(defs, e.FeatureDefinition)
		}
	}
	return defs
}

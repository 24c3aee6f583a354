package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/dtnitsch/rrc-change-tracker/models"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Len() != 8 {
		t.Fatalf("Default() has %d features, want 8", c.Len())
	}

	tests := []struct {
		name     string
		isBlock  bool
		category string
	}{
		{"cell_barred", false, CategoryGeneral},
		{"nr_band", false, CategoryGeneral},
		{"cell_identity", false, CategoryGeneral},
		{"ntn_config", true, CategoryFeature},
		{"ephemeris_pos", true, CategoryFeature},
		{"timers", true, CategoryFeature},
		{"scheduling", true, CategoryFeature},
		{"radioBearerConfig", true, CategoryFeature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := c.Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if e.IsBlock != tt.isBlock || e.Category != tt.category {
				t.Errorf("Lookup(%q) = %+v", tt.name, e.FeatureDefinition)
			}
			if e.Matcher == nil {
				t.Error("Matcher not compiled")
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Default().Lookup("no_such_feature"); ok {
		t.Error("Lookup() found an unregistered feature")
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		defs []models.FeatureDefinition
		want error
	}{
		{
			name: "empty name",
			defs: []models.FeatureDefinition{{Name: " ", Pattern: "x"}},
			want: ErrEmptyName,
		},
		{
			name: "duplicate name",
			defs: []models.FeatureDefinition{{Name: "a", Pattern: "x"}, {Name: "a", Pattern: "y"}},
			want: ErrDuplicateName,
		},
		{
			name: "bad pattern",
			defs: []models.FeatureDefinition{{Name: "a", Pattern: "(x"}},
			want: ErrInvalidPattern,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.defs); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	c := Default()
	cats := c.Categories()
	if len(cats) != 2 || cats[0] != CategoryGeneral || cats[1] != CategoryFeature {
		t.Errorf("Categories() = %v", cats)
	}
	if got := len(c.ByCategory("general")); got != 3 {
		t.Errorf("ByCategory(general) returned %d, want 3", got)
	}
}

func TestCatalogsAreIndependent(t *testing.T) {
	v17 := Default()
	v18, err := New([]models.FeatureDefinition{{Name: "timers", Pattern: `ue-TimersAndConstants-r18\s*\{(.*?)\}`, IsBlock: true}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	a, _ := v17.Lookup("timers")
	b, _ := v18.Lookup("timers")
	if a.Pattern == b.Pattern {
		t.Error("catalogs share feature definitions")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := MarshalYAML(Default())
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	c, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	want := Default().Definitions()
	got := c.Definitions()
	if len(got) != len(want) {
		t.Fatalf("round trip has %d features, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("feature %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
features:
  - name: sib1_band
    pattern: 'freqBandIndicatorNR\s+(\d+)'
    category: General
  - name: ntn
    pattern: 'ntn-Config-r17\s*\{(.*?)\}'
    is_block: true
    category: Feature
`
	c, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	e, ok := c.Lookup("ntn")
	if !ok || !e.IsBlock {
		t.Errorf("Lookup(ntn) = %+v, %v", e.FeatureDefinition, ok)
	}
}

func TestParseYAML_UnknownField(t *testing.T) {
	doc := "features:\n  - name: a\n    pattern: x\n    block: true\n"
	_, err := ParseYAML([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "block") {
		t.Errorf("ParseYAML() error = %v, want unknown field error", err)
	}
}

func TestLoadYAML_MissingFile(t *testing.T) {
	if _, err := LoadYAML(t.TempDir() + "/missing.yaml"); err == nil {
		t.Error("LoadYAML() should fail for a missing file")
	}
}

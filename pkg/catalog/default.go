package catalog

import "github.com/dtnitsch/rrc-change-tracker/models"

const (
	CategoryGeneral = "General"
	CategoryFeature = "Feature"
)

// DefaultDefinitions is the built-in NR/NTN feature table.
func DefaultDefinitions() []models.FeatureDefinition {
	return []models.FeatureDefinition{
		{Name: "cell_barred", Pattern: `cellBarredNTN-r17\s+(\w+)`, Category: CategoryGeneral},
		{Name: "nr_band", Pattern: `freqBandIndicatorNR\s+(\d+)`, Category: CategoryGeneral},
		{Name: "cell_identity", Pattern: `cellIdentity\s+'([0-9A-Fa-f]+)'H`, Category: CategoryGeneral},

		{Name: "ntn_config", Pattern: `ntn-Config-r17\s*\{(.*?)\}`, IsBlock: true, Category: CategoryFeature},
		{Name: "ephemeris_pos", Pattern: `ephemerisInfo-r17\s+positionVelocity-r17\s*[:]?\s*\{(.*?)\}`, IsBlock: true, Category: CategoryFeature},
		{Name: "timers", Pattern: `ue-TimersAndConstants\s*\{(.*?)\}`, IsBlock: true, Category: CategoryFeature},
		{Name: "scheduling", Pattern: `schedulingRequestToAddModList\s*\{(.*?)\}`, IsBlock: true, Category: CategoryFeature},
		{Name: "radioBearerConfig", Pattern: `radioBearerConfig\s*\{(.*?)\}`, IsBlock: true, Category: CategoryFeature},
	}
}

// Default builds a catalog from DefaultDefinitions. Each call returns a
// new catalog.
func Default() *Catalog {
	return MustNew(DefaultDefinitions())
}

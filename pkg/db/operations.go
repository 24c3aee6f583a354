package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtnitsch/rrc-change-tracker/models"
	"github.com/dtnitsch/rrc-change-tracker/pkg/catalog"
)

// ErrFeatureNotFound is returned when no row matches a feature name.
var ErrFeatureNotFound = errors.New("feature not found")

// UpsertFeature inserts a feature or updates the existing row with the same
// name, returning the feature_id.
func (db *DB) UpsertFeature(def models.FeatureDefinition) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT feature_id FROM features WHERE name = ?", def.Name).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE features
			SET pattern = ?, is_block = ?, category = ?, updated_at = CURRENT_TIMESTAMP
			WHERE feature_id = ?
		`, def.Pattern, def.IsBlock, def.Category, existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to update feature: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing feature: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO features (name, pattern, is_block, category)
		VALUES (?, ?, ?, ?)
	`, def.Name, def.Pattern, def.IsBlock, def.Category)
	if err != nil {
		return 0, fmt.Errorf("failed to insert feature: %w", err)
	}

	featureID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get feature ID: %w", err)
	}
	return featureID, nil
}

// GetFeature returns the feature stored under name.
func (db *DB) GetFeature(name string) (models.FeatureDefinition, error) {
	var def models.FeatureDefinition
	err := db.QueryRow(`
		SELECT name, pattern, is_block, category FROM features WHERE name = ?
	`, name).Scan(&def.Name, &def.Pattern, &def.IsBlock, &def.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return def, fmt.Errorf("%w: %s", ErrFeatureNotFound, name)
	}
	if err != nil {
		return def, fmt.Errorf("failed to get feature: %w", err)
	}
	return def, nil
}

// ListFeatures returns all features in insertion order.
func (db *DB) ListFeatures() ([]models.FeatureDefinition, error) {
	rows, err := db.Query(`
		SELECT name, pattern, is_block, category FROM features ORDER BY feature_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	defer rows.Close()

	var defs []models.FeatureDefinition
	for rows.Next() {
		var def models.FeatureDefinition
		if err := rows.Scan(&def.Name, &def.Pattern, &def.IsBlock, &def.Category); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate features: %w", err)
	}
	return defs, nil
}

// DeleteFeature removes the feature stored under name.
func (db *DB) DeleteFeature(name string) error {
	result, err := db.Exec("DELETE FROM features WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete feature: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrFeatureNotFound, name)
	}
	return nil
}

// ImportCatalog upserts defs in order and returns the number of rows
// written before the first failure.
func (db *DB) ImportCatalog(defs []models.FeatureDefinition) (int, error) {
	for i, def := range defs {
		if _, err := db.UpsertFeature(def); err != nil {
			return i, fmt.Errorf("failed to import feature %s: %w", def.Name, err)
		}
	}
	return len(defs), nil
}

// LoadCatalog builds a catalog from the stored features.
func (db *DB) LoadCatalog() (*catalog.Catalog, error) {
	defs, err := db.ListFeatures()
	if err != nil {
		return nil, err
	}
	return catalog.New(defs)
}

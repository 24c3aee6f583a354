package common

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/rrc-change-tracker/pkg/catalog"
	"github.com/dtnitsch/rrc-change-tracker/pkg/db"
	"github.com/urfave/cli/v2"
)

// BuiltinCatalog is the name reported when no catalog file is given.
const BuiltinCatalog = "builtin"

// NewLogger builds the JSON stderr logger used by every command.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ParseFeatureList splits a comma-separated feature list, trimming blanks.
func ParseFeatureList(features string) []string {
	var names []string
	for _, f := range strings.Split(features, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			names = append(names, f)
		}
	}
	return names
}

// IsDatabasePath reports whether path names a SQLite catalog.
func IsDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// LoadCatalog resolves a catalog source: empty for the builtin table, a
// SQLite file for a stored catalog, anything else is read as YAML.
func LoadCatalog(path string) (*catalog.Catalog, string, error) {
	if path == "" {
		return catalog.Default(), BuiltinCatalog, nil
	}

	if IsDatabasePath(path) {
		if _, err := os.Stat(path); err != nil {
			return nil, "", fmt.Errorf("catalog database not found: %w", err)
		}
		database, err := db.OpenAt(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open catalog database: %w", err)
		}
		defer database.Close()

		c, err := database.LoadCatalog()
		if err != nil {
			return nil, "", fmt.Errorf("failed to load catalog from %s: %w", path, err)
		}
		return c, path, nil
	}

	c, err := catalog.LoadYAML(path)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

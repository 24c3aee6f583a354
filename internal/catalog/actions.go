package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/dtnitsch/rrc-change-tracker/internal/common"
	catalogpkg "github.com/dtnitsch/rrc-change-tracker/pkg/catalog"
	dbpkg "github.com/dtnitsch/rrc-change-tracker/pkg/db"
	"github.com/urfave/cli/v2"
)

// openDatabase opens --db, or the default database next to the binary.
func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	if path := c.String("db"); path != "" {
		return dbpkg.OpenAt(path)
	}
	return dbpkg.Open()
}

// FeaturesAction prints the catalog as a table grouped by category.
func FeaturesAction(c *cli.Context) error {
	cat, catalogName, err := common.LoadCatalog(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	categories := cat.Categories()
	if c.IsSet("category") {
		categories = []string{c.String("category")}
	}

	fmt.Printf("%-22s %-10s %-8s %s\n", "Name", "Category", "Kind", "Pattern")
	fmt.Println(strings.Repeat("-", 100))

	total := 0
	for _, category := range categories {
		for _, def := range cat.ByCategory(category) {
			fmt.Printf("%-22s %-10s %-8s %s\n", def.Name, def.Category, def.Kind(), def.Pattern)
			total++
		}
	}

	fmt.Printf("\nTotal: %d features (catalog: %s)\n", total, catalogName)
	return nil
}

// ImportAction upserts the features of a YAML catalog into the database.
func ImportAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	from := c.String("from")
	if from == "" {
		return fmt.Errorf("no catalog provided via --from flag")
	}
	cat, err := catalogpkg.LoadYAML(from)
	if err != nil {
		return err
	}

	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	n, err := database.ImportCatalog(cat.Definitions())
	if err != nil {
		return err
	}

	logger.Info("Catalog imported", "from", from, "db", database.Path(), "features", n)
	fmt.Printf("Imported %d features into %s\n", n, database.Path())
	return nil
}

// ExportAction prints a catalog as YAML.
func ExportAction(c *cli.Context) error {
	cat, _, err := common.LoadCatalog(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	data, err := catalogpkg.MarshalYAML(cat)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// RemoveAction deletes the named features from the database.
func RemoveAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no feature names given")
	}

	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	for _, name := range c.Args().Slice() {
		if err := database.DeleteFeature(name); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", name)
	}
	return nil
}

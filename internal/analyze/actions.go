package analyze

import (
	"fmt"
	"os"
	"time"

	"github.com/dtnitsch/rrc-change-tracker/internal/common"
	"github.com/dtnitsch/rrc-change-tracker/pkg/analysis"
	"github.com/dtnitsch/rrc-change-tracker/pkg/catalog"
	"github.com/dtnitsch/rrc-change-tracker/pkg/manifest"
	"github.com/dtnitsch/rrc-change-tracker/pkg/mapreduce"
	"github.com/dtnitsch/rrc-change-tracker/pkg/storage"
	"github.com/urfave/cli/v2"
)

// AnalyzeAction runs the requested features over one or more log files and
// prints the run manifest to stdout.
func AnalyzeAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	startTime := time.Now()

	files := append(c.StringSlice("file"), c.Args().Slice()...)
	if len(files) == 0 {
		return fmt.Errorf("no log files provided via --file flag")
	}

	format := c.String("format")
	if format != "json" && format != "yaml" {
		return fmt.Errorf("invalid format %q: want json or yaml", format)
	}

	cat, catalogName, err := common.LoadCatalog(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	features := selectFeatures(c, cat)
	if len(features) == 0 {
		return fmt.Errorf("no features selected: use --features, --category or --all")
	}
	for _, name := range features {
		if _, ok := cat.Lookup(name); !ok {
			logger.Warn("Unknown feature requested, skipping", "feature", name, "catalog", catalogName)
		}
	}

	svc := analysis.NewService(cat, analysis.WithLogger(logger))
	s := &storage.Storage{}

	results := run(logger, svc, s, files, features, c.Int("workers"))
	summary := manifest.Build(results, catalogName, features, time.Since(startTime))

	output, err := manifest.Encode(summary, format)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if top := c.Int("top"); top > 0 {
		fmt.Fprintln(os.Stderr, "Most changed features:")
		mapreduce.PrintTopKeywords(os.Stderr, manifest.ChangeCounts(results), top)
	}

	if out := c.String("output"); out != "" {
		if err := manifest.Save(summary, out, format, s); err != nil {
			return err
		}
		logger.Info("Manifest saved", "path", out)
	}

	if summary.Stats.Failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// selectFeatures resolves --all, --category and --features, in that order.
func selectFeatures(c *cli.Context, cat *catalog.Catalog) []string {
	if c.Bool("all") {
		return cat.Names()
	}
	if c.IsSet("category") {
		var names []string
		for _, def := range cat.ByCategory(c.String("category")) {
			names = append(names, def.Name)
		}
		return names
	}
	return common.ParseFeatureList(c.String("features"))
}

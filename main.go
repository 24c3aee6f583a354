package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/dtnitsch/rrc-change-tracker/internal/analyze"
	"github.com/dtnitsch/rrc-change-tracker/internal/catalog"
	"github.com/dtnitsch/rrc-change-tracker/pkg/help"
	"github.com/urfave/cli/v2"
)

func catalogFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "Feature catalog: YAML file or SQLite database (default: builtin)",
		EnvVars: []string{"RRC_CATALOG"},
	}
}

func dbFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "db",
		Usage:   "SQLite catalog database (default: next to the binary)",
		EnvVars: []string{"RRC_DB"},
	}
}

func main() {
	app := &cli.App{
		Name:  "rrc-change-tracker",
		Usage: "Track how RRC configuration parameters change across signaling logs",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log per-feature debug output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Extract feature value histories from log files",
				ArgsUsage: "[file...]",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Log file to analyze (repeatable)",
					},
					&cli.StringFlag{
						Name:  "features",
						Usage: "Comma-separated feature names",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Analyze every feature in this category",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Analyze every catalog feature",
					},
					catalogFlag(),
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Also save the manifest to this path",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: runtime.NumCPU(),
						Usage: "Number of files analyzed in parallel",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Print the N most changed features to stderr",
					},
				},
				Action: analyze.AnalyzeAction,
			},
			{
				Name:  "features",
				Usage: "List catalog features",
				Flags: []cli.Flag{
					catalogFlag(),
					&cli.StringFlag{
						Name:  "category",
						Usage: "Only list this category",
					},
				},
				Action: catalog.FeaturesAction,
			},
			{
				Name:  "catalog",
				Usage: "Manage feature catalogs",
				Subcommands: []*cli.Command{
					{
						Name:  "import",
						Usage: "Upsert a YAML catalog into the SQLite database",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "from",
								Usage:    "YAML catalog file",
								Required: true,
							},
							dbFlag(),
						},
						Action: catalog.ImportAction,
					},
					{
						Name:   "export",
						Usage:  "Print a catalog as YAML",
						Flags:  []cli.Flag{catalogFlag()},
						Action: catalog.ExportAction,
					},
					{
						Name:      "remove",
						Usage:     "Delete features from the SQLite database",
						ArgsUsage: "name...",
						Flags:     []cli.Flag{dbFlag()},
						Action:    catalog.RemoveAction,
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print the quick start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

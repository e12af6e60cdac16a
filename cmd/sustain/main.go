package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

func main() {
	app := &cli.App{
		Name:     "sustain",
		Usage:    "Carbon emissions modelling and scenario ranking CLI",
		Version:  version,
		Metadata: make(map[string]interface{}),
		Description: `Sustain computes business-as-usual carbon emissions from daily
consumption figures, evaluates reduction scenarios against that baseline,
and ranks scenarios across mixed assessment criteria on a shared 1-10 scale.

Plans are YAML, TOML, or JSON documents describing items, scenarios,
criteria, and raw scores.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"SUSTAIN_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, markdown, csv, toon",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.BoolFlag{
				Name:  "no-cache",
				Usage: "Disable result caching",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Commands: []*cli.Command{
			baselineCmd(),
			scenariosCmd(),
			rankCmd(),
			runCmd(),
			factorsCmd(),
			criteriaCmd(),
			mcpCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

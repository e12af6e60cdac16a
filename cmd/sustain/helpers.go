package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/verdantlab/sustain/internal/output"
	"github.com/verdantlab/sustain/pkg/config"
	"github.com/verdantlab/sustain/pkg/criteria"
	"github.com/verdantlab/sustain/pkg/emissions"
)

// loadConfig resolves the effective config: an explicit --config path must
// load cleanly, otherwise the standard locations are searched with a
// default fallback.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

// newFormatter builds the output formatter from config and global flags.
// The --format flag wins over the configured default.
func newFormatter(c *cli.Context, cfg *config.Config) (*output.Formatter, error) {
	format := cfg.Output.Format
	if c.String("format") != "" {
		format = c.String("format")
	}

	colored := cfg.Output.Color && !c.Bool("no-color")
	return output.NewFormatter(output.ParseFormat(format), c.String("output"), colored)
}

// newCalculator builds the emissions calculator from config.
func newCalculator(cfg *config.Config) *emissions.Calculator {
	return emissions.New(emissions.WithDaysPerYear(cfg.Model.DaysPerYear))
}

// newRanker builds the criteria ranker from config, with per-command flag
// overrides.
func newRanker(c *cli.Context, cfg *config.Config) *criteria.Ranker {
	strict := cfg.Model.Strict
	if c.Bool("strict") {
		strict = true
	}

	opts := []criteria.Option{criteria.WithStrictCells(strict)}
	if !cfg.Model.Renormalize || c.Bool("raw-totals") {
		opts = append(opts, criteria.WithoutRenormalize())
	}
	return criteria.NewRanker(opts...)
}

// planArg returns the single required plan path argument.
func planArg(c *cli.Context) (string, error) {
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one plan file, got %d arguments", c.Args().Len())
	}
	return c.Args().First(), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/verdantlab/sustain/internal/report"
	"github.com/verdantlab/sustain/pkg/plan"
)

func baselineCmd() *cli.Command {
	return &cli.Command{
		Name:      "baseline",
		Aliases:   []string{"bau"},
		Usage:     "Compute business-as-usual emissions from a plan",
		ArgsUsage: "<plan>",
		Action:    runBaselineCmd,
	}
}

func runBaselineCmd(c *cli.Context) error {
	path, err := planArg(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	p, err := plan.Load(path, cfg.Factors)
	if err != nil {
		return fmt.Errorf("loading plan %s: %w", path, err)
	}

	baseline := newCalculator(cfg).Baseline(p.Items)

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	return formatter.Output(report.BaselineTable(baseline))
}

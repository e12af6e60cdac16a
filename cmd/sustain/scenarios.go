package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/verdantlab/sustain/internal/output"
	"github.com/verdantlab/sustain/internal/report"
	"github.com/verdantlab/sustain/pkg/plan"
)

func scenariosCmd() *cli.Command {
	return &cli.Command{
		Name:      "scenarios",
		Aliases:   []string{"eval"},
		Usage:     "Evaluate reduction scenarios against the baseline",
		ArgsUsage: "<plan>",
		Action:    runScenariosCmd,
	}
}

func runScenariosCmd(c *cli.Context) error {
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

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if len(p.Scenarios) == 0 {
		formatter.Warning("Plan %s has no scenarios", path)
		return nil
	}

	baseline, results := newCalculator(cfg).Evaluate(p.Items, p.Scenarios)

	run := report.RunResult{Plan: p.Name, Baseline: baseline, Scenarios: results}
	return formatter.Output(&output.Report{
		Title: p.Name,
		Sections: []output.Renderable{
			report.BaselineTable(baseline),
			report.ScenarioTable(results),
		},
		Data: run,
	})
}

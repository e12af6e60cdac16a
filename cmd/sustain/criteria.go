package main

import (
	"github.com/urfave/cli/v2"

	"github.com/verdantlab/sustain/internal/output"
	"github.com/verdantlab/sustain/pkg/criteria"
)

func criteriaCmd() *cli.Command {
	return &cli.Command{
		Name:   "criteria",
		Usage:  "List the built-in assessment criteria",
		Action: runCriteriaCmd,
	}
}

func runCriteriaCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	builtins := criteria.Builtins()
	rows := make([][]string, len(builtins))
	for i, crit := range builtins {
		rows[i] = []string{
			crit.Name,
			string(crit.Polarity),
			truncate(crit.Description, 70),
		}
	}

	return formatter.Output(output.NewTable(
		"Assessment Criteria",
		[]string{"Criterion", "Trend", "Scoring"},
		rows,
		nil,
		builtins,
	))
}

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/verdantlab/sustain/internal/output"
	"github.com/verdantlab/sustain/internal/report"
	"github.com/verdantlab/sustain/pkg/plan"
)

func rankCmd() *cli.Command {
	return &cli.Command{
		Name:      "rank",
		Usage:     "Normalize criteria scores and rank scenarios",
		ArgsUsage: "<plan>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Reject missing score cells instead of substituting the neutral 5",
			},
			&cli.BoolFlag{
				Name:  "raw-totals",
				Usage: "Rank on raw totals instead of rescaling them onto 1-10",
			},
			&cli.BoolFlag{
				Name:  "show-criteria",
				Usage: "Also show the normalized per-criterion scores",
			},
		},
		Action: runRankCmd,
	}
}

func runRankCmd(c *cli.Context) error {
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

	if !p.HasScores() {
		return fmt.Errorf("plan %s carries no criteria scores to rank", path)
	}

	ranked, err := newRanker(c, cfg).Rank(p.Matrix)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	banded := formatter.Colored() && formatter.Format() == output.FormatText

	sections := []output.Renderable{report.RankingTable(ranked, banded)}
	if c.Bool("show-criteria") {
		sections = append(sections, report.CriteriaTable(ranked, p.Matrix.Criteria))
	}

	if err := formatter.Output(&output.Report{
		Title:    p.Name,
		Sections: sections,
		Data:     ranked,
	}); err != nil {
		return err
	}

	if top, ok := report.TopScenario(ranked); ok && formatter.Format() == output.FormatText {
		formatter.Success("Top scenario: %s", top)
	}
	return nil
}

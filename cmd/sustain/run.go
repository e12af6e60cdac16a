package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/verdantlab/sustain/internal/cache"
	"github.com/verdantlab/sustain/internal/output"
	"github.com/verdantlab/sustain/internal/planproc"
	"github.com/verdantlab/sustain/internal/progress"
	"github.com/verdantlab/sustain/internal/report"
	"github.com/verdantlab/sustain/pkg/config"
	"github.com/verdantlab/sustain/pkg/plan"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run the full model: baseline, scenarios, and ranking",
		ArgsUsage: "<plan...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Reject missing score cells instead of substituting the neutral 5",
			},
			&cli.BoolFlag{
				Name:  "raw-totals",
				Usage: "Rank on raw totals instead of rescaling them onto 1-10",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of plans to evaluate concurrently (0 = NumCPU)",
			},
		},
		Action: runRunCmd,
	}
}

func runRunCmd(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("expected at least one plan file")
	}
	paths := c.Args().Slice()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	cch, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, cfg.Cache.Enabled && !c.Bool("no-cache"))
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}

	var tracker *progress.Tracker
	if len(paths) > 1 {
		tracker = progress.NewTracker("Evaluating plans...", len(paths))
	}
	tick := func() {
		if tracker != nil {
			tracker.Tick()
		}
	}

	results, errs := planproc.Map(paths, c.Int("workers"), func(path string) (report.RunResult, error) {
		return evaluatePlan(c, cfg, cch, path)
	}, tick)
	if tracker != nil {
		if errs != nil {
			tracker.FinishError(errs)
		} else {
			tracker.FinishSuccess()
		}
	}
	if errs != nil {
		return errs
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	banded := formatter.Colored() && formatter.Format() == output.FormatText

	for _, run := range results {
		sections := []output.Renderable{
			report.BaselineTable(run.Baseline),
		}
		if len(run.Scenarios) > 0 {
			sections = append(sections, report.ScenarioTable(run.Scenarios))
		}
		if len(run.Ranking) > 0 {
			sections = append(sections, report.RankingTable(run.Ranking, banded))
		}

		if err := formatter.Output(&output.Report{
			Title:    run.Plan,
			Sections: sections,
			Data:     run,
		}); err != nil {
			return err
		}
	}

	return nil
}

// modelFingerprint serializes the config inputs that shape a run result so
// a factor or model-setting change invalidates cached results the same way
// a plan edit does. json.Marshal sorts map keys, keeping it deterministic.
func modelFingerprint(cfg *config.Config) []byte {
	data, _ := json.Marshal(struct {
		Factors map[string]float64 `json:"factors"`
		Model   config.ModelConfig `json:"model"`
	}{cfg.Factors, cfg.Model})
	return data
}

// evaluatePlan computes the full run result for one plan, consulting the
// cache keyed by the plan's absolute path and validated against the plan
// content plus the effective model config.
func evaluatePlan(c *cli.Context, cfg *config.Config, cch *cache.Cache, path string) (report.RunResult, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return report.RunResult{}, fmt.Errorf("invalid path %s: %w", path, err)
	}

	planHash, err := cache.HashFile(absPath)
	if err != nil {
		return report.RunResult{}, fmt.Errorf("reading plan %s: %w", path, err)
	}
	hash := cache.HashBytes(append([]byte(planHash), modelFingerprint(cfg)...))

	key := fmt.Sprintf("run:%s:strict=%v:raw=%v", absPath, c.Bool("strict"), c.Bool("raw-totals"))
	if data, ok := cch.Get(key, hash); ok {
		var run report.RunResult
		if err := json.Unmarshal(data, &run); err == nil {
			return run, nil
		}
	}

	p, err := plan.Load(path, cfg.Factors)
	if err != nil {
		return report.RunResult{}, fmt.Errorf("loading plan %s: %w", path, err)
	}

	baseline, results := newCalculator(cfg).Evaluate(p.Items, p.Scenarios)

	run := report.RunResult{
		Plan:      p.Name,
		Baseline:  baseline,
		Scenarios: results,
	}
	if run.Plan == "" {
		run.Plan = path
	}

	if p.HasScores() {
		ranked, err := newRanker(c, cfg).Rank(p.Matrix)
		if err != nil {
			return report.RunResult{}, fmt.Errorf("ranking %s: %w", path, err)
		}
		run.Ranking = ranked
	}

	if data, err := json.Marshal(run); err == nil {
		_ = cch.Set(key, hash, data)
	}

	return run, nil
}

package main

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/verdantlab/sustain/internal/cache"
	"github.com/verdantlab/sustain/pkg/config"
)

// TestPlanArg verifies plan path handling from CLI arguments.
func TestPlanArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name:    "no args is an error",
			args:    []string{},
			wantErr: true,
		},
		{
			name: "single path",
			args: []string{"plan.yaml"},
			want: "plan.yaml",
		},
		{
			name:    "multiple paths is an error",
			args:    []string{"a.yaml", "b.yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &cli.App{
				Action: func(c *cli.Context) error {
					got, err := planArg(c)
					if tt.wantErr {
						if err == nil {
							t.Error("expected error")
						}
						return nil
					}
					if err != nil {
						t.Errorf("planArg() error: %v", err)
						return nil
					}
					if got != tt.want {
						t.Errorf("planArg() = %q, want %q", got, tt.want)
					}
					return nil
				},
			}
			args := append([]string{"test"}, tt.args...)
			_ = app.Run(args)
		})
	}
}

// TestTruncate verifies description truncation.
func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("a very long description indeed", 10); got != "a very ..." {
		t.Errorf("truncate long = %q", got)
	}
	if len(truncate("a very long description indeed", 10)) != 10 {
		t.Error("truncated string should be exactly maxLen")
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Errorf("truncate tiny maxLen = %q, want %q", got, "ab")
	}
	if got := truncate("abcdef", 0); got != "" {
		t.Errorf("truncate zero maxLen = %q, want empty", got)
	}
	if got := truncate("abcdef", -1); got != "" {
		t.Errorf("truncate negative maxLen = %q, want empty", got)
	}
}

// TestEvaluatePlanCacheConfigChange verifies that changing configured
// emission factors or model settings invalidates cached run results for an
// unchanged plan file, while an unchanged config still hits the cache.
func TestEvaluatePlanCacheConfigChange(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	doc := `name: Works
items:
  - name: Steam (t/day)
    daily_usage: 10
`
	if err := os.WriteFile(planPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cch, err := cache.New(filepath.Join(dir, "cache"), 24, true)
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	c := cli.NewContext(nil, flag.NewFlagSet("test", flag.ContinueOnError), nil)

	cfg := config.DefaultConfig()
	cfg.Factors = map[string]float64{"Steam (t/day)": 1.0}

	first, err := evaluatePlan(c, cfg, cch, planPath)
	if err != nil {
		t.Fatalf("evaluatePlan failed: %v", err)
	}
	if math.Abs(first.Baseline.TotalDaily-10) > 1e-9 {
		t.Fatalf("total daily = %v, want 10", first.Baseline.TotalDaily)
	}

	// Same config hits the cache and agrees with the first run.
	again, err := evaluatePlan(c, cfg, cch, planPath)
	if err != nil {
		t.Fatalf("evaluatePlan failed: %v", err)
	}
	if math.Abs(again.Baseline.TotalDaily-10) > 1e-9 {
		t.Errorf("cached total daily = %v, want 10", again.Baseline.TotalDaily)
	}

	// A factor change must not serve the stale cached result.
	cfg.Factors["Steam (t/day)"] = 2.0
	second, err := evaluatePlan(c, cfg, cch, planPath)
	if err != nil {
		t.Fatalf("evaluatePlan failed: %v", err)
	}
	if math.Abs(second.Baseline.TotalDaily-20) > 1e-9 {
		t.Errorf("total daily after factor change = %v, want 20", second.Baseline.TotalDaily)
	}

	// So must a model-setting change.
	cfg.Model.DaysPerYear = 100
	third, err := evaluatePlan(c, cfg, cch, planPath)
	if err != nil {
		t.Fatalf("evaluatePlan failed: %v", err)
	}
	if math.Abs(third.Baseline.TotalAnnual-2000) > 1e-9 {
		t.Errorf("total annual after days change = %v, want 2000", third.Baseline.TotalAnnual)
	}
}

// TestRunCommandEndToEnd runs the full model over a plan file.
func TestRunCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	doc := `name: Test site
items:
  - name: Gas (kWh/day)
    daily_usage: 100
scenarios:
  - name: Half gas
    percentages:
      Gas (kWh/day): 50
criteria:
  - name: Technical Feasibility
scores:
  Half gas:
    Technical Feasibility: 8
`
	if err := os.WriteFile(planPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "out.json")
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}},
			&cli.BoolFlag{Name: "no-cache"},
			&cli.BoolFlag{Name: "no-color"},
		},
		Commands: []*cli.Command{runCmd()},
	}

	err := app.Run([]string{"sustain", "--format", "json", "--output", outPath, "--no-cache", "run", planPath})
	if err != nil {
		t.Fatalf("run command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("output file is empty")
	}
}

// TestCommandConstruction verifies every subcommand builds.
func TestCommandConstruction(t *testing.T) {
	for _, cmd := range []*cli.Command{
		baselineCmd(), scenariosCmd(), rankCmd(), runCmd(),
		factorsCmd(), criteriaCmd(), mcpCmd(),
	} {
		if cmd.Name == "" {
			t.Error("command with empty name")
		}
		if cmd.Action == nil {
			t.Errorf("command %s has no action", cmd.Name)
		}
	}
}

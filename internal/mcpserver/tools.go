package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"github.com/verdantlab/sustain/internal/output"
	"github.com/verdantlab/sustain/internal/report"
	"github.com/verdantlab/sustain/pkg/criteria"
	"github.com/verdantlab/sustain/pkg/emissions"
	"github.com/verdantlab/sustain/pkg/plan"
)

// Common input structures for tools

// ModelInput is the base input shared by the modelling tools. A tool
// reads from a plan file when one is given, otherwise from the inline
// fields of its own input.
type ModelInput struct {
	Plan   string `json:"plan,omitempty" jsonschema:"Path to a plan file (YAML, TOML, or JSON). When set, inline items and scenarios are ignored."`
	Format string `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or markdown."`
}

// ItemInput is one consumption item with an optional custom factor.
type ItemInput struct {
	Name       string   `json:"name" jsonschema:"Item name, e.g. 'Gas (kWh/day)'. Built-in items resolve their emission factor automatically."`
	DailyUsage float64  `json:"daily_usage" jsonschema:"Daily consumption in the item's unit."`
	Factor     *float64 `json:"factor,omitempty" jsonschema:"Emission factor in kg CO2e per unit. Overrides the built-in factor. Unknown items without a factor contribute zero."`
}

// ScenarioInput is one intervention expressed as per-item usage percentages.
type ScenarioInput struct {
	Name        string    `json:"name" jsonschema:"Scenario name."`
	Description string    `json:"description,omitempty" jsonschema:"Free-text description."`
	Percentages []float64 `json:"percentages,omitempty" jsonschema:"Usage percentage per item, aligned with the items list. Missing entries default to 100."`
}

// CriterionInput selects or defines one assessment criterion.
type CriterionInput struct {
	Name  string `json:"name" jsonschema:"Criterion name. Built-in criteria carry their own trend."`
	Trend string `json:"trend,omitempty" jsonschema:"Required for custom criteria: scale, invert, or positive."`
}

// BaselineInput computes business-as-usual emissions.
type BaselineInput struct {
	ModelInput
	Items []ItemInput `json:"items,omitempty" jsonschema:"Consumption items. Ignored when a plan file is given."`
}

// EvaluateInput evaluates scenarios against the baseline.
type EvaluateInput struct {
	ModelInput
	Items     []ItemInput     `json:"items,omitempty" jsonschema:"Consumption items. Ignored when a plan file is given."`
	Scenarios []ScenarioInput `json:"scenarios,omitempty" jsonschema:"Scenarios to evaluate. Ignored when a plan file is given."`
}

// RankInput normalizes a score matrix and ranks its scenarios.
type RankInput struct {
	ModelInput
	Scenarios []string         `json:"scenarios,omitempty" jsonschema:"Scenario names, one per score row. Ignored when a plan file is given."`
	Criteria  []CriterionInput `json:"criteria,omitempty" jsonschema:"Criteria, one per score column. Ignored when a plan file is given."`
	Scores    [][]float64      `json:"scores,omitempty" jsonschema:"Raw score matrix, rows aligned with scenarios and columns with criteria. Ignored when a plan file is given."`
	Strict    bool             `json:"strict,omitempty" jsonschema:"Reject missing score cells instead of substituting the neutral 5."`
	RawTotals bool             `json:"raw_totals,omitempty" jsonschema:"Rank on raw totals instead of rescaling them onto 1-10."`
}

// FactorsInput lists the known emission factors, built-in plus configured.
type FactorsInput struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or markdown."`
}

// CriteriaInput lists the built-in assessment criteria.
type CriteriaInput struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or markdown."`
}

// Helper functions

func getFormat(format string) output.Format {
	switch format {
	case "json":
		return output.FormatJSON
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatTOON
	}
}

func formatOutput(data any, format output.Format) (string, error) {
	switch format {
	case output.FormatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	case output.FormatMarkdown:
		out, err := toon.Marshal(data, toon.WithIndent(2))
		if err != nil {
			return "", err
		}
		return "```\n" + string(out) + "\n```", nil
	default:
		out, err := toon.Marshal(data, toon.WithIndent(2))
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

func toolResult(data any, format output.Format) (*mcp.CallToolResult, any, error) {
	text, err := formatOutput(data, format)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

func buildItems(inputs []ItemInput, overrides map[string]float64) []emissions.Item {
	items := make([]emissions.Item, len(inputs))
	for i, in := range inputs {
		factor := emissions.ResolveFactor(in.Name, overrides)
		if in.Factor != nil {
			factor = *in.Factor
		}
		items[i] = emissions.Item{
			Name:       in.Name,
			DailyUsage: in.DailyUsage,
			Factor:     factor,
		}
	}
	return items
}

func buildScenarios(inputs []ScenarioInput, itemCount int) []emissions.Scenario {
	scenarios := make([]emissions.Scenario, len(inputs))
	for i, in := range inputs {
		pct := make([]float64, itemCount)
		for j := range pct {
			if j < len(in.Percentages) {
				pct[j] = in.Percentages[j]
			} else {
				pct[j] = 100
			}
		}
		scenarios[i] = emissions.Scenario{
			Name:        in.Name,
			Description: in.Description,
			Percentages: pct,
		}
	}
	return scenarios
}

func buildMatrix(input RankInput) (criteria.Matrix, error) {
	crits := make([]criteria.Criterion, len(input.Criteria))
	for i, in := range input.Criteria {
		if c, ok := criteria.Lookup(in.Name); ok {
			crits[i] = c
			continue
		}
		if in.Trend == "" {
			return criteria.Matrix{}, fmt.Errorf("criterion %q is not built in and has no trend", in.Name)
		}
		polarity, err := criteria.ParsePolarity(in.Trend)
		if err != nil {
			return criteria.Matrix{}, fmt.Errorf("criterion %q: %w", in.Name, err)
		}
		crits[i] = criteria.Resolve(in.Name, polarity, "")
	}

	return criteria.Matrix{
		Scenarios: input.Scenarios,
		Criteria:  crits,
		Values:    input.Scores,
	}, nil
}

// Tool handlers. Each one resolves factors and model settings through the
// server's config so a tool call and the equivalent CLI command agree on
// the numbers.

func (s *Server) calculator() *emissions.Calculator {
	return emissions.New(emissions.WithDaysPerYear(s.cfg.Model.DaysPerYear))
}

func (s *Server) handleComputeBaseline(ctx context.Context, req *mcp.CallToolRequest, input BaselineInput) (*mcp.CallToolResult, any, error) {
	format := getFormat(input.Format)

	var items []emissions.Item
	if input.Plan != "" {
		p, err := plan.Load(input.Plan, s.cfg.Factors)
		if err != nil {
			return toolError(err.Error())
		}
		items = p.Items
	} else {
		items = buildItems(input.Items, s.cfg.Factors)
	}

	if len(items) == 0 {
		return toolError("no items to compute a baseline from")
	}

	return toolResult(s.calculator().Baseline(items), format)
}

func (s *Server) handleEvaluateScenarios(ctx context.Context, req *mcp.CallToolRequest, input EvaluateInput) (*mcp.CallToolResult, any, error) {
	format := getFormat(input.Format)

	var (
		items     []emissions.Item
		scenarios []emissions.Scenario
		name      string
	)
	if input.Plan != "" {
		p, err := plan.Load(input.Plan, s.cfg.Factors)
		if err != nil {
			return toolError(err.Error())
		}
		items, scenarios, name = p.Items, p.Scenarios, p.Name
	} else {
		items = buildItems(input.Items, s.cfg.Factors)
		scenarios = buildScenarios(input.Scenarios, len(items))
	}

	if len(items) == 0 {
		return toolError("no items to compute a baseline from")
	}
	if len(scenarios) == 0 {
		return toolError("no scenarios to evaluate")
	}

	baseline, results := s.calculator().Evaluate(items, scenarios)

	return toolResult(report.RunResult{
		Plan:      name,
		Baseline:  baseline,
		Scenarios: results,
	}, format)
}

func (s *Server) handleRankScenarios(ctx context.Context, req *mcp.CallToolRequest, input RankInput) (*mcp.CallToolResult, any, error) {
	format := getFormat(input.Format)

	var matrix criteria.Matrix
	if input.Plan != "" {
		p, err := plan.Load(input.Plan, s.cfg.Factors)
		if err != nil {
			return toolError(err.Error())
		}
		if !p.HasScores() {
			return toolError("plan carries no criteria scores")
		}
		matrix = p.Matrix
	} else {
		m, err := buildMatrix(input)
		if err != nil {
			return toolError(err.Error())
		}
		matrix = m
	}

	strict := input.Strict || s.cfg.Model.Strict
	opts := []criteria.Option{criteria.WithStrictCells(strict)}
	if input.RawTotals || !s.cfg.Model.Renormalize {
		opts = append(opts, criteria.WithoutRenormalize())
	}

	ranked, err := criteria.NewRanker(opts...).Rank(matrix)
	if err != nil {
		return toolError(err.Error())
	}

	return toolResult(ranked, format)
}

func (s *Server) handleListFactors(ctx context.Context, req *mcp.CallToolRequest, input FactorsInput) (*mcp.CallToolResult, any, error) {
	type factor struct {
		Name   string  `json:"name" toon:"name"`
		Factor float64 `json:"factor" toon:"factor"`
	}

	merged := emissions.Factors()
	for name, f := range s.cfg.Factors {
		merged[name] = f
	}
	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	factors := make([]factor, len(names))
	for i, name := range names {
		factors[i] = factor{Name: name, Factor: merged[name]}
	}

	result := struct {
		Factors []factor `json:"factors" toon:"factors"`
		Unit    string   `json:"unit" toon:"unit"`
	}{factors, "kg CO2e per unit of daily usage"}

	return toolResult(result, getFormat(input.Format))
}

func (s *Server) handleListCriteria(ctx context.Context, req *mcp.CallToolRequest, input CriteriaInput) (*mcp.CallToolResult, any, error) {
	result := struct {
		Criteria []criteria.Criterion `json:"criteria" toon:"criteria"`
	}{criteria.Builtins()}

	return toolResult(result, getFormat(input.Format))
}

// Package report assembles computed model results into renderable tables.
package report

import (
	"fmt"

	"github.com/fatih/color"
	"gonum.org/v1/gonum/stat"

	"github.com/verdantlab/sustain/internal/output"
	"github.com/verdantlab/sustain/pkg/criteria"
	"github.com/verdantlab/sustain/pkg/emissions"
)

// RunResult is the full structured output of one model run, serialized
// as-is for JSON and TOON formats.
type RunResult struct {
	Plan      string                     `json:"plan,omitempty" toon:"plan,omitempty"`
	Baseline  emissions.Baseline         `json:"baseline" toon:"baseline"`
	Scenarios []emissions.ScenarioResult `json:"scenarios,omitempty" toon:"scenarios,omitempty"`
	Ranking   []criteria.Ranked          `json:"ranking,omitempty" toon:"ranking,omitempty"`
}

// BaselineTable renders the business-as-usual breakdown.
func BaselineTable(b emissions.Baseline) *output.Table {
	rows := make([][]string, len(b.Items))
	for i, item := range b.Items {
		rows[i] = []string{
			item.Name,
			fmt.Sprintf("%.2f", item.DailyUsage),
			fmt.Sprintf("%.6f", item.Factor),
			fmt.Sprintf("%.2f", item.Daily),
			fmt.Sprintf("%.2f", item.Annual),
		}
	}

	return output.NewTable(
		"Business As Usual (BAU) Emissions",
		[]string{"Item", "Daily Usage", "Factor (kg CO2e/unit)", "Daily Emissions (kg CO2e)", "Annual Emissions (kg CO2e)"},
		rows,
		[]string{
			fmt.Sprintf("Items: %d", len(b.Items)),
			"",
			"",
			fmt.Sprintf("Total: %.2f", b.TotalDaily),
			fmt.Sprintf("Total: %.2f", b.TotalAnnual),
		},
		b,
	)
}

// ScenarioTable renders per-scenario emissions and savings against the
// baseline, in the column order the tool has always exported.
func ScenarioTable(results []emissions.ScenarioResult) *output.Table {
	rows := make([][]string, len(results))
	savings := make([]float64, len(results))
	for i, r := range results {
		rows[i] = []string{
			r.Name,
			fmt.Sprintf("%.2f", r.Daily),
			fmt.Sprintf("%.2f", r.Annual),
			fmt.Sprintf("%.2f", r.SavingKg),
			fmt.Sprintf("%.2f", r.SavingPct),
		}
		savings[i] = r.SavingPct
	}

	footer := []string{fmt.Sprintf("Scenarios: %d", len(results)), "", "", "", ""}
	if len(results) > 0 {
		footer[4] = fmt.Sprintf("Avg: %.2f", stat.Mean(savings, nil))
	}

	return output.NewTable(
		"Scenario Results",
		[]string{"Scenario", "Total Daily Emissions (kg CO2e)", "Total Annual Emissions (kg CO2e)", "CO2 Saving (kg CO2e/year)", "CO2 Saving (%)"},
		rows,
		footer,
		results,
	)
}

// RankingTable renders the normalized scores and ranks. With banded set,
// each normalized score is tinted by its colour band.
func RankingTable(ranked []criteria.Ranked, banded bool) *output.Table {
	rows := make([][]string, len(ranked))
	for i, r := range ranked {
		score := fmt.Sprintf("%.2f", r.NormalizedTotal)
		if banded {
			score = bandString(r.Band, score)
		}
		rows[i] = []string{
			r.Scenario,
			fmt.Sprintf("%.2f", r.TotalScore),
			score,
			fmt.Sprintf("%d", r.Rank),
		}
	}

	return output.NewTable(
		"Ranked Scenarios (All Criteria Scaled 1-10)",
		[]string{"Scenario", "Total Score", "Normalized Score", "Rank"},
		rows,
		nil,
		ranked,
	)
}

// CriteriaTable renders the normalized per-criterion scores.
func CriteriaTable(ranked []criteria.Ranked, crits []criteria.Criterion) *output.Table {
	headers := make([]string, 0, len(crits)+1)
	headers = append(headers, "Scenario")
	for _, c := range crits {
		headers = append(headers, c.Name)
	}

	rows := make([][]string, len(ranked))
	for i, r := range ranked {
		row := make([]string, 0, len(crits)+1)
		row = append(row, r.Scenario)
		for _, s := range r.Scores {
			row = append(row, fmt.Sprintf("%.2f", s))
		}
		rows[i] = row
	}

	return output.NewTable(
		"Normalized Criteria Scores",
		headers,
		rows,
		nil,
		nil,
	)
}

func bandString(b criteria.Band, s string) string {
	switch b {
	case criteria.BandGreen:
		return color.GreenString(s)
	case criteria.BandYellow:
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}

// TopScenario returns the name of the rank-1 scenario, if any.
func TopScenario(ranked []criteria.Ranked) (string, bool) {
	for _, r := range ranked {
		if r.Rank == 1 {
			return r.Scenario, true
		}
	}
	return "", false
}

package emissions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseline(t *testing.T) {
	calc := New()
	baseline := calc.Baseline([]Item{
		{Name: "Gas (kWh/day)", DailyUsage: 100, Factor: 0.183},
		{Name: "Electricity (kWh/day)", DailyUsage: 50, Factor: 0.2},
	})

	require.Len(t, baseline.Items, 2)
	assert.InDelta(t, 18.3, baseline.Items[0].Daily, 1e-9)
	assert.InDelta(t, 18.3*365, baseline.Items[0].Annual, 1e-9)
	assert.InDelta(t, 10.0, baseline.Items[1].Daily, 1e-9)
	assert.InDelta(t, 28.3, baseline.TotalDaily, 1e-9)
	assert.InDelta(t, 28.3*365, baseline.TotalAnnual, 1e-9)
}

func TestBaseline_UnknownFactorContributesZero(t *testing.T) {
	calc := New()
	baseline := calc.Baseline([]Item{
		{Name: "Mystery Fluid", DailyUsage: 500, Factor: 0},
	})

	assert.Zero(t, baseline.TotalDaily)
	assert.Zero(t, baseline.TotalAnnual)
}

func TestBaseline_Empty(t *testing.T) {
	calc := New()
	baseline := calc.Baseline(nil)
	assert.Empty(t, baseline.Items)
	assert.Zero(t, baseline.TotalDaily)
	assert.Zero(t, baseline.TotalAnnual)
}

func TestEvaluateScenario_FullUsageMatchesBaseline(t *testing.T) {
	calc := New()
	items := []Item{
		{Name: "Gas (kWh/day)", DailyUsage: 100, Factor: 0.183},
	}
	baseline := calc.Baseline(items)

	result := calc.EvaluateScenario(items, Scenario{
		Name:        "A",
		Percentages: []float64{100},
	}, baseline.TotalAnnual)

	assert.InDelta(t, 18.3, result.Daily, 1e-9)
	assert.InDelta(t, 6679.5, result.Annual, 1e-9)
	assert.InDelta(t, 0, result.SavingKg, 1e-9)
	assert.InDelta(t, 0, result.SavingPct, 1e-9)
}

func TestEvaluateScenario_HalfUsage(t *testing.T) {
	calc := New()
	items := []Item{
		{Name: "Gas (kWh/day)", DailyUsage: 100, Factor: 0.183},
	}
	baseline := calc.Baseline(items)

	result := calc.EvaluateScenario(items, Scenario{
		Name:        "B",
		Percentages: []float64{50},
	}, baseline.TotalAnnual)

	assert.InDelta(t, 9.15, result.Daily, 1e-9)
	assert.InDelta(t, 3339.75, result.Annual, 1e-9)
	assert.InDelta(t, 3339.75, result.SavingKg, 1e-9)
	assert.InDelta(t, 50.0, result.SavingPct, 1e-9)
}

func TestEvaluateScenario_ZeroBaselineNoDivisionByZero(t *testing.T) {
	calc := New()
	items := []Item{
		{Name: "Gas (kWh/day)", DailyUsage: 0, Factor: 0.183},
	}

	result := calc.EvaluateScenario(items, Scenario{
		Name:        "C",
		Percentages: []float64{150},
	}, 0)

	assert.Zero(t, result.SavingPct)
	assert.False(t, math.IsNaN(result.SavingPct))
	assert.False(t, math.IsInf(result.SavingPct, 0))
}

func TestEvaluateScenario_MissingPercentagesDefaultTo100(t *testing.T) {
	calc := New()
	items := []Item{
		{Name: "Gas (kWh/day)", DailyUsage: 100, Factor: 0.183},
		{Name: "Electricity (kWh/day)", DailyUsage: 50, Factor: 0.2},
	}
	baseline := calc.Baseline(items)

	// Only the first item has a percentage; the second defaults to 100.
	result := calc.EvaluateScenario(items, Scenario{
		Name:        "partial",
		Percentages: []float64{50},
	}, baseline.TotalAnnual)

	assert.InDelta(t, 9.15+10.0, result.Daily, 1e-9)
}

func TestEvaluateScenario_OverrangePercentagesNotClamped(t *testing.T) {
	calc := New()
	items := []Item{
		{Name: "Gas (kWh/day)", DailyUsage: 100, Factor: 0.183},
	}
	baseline := calc.Baseline(items)

	result := calc.EvaluateScenario(items, Scenario{
		Name:        "growth",
		Percentages: []float64{300},
	}, baseline.TotalAnnual)

	assert.InDelta(t, 54.9, result.Daily, 1e-9)
	assert.True(t, result.SavingKg < 0)
}

func TestEvaluateScenario_Deterministic(t *testing.T) {
	calc := New()
	items := []Item{
		{Name: "Gas (kWh/day)", DailyUsage: 123.456, Factor: 0.182928926},
		{Name: "Argon (m³/day)", DailyUsage: 7.89, Factor: 6.342950515},
		{Name: "Helium (m³/day)", DailyUsage: 0.123, Factor: 0.660501982},
	}
	baseline := calc.Baseline(items)
	sc := Scenario{Name: "D", Percentages: []float64{91.5, 47.25, 180.0}}

	first := calc.EvaluateScenario(items, sc, baseline.TotalAnnual)
	second := calc.EvaluateScenario(items, sc, baseline.TotalAnnual)
	assert.Equal(t, first, second)
}

func TestEvaluate(t *testing.T) {
	calc := New()
	items := []Item{
		{Name: "Gas (kWh/day)", DailyUsage: 100, Factor: 0.183},
	}

	baseline, results := calc.Evaluate(items, []Scenario{
		{Name: "A", Percentages: []float64{100}},
		{Name: "B", Percentages: []float64{50}},
	})

	require.Len(t, results, 2)
	assert.InDelta(t, baseline.TotalAnnual, results[0].Annual, 1e-9)
	assert.InDelta(t, 50.0, results[1].SavingPct, 1e-9)
}

func TestResolveFactor(t *testing.T) {
	tests := []struct {
		name      string
		item      string
		overrides map[string]float64
		want      float64
	}{
		{"builtin", "Hydrogen (m³/day)", nil, 1.07856},
		{"override wins", "Gas (kWh/day)", map[string]float64{"Gas (kWh/day)": 0.5}, 0.5},
		{"custom item", "Steam (t/day)", map[string]float64{"Steam (t/day)": 65.3}, 65.3},
		{"unknown is zero", "Steam (t/day)", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFactor(tt.item, tt.overrides)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()
	require.Len(t, items, 6)
	assert.Equal(t, "Gas (kWh/day)", items[0])

	for _, name := range items {
		_, ok := FactorFor(name)
		assert.True(t, ok, "missing factor for %s", name)
	}
}

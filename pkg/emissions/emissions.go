// Package emissions computes carbon emissions for a business-as-usual
// baseline and percentage-adjusted what-if scenarios.
package emissions

import "gonum.org/v1/gonum/floats"

// DaysPerYear converts daily emissions to annual emissions.
const DaysPerYear = 365

// Item is a named resource or energy line with its daily usage and the
// emission factor converting one unit of usage to kg CO2e.
type Item struct {
	Name       string  `json:"name" toon:"name"`
	DailyUsage float64 `json:"daily_usage" toon:"daily_usage"`
	Factor     float64 `json:"factor" toon:"factor"`
}

// Scenario describes a what-if variant as per-item usage percentages
// relative to the baseline, aligned by index with the item list.
// 100 means no change.
type Scenario struct {
	Name        string    `json:"name" toon:"name"`
	Description string    `json:"description,omitempty" toon:"description,omitempty"`
	Percentages []float64 `json:"percentages" toon:"percentages"`
}

// ItemEmissions is the per-item baseline breakdown.
type ItemEmissions struct {
	Name       string  `json:"name" toon:"name"`
	DailyUsage float64 `json:"daily_usage" toon:"daily_usage"`
	Factor     float64 `json:"factor" toon:"factor"`
	Daily      float64 `json:"daily_kg" toon:"daily_kg"`
	Annual     float64 `json:"annual_kg" toon:"annual_kg"`
}

// Baseline holds the business-as-usual emissions for a full item list.
type Baseline struct {
	Items       []ItemEmissions `json:"items" toon:"items"`
	TotalDaily  float64         `json:"total_daily_kg" toon:"total_daily_kg"`
	TotalAnnual float64         `json:"total_annual_kg" toon:"total_annual_kg"`
}

// ScenarioResult holds the computed emissions of one scenario and its
// savings relative to the baseline.
type ScenarioResult struct {
	Name      string  `json:"name" toon:"name"`
	Daily     float64 `json:"daily_kg" toon:"daily_kg"`
	Annual    float64 `json:"annual_kg" toon:"annual_kg"`
	SavingKg  float64 `json:"saving_kg" toon:"saving_kg"`
	SavingPct float64 `json:"saving_pct" toon:"saving_pct"`
}

// Calculator evaluates baselines and scenarios. It owns no mutable state;
// every call receives its full input and returns its full output.
type Calculator struct {
	daysPerYear float64
}

// Option configures the Calculator.
type Option func(*Calculator)

// WithDaysPerYear overrides the daily-to-annual multiplier.
func WithDaysPerYear(days float64) Option {
	return func(c *Calculator) {
		c.daysPerYear = days
	}
}

// New creates a new emissions calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{daysPerYear: DaysPerYear}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Baseline computes per-item and total emissions for the item list.
// Items with a zero factor contribute nothing.
func (c *Calculator) Baseline(items []Item) Baseline {
	out := Baseline{Items: make([]ItemEmissions, len(items))}
	dailies := make([]float64, len(items))
	for i, item := range items {
		daily := item.DailyUsage * item.Factor
		out.Items[i] = ItemEmissions{
			Name:       item.Name,
			DailyUsage: item.DailyUsage,
			Factor:     item.Factor,
			Daily:      daily,
			Annual:     daily * c.daysPerYear,
		}
		dailies[i] = daily
	}
	out.TotalDaily = floats.Sum(dailies)
	out.TotalAnnual = out.TotalDaily * c.daysPerYear
	return out
}

// EvaluateScenario computes one scenario against a precomputed baseline
// annual total. Percentages align with items by index; a missing entry is
// treated as 100 (no change). Values outside [0,200] are accepted as-is:
// clamping is the input boundary's job, not the calculator's.
func (c *Calculator) EvaluateScenario(items []Item, sc Scenario, baselineAnnual float64) ScenarioResult {
	daily := 0.0
	for i, item := range items {
		pct := 100.0
		if i < len(sc.Percentages) {
			pct = sc.Percentages[i]
		}
		daily += item.DailyUsage * pct / 100 * item.Factor
	}

	annual := daily * c.daysPerYear
	savingKg := baselineAnnual - annual
	savingPct := 0.0
	if baselineAnnual != 0 {
		savingPct = savingKg / baselineAnnual * 100
	}

	return ScenarioResult{
		Name:      sc.Name,
		Daily:     daily,
		Annual:    annual,
		SavingKg:  savingKg,
		SavingPct: savingPct,
	}
}

// Evaluate computes the baseline and every scenario against it.
func (c *Calculator) Evaluate(items []Item, scenarios []Scenario) (Baseline, []ScenarioResult) {
	baseline := c.Baseline(items)
	results := make([]ScenarioResult, len(scenarios))
	for i, sc := range scenarios {
		results[i] = c.EvaluateScenario(items, sc, baseline.TotalAnnual)
	}
	return baseline, results
}

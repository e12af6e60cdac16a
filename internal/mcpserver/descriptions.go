package mcpserver

// Tool descriptions with interpretation guidance for LLMs.
// Each description explains what the tool does, when to use it,
// how to interpret results, and key conventions.

func describeBaseline() string {
	return `Computes business-as-usual (BAU) carbon emissions from daily consumption figures.

USE WHEN:
- Establishing the current emissions footprint before modelling interventions
- Checking which consumption item dominates the footprint
- Validating a plan file's item list and emission factors

INTERPRETING RESULTS:
- Each item contributes daily_usage x factor kg CO2e per day
- Annual figures are daily x 365
- An item with factor 0 is unknown to the built-in table and contributes nothing;
  pass an explicit factor to include it
- Built-in items: Gas (kWh/day), Electricity (kWh/day), Nitrogen (m3/day),
  Hydrogen (m3/day), Argon (m3/day), Helium (m3/day)

METRICS RETURNED:
- Per-item: daily usage, factor, daily and annual emissions in kg CO2e
- Totals: daily and annual emissions across all items`
}

func describeEvaluate() string {
	return `Evaluates reduction scenarios against the business-as-usual baseline.

USE WHEN:
- Quantifying the CO2 impact of proposed interventions
- Comparing candidate scenarios by absolute or relative savings
- Producing the emissions half of a full decision-model run

INTERPRETING RESULTS:
- Each scenario scales every item's usage by a percentage (100 = unchanged)
- Percentages above 100 model increased consumption and are allowed
- saving_kg is baseline annual minus scenario annual; negative means the
  scenario emits more than the baseline
- saving_pct is relative to the baseline annual total; it is 0 when the
  baseline itself is 0

METRICS RETURNED:
- Baseline: per-item breakdown plus daily and annual totals
- Per-scenario: daily and annual emissions, saving in kg CO2e/year, saving percent`
}

func describeRank() string {
	return `Normalizes multi-criteria scores onto a shared 1-10 scale and ranks scenarios.

USE WHEN:
- Choosing between scenarios scored on mixed criteria (costs, risks, 1-10 ratings)
- Turning raw assessment data into a defensible ranking
- Producing the decision half of a full decision-model run

INTERPRETING RESULTS:
- Criterion trends: scale (already 1-10, passed through), invert (lower raw is
  better, e.g. cost), positive (higher raw is better)
- When every scenario has the same raw value on a criterion, all get 10
  (or 0 when that shared value is 0)
- total_score sums the normalized criterion scores; normalized_total rescales
  the totals onto 1-10 (all 5 when totals tie)
- Bands: green >= 7, yellow >= 5, red below
- Ranks descend from 1; tied scores share a rank and the next distinct score
  skips ahead ({10, 10, 8} ranks as 1, 1, 3)
- Missing score cells default to the neutral 5 unless strict is set

METRICS RETURNED:
- Per-scenario: normalized per-criterion scores, total, normalized total, band, rank`
}

func describeFactors() string {
	return `Lists the known emission factors, built-in plus any configured overrides.

USE WHEN:
- Discovering which consumption items resolve a factor automatically
- Showing the user the factor behind a computed figure

INTERPRETING RESULTS:
- Factors are kg CO2e per unit of daily usage; the unit is part of the item name
- Items not in this list need an explicit factor or they contribute zero

METRICS RETURNED:
- Name and factor for every known item`
}

func describeCriteria() string {
	return `Lists the built-in assessment criteria.

USE WHEN:
- Discovering which criteria carry a known trend out of the box
- Building a score matrix for rank_scenarios

INTERPRETING RESULTS:
- scale criteria expect 1-10 ratings; the description states the rubric
- invert criteria (Initial Investment, ROI years) accept unbounded raw values
  where lower is better
- Custom criteria may be used alongside these by declaring a trend

METRICS RETURNED:
- Name, polarity, and scoring guidance for every built-in criterion`
}

// Package plan loads the input document driving a model run: baseline
// items, scenarios, selected criteria, and the raw score matrix. A plan
// file is the immutable replacement for the interactive session state the
// tool grew out of; everything downstream is a pure function over it.
package plan

import (
	"github.com/verdantlab/sustain/pkg/criteria"
	"github.com/verdantlab/sustain/pkg/emissions"
)

// Plan is a fully resolved input document. Emission factors are looked up,
// scenario percentages are aligned with the item list, and scale criterion
// scores are clipped to [1,10]. Missing score cells are NaN; the ranker's
// cell mode decides whether that is an error or a neutral 5.
type Plan struct {
	Name      string
	Items     []emissions.Item
	Scenarios []emissions.Scenario
	Criteria  []criteria.Criterion
	Matrix    criteria.Matrix
}

// HasScores reports whether the plan carries a criteria score matrix.
func (p *Plan) HasScores() bool {
	return len(p.Criteria) > 0 && len(p.Matrix.Scenarios) > 0
}

// raw document shapes as they appear on disk.

type doc struct {
	Name      string                    `koanf:"name"`
	Items     []itemDoc                 `koanf:"items"`
	Scenarios []scenarioDoc             `koanf:"scenarios"`
	Criteria  []criterionDoc            `koanf:"criteria"`
	Scores    map[string]map[string]any `koanf:"scores"`
}

type itemDoc struct {
	Name       string   `koanf:"name"`
	DailyUsage float64  `koanf:"daily_usage"`
	Factor     *float64 `koanf:"factor"`
}

type scenarioDoc struct {
	Name        string             `koanf:"name"`
	Description string             `koanf:"description"`
	Percentages map[string]float64 `koanf:"percentages"`
}

type criterionDoc struct {
	Name        string `koanf:"name"`
	Trend       string `koanf:"trend"`
	Description string `koanf:"description"`
}

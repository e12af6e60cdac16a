package criteria

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// NeutralScore is substituted for missing or unparseable cells in lenient
// mode. The substitution is silent; a partially scored matrix still ranks.
const NeutralScore = 5.0

// Band classifies a normalized score for presentation.
type Band string

const (
	BandGreen  Band = "green"  // normalized >= 7
	BandYellow Band = "yellow" // normalized >= 5
	BandRed    Band = "red"
)

// BandFor returns the colour band for a normalized score.
func BandFor(score float64) Band {
	switch {
	case score >= 7:
		return BandGreen
	case score >= 5:
		return BandYellow
	default:
		return BandRed
	}
}

// Matrix is the scenario-by-criterion table of raw assigned scores.
// Values rows align with Scenarios, columns with Criteria. A NaN cell is
// missing and resolved by the ranker's cell mode.
type Matrix struct {
	Scenarios []string
	Criteria  []Criterion
	Values    [][]float64
}

// Cell returns the raw value at (scenario row, criterion column).
func (m Matrix) Cell(row, col int) float64 {
	return m.Values[row][col]
}

// validate checks the matrix dimensions.
func (m Matrix) validate() error {
	if len(m.Values) != len(m.Scenarios) {
		return fmt.Errorf("matrix has %d rows for %d scenarios", len(m.Values), len(m.Scenarios))
	}
	for i, row := range m.Values {
		if len(row) != len(m.Criteria) {
			return fmt.Errorf("scenario %q has %d scores for %d criteria", m.Scenarios[i], len(row), len(m.Criteria))
		}
	}
	return nil
}

// Ranked is the scored and ranked outcome for one scenario.
type Ranked struct {
	Scenario        string    `json:"scenario" toon:"scenario"`
	Scores          []float64 `json:"scores" toon:"scores"` // normalized, aligned with the matrix criteria
	TotalScore      float64   `json:"total_score" toon:"total_score"`
	NormalizedTotal float64   `json:"normalized_total" toon:"normalized_total"`
	Band            Band      `json:"band" toon:"band"`
	Rank            int       `json:"rank" toon:"rank"`
}

// Ranker normalizes a score matrix and ranks its scenarios.
type Ranker struct {
	strict      bool
	renormalize bool
}

// Option configures the Ranker.
type Option func(*Ranker)

// WithStrictCells makes missing cells an error instead of substituting the
// neutral score.
func WithStrictCells(strict bool) Option {
	return func(r *Ranker) {
		r.strict = strict
	}
}

// WithoutRenormalize ranks on the raw total instead of rescaling totals
// onto 1-10 first.
func WithoutRenormalize() Option {
	return func(r *Ranker) {
		r.renormalize = false
	}
}

// NewRanker creates a ranker. Defaults: lenient cells, renormalized totals.
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{renormalize: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank normalizes every criterion column, sums each scenario's scores,
// rescales the totals, and assigns descending ranks where tied scores share
// a rank and the next distinct score skips ahead by the tie-group size.
//
// The result preserves the matrix row order; ranks depend only on scores,
// so reordering input rows never changes the rank a named scenario gets.
func (r *Ranker) Rank(m Matrix) ([]Ranked, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	if len(m.Scenarios) == 0 {
		return []Ranked{}, nil
	}

	values, err := r.fillMissing(m)
	if err != nil {
		return nil, err
	}

	// Normalize column by column.
	normalized := make([][]float64, len(m.Scenarios))
	for i := range normalized {
		normalized[i] = make([]float64, len(m.Criteria))
	}
	column := make([]float64, len(m.Scenarios))
	for c, crit := range m.Criteria {
		for s := range m.Scenarios {
			column[s] = values[s][c]
		}
		scaled := Normalize(column, crit.Polarity)
		for s := range m.Scenarios {
			normalized[s][c] = scaled[s]
		}
	}

	totals := make([]float64, len(m.Scenarios))
	for s := range m.Scenarios {
		totals[s] = floats.Sum(normalized[s])
	}

	finals := totals
	if r.renormalize {
		finals = normalizeTotals(totals)
	}

	out := make([]Ranked, len(m.Scenarios))
	for s, name := range m.Scenarios {
		out[s] = Ranked{
			Scenario:        name,
			Scores:          normalized[s],
			TotalScore:      totals[s],
			NormalizedTotal: finals[s],
			Band:            BandFor(finals[s]),
			Rank:            minRank(finals, s),
		}
	}
	return out, nil
}

// fillMissing resolves NaN cells per the configured mode and returns a
// dense copy of the matrix values.
func (r *Ranker) fillMissing(m Matrix) ([][]float64, error) {
	var missing []string
	values := make([][]float64, len(m.Values))
	for s, row := range m.Values {
		values[s] = make([]float64, len(row))
		for c, v := range row {
			if math.IsNaN(v) {
				if r.strict {
					missing = append(missing, fmt.Sprintf("%s/%s", m.Scenarios[s], m.Criteria[c].Name))
					continue
				}
				v = NeutralScore
			}
			values[s][c] = v
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing scores for %s", strings.Join(missing, ", "))
	}
	return values, nil
}

// minRank returns 1 plus the count of scores strictly greater than the score
// at idx, which gives tied scores the same rank and skips ranks after a tie
// group (pandas method="min", descending).
func minRank(scores []float64, idx int) int {
	rank := 1
	for _, s := range scores {
		if s > scores[idx] {
			rank++
		}
	}
	return rank
}

package criteria

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func costCriterion() Criterion {
	return Criterion{Name: "Cost", Polarity: PolarityInvert}
}

func feasibilityCriterion() Criterion {
	return Criterion{Name: "Technical Feasibility", Polarity: PolarityScale}
}

func TestRank_SingleCriterion(t *testing.T) {
	m := Matrix{
		Scenarios: []string{"A", "B", "C"},
		Criteria:  []Criterion{costCriterion()},
		Values:    [][]float64{{100}, {200}, {100}},
	}

	ranked, err := NewRanker().Rank(m)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.InDelta(t, 10, ranked[0].Scores[0], 1e-9)
	assert.InDelta(t, 1, ranked[1].Scores[0], 1e-9)
	assert.InDelta(t, 10, ranked[2].Scores[0], 1e-9)

	// A and C tie for first; B takes rank 3 (min-rank with skip).
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 3, ranked[1].Rank)
	assert.Equal(t, 1, ranked[2].Rank)
}

func TestRank_DenseMinTies(t *testing.T) {
	// Two scenarios tie at the top, the third is distinct: ranks 1, 1, 3.
	m := Matrix{
		Scenarios: []string{"A", "B", "C"},
		Criteria:  []Criterion{feasibilityCriterion()},
		Values:    [][]float64{{8.5}, {8.5}, {6.0}},
	}

	ranked, err := NewRanker(WithoutRenormalize()).Rank(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})
}

func TestRank_StableUnderPermutation(t *testing.T) {
	criteria := []Criterion{
		feasibilityCriterion(),
		costCriterion(),
		{Name: "Throughput", Polarity: PolarityPositive},
	}
	names := []string{"A", "B", "C", "D"}
	rows := [][]float64{
		{7, 120, 40},
		{4, 80, 55},
		{9, 300, 10},
		{6, 80, 55},
	}

	ranked, err := NewRanker().Rank(Matrix{Scenarios: names, Criteria: criteria, Values: rows})
	require.NoError(t, err)
	want := map[string]int{}
	for _, r := range ranked {
		want[r.Scenario] = r.Rank
	}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		perm := rng.Perm(len(names))
		shuffledNames := make([]string, len(names))
		shuffledRows := make([][]float64, len(rows))
		for i, p := range perm {
			shuffledNames[i] = names[p]
			shuffledRows[i] = rows[p]
		}

		got, err := NewRanker().Rank(Matrix{Scenarios: shuffledNames, Criteria: criteria, Values: shuffledRows})
		require.NoError(t, err)
		for _, r := range got {
			assert.Equal(t, want[r.Scenario], r.Rank, "scenario %s after permutation", r.Scenario)
		}
	}
}

func TestRank_TotalsAndRenormalization(t *testing.T) {
	m := Matrix{
		Scenarios: []string{"low", "mid", "high"},
		Criteria:  []Criterion{feasibilityCriterion(), {Name: "Savings", Polarity: PolarityPositive}},
		Values: [][]float64{
			{2, 0},
			{5, 500},
			{8, 1000},
		},
	}

	ranked, err := NewRanker().Rank(m)
	require.NoError(t, err)

	// Totals: low = 2+1 = 3, mid = 5+5.5 = 10.5, high = 8+10 = 18.
	assert.InDelta(t, 3, ranked[0].TotalScore, 1e-9)
	assert.InDelta(t, 10.5, ranked[1].TotalScore, 1e-9)
	assert.InDelta(t, 18, ranked[2].TotalScore, 1e-9)

	// Renormalized: min total -> 1, max -> 10.
	assert.InDelta(t, 1, ranked[0].NormalizedTotal, 1e-9)
	assert.InDelta(t, 5.5, ranked[1].NormalizedTotal, 1e-9)
	assert.InDelta(t, 10, ranked[2].NormalizedTotal, 1e-9)

	assert.Equal(t, 3, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, 1, ranked[2].Rank)

	assert.Equal(t, BandRed, ranked[0].Band)
	assert.Equal(t, BandYellow, ranked[1].Band)
	assert.Equal(t, BandGreen, ranked[2].Band)
}

func TestRank_AllEqualTotalsAreNeutral(t *testing.T) {
	m := Matrix{
		Scenarios: []string{"A", "B"},
		Criteria:  []Criterion{feasibilityCriterion()},
		Values:    [][]float64{{6}, {6}},
	}

	ranked, err := NewRanker().Rank(m)
	require.NoError(t, err)
	assert.Equal(t, 5.0, ranked[0].NormalizedTotal)
	assert.Equal(t, 5.0, ranked[1].NormalizedTotal)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
}

func TestRank_LenientFillsNeutral(t *testing.T) {
	m := Matrix{
		Scenarios: []string{"A", "B"},
		Criteria:  []Criterion{feasibilityCriterion()},
		Values:    [][]float64{{math.NaN()}, {8}},
	}

	ranked, err := NewRanker().Rank(m)
	require.NoError(t, err)
	assert.Equal(t, NeutralScore, ranked[0].Scores[0])
	assert.Equal(t, 8.0, ranked[1].Scores[0])
	assert.Equal(t, 2, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
}

func TestRank_StrictRejectsMissing(t *testing.T) {
	m := Matrix{
		Scenarios: []string{"A", "B"},
		Criteria:  []Criterion{feasibilityCriterion(), costCriterion()},
		Values:    [][]float64{{7, math.NaN()}, {math.NaN(), 100}},
	}

	_, err := NewRanker(WithStrictCells(true)).Rank(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A/Cost")
	assert.Contains(t, err.Error(), "B/Technical Feasibility")
}

func TestRank_EmptyMatrix(t *testing.T) {
	ranked, err := NewRanker().Rank(Matrix{})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRank_SingleScenario(t *testing.T) {
	m := Matrix{
		Scenarios: []string{"only"},
		Criteria:  []Criterion{costCriterion()},
		Values:    [][]float64{{1200}},
	}

	ranked, err := NewRanker().Rank(m)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	// Degenerate range: criterion tie -> 10, aggregate tie -> 5.
	assert.Equal(t, 10.0, ranked[0].Scores[0])
	assert.Equal(t, 5.0, ranked[0].NormalizedTotal)
	assert.Equal(t, 1, ranked[0].Rank)
}

func TestRank_DimensionMismatch(t *testing.T) {
	m := Matrix{
		Scenarios: []string{"A", "B"},
		Criteria:  []Criterion{costCriterion()},
		Values:    [][]float64{{1}},
	}
	_, err := NewRanker().Rank(m)
	assert.Error(t, err)

	m = Matrix{
		Scenarios: []string{"A"},
		Criteria:  []Criterion{costCriterion()},
		Values:    [][]float64{{1, 2}},
	}
	_, err = NewRanker().Rank(m)
	assert.Error(t, err)
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Band
	}{
		{10, BandGreen},
		{7, BandGreen},
		{6.99, BandYellow},
		{5, BandYellow},
		{4.99, BandRed},
		{0, BandRed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.score), "score %v", tt.score)
	}
}

func TestLookupAndResolve(t *testing.T) {
	c, ok := Lookup("Technical Feasibility")
	require.True(t, ok)
	assert.Equal(t, PolarityScale, c.Polarity)

	c, ok = Lookup("Initial Investment (£)")
	require.True(t, ok)
	assert.Equal(t, PolarityInvert, c.Polarity)

	custom := Resolve("Water Saved (m³)", PolarityPositive, "higher is better")
	assert.Equal(t, PolarityPositive, custom.Polarity)

	// Built-in polarity wins over a conflicting declaration.
	builtin := Resolve("Scalability", PolarityInvert, "")
	assert.Equal(t, PolarityScale, builtin.Polarity)
}

func TestBuiltins(t *testing.T) {
	all := Builtins()
	require.Len(t, all, 13)
	inverts := 0
	for _, c := range all {
		if c.Polarity == PolarityInvert {
			inverts++
		}
	}
	assert.Equal(t, 2, inverts)
}

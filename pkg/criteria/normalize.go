package criteria

import "gonum.org/v1/gonum/floats"

// Normalize rescales one criterion's raw scores across all scenarios onto
// the common 1-10 scale with the polarity applied.
//
// Scale scores pass through untouched: the input boundary already constrains
// them to [1,10] and re-clipping here would mask boundary bugs. For invert
// and positive polarities the min-max rule is
//
//	invert:   out = 10 - 9*(v-min)/(max-min)
//	positive: out = 1 + 9*(v-min)/(max-min)
//
// When every scenario carries the same raw value the range collapses and the
// whole column maps to 10, unless that shared value is exactly zero, in
// which case it maps to 0. The zero case is the one output that can fall
// outside [1,10].
func Normalize(values []float64, polarity Polarity) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	if polarity == PolarityScale {
		copy(out, values)
		return out
	}

	min := floats.Min(values)
	max := floats.Max(values)

	if max == min {
		tie := 10.0
		if min == 0 {
			tie = 0.0
		}
		for i := range out {
			out[i] = tie
		}
		return out
	}

	span := max - min
	for i, v := range values {
		switch polarity {
		case PolarityInvert:
			out[i] = 10 - 9*(v-min)/span
		default: // PolarityPositive
			out[i] = 1 + 9*(v-min)/span
		}
	}
	return out
}

// normalizeTotals rescales summed totals onto 1-10 for the final comparison.
// Unlike per-criterion normalization, an all-equal column maps to the
// neutral midpoint 5.
func normalizeTotals(totals []float64) []float64 {
	out := make([]float64, len(totals))
	if len(totals) == 0 {
		return out
	}

	min := floats.Min(totals)
	max := floats.Max(totals)

	if max == min {
		for i := range out {
			out[i] = 5
		}
		return out
	}

	for i, t := range totals {
		out[i] = 1 + 9*(t-min)/(max-min)
	}
	return out
}

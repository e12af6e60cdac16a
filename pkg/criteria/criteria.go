// Package criteria normalizes heterogeneous multi-criteria scenario scores
// onto a common 1-10 scale and produces a ranked comparison.
package criteria

import (
	"fmt"
	"sort"
	"strings"
)

// Polarity is the directionality rule deciding whether higher or lower raw
// values are favorable for a criterion.
type Polarity string

const (
	// PolarityScale marks scores already on a 1-10 higher-is-better scale.
	// They pass through normalization unchanged.
	PolarityScale Polarity = "scale"
	// PolarityInvert marks raw values where lower is better (cost, payback
	// years). The observed minimum maps to 10, the maximum to 1.
	PolarityInvert Polarity = "invert"
	// PolarityPositive marks raw values where higher is better but not yet
	// on the 1-10 scale. The minimum maps to 1, the maximum to 10.
	PolarityPositive Polarity = "positive"
)

// ParsePolarity converts a string to a Polarity.
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scale", "":
		return PolarityScale, nil
	case "invert", "negative", "negative-trend":
		return PolarityInvert, nil
	case "positive", "positive-trend":
		return PolarityPositive, nil
	default:
		return "", fmt.Errorf("unknown polarity %q (want scale, invert, or positive)", s)
	}
}

// Criterion is a named evaluation axis with a fixed polarity.
type Criterion struct {
	Name        string   `json:"name" toon:"name"`
	Polarity    Polarity `json:"polarity" toon:"polarity"`
	Description string   `json:"description,omitempty" toon:"description,omitempty"`
}

// Built-in criteria. The 1-10 scale criteria mirror the assessment axes the
// tool offers out of the box; the two invert criteria accept unbounded raw
// values where lower is better.
var builtins = map[string]Criterion{
	"Technical Feasibility": {
		Name: "Technical Feasibility", Polarity: PolarityScale,
		Description: "1-4: low feasibility, 5-6: moderate, 7-10: high feasibility",
	},
	"Supplier Reliability and Technology Readiness": {
		Name: "Supplier Reliability and Technology Readiness", Polarity: PolarityScale,
		Description: "1-4: unreliable/immature, 5-6: mostly reliable, 7-10: highly reliable/mature",
	},
	"Implementation Complexity": {
		Name: "Implementation Complexity", Polarity: PolarityScale,
		Description: "1-4: very complex, 5-6: moderate complexity, 7-10: easy to implement",
	},
	"Scalability": {
		Name: "Scalability", Polarity: PolarityScale,
		Description: "1-4: hard to scale, 5-6: moderate, 7-10: easy to scale",
	},
	"Maintenance Requirements": {
		Name: "Maintenance Requirements", Polarity: PolarityScale,
		Description: "1-4: high maintenance, 5-6: moderate, 7-10: low maintenance",
	},
	"Regulatory Compliance": {
		Name: "Regulatory Compliance", Polarity: PolarityScale,
		Description: "1-4: risk of non-compliance, 5-6: mostly compliant, 7-10: fully compliant",
	},
	"Risk for Workforce Safety": {
		Name: "Risk for Workforce Safety", Polarity: PolarityScale,
		Description: "1-4: significant safety risks, 5-6: moderate risks, 7-10: very low risk",
	},
	"Risk for Operations": {
		Name: "Risk for Operations", Polarity: PolarityScale,
		Description: "1-4: high operational risk, 5-6: moderate risk, 7-10: minimal risk",
	},
	"Impact on Product Quality": {
		Name: "Impact on Product Quality", Polarity: PolarityScale,
		Description: "1-4: reduces quality, 5-6: acceptable, 7-10: improves or maintains quality",
	},
	"Customer and Stakeholder Alignment": {
		Name: "Customer and Stakeholder Alignment", Polarity: PolarityScale,
		Description: "1-4: low alignment, 5-6: moderate, 7-10: high alignment",
	},
	"Priority for our organisation": {
		Name: "Priority for our organisation", Polarity: PolarityScale,
		Description: "1-4: low priority, 5-6: moderate, 7-10: top priority",
	},
	"Initial Investment (£)": {
		Name: "Initial Investment (£)", Polarity: PolarityInvert,
		Description: "Upfront cost needed (no scale limit, lower is better)",
	},
	"Return on Investment (ROI) (years)": {
		Name: "Return on Investment (ROI) (years)", Polarity: PolarityInvert,
		Description: "Years to recover the initial cost (no scale limit, lower is better)",
	},
}

// Lookup returns the built-in criterion with the given name.
func Lookup(name string) (Criterion, bool) {
	c, ok := builtins[name]
	return c, ok
}

// Builtins returns all built-in criteria sorted by name.
func Builtins() []Criterion {
	out := make([]Criterion, 0, len(builtins))
	for _, c := range builtins {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Resolve maps a name to its built-in criterion, or declares a custom one
// with the given polarity when the name is not built in.
func Resolve(name string, polarity Polarity, description string) Criterion {
	if c, ok := builtins[name]; ok {
		return c
	}
	return Criterion{Name: name, Polarity: polarity, Description: description}
}

package emissions

import "sort"

// Built-in emission factors in kg CO2e per unit of daily usage. These cover
// the default items offered to every plan; custom items carry their own
// factor or fall back to zero.
var builtinFactors = map[string]float64{
	"Gas (kWh/day)":         0.182928926,
	"Electricity (kWh/day)": 0.207074289,
	"Nitrogen (m³/day)":     0.090638487,
	"Hydrogen (m³/day)":     1.07856,
	"Argon (m³/day)":        6.342950515,
	"Helium (m³/day)":       0.660501982,
}

// defaultItemOrder preserves the presentation order of the built-in items.
var defaultItemOrder = []string{
	"Gas (kWh/day)",
	"Electricity (kWh/day)",
	"Nitrogen (m³/day)",
	"Hydrogen (m³/day)",
	"Argon (m³/day)",
	"Helium (m³/day)",
}

// DefaultItems returns the built-in item names in presentation order.
func DefaultItems() []string {
	out := make([]string, len(defaultItemOrder))
	copy(out, defaultItemOrder)
	return out
}

// FactorFor looks up the built-in emission factor for an item.
func FactorFor(name string) (float64, bool) {
	f, ok := builtinFactors[name]
	return f, ok
}

// Factors returns a copy of the built-in factor table.
func Factors() map[string]float64 {
	out := make(map[string]float64, len(builtinFactors))
	for k, v := range builtinFactors {
		out[k] = v
	}
	return out
}

// ResolveFactor resolves an item's emission factor: explicit overrides win,
// then the built-in table, then zero. An unknown item contributes no
// emissions rather than failing the run.
func ResolveFactor(name string, overrides map[string]float64) float64 {
	if f, ok := overrides[name]; ok {
		return f
	}
	if f, ok := builtinFactors[name]; ok {
		return f
	}
	return 0
}

// FactorNames returns all built-in item names sorted alphabetically.
func FactorNames() []string {
	names := make([]string, 0, len(builtinFactors))
	for name := range builtinFactors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

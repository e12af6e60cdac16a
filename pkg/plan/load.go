package plan

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/verdantlab/sustain/pkg/criteria"
	"github.com/verdantlab/sustain/pkg/emissions"
)

//go:embed schema.json
var schemaJSON []byte

// Load reads and resolves a plan file. The format follows the extension
// (YAML, TOML, or JSON; YAML by default). factorOverrides supplies custom
// emission factors from configuration; a factor declared on the item itself
// wins over them.
func Load(path string, factorOverrides map[string]float64) (*Plan, error) {
	k := koanf.New(".")

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".json":
		parser = koanfjson.Parser()
	default:
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("loading plan %s: %w", path, err)
	}

	if err := validateSchema(k.Raw()); err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}

	var d doc
	if err := k.Unmarshal("", &d); err != nil {
		return nil, fmt.Errorf("decoding plan %s: %w", path, err)
	}

	return resolve(&d, factorOverrides)
}

// validateSchema checks the raw document against the embedded JSON Schema.
// The koanf map is round-tripped through JSON so the validator sees plain
// JSON values regardless of the source format.
func validateSchema(raw map[string]any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}

	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("plan.schema.json", schemaDoc); err != nil {
		return err
	}
	schema, err := compiler.Compile("plan.schema.json")
	if err != nil {
		return err
	}

	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}
	return nil
}

// resolve turns the raw document into a fully resolved Plan, applying the
// boundary policies: factor lookup with zero fallback, missing percentages
// defaulting to 100, scale scores clipped to [1,10], and missing or
// non-numeric score cells carried as NaN.
func resolve(d *doc, factorOverrides map[string]float64) (*Plan, error) {
	p := &Plan{Name: d.Name}

	p.Items = make([]emissions.Item, len(d.Items))
	for i, it := range d.Items {
		factor := it.Factor
		resolved := 0.0
		if factor != nil {
			resolved = *factor
		} else {
			resolved = emissions.ResolveFactor(it.Name, factorOverrides)
		}
		p.Items[i] = emissions.Item{
			Name:       it.Name,
			DailyUsage: it.DailyUsage,
			Factor:     resolved,
		}
	}

	p.Scenarios = make([]emissions.Scenario, len(d.Scenarios))
	seen := make(map[string]bool, len(d.Scenarios))
	for i, sc := range d.Scenarios {
		if seen[sc.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true

		pcts := make([]float64, len(p.Items))
		for j, item := range p.Items {
			pct, ok := sc.Percentages[item.Name]
			if !ok {
				pct = 100 // unchanged relative to baseline
			}
			pcts[j] = pct
		}
		p.Scenarios[i] = emissions.Scenario{
			Name:        sc.Name,
			Description: sc.Description,
			Percentages: pcts,
		}
	}

	p.Criteria = make([]criteria.Criterion, len(d.Criteria))
	for i, cd := range d.Criteria {
		if c, ok := criteria.Lookup(cd.Name); ok {
			p.Criteria[i] = c
			continue
		}
		if cd.Trend == "" {
			return nil, fmt.Errorf("criterion %q is not built in and declares no trend", cd.Name)
		}
		polarity, err := criteria.ParsePolarity(cd.Trend)
		if err != nil {
			return nil, fmt.Errorf("criterion %q: %w", cd.Name, err)
		}
		p.Criteria[i] = criteria.Criterion{
			Name:        cd.Name,
			Polarity:    polarity,
			Description: cd.Description,
		}
	}

	if len(p.Criteria) > 0 && len(p.Scenarios) > 0 {
		p.Matrix = buildMatrix(p, d.Scores)
	}

	return p, nil
}

// buildMatrix assembles the scenario-by-criterion matrix in scenario order.
func buildMatrix(p *Plan, scores map[string]map[string]any) criteria.Matrix {
	m := criteria.Matrix{
		Scenarios: make([]string, len(p.Scenarios)),
		Criteria:  p.Criteria,
		Values:    make([][]float64, len(p.Scenarios)),
	}
	for i, sc := range p.Scenarios {
		m.Scenarios[i] = sc.Name
		row := make([]float64, len(p.Criteria))
		for j, crit := range p.Criteria {
			v := math.NaN()
			if cells, ok := scores[sc.Name]; ok {
				if raw, ok := cells[crit.Name]; ok {
					v = toFloat(raw)
				}
			}
			if crit.Polarity == criteria.PolarityScale && !math.IsNaN(v) {
				v = clip(v, 1, 10)
			}
			row[j] = v
		}
		m.Values[i] = row
	}
	return m
}

// toFloat coerces a raw cell value to a float64, returning NaN for anything
// that does not parse as a number.
func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

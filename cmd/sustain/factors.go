package main

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/verdantlab/sustain/internal/output"
	"github.com/verdantlab/sustain/pkg/emissions"
)

func factorsCmd() *cli.Command {
	return &cli.Command{
		Name:   "factors",
		Usage:  "List emission factors (built-in plus configured overrides)",
		Action: runFactorsCmd,
	}
}

func runFactorsCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	type factorEntry struct {
		Name   string  `json:"name" toon:"name"`
		Factor float64 `json:"factor" toon:"factor"`
		Source string  `json:"source" toon:"source"`
	}

	var entries []factorEntry
	for _, name := range emissions.FactorNames() {
		entry := factorEntry{Name: name, Source: "built-in"}
		entry.Factor, _ = emissions.FactorFor(name)
		if override, ok := cfg.Factors[name]; ok {
			entry.Factor = override
			entry.Source = "config"
		}
		entries = append(entries, entry)
	}

	var extras []string
	for name := range cfg.Factors {
		if _, ok := emissions.FactorFor(name); !ok {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		entries = append(entries, factorEntry{Name: name, Factor: cfg.Factors[name], Source: "config"})
	}

	formatter, err := newFormatter(c, cfg)
	if err != nil {
		return err
	}
	defer formatter.Close()

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, fmt.Sprintf("%.9f", e.Factor), e.Source}
	}

	return formatter.Output(output.NewTable(
		"Emission Factors (kg CO2e per unit of daily usage)",
		[]string{"Item", "Factor", "Source"},
		rows,
		nil,
		entries,
	))
}

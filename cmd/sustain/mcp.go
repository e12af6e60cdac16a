package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/verdantlab/sustain/internal/mcpserver"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes sustain's
modelling engine as tools that LLMs can invoke. This lets AI assistants
compute baselines, evaluate scenarios, and produce rankings directly.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "sustain": {
        "command": "sustain",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - compute_baseline       Business-as-usual emissions from daily usage
  - evaluate_scenarios     Scenario emissions and savings vs the baseline
  - rank_scenarios         Normalize criteria scores and rank scenarios
  - list_emission_factors  Built-in emission factor table
  - list_criteria          Built-in assessment criteria`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "manifest",
				Usage: "Print the MCP server manifest (server.json) and exit",
			},
		},
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	if c.Bool("manifest") {
		data, err := mcpserver.GenerateManifest(version)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	server := mcpserver.NewServer(version, cfg)
	return server.Run(context.Background())
}

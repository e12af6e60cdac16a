package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/verdantlab/sustain/pkg/config"
)

// Server wraps the MCP server and registers all sustain modelling tools.
// The config carries custom emission factors and model settings so tools
// resolve plans the same way the CLI commands do.
type Server struct {
	server *mcp.Server
	cfg    *config.Config
}

// NewServer creates a new MCP server with all sustain tools registered.
// A nil config falls back to the defaults.
func NewServer(version string, cfg *config.Config) *Server {
	if version == "" {
		version = "dev"
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "sustain",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server, cfg: cfg}
	s.registerTools()
	s.registerPrompts()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds all modelling tools to the server.
func (s *Server) registerTools() {
	// Business-as-usual emissions
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compute_baseline",
		Description: describeBaseline(),
	}, s.handleComputeBaseline)

	// Scenario emissions and savings
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate_scenarios",
		Description: describeEvaluate(),
	}, s.handleEvaluateScenarios)

	// Criteria normalization and ranking
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rank_scenarios",
		Description: describeRank(),
	}, s.handleRankScenarios)

	// Built-in emission factors
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_emission_factors",
		Description: describeFactors(),
	}, s.handleListFactors)

	// Built-in assessment criteria
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_criteria",
		Description: describeCriteria(),
	}, s.handleListCriteria)
}

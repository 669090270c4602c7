// Package mcp exposes the vector store tools over the Model Context
// Protocol. The same server serves both transports: stdio for local
// hosts and streamable HTTP for remote ones.
package mcp

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecmcp/internal/domain"
	"github.com/kailas-cloud/vecmcp/internal/render"
	"github.com/kailas-cloud/vecmcp/internal/usecase/resolve"
	"github.com/kailas-cloud/vecmcp/internal/usecase/search"
	"github.com/kailas-cloud/vecmcp/internal/version"
)

// Config holds the tool-layer parameters.
type Config struct {
	// DefaultMaxResults is used when a search call omits max_results.
	DefaultMaxResults int
	// CharacterLimit bounds a single tool response.
	CharacterLimit int
}

// Server hosts the LiteLLM vector store tools.
type Server struct {
	impl     *mcp.Server
	resolver *resolve.Service
	searcher *search.Service
	cfg      Config
	logger   *zap.Logger
}

// New creates the MCP server and registers both tools.
func New(resolver *resolve.Service, searcher *search.Service, cfg Config, logger *zap.Logger) *Server {
	if cfg.DefaultMaxResults == 0 {
		cfg.DefaultMaxResults = domain.DefaultMaxResults
	}
	if cfg.CharacterLimit == 0 {
		cfg.CharacterLimit = render.DefaultCharacterLimit
	}

	s := &Server{
		resolver: resolver,
		searcher: searcher,
		cfg:      cfg,
		logger:   logger,
	}

	s.impl = mcp.NewServer(&mcp.Implementation{
		Name:    "vecmcp",
		Title:   "LiteLLM Vector Store Search",
		Version: version.Version,
	}, nil)
	s.registerTools()

	return s
}

// Run serves the stdio transport until ctx is cancelled or the host
// closes the stream. Logs must already be routed to stderr: stdout
// belongs to the protocol here.
func (s *Server) Run(ctx context.Context) error {
	return s.impl.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for mounting into a mux.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.impl }, nil)
}

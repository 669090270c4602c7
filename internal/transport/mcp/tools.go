package mcp

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vecmcp/internal/domain"
	logpkg "github.com/kailas-cloud/vecmcp/internal/logger"
	"github.com/kailas-cloud/vecmcp/internal/metrics"
	"github.com/kailas-cloud/vecmcp/internal/render"
)

var tracer = otel.Tracer("vecmcp/transport/mcp")

const (
	toolListStores  = "litellm_list_vector_stores"
	toolSearchStore = "litellm_search_vector_store"

	outcomeSuccess = "success"
)

type listStoresArgs struct {
	ResponseFormat string `json:"response_format,omitempty"`
}

type searchStoreArgs struct {
	Query          string `json:"query"`
	MaxResults     *int   `json:"max_results,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
	VectorStore    string `json:"vector_store,omitempty"`
}

func (s *Server) registerTools() {
	destructive := false
	openWorld := true

	mcp.AddTool(s.impl, &mcp.Tool{
		Name: toolListStores,
		Description: "List all vector stores configured in the LiteLLM instance, with their " +
			"IDs, friendly names, descriptions, and providers. Use this to discover which " +
			"stores are available before searching. Accepts response_format: 'markdown' " +
			"(default, human-readable) or 'json' (machine-readable).",
		Annotations: &mcp.ToolAnnotations{
			Title:           "List Available Vector Stores",
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: &destructive,
			OpenWorldHint:   &openWorld,
		},
	}, s.handleListStores)

	mcp.AddTool(s.impl, &mcp.Tool{
		Name: toolSearchStore,
		Description: "Search a LiteLLM vector store for relevant code, documentation, and " +
			"configuration files using a natural language query. Results are ranked by " +
			"semantic similarity and include file paths, relevance scores, and content " +
			"chunks. Parameters: query (required, 2-500 characters); max_results (1-20, " +
			"default 5); response_format ('markdown' or 'json', default 'markdown'); " +
			"vector_store (a friendly name like 'internal-corpus', a numeric store ID, or " +
			"omitted to use the default store - the litellm_list_vector_stores tool shows " +
			"all options). Responses are capped at 25,000 characters; the result count " +
			"shrinks to fit.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Search LiteLLM Vector Store",
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: &destructive,
			OpenWorldHint:   &openWorld,
		},
	}, s.handleSearchStore)
}

func (s *Server) handleListStores(ctx context.Context, _ *mcp.CallToolRequest, args listStoresArgs) (*mcp.CallToolResult, any, error) {
	c := s.begin(ctx, toolListStores)
	ctx, span := tracer.Start(ctx, "tool/"+toolListStores)
	defer span.End()

	format, err := domain.ParseOutputFormat(args.ResponseFormat)
	if err != nil {
		return s.fail(span, c, err)
	}
	c.format = format

	stores, err := s.resolver.Catalog(ctx)
	if err != nil {
		return s.fail(span, c, err)
	}

	text := render.Stores(stores, format)

	span.SetAttributes(attribute.Int("vecmcp.stores", len(stores)))
	c.log.Info("Tool call completed",
		zap.String("outcome", outcomeSuccess),
		zap.Int("stores", len(stores)),
		zap.Int("response_chars", utf8.RuneCountInString(text)),
		zap.Duration("duration", time.Since(c.started)),
	)
	s.record(c, outcomeSuccess, text)
	return textResult(text), nil, nil
}

func (s *Server) handleSearchStore(ctx context.Context, _ *mcp.CallToolRequest, args searchStoreArgs) (*mcp.CallToolResult, any, error) {
	c := s.begin(ctx, toolSearchStore)
	ctx, span := tracer.Start(ctx, "tool/"+toolSearchStore)
	defer span.End()

	format, err := domain.ParseOutputFormat(args.ResponseFormat)
	if err != nil {
		return s.fail(span, c, err)
	}
	c.format = format

	maxResults := s.cfg.DefaultMaxResults
	if args.MaxResults != nil {
		maxResults = *args.MaxResults
	}

	// Both bounds are checked before anything touches the network.
	q, err := domain.NewSearchQuery(args.Query, maxResults)
	if err != nil {
		return s.fail(span, c, err)
	}

	sel := domain.ParseStoreSelector(args.VectorStore)
	span.SetAttributes(attribute.String("vecmcp.selector", string(sel.Kind())))

	storeID, err := s.resolver.Resolve(ctx, sel)
	if err != nil {
		return s.fail(span, c, err)
	}

	results, err := s.searcher.Run(ctx, storeID, q)
	if err != nil {
		return s.fail(span, c, err)
	}

	resp := domain.NewSearchResponse(q.Text(), results, false)
	page := render.Search(resp, format, s.cfg.CharacterLimit)
	if page.Truncated {
		metrics.ResultsTruncatedTotal.Inc()
	}

	span.SetAttributes(
		attribute.String("vecmcp.store_id", storeID),
		attribute.Int("vecmcp.results", len(results)),
		attribute.Bool("vecmcp.truncated", page.Truncated),
	)
	c.log.Info("Tool call completed",
		zap.String("outcome", outcomeSuccess),
		zap.String("store_id", storeID),
		zap.Int("results", len(results)),
		zap.Int("shown", page.Shown),
		zap.Bool("truncated", page.Truncated),
		zap.Int("response_chars", utf8.RuneCountInString(page.Text)),
		zap.Duration("duration", time.Since(c.started)),
	)
	s.record(c, outcomeSuccess, page.Text)
	return textResult(page.Text), nil, nil
}

// call bundles per-invocation context shared by the helpers below.
type call struct {
	tool    string
	format  domain.OutputFormat
	log     *zap.Logger
	started time.Time
}

func (s *Server) begin(ctx context.Context, tool string) *call {
	// Over HTTP the per-request logger from the middleware chain carries
	// request_id; over stdio the server logger is all there is.
	log := logpkg.FromContextOr(ctx, s.logger)
	return &call{
		tool:    tool,
		format:  domain.FormatMarkdown,
		log:     log.With(zap.String("tool", tool), zap.String("invocation_id", uuid.NewString())),
		started: time.Now(),
	}
}

// fail renders err as the tool's text payload. A failed call is still a
// successful protocol exchange: the host always receives text, never a
// protocol-level error.
func (s *Server) fail(span trace.Span, c *call, err error) (*mcp.CallToolResult, any, error) {
	cond := domain.ConditionOf(err)
	text := render.Error(cond, c.format)

	span.AddEvent("condition", trace.WithAttributes(attribute.String("kind", string(cond.Kind))))
	c.log.Warn("Tool call failed",
		zap.String("outcome", string(cond.Kind)),
		zap.String("message", cond.Message),
		zap.Duration("duration", time.Since(c.started)),
	)
	s.record(c, string(cond.Kind), text)
	return textResult(text), nil, nil
}

func (s *Server) record(c *call, outcome, text string) {
	metrics.ToolCallsTotal.WithLabelValues(c.tool, outcome).Inc()
	metrics.ToolCallDuration.WithLabelValues(c.tool).Observe(time.Since(c.started).Seconds())
	metrics.ResponseChars.WithLabelValues(c.tool, string(c.format)).Observe(float64(utf8.RuneCountInString(text)))
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// Package litellm is the HTTP client for the LiteLLM vector store API.
package litellm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vecmcp/internal/domain"
	"github.com/kailas-cloud/vecmcp/internal/metrics"
)

// Config holds the LiteLLM gateway settings.
type Config struct {
	BaseURL          string
	APIKey           string
	Timeout          time.Duration
	Provider         string
	VertexAIProject  string
	VertexAILocation string
}

// Client talks to the LiteLLM vector store API. Every operation makes
// exactly one attempt bounded by the configured timeout; there is no retry
// logic at this layer.
type Client struct {
	baseURL          string
	apiKey           string
	timeout          time.Duration
	provider         string
	vertexAIProject  string
	vertexAILocation string
	httpClient       *http.Client
	logger           *zap.Logger
}

// New creates a LiteLLM API client.
func New(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	provider := cfg.Provider
	if provider == "" {
		provider = "vertex_ai"
	}
	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:           cfg.APIKey,
		timeout:          timeout,
		provider:         provider,
		vertexAIProject:  cfg.VertexAIProject,
		vertexAILocation: cfg.VertexAILocation,
		httpClient:       &http.Client{},
		logger:           logger,
	}
}

// Classifier returns the failure classifier bound to this client's settings.
func (c *Client) Classifier() Classifier {
	return Classifier{BaseURL: c.baseURL, Timeout: c.timeout}
}

// --- Wire DTOs ---

type listResponse struct {
	Data []storeEntry `json:"data"`
}

type storeEntry struct {
	ID          string `json:"vector_store_id"`
	Name        string `json:"vector_store_name"`
	Description string `json:"vector_store_description"`
	Provider    string `json:"custom_llm_provider"`
	CreatedAt   any    `json:"created_at"`
	UpdatedAt   any    `json:"updated_at"`
}

type searchRequest struct {
	Query             string `json:"query"`
	VectorStoreID     string `json:"vector_store_id"`
	CustomLLMProvider string `json:"custom_llm_provider"`
	VertexAIProject   string `json:"vertex_ai_project,omitempty"`
	VertexAILocation  string `json:"vertex_ai_location,omitempty"`
}

type searchResponse struct {
	Data []searchHit `json:"data"`
}

type searchHit struct {
	Score      float64        `json:"score"`
	Filename   string         `json:"filename"`
	FileID     string         `json:"file_id"`
	Attributes map[string]any `json:"attributes"`
	Content    []contentPart  `json:"content"`
}

type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ListVectorStores fetches the store catalog, preserving backend order.
// Failures come back as classified conditions.
func (c *Client) ListVectorStores(ctx context.Context) ([]domain.StoreDescriptor, error) {
	var out listResponse
	if err := c.do(ctx, http.MethodGet, "/vector_store/list", "list_stores", nil, &out); err != nil {
		c.logger.Warn("list vector stores failed", zap.Error(err))
		return nil, c.Classifier().Classify(err)
	}

	stores := make([]domain.StoreDescriptor, 0, len(out.Data))
	for _, e := range out.Data {
		d, err := domain.NewStoreDescriptor(e.ID, e.Name, e.Description, e.Provider, asString(e.CreatedAt), asString(e.UpdatedAt))
		if err != nil {
			c.logger.Warn("skipping malformed catalog entry",
				zap.String("name", e.Name), zap.Error(err))
			continue
		}
		stores = append(stores, d)
	}
	return stores, nil
}

// Search runs one query against a store. The backend route takes no result
// cap, so the caller trims the returned slice to its own limit. Failures
// come back as classified conditions.
func (c *Client) Search(ctx context.Context, storeID, query string) ([]domain.SearchResult, error) {
	payload := searchRequest{
		Query:             query,
		VectorStoreID:     storeID,
		CustomLLMProvider: c.provider,
		VertexAIProject:   c.vertexAIProject,
		VertexAILocation:  c.vertexAILocation,
	}

	path := "/v1/vector_stores/" + url.PathEscape(storeID) + "/search"
	var out searchResponse
	if err := c.do(ctx, http.MethodPost, path, "search", payload, &out); err != nil {
		c.logger.Warn("vector store search failed",
			zap.String("store_id", storeID), zap.Error(err))
		return nil, c.Classifier().Classify(err)
	}

	results := make([]domain.SearchResult, 0, len(out.Data))
	for _, hit := range out.Data {
		results = append(results, domain.SearchResult{
			Score:      hit.Score,
			Filename:   hit.Filename,
			FileID:     hit.FileID,
			Content:    firstText(hit.Content),
			Attributes: hit.Attributes,
		})
	}
	return results, nil
}

// do issues a single request with the per-call deadline and decodes a 2xx
// body into out. Non-2xx replies become *StatusError.
func (c *Client) do(ctx context.Context, method, path, endpoint string, payload, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return fmt.Errorf("litellm %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.BackendRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("litellm request complete",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))
	return nil
}

// firstText extracts the first text part from a content list. Stores return
// content as typed parts; only text parts are searchable prose.
func firstText(parts []contentPart) string {
	for _, p := range parts {
		if p.Type == "text" {
			return p.Text
		}
	}
	return ""
}

// asString renders a loosely typed timestamp field. LiteLLM deployments
// return these as ISO strings or unix numbers depending on the provider.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

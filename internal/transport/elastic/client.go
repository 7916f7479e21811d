// Package elastic is the Elasticsearch engine client: it serializes query
// plans into the ES JSON DSL, executes them and parses responses into domain
// hits.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	"github.com/nkuhub/infosearch/internal/domain"
	"github.com/nkuhub/infosearch/internal/domain/search/hit"
	"github.com/nkuhub/infosearch/internal/domain/search/plan"
	"github.com/nkuhub/infosearch/internal/metrics"
)

// Config holds the engine connection settings.
type Config struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
	Logger    *zap.Logger
}

// Client executes search plans against an Elasticsearch cluster.
type Client struct {
	es     *elasticsearch.Client
	index  string
	logger *zap.Logger
}

// NewClient creates an engine client for the configured cluster.
func NewClient(cfg *Config) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}
	return &Client{es: es, index: cfg.Index, logger: cfg.Logger}, nil
}

// Execute runs the plan and returns raw hits in engine order.
func (c *Client) Execute(ctx context.Context, p plan.Plan) ([]hit.Hit, error) {
	body, err := searchBody(p)
	if err != nil {
		return nil, fmt.Errorf("build search body: %w", err)
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	start := time.Now()
	resp, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(raw)),
	)
	metrics.EngineRequestDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())

	return readResponse(c.logger, resp, err, "search", parseSearchResponse)
}

// Suggest returns up to size completion candidates for the prefix.
func (c *Client) Suggest(ctx context.Context, prefix string, size int) ([]string, error) {
	raw, err := json.Marshal(suggestBody(prefix, size))
	if err != nil {
		return nil, fmt.Errorf("marshal suggest body: %w", err)
	}

	start := time.Now()
	resp, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(raw)),
	)
	metrics.EngineRequestDuration.WithLabelValues("suggest").Observe(time.Since(start).Seconds())

	return readResponse(c.logger, resp, err, "suggest", parseSuggestResponse)
}

// Ping verifies the cluster is reachable.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ping engine: %v: %w", err, domain.ErrEngineUnavailable)
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return fmt.Errorf("ping engine: status %d: %w", resp.StatusCode, domain.ErrEngineUnavailable)
	}
	return nil
}

// readResponse applies the shared error handling around a search call and
// hands the body to the operation-specific parser.
func readResponse[T any](logger *zap.Logger, resp *esapi.Response, callErr error, op string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	if callErr != nil {
		metrics.EngineErrorsTotal.WithLabelValues(op).Inc()
		logger.Warn("engine request failed", zap.String("operation", op), zap.Error(callErr))
		return zero, fmt.Errorf("%s: %v: %w", op, callErr, domain.ErrEngineUnavailable)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		metrics.EngineErrorsTotal.WithLabelValues(op).Inc()
		logger.Warn("engine returned error status",
			zap.String("operation", op), zap.Int("status", resp.StatusCode))
		return zero, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, domain.ErrEngineUnavailable)
	}

	out, err := parse(resp.Body)
	if err != nil {
		metrics.EngineErrorsTotal.WithLabelValues(op).Inc()
		return zero, fmt.Errorf("%s: %v: %w", op, err, domain.ErrEngineUnavailable)
	}
	return out, nil
}

// Package infosearch embeds the campus search pipeline in a Go program
// without running the HTTP server: plan construction, Elasticsearch
// execution, personalized re-ranking and pagination behind one client.
package infosearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/nkuhub/infosearch/internal/db/redis"
	domhistory "github.com/nkuhub/infosearch/internal/domain/history"
	domprofile "github.com/nkuhub/infosearch/internal/domain/profile"
	"github.com/nkuhub/infosearch/internal/domain/search/hit"
	"github.com/nkuhub/infosearch/internal/domain/search/plan"
	historyrepo "github.com/nkuhub/infosearch/internal/repository/history"
	profilerepo "github.com/nkuhub/infosearch/internal/repository/profile"
	"github.com/nkuhub/infosearch/internal/transport/elastic"
	"github.com/nkuhub/infosearch/internal/usecase/paginate"
	"github.com/nkuhub/infosearch/internal/usecase/query"
	"github.com/nkuhub/infosearch/internal/usecase/rank"
	searchuc "github.com/nkuhub/infosearch/internal/usecase/search"
	suggestuc "github.com/nkuhub/infosearch/internal/usecase/suggest"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultReadinessTimeout = 10 * time.Second

// Engine is the search backend surface the embedded client needs.
type Engine interface {
	Execute(ctx context.Context, p plan.Plan) ([]hit.Hit, error)
	Suggest(ctx context.Context, prefix string, size int) ([]string, error)
	Ping(ctx context.Context) error
}

type closer interface {
	Close()
}

// Client is the infosearch SDK entry point.
type Client struct {
	store      closer
	engine     Engine
	searchSvc  *searchuc.Service
	suggestSvc *suggestuc.Service
	profiles   *profilerepo.Repo
	history    *historyrepo.Repo
}

// New creates an infosearch Client and connects to the stores.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{logger: zap.NewNop()}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.redisAddrs) == 0 {
		return nil, errors.New("infosearch: database address required (use WithRedis)")
	}
	if cfg.engine == nil && len(cfg.engineAddrs) == 0 {
		return nil, errors.New("infosearch: engine address required (use WithElasticsearch)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.redisAddrs,
		Password: cfg.redisPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("infosearch: create redis store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("infosearch: database not ready: %w", err)
	}

	engine := cfg.engine
	if engine == nil {
		engine, err = elastic.NewClient(&elastic.Config{
			Addresses: cfg.engineAddrs,
			Username:  cfg.engineUsername,
			Password:  cfg.enginePassword,
			Index:     cfg.index,
			Logger:    cfg.logger,
		})
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("infosearch: create engine client: %w", err)
		}
	}

	return wireClient(store, engine, cfg)
}

func wireClient(store *dbRedis.Store, engine Engine, cfg *clientConfig) (*Client, error) {
	profiles := profilerepo.New(store)
	history := historyrepo.New(store, cfg.historyLimit)

	// The SDK keeps its failure counter unregistered; only the server
	// exposes Prometheus metrics.
	failures := prometheus.NewCounter(prometheus.CounterOpts{Name: "infosearch_sdk_personalization_failures"})

	searchSvc := searchuc.New(
		query.NewBuilder(cfg.maxResults),
		engine,
		rank.New(failures, cfg.logger),
		paginate.New(cfg.pageSize),
		profiles,
		history,
		cfg.logger,
	)
	suggestSvc, err := suggestuc.New(engine, cfg.cacheSize, cfg.logger)
	if err != nil {
		return nil, fmt.Errorf("infosearch: create suggest service: %w", err)
	}

	return &Client{
		store:      store,
		engine:     engine,
		searchSvc:  searchSvc,
		suggestSvc: suggestSvc,
		profiles:   profiles,
		history:    history,
	}, nil
}

// Search starts a fluent search for the given query text.
func (c *Client) Search(queryText string) *SearchBuilder {
	return &SearchBuilder{client: c, query: queryText, page: 1}
}

// Suggest returns query completions for a prefix. Failures yield an empty list.
func (c *Client) Suggest(ctx context.Context, prefix string) []string {
	return c.suggestSvc.Suggest(ctx, prefix)
}

// Profile returns the stored profile for a user.
func (c *Client) Profile(ctx context.Context, username string) (domprofile.Profile, error) {
	return c.profiles.Get(ctx, username)
}

// SaveProfile stores a user profile.
func (c *Client) SaveProfile(ctx context.Context, p domprofile.Profile) error {
	return c.profiles.Save(ctx, &p)
}

// History returns up to limit recorded searches for a user, newest first.
func (c *Client) History(ctx context.Context, username string, limit int) ([]domhistory.Entry, error) {
	return c.history.List(ctx, username, limit)
}

// Ping verifies the engine is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.engine.Ping(ctx)
}

// Close releases the database connection.
func (c *Client) Close() {
	c.store.Close()
}

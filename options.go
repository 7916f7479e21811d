package infosearch

import (
	"go.uber.org/zap"
)

// Option configures the embedded client.
type Option func(*clientConfig)

type clientConfig struct {
	redisAddrs    []string
	redisPassword string

	engineAddrs    []string
	engineUsername string
	enginePassword string
	index          string

	engine Engine

	maxResults   int
	pageSize     int
	historyLimit int
	cacheSize    int

	logger *zap.Logger
}

// WithRedis configures the profile and history store connection.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.redisAddrs = []string{addr}
		c.redisPassword = password
	}
}

// WithElasticsearch configures the search engine cluster and index.
func WithElasticsearch(index string, addrs ...string) Option {
	return func(c *clientConfig) {
		c.index = index
		c.engineAddrs = addrs
	}
}

// WithEngineAuth sets basic-auth credentials for the engine cluster.
func WithEngineAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.engineUsername = username
		c.enginePassword = password
	}
}

// WithEngine injects a custom engine implementation instead of the
// Elasticsearch client. Used mainly for tests.
func WithEngine(e Engine) Option {
	return func(c *clientConfig) {
		c.engine = e
	}
}

// WithMaxResults caps the hit list requested from the engine.
func WithMaxResults(n int) Option {
	return func(c *clientConfig) {
		c.maxResults = n
	}
}

// WithPageSize sets the number of results per page.
func WithPageSize(n int) Option {
	return func(c *clientConfig) {
		c.pageSize = n
	}
}

// WithSuggestCacheSize sets the completion cache capacity.
func WithSuggestCacheSize(n int) Option {
	return func(c *clientConfig) {
		c.cacheSize = n
	}
}

// WithHistoryLimit caps the retained search history per user.
func WithHistoryLimit(n int) Option {
	return func(c *clientConfig) {
		c.historyLimit = n
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

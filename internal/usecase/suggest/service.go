// Package suggest serves query completions with a small in-memory cache in
// front of the engine's completion suggester.
package suggest

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/nkuhub/infosearch/internal/metrics"
)

// MaxSuggestions caps the completions returned per prefix.
const MaxSuggestions = 10

// DefaultCacheSize is the prefix cache capacity when none is configured.
const DefaultCacheSize = 512

// Engine provides completion candidates for a prefix.
type Engine interface {
	Suggest(ctx context.Context, prefix string, size int) ([]string, error)
}

// Service returns query completions. Failures degrade to an empty list; a
// suggestion box that errors is worse than one that stays quiet.
type Service struct {
	engine Engine
	cache  *lru.Cache[string, []string]
	logger *zap.Logger
}

// New creates a suggestion service. cacheSize <= 0 uses DefaultCacheSize.
func New(engine Engine, cacheSize int, logger *zap.Logger) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create suggest cache: %w", err)
	}
	return &Service{engine: engine, cache: cache, logger: logger}, nil
}

// Suggest returns up to MaxSuggestions completions for the prefix. The empty
// prefix and any engine failure both yield an empty list.
func (s *Service) Suggest(ctx context.Context, prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}
	}

	if cached, ok := s.cache.Get(prefix); ok {
		metrics.SuggestCacheTotal.WithLabelValues("hit").Inc()
		return cached
	}
	metrics.SuggestCacheTotal.WithLabelValues("miss").Inc()

	out, err := s.engine.Suggest(ctx, prefix, MaxSuggestions)
	if err != nil {
		s.logger.Warn("suggest failed", zap.String("prefix", prefix), zap.Error(err))
		return []string{}
	}
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	if out == nil {
		out = []string{}
	}

	s.cache.Add(prefix, out)
	return out
}

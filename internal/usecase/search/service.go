// Package search runs the full result pipeline: plan construction, engine
// execution, optional personalized re-ranking and pagination.
package search

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nkuhub/infosearch/internal/domain"
	domhistory "github.com/nkuhub/infosearch/internal/domain/history"
	domprofile "github.com/nkuhub/infosearch/internal/domain/profile"
	"github.com/nkuhub/infosearch/internal/domain/search/hit"
	"github.com/nkuhub/infosearch/internal/domain/search/page"
	"github.com/nkuhub/infosearch/internal/domain/search/request"
	"github.com/nkuhub/infosearch/internal/metrics"
	"github.com/nkuhub/infosearch/internal/usecase/paginate"
	"github.com/nkuhub/infosearch/internal/usecase/query"
	"github.com/nkuhub/infosearch/internal/usecase/rank"
)

// Service orchestrates one search request end to end.
type Service struct {
	builder   *query.Builder
	engine    Engine
	ranker    *rank.Ranker
	paginator *paginate.Paginator
	profiles  ProfileReader
	history   HistoryWriter
	logger    *zap.Logger
}

// New creates the search pipeline service. history may be nil to disable
// history recording.
func New(
	builder *query.Builder,
	engine Engine,
	ranker *rank.Ranker,
	paginator *paginate.Paginator,
	profiles ProfileReader,
	history HistoryWriter,
	logger *zap.Logger,
) *Service {
	return &Service{
		builder:   builder,
		engine:    engine,
		ranker:    ranker,
		paginator: paginator,
		profiles:  profiles,
		history:   history,
		logger:    logger,
	}
}

// Search executes the request: build the plan, fetch hits and the profile
// concurrently, re-rank when personalization applies, then paginate.
func (s *Service) Search(ctx context.Context, req *request.Request) (page.Page, error) {
	p := s.builder.Build(req)

	var (
		hits []hit.Hit
		prof *domprofile.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hits, err = s.engine.Execute(gctx, p)
		if err != nil {
			return fmt.Errorf("execute plan: %w", err)
		}
		return nil
	})
	if req.Personalize() && req.Username() != "" {
		g.Go(func() error {
			loaded, err := s.profiles.Get(gctx, req.Username())
			if err != nil {
				// A missing or unreadable profile degrades to a plain
				// search; it never fails the request.
				if !errors.Is(err, domain.ErrProfileNotFound) {
					s.logger.Warn("profile fetch failed, skipping personalization",
						zap.String("username", req.Username()), zap.Error(err))
				}
				return nil
			}
			prof = &loaded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return page.Page{}, err
	}

	query.ApplyHighlights(hits, req.Scope().Config().Fields)

	hits = s.ranker.Rank(hits, prof, req.Sort())

	result := s.paginator.Paginate(hits, req.Page())

	metrics.SearchesTotal.WithLabelValues(
		string(req.Mode()), strconv.FormatBool(prof != nil),
	).Inc()

	s.recordHistory(ctx, req)

	return result, nil
}

// recordHistory appends the search to the user's history. Best effort:
// failures are logged and never surfaced to the caller.
func (s *Service) recordHistory(ctx context.Context, req *request.Request) {
	if s.history == nil || req.Username() == "" {
		return
	}
	entry := domhistory.Entry{
		Username:  req.Username(),
		Query:     req.Query(),
		Scope:     string(req.Scope()),
		Sort:      string(req.Sort()),
		Timestamp: time.Now().UTC(),
	}
	if err := s.history.Append(ctx, entry); err != nil {
		s.logger.Warn("history append failed",
			zap.String("username", req.Username()), zap.Error(err))
	}
}

package search

import (
	"context"

	domhistory "github.com/nkuhub/infosearch/internal/domain/history"
	domprofile "github.com/nkuhub/infosearch/internal/domain/profile"
	"github.com/nkuhub/infosearch/internal/domain/search/hit"
	"github.com/nkuhub/infosearch/internal/domain/search/plan"
)

// Engine executes query plans against the search backend.
type Engine interface {
	Execute(ctx context.Context, p plan.Plan) ([]hit.Hit, error)
}

// ProfileReader loads user profiles for personalization.
type ProfileReader interface {
	Get(ctx context.Context, username string) (domprofile.Profile, error)
}

// HistoryWriter records executed searches.
type HistoryWriter interface {
	Append(ctx context.Context, e domhistory.Entry) error
}

// Package request defines the validated search request value object.
package request

import (
	"fmt"
	"strings"

	"github.com/nkuhub/infosearch/internal/domain/search/mode"
	"github.com/nkuhub/infosearch/internal/domain/search/scope"
	"github.com/nkuhub/infosearch/internal/domain/search/sortby"
)

// MaxQueryLength is the maximum allowed search query length in bytes.
const MaxQueryLength = 1024

// Request is a validated search request.
type Request struct {
	query       string
	searchMode  mode.Mode
	searchScope scope.Scope
	sort        sortby.Sort
	filetypes   []string
	personalize bool
	page        int
	username    string
}

// New validates and normalizes search parameters.
// Defaults: mode=basic, scope=all, sort=relevance, page=1.
// Query text must be non-empty after trimming; empty queries are the caller's
// responsibility to no-op before a request is ever built.
func New(
	query string,
	m mode.Mode,
	sc scope.Scope,
	sort sortby.Sort,
	filetypes []string,
	personalize bool,
	page int,
	username string,
) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, fmt.Errorf("query is required")
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d bytes)", MaxQueryLength)
	}
	if m == "" {
		m = mode.Basic
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("invalid search mode: %q", m)
	}
	if sc == "" {
		sc = scope.All
	}
	if !sc.IsValid() {
		return Request{}, fmt.Errorf("invalid search scope: %q", sc)
	}
	if sort == "" {
		sort = sortby.Relevance
	}
	if !sort.IsValid() {
		return Request{}, fmt.Errorf("invalid sort: %q", sort)
	}
	if page < 1 {
		page = 1
	}

	return Request{
		query:       query,
		searchMode:  m,
		searchScope: sc,
		sort:        sort,
		filetypes:   filetypes,
		personalize: personalize,
		page:        page,
		username:    username,
	}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Mode returns the query shape to compile.
func (r *Request) Mode() mode.Mode { return r.searchMode }

// Scope returns the field scope.
func (r *Request) Scope() scope.Scope { return r.searchScope }

// Sort returns the ordering preference.
func (r *Request) Sort() sortby.Sort { return r.sort }

// Filetypes returns the caller-supplied file type filter (document mode only).
func (r *Request) Filetypes() []string { return r.filetypes }

// Personalize reports whether the hit list should be re-ranked by profile.
func (r *Request) Personalize() bool { return r.personalize }

// Page returns the 1-based page number to display.
func (r *Request) Page() int { return r.page }

// Username returns the requester's username, empty for anonymous searches.
func (r *Request) Username() string { return r.username }

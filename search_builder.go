package infosearch

import (
	"context"
	"fmt"

	"github.com/nkuhub/infosearch/internal/domain/search/mode"
	"github.com/nkuhub/infosearch/internal/domain/search/page"
	"github.com/nkuhub/infosearch/internal/domain/search/request"
	"github.com/nkuhub/infosearch/internal/domain/search/scope"
	"github.com/nkuhub/infosearch/internal/domain/search/sortby"
)

// Search modes.
const (
	ModeBasic    = string(mode.Basic)
	ModePhrase   = string(mode.Phrase)
	ModeWildcard = string(mode.Wildcard)
	ModeDocument = string(mode.Document)
)

// SearchBuilder is a fluent builder for search requests.
type SearchBuilder struct {
	client *Client

	query       string
	mode        string
	scope       string
	sort        string
	filetypes   []string
	username    string
	personalize bool
	page        int
}

// Mode sets the search mode (basic, phrase, wildcard, document).
func (b *SearchBuilder) Mode(m string) *SearchBuilder {
	b.mode = m
	return b
}

// In restricts matching to a field scope (title, content, all).
func (b *SearchBuilder) In(s string) *SearchBuilder {
	b.scope = s
	return b
}

// Sort sets the result ordering (relevance, date, time).
func (b *SearchBuilder) Sort(s string) *SearchBuilder {
	b.sort = s
	return b
}

// Filetypes restricts document search to the given extensions.
func (b *SearchBuilder) Filetypes(types ...string) *SearchBuilder {
	b.filetypes = types
	return b
}

// As attributes the search to a user, enabling history recording.
func (b *SearchBuilder) As(username string) *SearchBuilder {
	b.username = username
	return b
}

// Personalized enables profile-based re-ranking for the attributed user.
func (b *SearchBuilder) Personalized() *SearchBuilder {
	b.personalize = true
	return b
}

// Page selects the result page, starting at 1.
func (b *SearchBuilder) Page(n int) *SearchBuilder {
	b.page = n
	return b
}

// Do executes the search and returns one result page.
func (b *SearchBuilder) Do(ctx context.Context) (page.Page, error) {
	req, err := request.New(
		b.query,
		mode.Mode(b.mode),
		scope.Scope(b.scope),
		sortby.Sort(b.sort),
		b.filetypes,
		b.personalize,
		b.page,
		b.username,
	)
	if err != nil {
		return page.Page{}, fmt.Errorf("build search request: %w", err)
	}
	return b.client.searchSvc.Search(ctx, &req)
}

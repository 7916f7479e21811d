// Package query compiles a search request into an engine-agnostic query plan.
package query

import (
	"strings"

	"github.com/nkuhub/infosearch/internal/domain/search/hit"
	"github.com/nkuhub/infosearch/internal/domain/search/mode"
	"github.com/nkuhub/infosearch/internal/domain/search/plan"
	"github.com/nkuhub/infosearch/internal/domain/search/request"
	"github.com/nkuhub/infosearch/internal/domain/search/scope"
	"github.com/nkuhub/infosearch/internal/domain/search/sortby"
)

const (
	// DefaultMaxResults caps the hit list requested from the engine. This
	// bounds re-ranking cost; it is a ceiling, not a page size.
	DefaultMaxResults = 2000

	highlightPreTag  = "<mark>"
	highlightPostTag = "</mark>"

	filenameBoost = 1.5
	filetypeBoost = 1.0
)

// SupportedFiletypes is the fallback file type set for document searches when
// the caller supplies none.
var SupportedFiletypes = []string{"pdf", "doc", "docx", "xls", "xlsx"}

// Builder compiles search requests into query plans.
type Builder struct {
	maxResults int
}

// NewBuilder creates a query builder. maxResults <= 0 uses DefaultMaxResults.
func NewBuilder(maxResults int) *Builder {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Builder{maxResults: maxResults}
}

// Build compiles the request into a plan: the mode-specific query tree, a
// highlight directive for every configured field, an optional date sort and
// the result size cap.
func (b *Builder) Build(req *request.Request) plan.Plan {
	fc := req.Scope().Config()

	var root plan.Node
	switch req.Mode() {
	case mode.Document:
		root = documentQuery(req.Query(), fc, req.Filetypes())
	case mode.Phrase:
		root = phraseQuery(req.Query(), fc)
	case mode.Wildcard:
		root = wildcardQuery(req.Query(), fc)
	default:
		root = basicQuery(req.Query(), fc)
	}

	p := plan.Plan{
		Query: root,
		Highlight: plan.Highlight{
			PreTag:  highlightPreTag,
			PostTag: highlightPostTag,
			Fields:  fc.Fields,
		},
		Size: b.maxResults,
	}

	if req.Sort() == sortby.Date {
		p.Sort = &plan.SortClause{Field: "date", Desc: true}
	}

	return p
}

// basicQuery is a weighted multi-field match.
func basicQuery(text string, fc scope.FieldConfig) plan.Node {
	return plan.MultiMatch{Query: text, Fields: boostedFields(fc)}
}

// documentQuery matches over the scope fields plus filename and filetype,
// intersected with a filter restricting filetype to the requested set.
func documentQuery(text string, fc scope.FieldConfig, filetypes []string) plan.Node {
	fields := append(boostedFields(fc),
		plan.BoostedField{Name: "filename", Boost: filenameBoost},
		plan.BoostedField{Name: "filetype", Boost: filetypeBoost},
	)

	if len(filetypes) == 0 {
		filetypes = SupportedFiletypes
	}
	values := make([]string, len(filetypes))
	for i, ft := range filetypes {
		values[i] = strings.ToLower(ft)
	}

	return plan.Bool{
		Must:   []plan.Node{plan.MultiMatch{Query: text, Fields: fields}},
		Filter: []plan.Node{plan.Terms{Field: "filetype", Values: values}},
	}
}

// phraseQuery matches the exact phrase in any configured field.
func phraseQuery(text string, fc scope.FieldConfig) plan.Node {
	should := make([]plan.Node, len(fc.Fields))
	for i, f := range fc.Fields {
		should[i] = plan.MatchPhrase{Field: f, Phrase: text}
	}
	return plan.Bool{Should: should}
}

// wildcardQuery normalizes the pattern and applies it across the configured
// fields with OR semantics.
func wildcardQuery(text string, fc scope.FieldConfig) plan.Node {
	pattern := NormalizeWildcard(text)
	should := make([]plan.Node, len(fc.Fields))
	for i, f := range fc.Fields {
		should[i] = plan.Wildcard{Field: f, Pattern: pattern}
	}
	return plan.Bool{Should: should}
}

// NormalizeWildcard converts full-width wildcard characters to ASCII and
// appends `*` when the query contains no wildcard at all, so plain text
// behaves as a prefix match.
func NormalizeWildcard(text string) string {
	text = strings.ReplaceAll(text, "？", "?")
	text = strings.ReplaceAll(text, "＊", "*")
	if !strings.ContainsAny(text, "*?") {
		text += "*"
	}
	return text
}

// boostedFields orders the weighted fields by the scope's field order so the
// compiled plan is deterministic.
func boostedFields(fc scope.FieldConfig) []plan.BoostedField {
	out := make([]plan.BoostedField, len(fc.Fields))
	for i, f := range fc.Fields {
		out[i] = plan.BoostedField{Name: f, Boost: fc.Weights[f]}
	}
	return out
}

// ApplyHighlights guarantees every hit has a displayable value for each
// configured field: the engine's highlighted fragment when one was produced,
// the raw field value otherwise.
func ApplyHighlights(hits []hit.Hit, fields []string) {
	for i := range hits {
		for _, f := range fields {
			switch f {
			case "title":
				if hits[i].HighlightedTitle == "" {
					hits[i].HighlightedTitle = hits[i].Title
				}
			case "content":
				if hits[i].HighlightedContent == "" {
					hits[i].HighlightedContent = hits[i].Content
				}
			}
		}
	}
}

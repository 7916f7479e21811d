// Package plan defines the engine-agnostic query plan produced by the query
// builder. Serialization to a concrete engine dialect lives in the engine
// transport.
package plan

// Plan is a structured query handed to the search engine: a boolean/match/
// filter tree plus a highlight spec, an optional sort clause and a result
// size cap.
type Plan struct {
	Query     Node
	Highlight Highlight
	Sort      *SortClause
	Size      int
}

// Node is one vertex of the query tree.
type Node interface {
	isNode()
}

// BoostedField is a field name with a relevance boost factor.
type BoostedField struct {
	Name  string
	Boost float64
}

// MultiMatch matches the query text across several boosted fields.
type MultiMatch struct {
	Query  string
	Fields []BoostedField
}

func (MultiMatch) isNode() {}

// Bool combines sub-queries: all of Must, any of Should, restricted by Filter.
type Bool struct {
	Must   []Node
	Should []Node
	Filter []Node
}

func (Bool) isNode() {}

// MatchPhrase matches the exact phrase in a single field.
type MatchPhrase struct {
	Field  string
	Phrase string
}

func (MatchPhrase) isNode() {}

// Wildcard matches a wildcard pattern (`*`, `?`) in a single field.
type Wildcard struct {
	Field   string
	Pattern string
}

func (Wildcard) isNode() {}

// Terms restricts a field to a fixed value set without scoring.
type Terms struct {
	Field  string
	Values []string
}

func (Terms) isNode() {}

// Highlight asks the engine to wrap matched fragments of the listed fields in
// the given markers.
type Highlight struct {
	PreTag  string
	PostTag string
	Fields  []string
}

// SortClause overrides relevance ordering at the engine level.
type SortClause struct {
	Field string
	Desc  bool
}

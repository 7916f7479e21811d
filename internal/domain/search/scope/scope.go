// Package scope defines the search field scope and its field weighting.
package scope

// Scope selects which document fields a query matches against.
type Scope string

const (
	// Title restricts matching to the title field.
	Title Scope = "title"
	// Content restricts matching to the content field.
	Content Scope = "content"
	// All matches both title and content.
	All Scope = "all"
)

// IsValid reports whether s is a known scope.
func (s Scope) IsValid() bool {
	switch s {
	case Title, Content, All:
		return true
	}
	return false
}

// FieldConfig is the ordered field list and relevance weights derived from a
// scope. Title always outweighs content so title matches rank higher.
type FieldConfig struct {
	Fields  []string
	Weights map[string]float64
}

// Config resolves the field configuration for s. Unknown scopes fall back to All.
func (s Scope) Config() FieldConfig {
	switch s {
	case Title:
		return FieldConfig{
			Fields:  []string{"title"},
			Weights: map[string]float64{"title": 2.0},
		}
	case Content:
		return FieldConfig{
			Fields:  []string{"content"},
			Weights: map[string]float64{"content": 1.0},
		}
	default:
		return FieldConfig{
			Fields:  []string{"title", "content"},
			Weights: map[string]float64{"title": 2.0, "content": 1.0},
		}
	}
}

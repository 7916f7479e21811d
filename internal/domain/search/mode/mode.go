// Package mode defines the supported search modes.
package mode

// Mode selects the query shape compiled for the engine.
type Mode string

const (
	// Basic is a weighted multi-field match.
	Basic Mode = "basic"
	// Phrase matches the query as an exact phrase in any configured field.
	Phrase Mode = "phrase"
	// Wildcard matches a wildcard pattern in any configured field.
	Wildcard Mode = "wildcard"
	// Document searches uploaded documents, restricted by file type.
	Document Mode = "document"
)

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	switch m {
	case Basic, Phrase, Wildcard, Document:
		return true
	}
	return false
}

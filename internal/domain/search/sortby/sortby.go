// Package sortby defines the result ordering preference.
package sortby

// Sort selects how the final hit list is ordered.
type Sort string

const (
	// Relevance orders by the engine score (and, when personalized, the
	// composite personalization score).
	Relevance Sort = "relevance"
	// Date orders at the engine level by the indexed date field, descending.
	Date Sort = "date"
	// Time orders the re-ranked list by publish timestamp, descending.
	// Undated hits sort last.
	Time Sort = "time"
)

// IsValid reports whether s is a known sort preference.
func (s Sort) IsValid() bool {
	switch s {
	case Relevance, Date, Time:
		return true
	}
	return false
}

// Package hit defines the search hit record returned by the engine.
package hit

import "strings"

// Kind discriminates the two hit shapes sharing one record.
type Kind int

const (
	// Page is a crawled web page hit: carries content, source and date.
	Page Kind = iota
	// Document is an uploaded file hit: carries filename and filetype, no content.
	Document
)

// Hit is one raw engine result. Optional fields are empty strings when the
// engine did not supply them; nothing in the pipeline treats a missing field
// as an error.
type Hit struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Date        string `json:"date"`
	PublishDate string `json:"publish_date"`

	Filetype   string `json:"filetype"`
	Filename   string `json:"filename"`
	UploadDate string `json:"upload_date"`

	SnapshotHash string `json:"snapshot_hash"`
	CapturedAt   string `json:"captured_at"`

	// HighlightedTitle and HighlightedContent are filled after execution:
	// engine fragment when present, raw field value otherwise.
	HighlightedTitle   string `json:"-"`
	HighlightedContent string `json:"-"`

	// EngineScore is the engine's native relevance score (from _score, not _source).
	EngineScore float64 `json:"-"`
}

// Kind reports the hit shape, determined solely by filetype presence.
func (h *Hit) Kind() Kind {
	if h.Filetype != "" {
		return Document
	}
	return Page
}

// Blob returns the lower-cased concatenation of title and content, the text
// the personalization heuristics scan.
func (h *Hit) Blob() string {
	return strings.ToLower(h.Title + " " + h.Content)
}

// Timestamp returns the publish timestamp used for time ordering: publish_date
// when set, else date, else empty. Empty sorts last.
func (h *Hit) Timestamp() string {
	if h.PublishDate != "" {
		return h.PublishDate
	}
	return h.Date
}

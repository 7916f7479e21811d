// Package paginate windows an ordered hit list into a display page.
package paginate

import (
	"github.com/nkuhub/infosearch/internal/domain/search/hit"
	"github.com/nkuhub/infosearch/internal/domain/search/page"
)

// DefaultPageSize is the number of results per page.
const DefaultPageSize = 10

// windowWidth is the size of the page-number navigation window.
const windowWidth = 10

// Fallbacks for hits missing expected fields. A malformed hit degrades to
// these, it never fails the page.
const (
	fallbackTitle    = "无标题"
	fallbackURL      = "#"
	fallbackFilename = "未知文件名"
	fallbackFiletype = "未知类型"
)

// snippetRunes is the display snippet length in runes.
const snippetRunes = 200

// Paginator slices ordered hit lists into pages.
type Paginator struct {
	pageSize int
}

// New creates a paginator. pageSize <= 0 uses DefaultPageSize.
func New(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize}
}

// PageSize returns the configured page size.
func (p *Paginator) PageSize() int { return p.pageSize }

// Paginate windows hits into the requested page. A page beyond the end is not
// an error; it yields an empty item list with correct totals.
func (p *Paginator) Paginate(hits []hit.Hit, pageNum int) page.Page {
	if pageNum < 1 {
		pageNum = 1
	}

	total := len(hits)
	totalPages := (total + p.pageSize - 1) / p.pageSize

	items := make([]page.Record, 0, p.pageSize)
	start := (pageNum - 1) * p.pageSize
	if start < total {
		end := start + p.pageSize
		if end > total {
			end = total
		}
		for i := start; i < end; i++ {
			items = append(items, project(&hits[i]))
		}
	}

	return page.Page{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Range:      window(pageNum, totalPages),
	}
}

// window computes the sliding navigation range: up to 5 pages of context
// before the current page, re-anchored to keep the window 10 wide whenever
// enough pages exist.
func window(pageNum, totalPages int) page.Range {
	start := pageNum - 5
	if start < 1 {
		start = 1
	}
	end := start + windowWidth - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start < windowWidth-1 {
		start = end - windowWidth + 1
		if start < 1 {
			start = 1
		}
	}
	return page.Range{Start: start, End: end}
}

// project maps a hit onto its display record, branching on the hit shape.
func project(h *hit.Hit) page.Record {
	title := h.HighlightedTitle
	if title == "" {
		title = h.Title
	}
	if title == "" {
		title = fallbackTitle
	}

	url := h.URL
	if url == "" {
		url = fallbackURL
	}

	if h.Kind() == hit.Document {
		filename := h.Filename
		if filename == "" {
			filename = fallbackFilename
		}
		filetype := h.Filetype
		if filetype == "" {
			filetype = fallbackFiletype
		}
		return page.Record{
			Title:      title,
			Filename:   filename,
			Filetype:   filetype,
			UploadDate: h.UploadDate,
			URL:        url,
		}
	}

	content := h.HighlightedContent
	if content == "" {
		content = h.Content
	}

	date := h.Date
	if date == "" {
		date = h.PublishDate
	}

	return page.Record{
		Title:        title,
		URL:          url,
		Snippet:      snippet(content),
		Source:       h.Source,
		Date:         date,
		SortDate:     NormalizeSortDate(date),
		SnapshotHash: h.SnapshotHash,
		SnapshotDate: FormatSnapshotDate(h.CapturedAt),
	}
}

// snippet truncates content to the display length, counting runes so
// multi-byte text is never cut mid-character.
func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetRunes {
		return content
	}
	return string(runes[:snippetRunes])
}

// Package page defines the windowed, display-ready result page.
package page

// Record is the renderer-agnostic projection of a single hit. Document hits
// fill the file fields and leave snippet/source/date empty; page hits do the
// opposite.
type Record struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
	Source  string `json:"source,omitempty"`
	Date    string `json:"date,omitempty"`
	// SortDate is Date normalized to zero-padded YYYY-MM-DD, empty when the
	// date does not parse.
	SortDate string `json:"sort_date,omitempty"`

	Filetype   string `json:"filetype,omitempty"`
	Filename   string `json:"filename,omitempty"`
	UploadDate string `json:"upload_date,omitempty"`

	SnapshotHash string `json:"snapshot_hash,omitempty"`
	// SnapshotDate is the capture timestamp reformatted to YYYY/MM/DD, empty
	// when absent or unparseable.
	SnapshotDate string `json:"snapshot_date,omitempty"`
}

// Range is the inclusive window of page numbers shown in navigation controls.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Width returns the number of pages in the window.
func (r Range) Width() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether page p falls inside the window.
func (r Range) Contains(p int) bool {
	return p >= r.Start && p <= r.End
}

// Pages expands the window into the explicit page number list.
func (r Range) Pages() []int {
	if r.End < r.Start {
		return nil
	}
	out := make([]int, 0, r.End-r.Start+1)
	for p := r.Start; p <= r.End; p++ {
		out = append(out, p)
	}
	return out
}

// Page is one display window over the full ordered hit list.
type Page struct {
	Items      []Record `json:"items"`
	Total      int      `json:"total"`
	TotalPages int      `json:"total_pages"`
	Range      Range    `json:"page_range"`
}

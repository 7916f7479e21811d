package paginate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NormalizeSortDate normalizes a YYYY-M-D-ish string to zero-padded
// YYYY-MM-DD. Any parse failure yields the empty string, never an error.
func NormalizeSortDate(s string) string {
	if s == "" {
		return ""
	}
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return ""
	}

	year := parts[0]
	if len(year) != 4 || !isDigits(year) {
		return ""
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return ""
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s-%02d-%02d", year, month, day)
}

// snapshotLayouts are the structured timestamp formats a capture time may
// arrive in.
var snapshotLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatSnapshotDate reformats a capture timestamp to YYYY/MM/DD. It accepts
// both structured timestamps and plain date-prefixed strings; anything else
// yields the empty string.
func FormatSnapshotDate(s string) string {
	if s == "" {
		return ""
	}

	for _, layout := range snapshotLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006/01/02")
		}
	}

	// Fall back to the first ten characters of a date-shaped string.
	if len(s) >= 10 {
		d := s[:10]
		if len(d) == 10 && d[4] == '-' && d[7] == '-' &&
			isDigits(d[:4]) && isDigits(d[5:7]) && isDigits(d[8:10]) {
			return strings.ReplaceAll(d, "-", "/")
		}
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

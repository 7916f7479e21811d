// Package history defines the recorded-search record.
package history

import "time"

// Entry is one recorded search.
type Entry struct {
	Username  string    `json:"username"`
	Query     string    `json:"query"`
	Scope     string    `json:"search_in"`
	Sort      string    `json:"sort_by"`
	Timestamp time.Time `json:"timestamp"`
}

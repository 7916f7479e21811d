// Package history records search history as capped Redis lists, newest first.
package history

import (
	"context"
	"encoding/json"
	"fmt"

	domhistory "github.com/nkuhub/infosearch/internal/domain/history"
)

const keyPrefix = "infosearch:history:"

// DefaultMaxEntries caps the retained history per user.
const DefaultMaxEntries = 1000

// store is the consumer interface for history persistence (ISP).
type store interface {
	LPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LTrim(ctx context.Context, key string, start, stop int64) error
}

// Repo implements search history persistence.
type Repo struct {
	store      store
	maxEntries int64
}

// New creates a history repository. maxEntries <= 0 uses DefaultMaxEntries.
func New(s store, maxEntries int) *Repo {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Repo{store: s, maxEntries: int64(maxEntries)}
}

func key(username string) string {
	return keyPrefix + username
}

// Append records one search and trims the list to the retention cap.
func (r *Repo) Append(ctx context.Context, e domhistory.Entry) error {
	if e.Username == "" {
		return fmt.Errorf("append history: username is required")
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}
	if err := r.store.LPush(ctx, key(e.Username), string(data)); err != nil {
		return fmt.Errorf("append history %s: %w", e.Username, err)
	}
	if err := r.store.LTrim(ctx, key(e.Username), 0, r.maxEntries-1); err != nil {
		return fmt.Errorf("trim history %s: %w", e.Username, err)
	}
	return nil
}

// List returns up to limit entries, newest first. Unparseable entries are
// skipped rather than failing the listing.
func (r *Repo) List(ctx context.Context, username string, limit int) ([]domhistory.Entry, error) {
	if limit <= 0 {
		limit = int(r.maxEntries)
	}
	raw, err := r.store.LRange(ctx, key(username), 0, int64(limit)-1)
	if err != nil {
		return nil, fmt.Errorf("list history %s: %w", username, err)
	}

	entries := make([]domhistory.Entry, 0, len(raw))
	for _, v := range raw {
		var e domhistory.Entry
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

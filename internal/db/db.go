// Package db defines the storage contract consumed by the repositories.
package db

import (
	"context"
	"fmt"
	"time"
)

// Op identifies the failing storage operation in errors.
type Op string

const (
	OpPing    Op = "ping"
	OpHSet    Op = "hset"
	OpHGetAll Op = "hgetall"
	OpLPush   Op = "lpush"
	OpLRange  Op = "lrange"
	OpLTrim   Op = "ltrim"
)

// Error wraps a storage failure with the operation that produced it.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("db %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Store is the key-value contract for profile and history persistence.
type Store interface {
	Ping(ctx context.Context) error
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error

	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	LPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LTrim(ctx context.Context, key string, start, stop int64) error
}

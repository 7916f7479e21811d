package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// EngineChecker checks search engine availability.
type EngineChecker interface {
	Ping(ctx context.Context) error
}

package sagalog

import "context"

// Repository persists checkout log entries. The orchestrator depends on
// this port, not on SQLite directly, so tests can use an in-memory fake.
type Repository interface {
	// Save appends a new entry. The log is append-only, never upserted.
	Save(ctx context.Context, entry *Entry) error
}

package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the outbox_events table. Lifecycle operations
// write these in the same commit as their row mutations; a relay picks
// them up asynchronously for cache invalidation and downstream feeds.
type Data struct {
	EventID      string
	EventType    string
	AggregateID  string
	Payload      spanner.NullJSON
	Status       string
	CreatedAt    time.Time
	ProcessedAt  spanner.NullTime
	RetryCount   int64
	ErrorMessage spanner.NullString
}

package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catalog-lifecycle/internal/models/m_outbox"
)

// EventsFilter narrows the outbox listing.
type EventsFilter struct {
	EventType   string
	AggregateID string
	Status      string
	Limit       int64
}

// EventsReadModel lists outbox events for operational visibility.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) *EventsReadModel {
	return &EventsReadModel{
		client: client,
	}
}

// ListEvents retrieves outbox events matching the filter, newest first.
func (r *EventsReadModel) ListEvents(ctx context.Context, filter *EventsFilter) ([]*m_outbox.Data, error) {
	sql := "SELECT event_id, event_type, aggregate_id, payload, status, created_at, processed_at, retry_count, error_message FROM outbox_events WHERE 1=1"
	params := make(map[string]interface{})

	if filter.EventType != "" {
		sql += " AND event_type = @eventType"
		params["eventType"] = filter.EventType
	}

	if filter.AggregateID != "" {
		sql += " AND aggregate_id = @aggregateID"
		params["aggregateID"] = filter.AggregateID
	}

	if filter.Status != "" {
		sql += " AND status = @status"
		params["status"] = filter.Status
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	sql += " ORDER BY created_at DESC LIMIT @limit"
	params["limit"] = limit

	stmt := spanner.Statement{SQL: sql, Params: params}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []*m_outbox.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse event: %w", err)
		}

		events = append(events, &data)
	}

	return events, nil
}

package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MeebitForge/MeebitStudio/server/internal/events"
)

// EventWriter adapts an EventRepository to the event log's persister
// contract, translating in-memory events to storage records.
type EventWriter struct {
	repo    EventRepository
	timeout time.Duration
}

// NewEventWriter wraps a repository for write-through persistence.
func NewEventWriter(repo EventRepository) *EventWriter {
	return &EventWriter{repo: repo, timeout: 5 * time.Second}
}

// Append implements events.EventPersister.
func (w *EventWriter) Append(event events.StudioEvent) error {
	var payload map[string]interface{}
	if event.Payload != nil {
		raw, err := json.Marshal(event.Payload)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	return w.repo.Append(ctx, EventRecord{
		ID:        event.ID,
		SessionID: event.SessionID,
		Timestamp: event.Timestamp,
		EventType: string(event.Type),
		Payload:   payload,
	})
}

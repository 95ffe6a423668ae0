// Package storage - reconstructor.go
// Rebuilds a session's build state from the persisted event ledger.
// This is the core of the audit trail: state = f(events).
package storage

import (
	"context"
	"fmt"
	"time"
)

// Reconstructor rebuilds session state from the event ledger.
// This is used for:
// 1. Auditing a finished session without any in-memory state
// 2. Recovering a session's final build after a restart
// 3. Debugging repair behavior from the exact recorded sequence
type Reconstructor struct {
	eventRepo EventRepository
}

// NewReconstructor creates a new state reconstructor.
func NewReconstructor(eventRepo EventRepository) *Reconstructor {
	return &Reconstructor{eventRepo: eventRepo}
}

// RebuiltSession holds the reconstructed state for one session.
type RebuiltSession struct {
	SessionID  string            `json:"session_id"`
	Type       string            `json:"type"`
	Gender     string            `json:"gender,omitempty"`
	Build      map[string]string `json:"build"`
	Repairs    int               `json:"repairs"`
	Selections int               `json:"selections"`
	Closed     bool              `json:"closed"`
}

// RecapEvent is a simplified event for the session history view.
type RecapEvent struct {
	Timestamp string `json:"timestamp"`
	EventType string `json:"event_type"`
	Summary   string `json:"summary"`
}

// RebuildSession reconstructs a session's final state from its events.
func (r *Reconstructor) RebuildSession(ctx context.Context, sessionID string) (*RebuiltSession, error) {
	records, err := r.eventRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get events for session: %w", err)
	}

	state := &RebuiltSession{
		SessionID: sessionID,
		Build:     make(map[string]string),
	}

	// Events are stored in append order, so a single forward pass replays
	// the session exactly.
	for _, e := range records {
		r.applyEventToState(state, e)
	}

	return state, nil
}

// GenerateRecap creates a human-readable history for a session since a given time.
func (r *Reconstructor) GenerateRecap(ctx context.Context, sessionID string, since time.Time) ([]RecapEvent, error) {
	records, err := r.eventRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var recap []RecapEvent
	for _, e := range records {
		if e.Timestamp.Before(since) {
			continue
		}
		recap = append(recap, RecapEvent{
			Timestamp: e.Timestamp.Format(time.RFC3339),
			EventType: e.EventType,
			Summary:   r.summarizeEvent(e),
		})
	}

	return recap, nil
}

// applyEventToState modifies state based on event type.
func (r *Reconstructor) applyEventToState(state *RebuiltSession, event EventRecord) {
	category, _ := event.Payload["category"].(string)
	value, _ := event.Payload["value"].(string)

	switch event.EventType {
	case "TYPE_SELECTED":
		state.Type = value
		state.Gender = ""
		state.Build = make(map[string]string)
	case "GENDER_SELECTED":
		state.Gender = value
	case "TRAIT_SELECTED":
		if category != "" {
			state.Build[category] = value
			state.Selections++
		}
	case "TRAIT_CLEARED", "TRAIT_REPAIRED":
		if category != "" {
			delete(state.Build, category)
		}
		if event.EventType == "TRAIT_REPAIRED" {
			state.Repairs++
		}
	case "BUILD_RESET":
		state.Build = make(map[string]string)
	case "SESSION_CLOSED":
		state.Closed = true
	}
}

// summarizeEvent creates a human-readable summary.
func (r *Reconstructor) summarizeEvent(event EventRecord) string {
	category, _ := event.Payload["category"].(string)
	value, _ := event.Payload["value"].(string)
	reason, _ := event.Payload["reason"].(string)

	switch event.EventType {
	case "SESSION_STARTED":
		return "Session opened."
	case "SESSION_CLOSED":
		return "Session closed."
	case "TYPE_SELECTED":
		return "Switched avatar type to " + value + "."
	case "GENDER_SELECTED":
		return "Selected gender " + value + "."
	case "TRAIT_SELECTED":
		return "Selected " + value + " for " + category + "."
	case "TRAIT_CLEARED":
		return "Cleared " + category + "."
	case "TRAIT_REPAIRED":
		if reason != "" {
			return "Dropped " + category + " (" + reason + ")."
		}
		return "Dropped " + category + "."
	case "QUIZ_SUBMITTED":
		return "Submitted quiz answers."
	case "MATCH_COMPLETED":
		return "Received quiz match results."
	default:
		return "Recorded " + event.EventType + "."
	}
}

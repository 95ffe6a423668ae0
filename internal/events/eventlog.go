// Package events provides the append-only activity log for the studio.
// Every session mutation and quiz submission is recorded here so spectators
// and the admin tooling can replay what happened.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType defines the category of a studio event.
type EventType string

const (
	EventTypeSessionStarted EventType = "SESSION_STARTED"
	EventTypeSessionClosed  EventType = "SESSION_CLOSED"
	EventTypeTypeSelected   EventType = "TYPE_SELECTED"
	EventTypeGenderSelected EventType = "GENDER_SELECTED"
	EventTypeTraitSelected  EventType = "TRAIT_SELECTED"
	EventTypeTraitCleared   EventType = "TRAIT_CLEARED"
	EventTypeTraitRepaired  EventType = "TRAIT_REPAIRED"
	EventTypeBuildReset     EventType = "BUILD_RESET"
	EventTypeQuizSubmitted  EventType = "QUIZ_SUBMITTED"
	EventTypeMatchCompleted EventType = "MATCH_COMPLETED"
	EventTypeRulesReloaded  EventType = "RULES_RELOADED"
)

// TraitPayload carries the details of a trait selection or repair.
type TraitPayload struct {
	Category string `json:"category"`
	Value    string `json:"value,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// MatchPayload summarizes a completed quiz match.
type MatchPayload struct {
	Answered   int     `json:"answered"`
	ResultIDs  []int   `json:"result_ids"`
	TopScore   float64 `json:"top_score"`
	PreferNone int     `json:"prefer_none"`
}

// StudioEvent is an immutable record of one studio action.
type StudioEvent struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Payload   interface{} `json:"payload,omitempty"`
}

// EventPersister defines how an event is durably stored.
type EventPersister interface {
	Append(event StudioEvent) error
}

// EventLog is the in-memory append-only log of studio events.
type EventLog struct {
	mu        sync.RWMutex
	events    []StudioEvent
	persister EventPersister
	subs      []chan StudioEvent
}

// NewEventLog creates a new event log with an optional persister.
func NewEventLog(persister EventPersister) *EventLog {
	return &EventLog{
		events:    make([]StudioEvent, 0),
		persister: persister,
	}
}

// Append adds a new event to the log. Events are immutable once appended.
func (el *EventLog) Append(event StudioEvent) {
	el.mu.Lock()
	el.events = append(el.events, event)
	subs := el.subs
	el.mu.Unlock()

	if el.persister != nil {
		// Write through to persistent storage off the hot path.
		go func(e StudioEvent) {
			_ = el.persister.Append(e)
		}(event)
	}

	for _, ch := range subs {
		select {
		case ch <- event:
		default:
			// A slow subscriber never blocks the session that emitted
			// the event.
		}
	}
}

// Subscribe returns a channel that receives every event appended after the
// call. Events are dropped for subscribers that fall behind.
func (el *EventLog) Subscribe(buffer int) chan StudioEvent {
	ch := make(chan StudioEvent, buffer)
	el.mu.Lock()
	el.subs = append(el.subs, ch)
	el.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber channel registered via Subscribe.
func (el *EventLog) Unsubscribe(ch chan StudioEvent) {
	el.mu.Lock()
	defer el.mu.Unlock()
	for i, sub := range el.subs {
		if sub == ch {
			el.subs = append(el.subs[:i], el.subs[i+1:]...)
			return
		}
	}
}

// GetBySession returns all events recorded for a specific session.
func (el *EventLog) GetBySession(sessionID string) []StudioEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []StudioEvent
	for _, e := range el.events {
		if e.SessionID == sessionID {
			result = append(result, e)
		}
	}
	return result
}

// GetByType returns all events of one category.
func (el *EventLog) GetByType(t EventType) []StudioEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []StudioEvent
	for _, e := range el.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// Replay returns the full history of events in append order.
func (el *EventLog) Replay() []StudioEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()
	out := make([]StudioEvent, len(el.events))
	copy(out, el.events)
	return out
}

// Len reports how many events the log holds.
func (el *EventLog) Len() int {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return len(el.events)
}

// NewEvent builds a timestamped event with a fresh identifier.
func NewEvent(t EventType, sessionID string, payload interface{}) StudioEvent {
	return StudioEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Type:      t,
		SessionID: sessionID,
		Payload:   payload,
	}
}

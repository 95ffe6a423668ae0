// Package storage provides the persistence layer for the studio server.
// This package implements the repository pattern to keep the domain pure.
package storage

import (
	"context"
	"time"
)

// EventRecord mirrors the studio event structure for persistence.
// The domain packages should NOT import this; use interfaces instead.
type EventRecord struct {
	ID        string                 `json:"id" db:"id"`
	SessionID string                 `json:"session_id" db:"session_id"`
	Timestamp time.Time              `json:"timestamp" db:"timestamp"`
	EventType string                 `json:"event_type" db:"event_type"`
	Payload   map[string]interface{} `json:"payload" db:"payload"`
}

// EventRepository defines the interface for event persistence.
type EventRepository interface {
	// Append adds a new event to the immutable ledger.
	Append(ctx context.Context, event EventRecord) error

	// GetBySessionID retrieves all events recorded for one session.
	GetBySessionID(ctx context.Context, sessionID string) ([]EventRecord, error)

	// GetByEventType retrieves all events of a specific type.
	GetByEventType(ctx context.Context, eventType string) ([]EventRecord, error)

	// GetAll retrieves the full ledger in append order.
	GetAll(ctx context.Context) ([]EventRecord, error)
}

// CandidateRecord is one avatar of the population as stored.
type CandidateRecord struct {
	TokenID int               `json:"token_id" db:"token_id"`
	Type    string            `json:"type" db:"type"`
	Gender  string            `json:"gender,omitempty" db:"gender"`
	Traits  map[string]string `json:"traits" db:"traits"`
}

// CandidateRepository defines the interface for population storage.
type CandidateRepository interface {
	// ReplaceAll swaps the whole population in one transaction.
	ReplaceAll(ctx context.Context, candidates []CandidateRecord) error

	// GetAll retrieves the population ordered by token id.
	GetAll(ctx context.Context) ([]CandidateRecord, error)

	// GetByTokenID retrieves a single candidate.
	GetByTokenID(ctx context.Context, tokenID int) (*CandidateRecord, error)

	// Count reports the population size.
	Count(ctx context.Context) (int, error)
}

// RulesRecord is a stored rules document revision.
type RulesRecord struct {
	ID       int       `json:"id" db:"id"`
	Source   string    `json:"source" db:"source"`
	Document string    `json:"document" db:"document"`
	LoadedAt time.Time `json:"loaded_at" db:"loaded_at"`
}

// RulesRepository defines the interface for rules document revisions.
type RulesRepository interface {
	// Save stores a new revision and returns its id.
	Save(ctx context.Context, source, document string) (int, error)

	// LoadLatest retrieves the most recently saved revision.
	LoadLatest(ctx context.Context) (*RulesRecord, error)
}

// MatchRecord is one completed quiz match.
type MatchRecord struct {
	ID        int       `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Answers   string    `json:"answers" db:"answers"`
	Results   string    `json:"results" db:"results"`
	TopScore  float64   `json:"top_score" db:"top_score"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MatchRepository defines the interface for match history.
type MatchRepository interface {
	// Save stores one completed match.
	Save(ctx context.Context, record MatchRecord) error

	// GetBySessionID retrieves the matches run in one session.
	GetBySessionID(ctx context.Context, sessionID string) ([]MatchRecord, error)

	// GetRecent retrieves the newest matches, most recent first.
	GetRecent(ctx context.Context, limit int) ([]MatchRecord, error)
}

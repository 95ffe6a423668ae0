package builder

import (
	"errors"
	"sync"
	"time"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/rules"
	"github.com/MeebitForge/MeebitStudio/server/internal/events"
	"github.com/MeebitForge/MeebitStudio/server/internal/platform/logger"
)

// ErrSessionNotFound is returned for lookups of unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// Manager tracks live builder sessions and owns the current rule index.
// Reloading the rules swaps the index pointer; existing sessions keep the
// index they were created with, new sessions get the fresh one.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	index    *rules.Index

	eventLog *events.EventLog
	logger   *logger.Logger
}

// NewManager creates a session manager over an initial rule index.
func NewManager(index *rules.Index, eventLog *events.EventLog, log *logger.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		index:    index,
		eventLog: eventLog,
		logger:   log,
	}
}

// Create starts a new session against the current rule index.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := newSession(m.index, m.eventLog, m.logger)
	m.sessions[s.ID] = s
	return s
}

// Get returns a live session by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close removes a session and records its end.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.emit(events.EventTypeSessionClosed, nil)
	return nil
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Index returns the rule index new sessions will use.
func (m *Manager) Index() *rules.Index {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index
}

// SwapIndex atomically replaces the rule index for future sessions. The old
// index is never mutated, so sessions already holding it stay consistent.
func (m *Manager) SwapIndex(index *rules.Index) {
	m.mu.Lock()
	m.index = index
	m.mu.Unlock()

	if m.eventLog != nil {
		m.eventLog.Append(events.NewEvent(events.EventTypeRulesReloaded, "", nil))
	}
	if m.logger != nil {
		m.logger.Info("Rule index reloaded")
	}
}

// ReapIdle drops sessions untouched for longer than maxIdle and returns how
// many were removed.
func (m *Manager) ReapIdle(maxIdle time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxIdle)

	m.mu.Lock()
	var stale []*Session
	for id, s := range m.sessions {
		if s.LastUsed().Before(cutoff) {
			delete(m.sessions, id)
			stale = append(stale, s)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.emit(events.EventTypeSessionClosed, nil)
	}
	return len(stale)
}

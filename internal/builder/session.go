// Package builder manages interactive avatar construction sessions. A session
// owns a mutable build and keeps it legal against the rule index after every
// mutation, clearing whatever a new selection makes impossible.
package builder

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/rules"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
	"github.com/MeebitForge/MeebitStudio/server/internal/events"
	"github.com/MeebitForge/MeebitStudio/server/internal/platform/logger"
)

// Session is one user's builder state. All mutations go through methods that
// hold the session lock and emit events, so a snapshot is always consistent.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.RWMutex
	selType  trait.Type
	gender   trait.Gender
	build    trait.Build
	lastUsed time.Time

	index    *rules.Index
	eventLog *events.EventLog
	logger   *logger.Logger
}

// Snapshot is an immutable view of a session for API responses.
type Snapshot struct {
	ID        string       `json:"id"`
	Type      trait.Type   `json:"type,omitempty"`
	Gender    trait.Gender `json:"gender,omitempty"`
	Build     trait.Build  `json:"build"`
	CreatedAt time.Time    `json:"created_at"`
}

func newSession(index *rules.Index, eventLog *events.EventLog, log *logger.Logger) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		lastUsed:  now,
		selType:   trait.TypeHuman,
		build:     trait.Build{},
		index:     index,
		eventLog:  eventLog,
		logger:    log,
	}
	s.emit(events.EventTypeSessionStarted, nil)
	return s
}

// SetType switches the avatar archetype. The gender selection and the whole
// build are dropped: pools and rules differ per type, so nothing carries over.
func (s *Session) SetType(t trait.Type) error {
	if _, ok := s.index.Types()[string(t)]; !ok {
		return fmt.Errorf("set type: unknown type %q", t)
	}
	s.mu.Lock()
	s.selType = t
	s.gender = ""
	s.build = trait.Build{}
	s.touch()
	s.mu.Unlock()

	s.emit(events.EventTypeTypeSelected, events.TraitPayload{Value: string(t)})
	return nil
}

// SetGender selects a gender and drops every build entry whose value is
// restricted to the other gender.
func (s *Session) SetGender(g trait.Gender) {
	var dropped []events.TraitPayload

	s.mu.Lock()
	s.gender = g
	for cat, val := range s.build {
		restricted, ok := s.index.GenderRestriction(trait.MakeKey(cat, val))
		if ok && restricted != g {
			delete(s.build, cat)
			dropped = append(dropped, events.TraitPayload{
				Category: string(cat), Value: val, Reason: "gender restriction",
			})
		}
	}
	s.touch()
	s.mu.Unlock()

	s.emit(events.EventTypeGenderSelected, events.TraitPayload{Value: string(g)})
	for _, p := range dropped {
		s.emit(events.EventTypeTraitRepaired, p)
	}
}

// SelectTrait sets a value for a category. Selecting into a category
// displaces anything it excludes, so availability is checked against the
// build as it will look after that displacement; pool membership, gender and
// value-level exclusions still reject the selection. A successful selection
// then repairs the build: displaced categories lose their colors too, and a
// never_has_color element drops its own color.
func (s *Session) SelectTrait(cat trait.Category, value string) error {
	s.mu.Lock()

	displaced := s.index.ExcludedCategories(cat)
	pruned := s.build
	if len(displaced) > 0 {
		pruned = s.build.Clone()
		for excCat := range displaced {
			delete(pruned, excCat)
			if colorCat, ok := trait.ColorCategories[excCat]; ok {
				delete(pruned, colorCat)
			}
		}
	}

	avail := s.index.CheckTraitAvailability(s.selType, s.gender, cat, value, pruned)
	if !avail.Available {
		s.mu.Unlock()
		return fmt.Errorf("select %s=%s: %s", cat, value, avail.Reason)
	}

	var repaired []events.TraitPayload
	for excCat := range displaced {
		if old, had := s.build[excCat]; had {
			delete(s.build, excCat)
			repaired = append(repaired, events.TraitPayload{
				Category: string(excCat), Value: old, Reason: "category exclusion",
			})
		}
		if colorCat, ok := trait.ColorCategories[excCat]; ok {
			if old, had := s.build[colorCat]; had {
				delete(s.build, colorCat)
				repaired = append(repaired, events.TraitPayload{
					Category: string(colorCat), Value: old, Reason: "category exclusion",
				})
			}
		}
	}

	s.build[cat] = value

	if colorCat, ok := trait.ColorCategories[cat]; ok {
		if s.index.ColorClassification(cat, value) == rules.NeverHasColor {
			if old, had := s.build[colorCat]; had {
				delete(s.build, colorCat)
				repaired = append(repaired, events.TraitPayload{
					Category: string(colorCat), Value: old, Reason: "element never has a color",
				})
			}
		}
	}
	s.touch()
	s.mu.Unlock()

	s.emit(events.EventTypeTraitSelected, events.TraitPayload{Category: string(cat), Value: value})
	for _, p := range repaired {
		s.emit(events.EventTypeTraitRepaired, p)
	}
	return nil
}

// ClearTrait removes a category from the build. Clearing an element also
// clears its dependent color.
func (s *Session) ClearTrait(cat trait.Category) {
	s.mu.Lock()
	old, had := s.build[cat]
	delete(s.build, cat)
	colorCat, dependent := trait.ColorCategories[cat]
	var clearedColor string
	if dependent {
		if cv, ok := s.build[colorCat]; ok {
			delete(s.build, colorCat)
			clearedColor = cv
		}
	}
	s.touch()
	s.mu.Unlock()

	if had {
		s.emit(events.EventTypeTraitCleared, events.TraitPayload{Category: string(cat), Value: old})
	}
	if clearedColor != "" {
		s.emit(events.EventTypeTraitRepaired, events.TraitPayload{
			Category: string(colorCat), Value: clearedColor, Reason: "element cleared",
		})
	}
}

// Reset drops the gender and every selected trait but keeps the type.
func (s *Session) Reset() {
	s.mu.Lock()
	s.build = trait.Build{}
	s.gender = ""
	s.touch()
	s.mu.Unlock()

	s.emit(events.EventTypeBuildReset, nil)
}

// CheckAvailability queries the rule index with the session's current state.
func (s *Session) CheckAvailability(cat trait.Category, value string) rules.Availability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.CheckTraitAvailability(s.selType, s.gender, cat, value, s.build)
}

// CategoryDisabled queries whole-category disablement for the current state.
func (s *Session) CategoryDisabled(cat trait.Category) rules.Disablement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.IsCategoryDisabled(s.selType, cat, s.build)
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		ID:        s.ID,
		Type:      s.selType,
		Gender:    s.gender,
		Build:     s.build.Clone(),
		CreatedAt: s.CreatedAt,
	}
}

// LastUsed reports when the session was last mutated or queried for mutation.
func (s *Session) LastUsed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUsed
}

func (s *Session) touch() {
	s.lastUsed = time.Now().UTC()
}

func (s *Session) emit(t events.EventType, payload interface{}) {
	if s.eventLog != nil {
		s.eventLog.Append(events.NewEvent(t, s.ID, payload))
	}
	if s.logger != nil {
		s.logger.Event(string(t), s.ID, fmt.Sprintf("%+v", payload))
	}
}

package storage

import (
	"context"
	"testing"
	"time"
)

type fakeEventRepo struct {
	records []EventRecord
}

func (f *fakeEventRepo) Append(ctx context.Context, event EventRecord) error {
	f.records = append(f.records, event)
	return nil
}

func (f *fakeEventRepo) GetBySessionID(ctx context.Context, sessionID string) ([]EventRecord, error) {
	var out []EventRecord
	for _, e := range f.records {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetByEventType(ctx context.Context, eventType string) ([]EventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetAll(ctx context.Context) ([]EventRecord, error) {
	return f.records, nil
}

func sessionFixture(sessionID string) *fakeEventRepo {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mk := func(i int, eventType string, payload map[string]interface{}) EventRecord {
		return EventRecord{
			ID:        sessionID + "-" + eventType,
			SessionID: sessionID,
			Timestamp: base.Add(time.Duration(i) * time.Second),
			EventType: eventType,
			Payload:   payload,
		}
	}
	return &fakeEventRepo{records: []EventRecord{
		mk(0, "SESSION_STARTED", nil),
		mk(1, "TYPE_SELECTED", map[string]interface{}{"value": "Human"}),
		mk(2, "GENDER_SELECTED", map[string]interface{}{"value": "female"}),
		mk(3, "TRAIT_SELECTED", map[string]interface{}{"category": "hat", "value": "Cap"}),
		mk(4, "TRAIT_SELECTED", map[string]interface{}{"category": "shirt", "value": "Hoodie Up"}),
		mk(5, "TRAIT_SELECTED", map[string]interface{}{"category": "hair_style", "value": "Bob"}),
		mk(6, "TRAIT_REPAIRED", map[string]interface{}{"category": "hat", "reason": "category exclusion"}),
		mk(7, "TRAIT_CLEARED", map[string]interface{}{"category": "shirt"}),
	}}
}

func TestRebuildSessionReplaysBuild(t *testing.T) {
	r := NewReconstructor(sessionFixture("s1"))

	state, err := r.RebuildSession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("RebuildSession failed: %v", err)
	}

	if state.Type != "Human" {
		t.Errorf("Expected Human type, got %q", state.Type)
	}
	if state.Gender != "female" {
		t.Errorf("Expected female gender, got %q", state.Gender)
	}
	if got := state.Build["hair_style"]; got != "Bob" {
		t.Errorf("Expected Bob hair to survive, got %q", got)
	}
	if _, ok := state.Build["hat"]; ok {
		t.Error("Repaired hat should not be in the rebuilt build")
	}
	if _, ok := state.Build["shirt"]; ok {
		t.Error("Cleared shirt should not be in the rebuilt build")
	}
	if state.Selections != 3 {
		t.Errorf("Expected 3 selections, got %d", state.Selections)
	}
	if state.Repairs != 1 {
		t.Errorf("Expected 1 repair, got %d", state.Repairs)
	}
	if state.Closed {
		t.Error("Session without SESSION_CLOSED must not be marked closed")
	}
}

func TestRebuildSessionTypeChangeResetsBuild(t *testing.T) {
	repo := sessionFixture("s2")
	repo.records = append(repo.records, EventRecord{
		SessionID: "s2",
		Timestamp: time.Date(2024, 5, 1, 12, 1, 0, 0, time.UTC),
		EventType: "TYPE_SELECTED",
		Payload:   map[string]interface{}{"value": "Robot"},
	})

	state, err := NewReconstructor(repo).RebuildSession(context.Background(), "s2")
	if err != nil {
		t.Fatalf("RebuildSession failed: %v", err)
	}
	if state.Type != "Robot" {
		t.Errorf("Expected Robot type, got %q", state.Type)
	}
	if len(state.Build) != 0 {
		t.Errorf("Type change must clear the build, got %v", state.Build)
	}
	if state.Gender != "" {
		t.Errorf("Type change must clear the gender, got %q", state.Gender)
	}
}

func TestGenerateRecapFiltersByTime(t *testing.T) {
	r := NewReconstructor(sessionFixture("s3"))

	all, err := r.GenerateRecap(context.Background(), "s3", time.Time{})
	if err != nil {
		t.Fatalf("GenerateRecap failed: %v", err)
	}
	if len(all) != 8 {
		t.Fatalf("Expected 8 recap entries, got %d", len(all))
	}
	if all[3].Summary != "Selected Cap for hat." {
		t.Errorf("Unexpected summary: %q", all[3].Summary)
	}

	since := time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC)
	late, err := r.GenerateRecap(context.Background(), "s3", since)
	if err != nil {
		t.Fatalf("GenerateRecap failed: %v", err)
	}
	if len(late) != 3 {
		t.Errorf("Expected 3 recent entries, got %d", len(late))
	}
}

package matcher

import (
	"context"
	"testing"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/quiz"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
	"github.com/MeebitForge/MeebitStudio/server/internal/events"
	"github.com/MeebitForge/MeebitStudio/server/internal/infra/storage"
	"github.com/MeebitForge/MeebitStudio/server/internal/platform/logger"
)

type fakeMatchRepo struct {
	saved []storage.MatchRecord
}

func (f *fakeMatchRepo) Save(ctx context.Context, record storage.MatchRecord) error {
	f.saved = append(f.saved, record)
	return nil
}

func (f *fakeMatchRepo) GetBySessionID(ctx context.Context, sessionID string) ([]storage.MatchRecord, error) {
	return nil, nil
}

func (f *fakeMatchRepo) GetRecent(ctx context.Context, limit int) ([]storage.MatchRecord, error) {
	return nil, nil
}

func testPopulation() []*trait.Candidate {
	shirts := []string{"Hoodie Up", "Suit", "Skull Tee", "Jersey"}
	population := make([]*trait.Candidate, 0, 40)
	for i := 0; i < 40; i++ {
		population = append(population, &trait.Candidate{
			TokenID: i + 1,
			Type:    trait.TypeHuman,
			Traits: map[trait.Category]string{
				trait.CategoryShirt: shirts[i%len(shirts)],
				trait.CategoryPants: "Jeans",
				trait.CategoryShoes: "Canvas Shoes",
			},
		})
	}
	return population
}

func newTestMatcher(repo storage.MatchRepository) (*Matcher, *events.EventLog) {
	eventLog := events.NewEventLog(nil)
	m := NewMatcher(testPopulation(), 2, eventLog, repo, logger.NewLogger())
	return m, eventLog
}

func TestMatchReturnsTitledResults(t *testing.T) {
	m, _ := newTestMatcher(nil)

	answers := make([]quiz.AnswerIndex, len(quiz.Questions))
	for i := range answers {
		answers[i] = quiz.Unanswered
	}
	answers[0] = 0

	outcome, err := m.Match(context.Background(), "sess-1", answers)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if outcome.Answered != 1 {
		t.Errorf("Expected 1 answered question, got %d", outcome.Answered)
	}
	if len(outcome.Results) == 0 {
		t.Fatal("Expected at least one result")
	}

	seen := make(map[string]bool)
	for _, r := range outcome.Results {
		if r.Title == "" {
			t.Errorf("Result %d has no title", r.Candidate.TokenID)
		}
		if r.Story == "" {
			t.Errorf("Result %d has no story", r.Candidate.TokenID)
		}
		if seen[r.Title] {
			t.Errorf("Duplicate title in one batch: %q", r.Title)
		}
		seen[r.Title] = true
	}
}

func TestMatchEmitsEvents(t *testing.T) {
	m, eventLog := newTestMatcher(nil)

	answers := []quiz.AnswerIndex{0}
	if _, err := m.Match(context.Background(), "sess-2", answers); err != nil {
		t.Fatalf("Match failed: %v", err)
	}

	history := eventLog.GetBySession("sess-2")
	if len(history) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(history))
	}
	if history[0].Type != events.EventTypeQuizSubmitted {
		t.Errorf("Expected QUIZ_SUBMITTED first, got %s", history[0].Type)
	}
	if history[1].Type != events.EventTypeMatchCompleted {
		t.Errorf("Expected MATCH_COMPLETED second, got %s", history[1].Type)
	}

	payload, ok := history[1].Payload.(events.MatchPayload)
	if !ok {
		t.Fatalf("Unexpected payload type %T", history[1].Payload)
	}
	if len(payload.ResultIDs) == 0 {
		t.Error("Expected result IDs in match payload")
	}
}

func TestMatchPersistsRecord(t *testing.T) {
	repo := &fakeMatchRepo{}
	m, _ := newTestMatcher(repo)

	if _, err := m.Match(context.Background(), "sess-3", []quiz.AnswerIndex{0, 1}); err != nil {
		t.Fatalf("Match failed: %v", err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("Expected 1 saved record, got %d", len(repo.saved))
	}
	record := repo.saved[0]
	if record.SessionID != "sess-3" {
		t.Errorf("Expected session sess-3, got %q", record.SessionID)
	}
	if record.Answers == "" || record.Results == "" {
		t.Error("Expected serialized answers and results")
	}
	if record.TopScore <= 0 {
		t.Errorf("Expected positive top score, got %f", record.TopScore)
	}
}

func TestMatchEmptyPopulation(t *testing.T) {
	eventLog := events.NewEventLog(nil)
	m := NewMatcher(nil, 2, eventLog, nil, logger.NewLogger())

	if _, err := m.Match(context.Background(), "sess-4", []quiz.AnswerIndex{0}); err == nil {
		t.Error("Expected error for empty population")
	}
}

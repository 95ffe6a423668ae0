// Package matcher orchestrates a quiz submission end to end: profile build,
// population scoring, title generation, event emission, and match history
// persistence. The domain packages stay pure; everything side-effectful about
// matching lives here.
package matcher

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/match"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/quiz"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
	"github.com/MeebitForge/MeebitStudio/server/internal/events"
	"github.com/MeebitForge/MeebitStudio/server/internal/infra/storage"
	"github.com/MeebitForge/MeebitStudio/server/internal/platform/logger"
	"github.com/MeebitForge/MeebitStudio/server/internal/platform/metrics"
)

// Matcher runs quiz matches against a fixed candidate population.
type Matcher struct {
	population []*trait.Candidate
	workers    int
	eventLog   *events.EventLog
	matches    storage.MatchRepository
	logger     *logger.Logger
}

// NewMatcher creates a matcher. The matches repository is optional: with nil,
// match history is simply not persisted.
func NewMatcher(population []*trait.Candidate, workers int, eventLog *events.EventLog, matches storage.MatchRepository, log *logger.Logger) *Matcher {
	if workers < 1 {
		workers = 1
	}
	return &Matcher{
		population: population,
		workers:    workers,
		eventLog:   eventLog,
		matches:    matches,
		logger:     log,
	}
}

// Outcome is the full result of one quiz submission.
type Outcome struct {
	Answered   int            `json:"answered"`
	PreferNone []string       `json:"prefer_none,omitempty"`
	Results    []match.Result `json:"results"`
}

// Population reports how many candidates matches run against.
func (m *Matcher) Population() int {
	return len(m.population)
}

// Match scores the whole population against the given answers and returns the
// ranked, titled results.
func (m *Matcher) Match(ctx context.Context, sessionID string, answers []quiz.AnswerIndex) (*Outcome, error) {
	if len(m.population) == 0 {
		return nil, fmt.Errorf("no candidate population loaded")
	}

	profile := quiz.BuildProfile(answers)
	answered := countAnswered(answers)

	m.eventLog.Append(events.NewEvent(events.EventTypeQuizSubmitted, sessionID, map[string]interface{}{
		"answered": answered,
	}))

	start := time.Now()
	results := match.Rank(m.population, profile, m.workers)
	metrics.Get().RecordMatch(time.Since(start))

	// Titles are assigned per batch so that visually similar winners still
	// read as distinct characters.
	winners := make([]*trait.Candidate, len(results))
	for i := range results {
		winners[i] = results[i].Candidate
	}
	titles := match.UniqueTitles(winners)
	for i := range results {
		results[i].Title = titles[results[i].Candidate.TokenID]
		results[i].Story = match.GenerateDescription(results[i].Candidate)
	}

	outcome := &Outcome{
		Answered:   answered,
		PreferNone: preferNoneList(profile),
		Results:    results,
	}

	m.eventLog.Append(events.NewEvent(events.EventTypeMatchCompleted, sessionID, matchPayload(outcome)))
	m.logger.Event(string(events.EventTypeMatchCompleted), sessionID,
		fmt.Sprintf("Matched %d answers against %d candidates", answered, len(m.population)))

	if m.matches != nil {
		if err := m.persist(ctx, sessionID, answers, outcome); err != nil {
			// Match history is best effort. The caller still gets results.
			m.logger.Error("Failed to persist match record: " + err.Error())
		}
	}

	return outcome, nil
}

func (m *Matcher) persist(ctx context.Context, sessionID string, answers []quiz.AnswerIndex, outcome *Outcome) error {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	resultsJSON, err := json.Marshal(outcome.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	record := storage.MatchRecord{
		SessionID: sessionID,
		Answers:   string(answersJSON),
		Results:   string(resultsJSON),
		TopScore:  topScore(outcome.Results),
		CreatedAt: time.Now().UTC(),
	}
	return m.matches.Save(ctx, record)
}

func matchPayload(outcome *Outcome) events.MatchPayload {
	ids := make([]int, len(outcome.Results))
	for i, r := range outcome.Results {
		ids[i] = r.Candidate.TokenID
	}
	return events.MatchPayload{
		Answered:   outcome.Answered,
		ResultIDs:  ids,
		TopScore:   topScore(outcome.Results),
		PreferNone: len(outcome.PreferNone),
	}
}

func topScore(results []match.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	return results[0].Score
}

func countAnswered(answers []quiz.AnswerIndex) int {
	n := 0
	for i, a := range answers {
		if i >= len(quiz.Questions) {
			break
		}
		if a >= 0 && int(a) < len(quiz.Questions[i].Answers) {
			n++
		}
	}
	return n
}

func preferNoneList(p *quiz.Profile) []string {
	if len(p.PreferNone) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.PreferNone))
	for cat := range p.PreferNone {
		out = append(out, string(cat))
	}
	sort.Strings(out)
	return out
}

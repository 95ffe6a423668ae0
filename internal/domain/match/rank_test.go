package match

import (
	"testing"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/quiz"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
)

func rankFixturePopulation(n int) []*trait.Candidate {
	shirts := []string{"Hoodie", "Suit", "Tee", "Skull Tee"}
	pop := make([]*trait.Candidate, n)
	for i := 0; i < n; i++ {
		pop[i] = &trait.Candidate{
			TokenID: i,
			Type:    trait.TypeHuman,
			Traits: map[trait.Category]string{
				trait.CategoryShirt: shirts[i%len(shirts)],
				trait.CategoryPants: "Regular Pants",
				trait.CategoryShoes: "Sneakers",
			},
		}
	}
	return pop
}

func hoodieProfile() *quiz.Profile {
	return &quiz.Profile{
		Weights: map[trait.Category]quiz.Weights{
			trait.CategoryShirt: {"Hoodie": 2.5, "Suit": 1.0},
		},
		PreferNone: map[trait.Category]bool{},
	}
}

func TestRankReturnsAtMostSix(t *testing.T) {
	results := Rank(rankFixturePopulation(100), hoodieProfile(), 4)
	if len(results) > MaxResults {
		t.Errorf("Expected at most %d results, got %d", MaxResults, len(results))
	}
}

func TestRankDescendingScores(t *testing.T) {
	results := Rank(rankFixturePopulation(40), hoodieProfile(), 4)
	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Errorf("Results not in descending score order at %d: %v then %v", i, results[i-1].Score, results[i].Score)
		}
	}
}

func TestRankArchetypeDiversity(t *testing.T) {
	results := Rank(rankFixturePopulation(100), hoodieProfile(), 4)
	seen := make(map[string]bool)
	for _, r := range results {
		key := archetypeKey(r.Candidate)
		if seen[key] {
			t.Errorf("Duplicate archetype in results: %s", key)
		}
		seen[key] = true
	}
	// The fixture has only 4 distinct archetypes, so diversity caps results.
	if len(results) != 4 {
		t.Errorf("Expected exactly 4 diversified results, got %d", len(results))
	}
}

func TestRankStableTiebreakByPopulationOrder(t *testing.T) {
	// All candidates tie; the first member of each archetype group wins.
	pop := rankFixturePopulation(20)
	results := Rank(pop, emptyProfile(), 1)
	for i, r := range results {
		if r.Candidate.TokenID != i {
			t.Errorf("Tie at position %d resolved to token %d, expected population order", i, r.Candidate.TokenID)
		}
	}
}

func TestRankParallelMatchesSequential(t *testing.T) {
	pop := rankFixturePopulation(500)
	p := hoodieProfile()

	seq := Rank(pop, p, 1)
	par := Rank(pop, p, 8)

	if len(seq) != len(par) {
		t.Fatalf("Result count differs: %d vs %d", len(seq), len(par))
	}
	for i := range seq {
		if seq[i].Candidate.TokenID != par[i].Candidate.TokenID || seq[i].Score != par[i].Score {
			t.Errorf("Parallel ranking diverged at %d: (%d, %v) vs (%d, %v)",
				i, seq[i].Candidate.TokenID, seq[i].Score, par[i].Candidate.TokenID, par[i].Score)
		}
	}
}

func TestRankEmptyPopulation(t *testing.T) {
	results := Rank(nil, hoodieProfile(), 4)
	if len(results) != 0 {
		t.Errorf("Expected no results for empty population, got %d", len(results))
	}
}

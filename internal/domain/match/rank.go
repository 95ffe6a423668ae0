package match

import (
	"sort"
	"strings"
	"sync"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/quiz"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
)

// MaxResults caps how many candidates a ranking returns.
const MaxResults = 6

// Result pairs a candidate with its match score.
type Result struct {
	Candidate *trait.Candidate `json:"candidate"`
	Score     float64          `json:"score"`
	Title     string           `json:"title,omitempty"`
	Story     string           `json:"story,omitempty"`
}

// Rank scores the whole population against the profile and returns up to
// MaxResults candidates, best first. Ties keep population order. At most one
// candidate per (type, shirt, pants, shoes) archetype is selected so the top
// results stay visually distinct.
//
// Scoring has no cross-candidate dependency, so it fans out across workers.
// Results are written back by population index, which keeps the final order
// deterministic regardless of goroutine scheduling.
func Rank(population []*trait.Candidate, p *quiz.Profile, workers int) []Result {
	scored := make([]Result, len(population))
	if workers < 1 {
		workers = 1
	}
	if workers > len(population) {
		workers = len(population)
	}

	if workers <= 1 {
		for i, c := range population {
			scored[i] = Result{Candidate: c, Score: ScoreCandidate(c, p)}
		}
	} else {
		var wg sync.WaitGroup
		chunk := (len(population) + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > len(population) {
				hi = len(population)
			}
			if lo >= hi {
				break
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					scored[i] = Result{Candidate: population[i], Score: ScoreCandidate(population[i], p)}
				}
			}(lo, hi)
		}
		wg.Wait()
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	seen := make(map[string]bool)
	results := make([]Result, 0, MaxResults)
	for _, entry := range scored {
		if len(results) >= MaxResults {
			break
		}
		key := archetypeKey(entry.Candidate)
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, entry)
	}
	return results
}

func archetypeKey(c *trait.Candidate) string {
	return strings.Join([]string{
		string(c.Type),
		c.Value(trait.CategoryShirt),
		c.Value(trait.CategoryPants),
		c.Value(trait.CategoryShoes),
	}, "|")
}

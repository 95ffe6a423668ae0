// Package match scores avatar candidates against quiz preference profiles
// and produces a ranked, diversified result set.
// This package is PURE and must NOT import any infrastructure packages.
package match

import (
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/quiz"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
)

// CategoryImportance weighs each category's contribution to a match score.
// The type slot is weighed separately, see ScoreCandidate.
var CategoryImportance = map[trait.Category]float64{
	quiz.CategoryType:            3.0,
	trait.CategoryShirt:          2.5,
	trait.CategoryShoes:          2.0,
	trait.CategoryHairStyle:      2.0,
	trait.CategoryGlasses:        2.0,
	trait.CategoryHat:            1.8,
	trait.CategoryOvershirt:      1.8,
	trait.CategoryPants:          1.5,
	trait.CategoryShirtColor:     1.5,
	trait.CategoryHairColor:      1.2,
	trait.CategoryBeard:          1.5,
	trait.CategoryEarring:        1.0,
	trait.CategoryNecklace:       1.0,
	trait.CategoryTattoo:         1.2,
	trait.CategoryShoesColor:     1.0,
	trait.CategoryPantsColor:     1.0,
	trait.CategoryHatColor:       0.8,
	trait.CategoryBeardColor:     0.6,
	trait.CategoryGlassesColor:   0.6,
	trait.CategoryOvershirtColor: 0.6,
}

// rareBoost rewards matching exotic archetypes over common ones. Applied to
// both the candidate's weight and the normalizing maximum, so it shifts
// relative preference rather than inflating absolute scores.
var rareBoost = map[trait.Type]float64{
	trait.TypeHuman:     1.0,
	trait.TypePig:       2.0,
	trait.TypeElephant:  3.0,
	trait.TypeRobot:     4.0,
	trait.TypeSkeleton:  5.0,
	trait.TypeVisitor:   6.0,
	trait.TypeDissected: 8.0,
}

// scoredCategories is the fixed list of ordinary categories evaluated per
// candidate. Tattoo is scored as binary presence via the profile's "has" key.
var scoredCategories = []trait.Category{
	trait.CategoryHairStyle, trait.CategoryHairColor,
	trait.CategoryHat, trait.CategoryHatColor,
	trait.CategoryBeard, trait.CategoryBeardColor,
	trait.CategoryGlasses, trait.CategoryGlassesColor,
	trait.CategoryEarring, trait.CategoryNecklace,
	trait.CategoryShirt, trait.CategoryShirtColor,
	trait.CategoryOvershirt, trait.CategoryOvershirtColor,
	trait.CategoryPants, trait.CategoryPantsColor,
	trait.CategoryShoes, trait.CategoryShoesColor,
	trait.CategoryTattoo,
}

const neutralScore = 50.0

// ScoreCandidate rates how well a candidate fits a profile, on a 0..100
// scale. Categories the profile says nothing about are skipped entirely so
// unanswered dimensions neither help nor hurt. A profile with no scorable
// preference at all yields the neutral default of 50.
func ScoreCandidate(c *trait.Candidate, p *quiz.Profile) float64 {
	var achieved, possible float64

	if typePrefs := p.Weights[quiz.CategoryType]; len(typePrefs) > 0 {
		importance := CategoryImportance[quiz.CategoryType]
		raw := typePrefs[string(c.Type)] * boostFor(c.Type)
		maxRaw := 0.0
		for t, w := range typePrefs {
			if b := w * boostFor(trait.Type(t)); b > maxRaw {
				maxRaw = b
			}
		}
		if maxRaw < 1 {
			maxRaw = 1
		}
		achieved += raw / maxRaw * importance
		possible += importance
	}

	for _, cat := range scoredCategories {
		importance, ok := CategoryImportance[cat]
		if !ok {
			importance = 1.0
		}
		val := c.Value(cat)

		if p.PreferNone[cat] {
			if val == "" {
				achieved += importance
			}
			possible += importance
			continue
		}

		prefs := p.Weights[cat]
		if len(prefs) == 0 {
			continue
		}

		if _, has := prefs[quiz.HasValue]; has && cat == trait.CategoryTattoo {
			if val != "" {
				achieved += importance
			}
			possible += importance
			continue
		}

		maxWeight := 0.0
		for _, w := range prefs {
			if w > maxWeight {
				maxWeight = w
			}
		}
		if w, ok := prefs[val]; ok && val != "" {
			achieved += w / maxWeight * importance
		}
		possible += importance
	}

	if possible <= 0 {
		return neutralScore
	}
	return achieved / possible * 100
}

func boostFor(t trait.Type) float64 {
	if b, ok := rareBoost[t]; ok {
		return b
	}
	return 1
}

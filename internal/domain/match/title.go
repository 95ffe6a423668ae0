package match

import (
	"fmt"
	"strings"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
)

func pick(variants []string, n int) string {
	return variants[n%len(variants)]
}

// GenerateTitle builds a deterministic "The <Adjective> <Noun>" title from a
// candidate's token id and traits. The adjective cascades through eyewear,
// overshirt, hat, hair and beard before falling back to the type pool; the
// noun cascades shirt, shoes, pants, then a generic pool. The offset shifts
// variant selection so a batch can retry around collisions.
func GenerateTitle(c *trait.Candidate, offset int) string {
	id := c.TokenID

	var adj string
	switch {
	case lookupVariant(glassesAdjectives, c, trait.CategoryGlasses, id+offset, &adj):
	case lookupVariant(overshirtAdjectives, c, trait.CategoryOvershirt, id+offset, &adj):
	case lookupVariant(hatAdjectives, c, trait.CategoryHat, id+offset, &adj):
	case lookupVariant(hairAdjectives, c, trait.CategoryHairStyle, id+offset, &adj):
	case lookupVariant(beardAdjectives, c, trait.CategoryBeard, id+offset, &adj):
	default:
		pool := typeAdjectives[c.Type]
		if len(pool) == 0 {
			pool = []string{"Unique"}
		}
		adj = pick(pool, id+offset)
	}

	var noun string
	switch {
	case lookupVariant(shirtNouns, c, trait.CategoryShirt, id+7+offset, &noun):
	case lookupVariant(shoesNouns, c, trait.CategoryShoes, id+7+offset, &noun):
	case lookupVariant(pantsNouns, c, trait.CategoryPants, id+7+offset, &noun):
	default:
		noun = pick(nounFallback, id+7+offset)
	}

	return fmt.Sprintf("The %s %s", adj, noun)
}

func lookupVariant(table map[string][]string, c *trait.Candidate, cat trait.Category, n int, out *string) bool {
	val := c.Value(cat)
	if val == "" {
		return false
	}
	variants, ok := table[val]
	if !ok {
		return false
	}
	*out = pick(variants, n)
	return true
}

// UniqueTitles assigns every candidate in a batch a distinct title, keyed by
// token id. A collision retries with growing offsets; after 20 attempts the
// token id is appended, which is unique by construction.
func UniqueTitles(candidates []*trait.Candidate) map[int]string {
	titles := make(map[int]string, len(candidates))
	used := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		title := GenerateTitle(c, 0)
		for attempt := 1; used[title] && attempt < 20; attempt++ {
			title = GenerateTitle(c, attempt*3)
		}
		if used[title] {
			title = fmt.Sprintf("%s #%d", title, c.TokenID)
		}
		titles[c.TokenID] = title
		used[title] = true
	}
	return titles
}

// GenerateDescription composes a short personality blurb: the type's core
// sentence, a shirt-derived sentence when a shirt is worn, and one sentence
// for the most distinctive accessory.
func GenerateDescription(c *trait.Candidate) string {
	parts := make([]string, 0, 3)
	if d, ok := typeDescriptions[c.Type]; ok {
		parts = append(parts, d)
	} else {
		parts = append(parts, "")
	}

	if shirt := c.Value(trait.CategoryShirt); shirt != "" {
		story := genericShirtStory
		for _, s := range shirtStories {
			if strings.Contains(shirt, s.Substr) {
				story = s.Text
				break
			}
		}
		parts = append(parts, story)
	}

	switch {
	case glassesStories[c.Value(trait.CategoryGlasses)] != "":
		parts = append(parts, glassesStories[c.Value(trait.CategoryGlasses)])
	case hatStories[c.Value(trait.CategoryHat)] != "":
		parts = append(parts, hatStories[c.Value(trait.CategoryHat)])
	case overshirtStories[c.Value(trait.CategoryOvershirt)] != "":
		parts = append(parts, overshirtStories[c.Value(trait.CategoryOvershirt)])
	case c.Has(trait.CategoryBeard):
		parts = append(parts, beardStory)
	case c.Has(trait.CategoryNecklace):
		parts = append(parts, necklaceStory)
	case c.Has(trait.CategoryEarring):
		parts = append(parts, earringStory)
	}

	return strings.Join(parts, " ")
}

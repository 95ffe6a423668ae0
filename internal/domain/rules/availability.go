package rules

import (
	"fmt"
	"sort"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
)

// Availability is the result of a trait availability query.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Disablement is the result of a whole-category disablement query.
type Disablement struct {
	Disabled bool   `json:"disabled"`
	Reason   string `json:"reason,omitempty"`
}

// ValueCount is one (value, population count) entry of a type's pool.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

func unavailable(reason string) Availability { return Availability{Available: false, Reason: reason} }

// CheckTraitAvailability reports whether a specific value is currently a
// legal choice for the given type, gender, and partial build. Checks run in a
// strict order and the first failure wins:
//
//  1. the value must exist in the type's population pool,
//  2. gender restrictions (Human with a selected gender only),
//  3. category-level exclusions against the current build,
//  4. value-level exclusions against the current build.
func (idx *Index) CheckTraitAvailability(t trait.Type, gender trait.Gender, cat trait.Category, value string, build trait.Build) Availability {
	key := trait.MakeKey(cat, value)

	pool := idx.pool(t, cat)
	if pool[value] == 0 {
		return unavailable(fmt.Sprintf("Not available for %s type", t))
	}

	if t == trait.TypeHuman && gender != "" {
		if restricted, ok := idx.genderLookup[key]; ok && restricted != gender {
			if restricted == trait.GenderMale {
				return unavailable("Male-only trait")
			}
			return unavailable("Female-only trait")
		}
	}

	for excCat := range idx.catExclusionIndex[cat] {
		if build[excCat] != "" {
			return unavailable(fmt.Sprintf("Can't combine %s with %s", cat.Label(), excCat.Label()))
		}
	}

	if excluded := idx.exclusionIndex[key]; excluded != nil {
		for bCat, bVal := range build {
			if excluded[trait.MakeKey(bCat, bVal)] {
				return unavailable(fmt.Sprintf("Incompatible with %s (%s)", trait.FormatName(bVal), bCat.Label()))
			}
		}
	}

	return Availability{Available: true}
}

// IsCategoryDisabled reports whether a whole category is currently closed off
// for the given type and build: the type never carries it, a selected category
// excludes it, or (for color categories) the selected element value is
// classified never_has_color.
func (idx *Index) IsCategoryDisabled(t trait.Type, cat trait.Category, build trait.Build) Disablement {
	tr, ok := idx.typeRules(t)
	if !ok {
		return Disablement{Disabled: true, Reason: "Unknown type"}
	}
	if tr.AvailableTraits[string(cat)] == 0 {
		return Disablement{Disabled: true, Reason: fmt.Sprintf("%s type never has %s", t, cat.Label())}
	}

	for excCat := range idx.catExclusionIndex[cat] {
		if build[excCat] != "" {
			return Disablement{Disabled: true, Reason: fmt.Sprintf("Blocked by %s (never co-occur)", excCat.Label())}
		}
	}

	if elem, ok := trait.ElementFor(cat); ok {
		if elemVal := build[elem]; elemVal != "" {
			if idx.ColorClassification(elem, elemVal) == NeverHasColor {
				return Disablement{Disabled: true, Reason: fmt.Sprintf("%s never has a color", trait.FormatName(elemVal))}
			}
		}
	}

	return Disablement{}
}

// AvailableCategories lists the categories a type can carry, in canonical
// order, filtered to nonzero availability counts.
func (idx *Index) AvailableCategories(t trait.Type) []trait.Category {
	tr, ok := idx.typeRules(t)
	if !ok {
		return nil
	}
	var cats []trait.Category
	for _, cat := range trait.CategoryOrder {
		if tr.AvailableTraits[string(cat)] > 0 {
			cats = append(cats, cat)
		}
	}
	return cats
}

// ValuesForCategory lists a type's pool for a category sorted by descending
// population count. Ties keep their relative order stable.
func (idx *Index) ValuesForCategory(t trait.Type, cat trait.Category) []ValueCount {
	pool := idx.pool(t, cat)
	if len(pool) == 0 {
		return nil
	}
	values := make([]ValueCount, 0, len(pool))
	for v, c := range pool {
		values = append(values, ValueCount{Value: v, Count: c})
	}
	// Map iteration order is random; anchor ties on the value name so the
	// listing is reproducible across calls.
	sort.SliceStable(values, func(i, j int) bool {
		if values[i].Count != values[j].Count {
			return values[i].Count > values[j].Count
		}
		return values[i].Value < values[j].Value
	})
	return values
}

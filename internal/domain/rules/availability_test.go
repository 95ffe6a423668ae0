package rules

import (
	"strings"
	"testing"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
)

func TestAvailabilityEmptyBuild(t *testing.T) {
	idx := NewIndex(testDocument())

	res := idx.CheckTraitAvailability(trait.TypeHuman, "", trait.CategoryShirt, "Hoodie", trait.Build{})
	if !res.Available {
		t.Errorf("Expected Hoodie available on empty build, got reason %q", res.Reason)
	}
	if res.Reason != "" {
		t.Errorf("Available result should carry no reason, got %q", res.Reason)
	}
}

func TestAvailabilityPoolMembership(t *testing.T) {
	idx := NewIndex(testDocument())

	res := idx.CheckTraitAvailability(trait.TypeRobot, "", trait.CategoryShirt, "Hoodie", trait.Build{})
	if res.Available {
		t.Error("Hoodie is not in the Robot pool, expected unavailable")
	}
	if res.Reason != "Not available for Robot type" {
		t.Errorf("Unexpected reason: %q", res.Reason)
	}
}

func TestAvailabilityGenderRestriction(t *testing.T) {
	idx := NewIndex(testDocument())

	res := idx.CheckTraitAvailability(trait.TypeHuman, trait.GenderFemale, trait.CategoryBeard, "Full", trait.Build{})
	if res.Available || res.Reason != "Male-only trait" {
		t.Errorf("Expected Male-only trait, got available=%v reason=%q", res.Available, res.Reason)
	}

	res = idx.CheckTraitAvailability(trait.TypeHuman, trait.GenderMale, trait.CategoryPants, "Skirt", trait.Build{})
	if res.Available || res.Reason != "Female-only trait" {
		t.Errorf("Expected Female-only trait, got available=%v reason=%q", res.Available, res.Reason)
	}

	// Without a selected gender the restriction does not apply.
	res = idx.CheckTraitAvailability(trait.TypeHuman, "", trait.CategoryBeard, "Full", trait.Build{})
	if !res.Available {
		t.Errorf("Gender check must be skipped when no gender is selected, got %q", res.Reason)
	}
}

func TestAvailabilityCategoryExclusion(t *testing.T) {
	idx := NewIndex(testDocument())

	build := trait.Build{trait.CategoryGlasses: "Sunglasses"}
	res := idx.CheckTraitAvailability(trait.TypeHuman, "", trait.CategoryHat, "Cap", build)
	if res.Available {
		t.Error("Expected hat blocked while glasses are selected")
	}
	if res.Reason != "Can't combine Hat with Glasses" {
		t.Errorf("Unexpected reason: %q", res.Reason)
	}
}

func TestAvailabilityValueExclusion(t *testing.T) {
	idx := NewIndex(testDocument())

	build := trait.Build{trait.CategoryHairStyle: "Mohawk"}
	res := idx.CheckTraitAvailability(trait.TypeHuman, "", trait.CategoryHat, "Brimmed", build)
	if res.Available {
		t.Error("Expected Brimmed blocked while Mohawk is selected")
	}
	if res.Reason != "Incompatible with Mohawk (Hair Style)" {
		t.Errorf("Unexpected reason: %q", res.Reason)
	}
}

func TestAvailabilityCheckOrder(t *testing.T) {
	idx := NewIndex(testDocument())

	// Brimmed is outside the Robot pool AND value-excluded by Mohawk; pool
	// membership is checked first.
	build := trait.Build{trait.CategoryHairStyle: "Mohawk"}
	res := idx.CheckTraitAvailability(trait.TypeRobot, "", trait.CategoryHat, "Brimmed", build)
	if res.Reason != "Not available for Robot type" {
		t.Errorf("Pool membership must be checked first, got %q", res.Reason)
	}
}

func TestCategoryDisabledUnknownType(t *testing.T) {
	idx := NewIndex(testDocument())

	res := idx.IsCategoryDisabled("Unicorn", trait.CategoryShirt, trait.Build{})
	if !res.Disabled || res.Reason != "Unknown type" {
		t.Errorf("Expected Unknown type, got disabled=%v reason=%q", res.Disabled, res.Reason)
	}
}

func TestCategoryNeverAvailableForType(t *testing.T) {
	idx := NewIndex(testDocument())

	res := idx.IsCategoryDisabled(trait.TypeRobot, trait.CategoryBeard, trait.Build{})
	if !res.Disabled {
		t.Fatal("Robots never have beards, expected disabled")
	}
	if res.Reason != "Robot type never has Beard" {
		t.Errorf("Unexpected reason: %q", res.Reason)
	}
}

func TestCategoryDisabledByExclusion(t *testing.T) {
	idx := NewIndex(testDocument())

	build := trait.Build{trait.CategoryGlasses: "Sunglasses"}
	res := idx.IsCategoryDisabled(trait.TypeHuman, trait.CategoryHat, build)
	if !res.Disabled || res.Reason != "Blocked by Glasses (never co-occur)" {
		t.Errorf("Expected exclusion disablement, got disabled=%v reason=%q", res.Disabled, res.Reason)
	}
}

func TestColorCategoryDisabledByNeverHasColor(t *testing.T) {
	idx := NewIndex(testDocument())

	build := trait.Build{trait.CategoryShirt: "Suit"}
	res := idx.IsCategoryDisabled(trait.TypeHuman, trait.CategoryShirtColor, build)
	if !res.Disabled {
		t.Fatal("Expected shirt_color disabled while Suit is worn")
	}
	if !strings.Contains(res.Reason, "Suit") {
		t.Errorf("Reason should name the element value, got %q", res.Reason)
	}

	// A shirt that does take colors keeps the category enabled.
	build = trait.Build{trait.CategoryShirt: "Hoodie"}
	res = idx.IsCategoryDisabled(trait.TypeHuman, trait.CategoryShirtColor, build)
	if res.Disabled {
		t.Errorf("Expected shirt_color enabled for Hoodie, got %q", res.Reason)
	}
}

func TestAvailableCategoriesCanonicalOrder(t *testing.T) {
	idx := NewIndex(testDocument())

	cats := idx.AvailableCategories(trait.TypeHuman)
	if len(cats) == 0 {
		t.Fatal("Expected nonempty category list for Human")
	}
	pos := make(map[trait.Category]int, len(trait.CategoryOrder))
	for i, c := range trait.CategoryOrder {
		pos[c] = i
	}
	for i := 1; i < len(cats); i++ {
		if pos[cats[i-1]] >= pos[cats[i]] {
			t.Errorf("Categories out of canonical order: %s before %s", cats[i-1], cats[i])
		}
	}
	for _, c := range cats {
		if c == trait.CategoryEarring {
			t.Error("Earring has no availability for Human in the fixture, should be filtered")
		}
	}
}

func TestValuesForCategorySortedByCount(t *testing.T) {
	idx := NewIndex(testDocument())

	values := idx.ValuesForCategory(trait.TypeHuman, trait.CategoryShirt)
	if len(values) != 3 {
		t.Fatalf("Expected 3 shirt values, got %d", len(values))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Count < values[i].Count {
			t.Errorf("Values not sorted by descending count: %v", values)
		}
	}
	if values[0].Value != "Hoodie" {
		t.Errorf("Expected Hoodie (count 1200) first, got %s", values[0].Value)
	}
}

func TestRarityBuckets(t *testing.T) {
	total := trait.TotalSupply

	cases := []struct {
		count int
		want  trait.Rarity
	}{
		{19, trait.RarityMythic},     // 0.095% < 0.1%
		{20, trait.RarityLegendary},  // exactly 0.1% is not Mythic
		{21, trait.RarityLegendary},  // 0.105%
		{199, trait.RarityLegendary}, // 0.995%
		{200, trait.RarityRare},      // exactly 1% is not Legendary
		{999, trait.RarityRare},
		{1000, trait.RarityUncommon}, // exactly 5%
		{3999, trait.RarityUncommon},
		{4000, trait.RarityCommon}, // exactly 20%
		{15000, trait.RarityCommon},
	}
	for _, c := range cases {
		if got := trait.RarityOf(c.count, total); got != c.want {
			t.Errorf("RarityOf(%d, %d) = %s, want %s", c.count, total, got, c.want)
		}
	}
}

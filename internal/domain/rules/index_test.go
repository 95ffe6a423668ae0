package rules

import (
	"testing"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
)

func testDocument() *Document {
	return &Document{
		Metadata: Metadata{
			TotalMeebits: 20000,
			Types: map[string]int{
				"Human": 15000, "Pig": 2000, "Elephant": 1000,
				"Robot": 1000, "Skeleton": 500, "Visitor": 400, "Dissected": 100,
			},
		},
		TypeLevelRules: map[string]TypeRules{
			"Human": {Count: 15000, AvailableTraits: map[string]int{
				"shirt": 14000, "shirt_color": 14000, "pants": 13000,
				"hair_style": 12000, "hat": 6000, "hat_color": 6000,
				"shoes": 13500, "glasses": 4000, "beard": 5000,
			}},
			"Robot": {Count: 1000, AvailableTraits: map[string]int{
				"shirt": 900, "shirt_color": 900,
			}},
		},
		PerTypeValuePools: map[string]map[string]ValuePool{
			"Human": {
				"shirt":      {"Hoodie": 1200, "Suit": 300, "Skull Tee": 450},
				"hat":        {"Brimmed": 200, "Cap": 900},
				"hair_style": {"Mohawk": 150, "Simple": 3000},
				"beard":      {"Full": 800},
				"glasses":    {"Sunglasses": 700},
				"pants":      {"Skirt": 600, "Regular Pants": 4000},
			},
			"Robot": {
				"shirt": {"Jersey": 100},
			},
		},
		ColorMappings: map[string][]ColorMapping{
			"shirt -> shirt_color": {
				{Value: "Suit", Classification: NeverHasColor},
				{Value: "Hoodie", Classification: AlwaysHasColor},
			},
		},
		CategoryExclusions: []CategoryExclusion{
			{Categories: []string{"hat", "glasses"}},
		},
		ValueExclusions: []ValueExclusion{
			{TraitA: "hair_style=Mohawk", TraitB: "hat=Brimmed"},
		},
		DeterministicRules: []DeterministicRule{
			{IfTrait: "shirt=Jersey", ThenTrait: "jersey_number=Number", Ratio: 1.0},
			{IfTrait: "shirt=Hoodie", ThenTrait: "hat=Cap", Ratio: 0.4},
		},
		GenderClassification: GenderClassification{
			MaleOnly:   []GenderedTrait{{Category: "beard", Value: "Full"}},
			FemaleOnly: []GenderedTrait{{Category: "pants", Value: "Skirt"}},
		},
	}
}

func TestExclusionIndexIsSymmetric(t *testing.T) {
	idx := NewIndex(testDocument())

	mohawk := trait.Key("hair_style=Mohawk")
	brimmed := trait.Key("hat=Brimmed")

	if !idx.ExcludedValues(mohawk)[brimmed] {
		t.Errorf("Expected %s to exclude %s", mohawk, brimmed)
	}
	if !idx.ExcludedValues(brimmed)[mohawk] {
		t.Errorf("Expected %s to exclude %s (reverse direction)", brimmed, mohawk)
	}

	if !idx.ExcludedCategories("hat")["glasses"] {
		t.Error("Expected hat to exclude glasses")
	}
	if !idx.ExcludedCategories("glasses")["hat"] {
		t.Error("Expected glasses to exclude hat (reverse direction)")
	}
}

func TestExclusionSymmetryIndependentOfPairOrder(t *testing.T) {
	doc := testDocument()
	// Flip the declared pair; lookups must not change.
	doc.ValueExclusions = []ValueExclusion{
		{TraitA: "hat=Brimmed", TraitB: "hair_style=Mohawk"},
	}
	idx := NewIndex(doc)

	if !idx.ExcludedValues("hair_style=Mohawk")["hat=Brimmed"] {
		t.Error("Flipping the declared pair order changed exclusion lookups")
	}
}

func TestDeterministicRulesFilterPartialRatios(t *testing.T) {
	idx := NewIndex(testDocument())

	if got := idx.Implications("shirt=Jersey"); len(got) != 1 {
		t.Fatalf("Expected 1 implication for shirt=Jersey, got %d", len(got))
	}
	if got := idx.Implications("shirt=Hoodie"); len(got) != 0 {
		t.Errorf("Expected ratio 0.4 rule to be dropped, got %d implications", len(got))
	}
}

func TestColorClassificationDefaults(t *testing.T) {
	idx := NewIndex(testDocument())

	if cls := idx.ColorClassification("shirt", "Suit"); cls != NeverHasColor {
		t.Errorf("Expected Suit to be never_has_color, got %s", cls)
	}
	if cls := idx.ColorClassification("shirt", "Unknown Shirt"); cls != SometimesHasColor {
		t.Errorf("Expected unknown value to default to sometimes_has_color, got %s", cls)
	}
	if cls := idx.ColorClassification("hat", "Cap"); cls != SometimesHasColor {
		t.Errorf("Expected unmapped category to default to sometimes_has_color, got %s", cls)
	}
}

func TestGenderLookup(t *testing.T) {
	idx := NewIndex(testDocument())

	if g, ok := idx.GenderRestriction("beard=Full"); !ok || g != trait.GenderMale {
		t.Errorf("Expected beard=Full to be male-only, got %q ok=%v", g, ok)
	}
	if g, ok := idx.GenderRestriction("pants=Skirt"); !ok || g != trait.GenderFemale {
		t.Errorf("Expected pants=Skirt to be female-only, got %q ok=%v", g, ok)
	}
	if _, ok := idx.GenderRestriction("shirt=Hoodie"); ok {
		t.Error("Expected shirt=Hoodie to carry no gender restriction")
	}
}

func TestNilDocumentIndex(t *testing.T) {
	idx := NewIndex(nil)

	if idx.TotalSupply() != trait.TotalSupply {
		t.Errorf("Expected default supply %d, got %d", trait.TotalSupply, idx.TotalSupply())
	}
	res := idx.CheckTraitAvailability("Human", "", "shirt", "Hoodie", trait.Build{})
	if res.Available {
		t.Error("Empty index should report every value as outside the pool")
	}
}

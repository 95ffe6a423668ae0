package catalog

import (
	"testing"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
)

func TestParsePopulation(t *testing.T) {
	raw := []byte(`[
		{"token_id": 1, "type": "Human", "gender": "male",
		 "hair_style": "Mohawk", "hair_color": "Green", "hat": null,
		 "shirt": "Skull Tee", "shirt_color": "Black", "tattoo": null,
		 "jersey_number": null},
		{"token_id": 2, "type": "Robot", "gender": null,
		 "shirt": "Hoodie Up", "shirt_color": "Red"}
	]`)

	candidates, err := ParsePopulation(raw)
	if err != nil {
		t.Fatalf("ParsePopulation failed: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}

	first := candidates[0]
	if first.TokenID != 1 {
		t.Errorf("Expected token 1, got %d", first.TokenID)
	}
	if first.Type != trait.TypeHuman {
		t.Errorf("Expected Human type, got %s", first.Type)
	}
	if first.Gender != trait.GenderMale {
		t.Errorf("Expected male gender, got %q", first.Gender)
	}
	if got := first.Value(trait.CategoryHairStyle); got != "Mohawk" {
		t.Errorf("Expected Mohawk hair, got %q", got)
	}
	if first.Has(trait.CategoryHat) {
		t.Error("Null trait should not be present")
	}
	if first.Has(trait.CategoryTattoo) {
		t.Error("Null tattoo should not be present")
	}

	second := candidates[1]
	if second.Gender != "" {
		t.Errorf("Null gender should stay empty, got %q", second.Gender)
	}
	if got := second.Value(trait.CategoryShirtColor); got != "Red" {
		t.Errorf("Expected Red shirt color, got %q", got)
	}
}

func TestParsePopulationRejectsMalformedInput(t *testing.T) {
	if _, err := ParsePopulation([]byte(`{"not": "an array"}`)); err == nil {
		t.Error("Expected error for non-array input")
	}
	if _, err := ParsePopulation([]byte(`[{"token_id": "abc"}]`)); err == nil {
		t.Error("Expected error for non-numeric token_id")
	}
}

func TestParseRulesDocument(t *testing.T) {
	raw := []byte(`{
		"metadata": {"total_meebits": 20000, "types": {"Human": 17633}},
		"type_level_rules": {
			"Human": {"count": 17633, "available_traits": {"hat": 5000}}
		},
		"per_type_value_pools": {
			"Human": {"hat": {"Cap": 1200, "Beanie": 800}}
		},
		"category_exclusion_rules": [{"categories": ["hat", "hair_style"]}],
		"gender_trait_classification": {
			"male_only": [{"category": "beard", "value": "Full"}]
		}
	}`)

	doc, err := ParseRulesDocument(raw)
	if err != nil {
		t.Fatalf("ParseRulesDocument failed: %v", err)
	}
	if doc.Metadata.TotalMeebits != 20000 {
		t.Errorf("Expected 20000 meebits, got %d", doc.Metadata.TotalMeebits)
	}
	if len(doc.PerTypeValuePools["Human"]["hat"]) != 2 {
		t.Errorf("Expected 2 hat values for Human, got %d",
			len(doc.PerTypeValuePools["Human"]["hat"]))
	}
	if len(doc.GenderClassification.MaleOnly) != 1 {
		t.Errorf("Expected 1 male-only entry, got %d", len(doc.GenderClassification.MaleOnly))
	}
}

func TestRecordRoundTrip(t *testing.T) {
	candidates := []*trait.Candidate{
		{
			TokenID: 7,
			Type:    trait.TypeSkeleton,
			Traits: map[trait.Category]string{
				trait.CategoryShirt: "Suit",
				trait.CategoryShoes: "Work Boots",
			},
		},
	}

	back := FromRecords(ToRecords(candidates))
	if len(back) != 1 {
		t.Fatalf("Expected 1 candidate after round trip, got %d", len(back))
	}
	if back[0].TokenID != 7 || back[0].Type != trait.TypeSkeleton {
		t.Errorf("Identity fields lost in round trip: %+v", back[0])
	}
	if got := back[0].Value(trait.CategoryShirt); got != "Suit" {
		t.Errorf("Expected Suit shirt, got %q", got)
	}
}

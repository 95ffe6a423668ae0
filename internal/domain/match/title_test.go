package match

import (
	"strings"
	"testing"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
)

func TestGenerateTitleDeterministic(t *testing.T) {
	c := &trait.Candidate{
		TokenID: 42, Type: trait.TypeRobot,
		Traits: map[trait.Category]string{
			trait.CategoryGlasses: "3D",
			trait.CategoryShirt:   "Suit",
		},
	}
	a := GenerateTitle(c, 0)
	b := GenerateTitle(c, 0)
	if a != b {
		t.Errorf("Same id and offset must produce the same title: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "The ") {
		t.Errorf("Title missing prefix: %q", a)
	}
}

func TestGenerateTitleAdjectiveCascade(t *testing.T) {
	// Glasses outrank overshirt; removing them falls through to the next layer.
	c := &trait.Candidate{
		TokenID: 0, Type: trait.TypeHuman,
		Traits: map[trait.Category]string{
			trait.CategoryGlasses:   "Sunglasses",
			trait.CategoryOvershirt: "Trenchcoat",
			trait.CategoryShirt:     "Suit",
		},
	}
	withGlasses := GenerateTitle(c, 0)
	if !strings.Contains(withGlasses, "Mysterious") {
		t.Errorf("Expected glasses adjective for token 0, got %q", withGlasses)
	}

	delete(c.Traits, trait.CategoryGlasses)
	withOvershirt := GenerateTitle(c, 0)
	if !strings.Contains(withOvershirt, "Suave") {
		t.Errorf("Expected overshirt adjective after glasses removed, got %q", withOvershirt)
	}
}

func TestGenerateTitleTypeFallback(t *testing.T) {
	c := &trait.Candidate{TokenID: 0, Type: trait.TypeSkeleton}
	title := GenerateTitle(c, 0)
	if !strings.Contains(title, "Midnight") {
		t.Errorf("Bare skeleton should use the type adjective pool, got %q", title)
	}
	if !strings.Contains(title, "Wanderer") {
		t.Errorf("No wearable traits should hit the noun fallback pool, got %q", title)
	}
}

func TestGenerateTitleOffsetVariesVariant(t *testing.T) {
	c := &trait.Candidate{
		TokenID: 0, Type: trait.TypeHuman,
		Traits: map[trait.Category]string{trait.CategoryGlasses: "Sunglasses", trait.CategoryShirt: "Hoodie"},
	}
	base := GenerateTitle(c, 0)
	shifted := GenerateTitle(c, 1)
	if base == shifted {
		t.Errorf("Offset 1 should select a different variant: both %q", base)
	}
}

func TestUniqueTitlesNoDuplicates(t *testing.T) {
	// Identical traits force collisions; only ids differ.
	var batch []*trait.Candidate
	for i := 0; i < 8; i++ {
		batch = append(batch, &trait.Candidate{
			TokenID: i * 4, // same variant index mod 4 for every adjective pool
			Type:    trait.TypeHuman,
			Traits:  map[trait.Category]string{trait.CategoryShirt: "Hoodie"},
		})
	}
	titles := UniqueTitles(batch)
	if len(titles) != len(batch) {
		t.Fatalf("Expected %d titles, got %d", len(batch), len(titles))
	}
	seen := make(map[string]bool)
	for id, title := range titles {
		if seen[title] {
			t.Errorf("Duplicate title %q for token %d", title, id)
		}
		seen[title] = true
	}
}

func TestGenerateDescriptionComposition(t *testing.T) {
	c := &trait.Candidate{
		TokenID: 5, Type: trait.TypeVisitor,
		Traits: map[trait.Category]string{
			trait.CategoryShirt: "Oversized Hoodie",
			trait.CategoryHat:   "Headphones",
		},
	}
	desc := GenerateDescription(c)
	if !strings.Contains(desc, "between worlds") {
		t.Errorf("Description missing type sentence: %q", desc)
	}
	if !strings.Contains(desc, "Comfort is your secret weapon") {
		t.Errorf("Expected Hoodie substring match in shirt sentence: %q", desc)
	}
	if !strings.Contains(desc, "Music runs through your veins") {
		t.Errorf("Expected headphones accessory sentence: %q", desc)
	}
}

func TestGenerateDescriptionGenericShirt(t *testing.T) {
	c := &trait.Candidate{
		TokenID: 5, Type: trait.TypeHuman,
		Traits: map[trait.Category]string{trait.CategoryShirt: "Windbreaker"},
	}
	desc := GenerateDescription(c)
	if !strings.Contains(desc, "uniquely yours") {
		t.Errorf("Unmatched shirt should fall back to the generic sentence: %q", desc)
	}
}

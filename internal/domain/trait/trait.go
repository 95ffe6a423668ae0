// Package trait defines the core domain vocabulary for Meebit traits.
// This package is PURE and must NOT import any infrastructure packages (network, events, platform).
package trait

import "strings"

// TotalSupply is the fixed size of the Meebit population.
const TotalSupply = 20000

// Category identifies a trait slot on an avatar (e.g. "shirt", "hat_color").
type Category string

// Element categories. Each may carry a dependent color category (see ColorCategories).
const (
	CategoryHairStyle Category = "hair_style"
	CategoryHat       Category = "hat"
	CategoryBeard     Category = "beard"
	CategoryGlasses   Category = "glasses"
	CategoryEarring   Category = "earring"
	CategoryNecklace  Category = "necklace"
	CategoryShirt     Category = "shirt"
	CategoryOvershirt Category = "overshirt"
	CategoryPants     Category = "pants"
	CategoryShoes     Category = "shoes"
	CategoryTattoo    Category = "tattoo"
)

// Color categories.
const (
	CategoryHairColor      Category = "hair_color"
	CategoryHatColor       Category = "hat_color"
	CategoryBeardColor     Category = "beard_color"
	CategoryGlassesColor   Category = "glasses_color"
	CategoryShirtColor     Category = "shirt_color"
	CategoryOvershirtColor Category = "overshirt_color"
	CategoryPantsColor     Category = "pants_color"
	CategoryShoesColor     Category = "shoes_color"
	CategoryJerseyNumber   Category = "jersey_number"
)

// Type identifies a top-level avatar archetype.
type Type string

const (
	TypeHuman     Type = "Human"
	TypePig       Type = "Pig"
	TypeElephant  Type = "Elephant"
	TypeRobot     Type = "Robot"
	TypeSkeleton  Type = "Skeleton"
	TypeVisitor   Type = "Visitor"
	TypeDissected Type = "Dissected"
)

// Gender restrictions only apply to the Human type.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ColorCategories maps each element category to its dependent color category.
// Categories absent from this map have no color dimension.
var ColorCategories = map[Category]Category{
	CategoryHairStyle: CategoryHairColor,
	CategoryHat:       CategoryHatColor,
	CategoryBeard:     CategoryBeardColor,
	CategoryGlasses:   CategoryGlassesColor,
	CategoryShirt:     CategoryShirtColor,
	CategoryOvershirt: CategoryOvershirtColor,
	CategoryPants:     CategoryPantsColor,
	CategoryShoes:     CategoryShoesColor,
}

// CategoryOrder is the canonical display/iteration order for trait categories.
var CategoryOrder = []Category{
	CategoryHairStyle, CategoryHairColor,
	CategoryHat, CategoryHatColor,
	CategoryBeard, CategoryBeardColor,
	CategoryGlasses, CategoryGlassesColor,
	CategoryEarring, CategoryNecklace,
	CategoryShirt, CategoryShirtColor,
	CategoryOvershirt, CategoryOvershirtColor,
	CategoryPants, CategoryPantsColor,
	CategoryShoes, CategoryShoesColor,
	CategoryTattoo, CategoryJerseyNumber,
}

// CategoryLabels holds the human-readable label per category.
var CategoryLabels = map[Category]string{
	CategoryHairStyle: "Hair Style", CategoryHairColor: "Hair Color",
	CategoryHat: "Hat", CategoryHatColor: "Hat Color",
	CategoryBeard: "Beard", CategoryBeardColor: "Beard Color",
	CategoryGlasses: "Glasses", CategoryGlassesColor: "Glasses Color",
	CategoryEarring: "Earring", CategoryNecklace: "Necklace",
	CategoryShirt: "Shirt", CategoryShirtColor: "Shirt Color",
	CategoryOvershirt: "Overshirt", CategoryOvershirtColor: "Overshirt Color",
	CategoryPants: "Pants", CategoryPantsColor: "Pants Color",
	CategoryShoes: "Shoes", CategoryShoesColor: "Shoes Color",
	CategoryTattoo: "Tattoo", CategoryJerseyNumber: "Jersey Number",
}

// Label returns the display label for a category, falling back to the raw name.
func (c Category) Label() string {
	if l, ok := CategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// ElementFor returns the element category whose color category is c, if any.
func ElementFor(c Category) (Category, bool) {
	for elem, color := range ColorCategories {
		if color == c {
			return elem, true
		}
	}
	return "", false
}

// Key is the composite "category=value" identifier used by exclusion and
// gender rules. It is the canonical unit of rule indexing.
type Key string

// MakeKey builds the composite key for a (category, value) pair.
func MakeKey(category Category, value string) Key {
	return Key(string(category) + "=" + value)
}

// Split returns the category and value components of a composite key.
func (k Key) Split() (Category, string) {
	cat, val, _ := strings.Cut(string(k), "=")
	return Category(cat), val
}

// Rarity buckets a trait value's population share.
type Rarity string

const (
	RarityMythic    Rarity = "Mythic"    // < 0.1%
	RarityLegendary Rarity = "Legendary" // < 1%
	RarityRare      Rarity = "Rare"      // < 5%
	RarityUncommon  Rarity = "Uncommon"  // < 20%
	RarityCommon    Rarity = "Common"
)

// RarityOf buckets a population count against a total supply. Thresholds are
// exclusive upper bounds checked from rarest to most common.
func RarityOf(count, total int) Rarity {
	pct := float64(count) / float64(total) * 100
	switch {
	case pct < 0.1:
		return RarityMythic
	case pct < 1:
		return RarityLegendary
	case pct < 5:
		return RarityRare
	case pct < 20:
		return RarityUncommon
	default:
		return RarityCommon
	}
}

// FormatName turns a raw trait value into display form: underscores become
// spaces and each word is capitalized ("hoodie_up" -> "Hoodie Up").
func FormatName(value string) string {
	if value == "" {
		return ""
	}
	words := strings.Fields(strings.ReplaceAll(value, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

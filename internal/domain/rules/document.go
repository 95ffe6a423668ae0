// Package rules contains the pure rule evaluation logic for Meebit trait
// compatibility. This package is PURE and must NOT import any infrastructure
// packages.
package rules

import "github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"

// Document is the statistical rules file produced by analyzing the full
// population. It is parsed by the calling shell and treated as immutable for
// the lifetime of an Index. Every field is optional: a missing field behaves
// as an empty collection.
type Document struct {
	Metadata            Metadata                        `json:"metadata"`
	TypeLevelRules      map[string]TypeRules            `json:"type_level_rules"`
	PerTypeValuePools   map[string]map[string]ValuePool `json:"per_type_value_pools"`
	ColorMappings       map[string][]ColorMapping       `json:"color_element_mappings"`
	CategoryExclusions  []CategoryExclusion             `json:"category_exclusion_rules"`
	ValueExclusions     []ValueExclusion                `json:"value_exclusion_rules_all_population"`
	DeterministicRules  []DeterministicRule             `json:"deterministic_rules"`
	GenderClassification GenderClassification           `json:"gender_trait_classification"`
}

// Metadata carries population-level counts.
type Metadata struct {
	TotalMeebits int            `json:"total_meebits"`
	Types        map[string]int `json:"types"`
}

// TypeRules describes which categories a type can carry at all.
type TypeRules struct {
	Count           int            `json:"count"`
	AvailableTraits map[string]int `json:"available_traits"`
}

// ValuePool maps a trait value to its population count within one type.
type ValuePool map[string]int

// ColorMapping classifies one element value's color behavior. The enclosing
// map is keyed "<elem> -> <color>".
type ColorMapping struct {
	Value          string `json:"value"`
	Classification string `json:"classification"`
}

// Color classifications.
const (
	AlwaysHasColor    = "always_has_color"
	SometimesHasColor = "sometimes_has_color"
	NeverHasColor     = "never_has_color"
)

// CategoryExclusion names an unordered pair of categories that never co-occur.
type CategoryExclusion struct {
	Categories []string `json:"categories"`
}

// ValueExclusion names an unordered pair of composite keys that never co-occur.
type ValueExclusion struct {
	TraitA trait.Key `json:"trait_a"`
	TraitB trait.Key `json:"trait_b"`
}

// DeterministicRule is a conditional implication "if trait then trait" with an
// observed ratio. Only ratio == 1.0 entries are hard constraints; lower ratios
// are statistical tendencies and stay out of the availability index.
type DeterministicRule struct {
	IfTrait   trait.Key `json:"if_trait"`
	ThenTrait trait.Key `json:"then_trait"`
	Ratio     float64   `json:"ratio"`
}

// GenderClassification lists composite keys restricted to one gender.
type GenderClassification struct {
	MaleOnly   []GenderedTrait `json:"male_only"`
	FemaleOnly []GenderedTrait `json:"female_only"`
}

// GenderedTrait is one (category, value) entry in the gender classification.
type GenderedTrait struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

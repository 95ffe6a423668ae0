package rules

import (
	"strings"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
)

// Index holds the O(1) lookup structures derived from a rules Document.
// It is built once per document load and read-only afterwards; reloading the
// rules replaces the whole Index rather than mutating it in place.
type Index struct {
	doc *Document

	// genderLookup maps a composite key to the gender it is restricted to.
	genderLookup map[trait.Key]trait.Gender

	// exclusionIndex is the symmetric value-exclusion adjacency map.
	exclusionIndex map[trait.Key]map[trait.Key]bool

	// catExclusionIndex is the symmetric category-exclusion adjacency map.
	catExclusionIndex map[trait.Category]map[trait.Category]bool

	// colorClassification maps element category -> value -> classification.
	colorClassification map[trait.Category]map[string]string

	// deterministicIndex keeps only fully deterministic (ratio == 1.0) rules.
	deterministicIndex map[trait.Key][]DeterministicRule
}

// NewIndex builds the lookup structures from a rules document. A nil document
// yields an index where every query reports "not found" rather than failing.
func NewIndex(doc *Document) *Index {
	if doc == nil {
		doc = &Document{}
	}
	idx := &Index{
		doc:                 doc,
		genderLookup:        make(map[trait.Key]trait.Gender),
		exclusionIndex:      make(map[trait.Key]map[trait.Key]bool),
		catExclusionIndex:   make(map[trait.Category]map[trait.Category]bool),
		colorClassification: make(map[trait.Category]map[string]string),
		deterministicIndex:  make(map[trait.Key][]DeterministicRule),
	}

	for _, g := range doc.GenderClassification.MaleOnly {
		idx.genderLookup[trait.MakeKey(trait.Category(g.Category), g.Value)] = trait.GenderMale
	}
	for _, g := range doc.GenderClassification.FemaleOnly {
		idx.genderLookup[trait.MakeKey(trait.Category(g.Category), g.Value)] = trait.GenderFemale
	}

	// Both directions of every exclusion pair are inserted so lookups never
	// depend on the source document's ordering.
	for _, ex := range doc.ValueExclusions {
		idx.addValueExclusion(ex.TraitA, ex.TraitB)
		idx.addValueExclusion(ex.TraitB, ex.TraitA)
	}
	for _, ex := range doc.CategoryExclusions {
		if len(ex.Categories) != 2 {
			continue
		}
		a, b := trait.Category(ex.Categories[0]), trait.Category(ex.Categories[1])
		idx.addCategoryExclusion(a, b)
		idx.addCategoryExclusion(b, a)
	}

	// Mapping keys look like "shirt -> shirt_color"; only the element side is
	// needed for lookups.
	for pairKey, mappings := range doc.ColorMappings {
		elem, _, ok := strings.Cut(pairKey, " -> ")
		if !ok {
			continue
		}
		byValue := make(map[string]string, len(mappings))
		for _, m := range mappings {
			byValue[m.Value] = m.Classification
		}
		idx.colorClassification[trait.Category(elem)] = byValue
	}

	for _, d := range doc.DeterministicRules {
		if d.Ratio < 1.0 {
			continue
		}
		idx.deterministicIndex[d.IfTrait] = append(idx.deterministicIndex[d.IfTrait], d)
	}

	return idx
}

func (idx *Index) addValueExclusion(from, to trait.Key) {
	set, ok := idx.exclusionIndex[from]
	if !ok {
		set = make(map[trait.Key]bool)
		idx.exclusionIndex[from] = set
	}
	set[to] = true
}

func (idx *Index) addCategoryExclusion(from, to trait.Category) {
	set, ok := idx.catExclusionIndex[from]
	if !ok {
		set = make(map[trait.Category]bool)
		idx.catExclusionIndex[from] = set
	}
	set[to] = true
}

// GenderRestriction returns the gender a composite key is restricted to, if any.
func (idx *Index) GenderRestriction(key trait.Key) (trait.Gender, bool) {
	g, ok := idx.genderLookup[key]
	return g, ok
}

// ExcludedValues returns the set of composite keys mutually exclusive with key.
func (idx *Index) ExcludedValues(key trait.Key) map[trait.Key]bool {
	return idx.exclusionIndex[key]
}

// ExcludedCategories returns the set of categories mutually exclusive with cat.
func (idx *Index) ExcludedCategories(cat trait.Category) map[trait.Category]bool {
	return idx.catExclusionIndex[cat]
}

// ColorClassification reports how an element value relates to its color
// category. Unknown values default to sometimes_has_color: absence of
// evidence is not a constraint.
func (idx *Index) ColorClassification(elem trait.Category, value string) string {
	if byValue, ok := idx.colorClassification[elem]; ok {
		if cls, ok := byValue[value]; ok {
			return cls
		}
	}
	return SometimesHasColor
}

// Implications returns the fully deterministic rules triggered by a key.
func (idx *Index) Implications(key trait.Key) []DeterministicRule {
	return idx.deterministicIndex[key]
}

// Types returns the population count per avatar type.
func (idx *Index) Types() map[string]int {
	if idx.doc.Metadata.Types == nil {
		return map[string]int{}
	}
	return idx.doc.Metadata.Types
}

// TotalSupply returns the population size declared by the document, falling
// back to the fixed Meebit supply when absent.
func (idx *Index) TotalSupply() int {
	if idx.doc.Metadata.TotalMeebits > 0 {
		return idx.doc.Metadata.TotalMeebits
	}
	return trait.TotalSupply
}

func (idx *Index) pool(t trait.Type, cat trait.Category) ValuePool {
	pools, ok := idx.doc.PerTypeValuePools[string(t)]
	if !ok {
		return nil
	}
	return pools[string(cat)]
}

func (idx *Index) typeRules(t trait.Type) (TypeRules, bool) {
	tr, ok := idx.doc.TypeLevelRules[string(t)]
	return tr, ok
}

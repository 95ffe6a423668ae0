package trait

// Build is a partial avatar: the user's current category -> value selections.
// Absence of a category means unselected. Builds are passed by value into the
// rule engine as immutable snapshots; mutation lives in the builder session.
type Build map[Category]string

// Clone returns an independent copy of the build.
func (b Build) Clone() Build {
	next := make(Build, len(b))
	for cat, val := range b {
		next[cat] = val
	}
	return next
}

// Keys returns the composite keys of every selected trait.
func (b Build) Keys() []Key {
	keys := make([]Key, 0, len(b))
	for cat, val := range b {
		keys = append(keys, MakeKey(cat, val))
	}
	return keys
}

// Candidate is one fixed member of the Meebit population: a token id, a type,
// an optional gender, and a value for each trait category it possesses.
type Candidate struct {
	TokenID int                 `json:"token_id"`
	Type    Type                `json:"type"`
	Gender  Gender              `json:"gender,omitempty"`
	Traits  map[Category]string `json:"traits"`
}

// Value returns the candidate's value for a category, or "" when absent.
func (c *Candidate) Value(cat Category) string {
	return c.Traits[cat]
}

// Has reports whether the candidate possesses any value in the category.
func (c *Candidate) Has(cat Category) bool {
	return c.Traits[cat] != ""
}

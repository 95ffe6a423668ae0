package quiz

import "github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"

// Profile is the accumulated preference state built from a full answer sheet.
// Weights for the same (category, value) pair add across questions, so the
// result is independent of question order.
type Profile struct {
	Weights    map[trait.Category]Weights
	PreferNone map[trait.Category]bool
}

// BuildProfile folds an answer sheet into a weighted preference profile.
// Entries outside [0, len(Questions)) or set to Unanswered contribute nothing.
func BuildProfile(answers []AnswerIndex) *Profile {
	p := &Profile{
		Weights:    make(map[trait.Category]Weights),
		PreferNone: make(map[trait.Category]bool),
	}
	for i, idx := range answers {
		if i >= len(Questions) || idx < 0 {
			continue
		}
		q := Questions[i]
		if int(idx) >= len(q.Answers) {
			continue
		}
		a := q.Answers[idx]
		for _, cat := range a.PreferNone {
			p.PreferNone[cat] = true
		}
		for cat, vals := range a.Traits {
			dst := p.Weights[cat]
			if dst == nil {
				dst = make(Weights, len(vals))
				p.Weights[cat] = dst
			}
			for val, w := range vals {
				dst[val] += w
			}
		}
	}
	return p
}

// CategoryWeights returns the accumulated weights for one category, or nil.
func (p *Profile) CategoryWeights(cat trait.Category) Weights {
	return p.Weights[cat]
}

// Empty reports whether no answer contributed anything to the profile.
func (p *Profile) Empty() bool {
	return len(p.Weights) == 0 && len(p.PreferNone) == 0
}

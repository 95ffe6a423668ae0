// Package quiz defines the personality questionnaire and turns answer
// sequences into weighted trait preference profiles.
// This package is PURE and must NOT import any infrastructure packages.
package quiz

import "github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"

// CategoryType is the pseudo-category carrying type preferences in a profile.
const CategoryType = trait.Category("type")

// HasValue is the reserved value key meaning "prefers this category to be
// present regardless of which value" (binary-presence categories like tattoo).
const HasValue = "_has"

// Weights maps a trait value (or HasValue) to its preference weight.
type Weights map[string]float64

// Answer is one selectable choice of a question. Traits lists its weighted
// contributions per category; PreferNone lists categories the answer marks as
// preferably absent.
type Answer struct {
	Text       string
	Desc       string
	Traits     map[trait.Category]Weights
	PreferNone []trait.Category
}

// Question is one step of the quiz.
type Question struct {
	Question string
	Subtitle string
	Answers  []Answer
}

// AnswerIndex records the chosen answer for one question. Unanswered
// questions carry -1 and contribute nothing.
type AnswerIndex int

// Unanswered marks a skipped question.
const Unanswered AnswerIndex = -1

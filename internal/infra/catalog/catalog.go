// Package catalog loads the externally produced data files: the statistical
// rules document and the flat population database. Both are parsed here so
// the domain packages only ever see in-memory structures.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/rules"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
	"github.com/MeebitForge/MeebitStudio/server/internal/infra/storage"
)

// LoadRulesDocument reads and parses a rules JSON file.
func LoadRulesDocument(path string) (*rules.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	doc, err := ParseRulesDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return doc, nil
}

// ParseRulesDocument parses a rules document from raw JSON.
func ParseRulesDocument(raw []byte) (*rules.Document, error) {
	var doc rules.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadPopulation reads and parses a population JSON file into candidates
// ordered as they appear in the file.
func LoadPopulation(path string) ([]*trait.Candidate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read population file: %w", err)
	}
	candidates, err := ParsePopulation(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse population file %s: %w", path, err)
	}
	return candidates, nil
}

// ParsePopulation parses the flat population array from raw JSON.
func ParsePopulation(raw []byte) ([]*trait.Candidate, error) {
	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	candidates := make([]*trait.Candidate, 0, len(rows))
	for i, row := range rows {
		c := &trait.Candidate{Traits: make(map[trait.Category]string)}

		if err := unmarshalField(row, "token_id", &c.TokenID); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		var typ string
		if err := unmarshalField(row, "type", &typ); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		c.Type = trait.Type(typ)

		var gender *string
		if err := unmarshalField(row, "gender", &gender); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if gender != nil {
			c.Gender = trait.Gender(*gender)
		}

		for _, cat := range trait.CategoryOrder {
			var val *string
			if err := unmarshalField(row, string(cat), &val); err != nil {
				return nil, fmt.Errorf("row %d (%s): %w", i, cat, err)
			}
			if val != nil && *val != "" {
				c.Traits[cat] = *val
			}
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func unmarshalField(row map[string]json.RawMessage, key string, out interface{}) error {
	raw, ok := row[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("field %s: %w", key, err)
	}
	return nil
}

// ToRecords converts candidates to their storage representation.
func ToRecords(candidates []*trait.Candidate) []storage.CandidateRecord {
	records := make([]storage.CandidateRecord, 0, len(candidates))
	for _, c := range candidates {
		traits := make(map[string]string, len(c.Traits))
		for cat, val := range c.Traits {
			traits[string(cat)] = val
		}
		records = append(records, storage.CandidateRecord{
			TokenID: c.TokenID,
			Type:    string(c.Type),
			Gender:  string(c.Gender),
			Traits:  traits,
		})
	}
	return records
}

// FromRecords converts stored candidates back to their domain form.
func FromRecords(records []storage.CandidateRecord) []*trait.Candidate {
	candidates := make([]*trait.Candidate, 0, len(records))
	for _, r := range records {
		traits := make(map[trait.Category]string, len(r.Traits))
		for cat, val := range r.Traits {
			traits[trait.Category(cat)] = val
		}
		candidates = append(candidates, &trait.Candidate{
			TokenID: r.TokenID,
			Type:    trait.Type(r.Type),
			Gender:  trait.Gender(r.Gender),
			Traits:  traits,
		})
	}
	return candidates
}

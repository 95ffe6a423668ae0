package builder

import (
	"testing"

	"github.com/MeebitForge/MeebitStudio/server/internal/domain/rules"
	"github.com/MeebitForge/MeebitStudio/server/internal/domain/trait"
	"github.com/MeebitForge/MeebitStudio/server/internal/events"
)

func testIndex() *rules.Index {
	return rules.NewIndex(&rules.Document{
		Metadata: rules.Metadata{
			TotalMeebits: 20000,
			Types:        map[string]int{"Human": 15000, "Robot": 1000},
		},
		TypeLevelRules: map[string]rules.TypeRules{
			"Human": {Count: 15000, AvailableTraits: map[string]int{
				"shirt": 14000, "shirt_color": 14000, "hat": 6000,
				"glasses": 4000, "hair_style": 12000, "beard": 5000, "pants": 13000,
			}},
			"Robot": {Count: 1000, AvailableTraits: map[string]int{"shirt": 900}},
		},
		PerTypeValuePools: map[string]map[string]rules.ValuePool{
			"Human": {
				"shirt":       {"Hoodie": 1200, "Suit": 300},
				"shirt_color": {"Red": 2000},
				"hat":         {"Brimmed": 200, "Cap": 900},
				"glasses":     {"Sunglasses": 700},
				"hair_style":  {"Mohawk": 150},
				"beard":       {"Full": 800},
				"pants":       {"Skirt": 600},
			},
			"Robot": {"shirt": {"Jersey": 100}},
		},
		ColorMappings: map[string][]rules.ColorMapping{
			"shirt -> shirt_color": {{Value: "Suit", Classification: rules.NeverHasColor}},
		},
		CategoryExclusions: []rules.CategoryExclusion{
			{Categories: []string{"hat", "glasses"}},
		},
		ValueExclusions: []rules.ValueExclusion{
			{TraitA: "hair_style=Mohawk", TraitB: "hat=Brimmed"},
		},
		GenderClassification: rules.GenderClassification{
			MaleOnly:   []rules.GenderedTrait{{Category: "beard", Value: "Full"}},
			FemaleOnly: []rules.GenderedTrait{{Category: "pants", Value: "Skirt"}},
		},
	})
}

func testManager() (*Manager, *events.EventLog) {
	el := events.NewEventLog(nil)
	return NewManager(testIndex(), el, nil), el
}

func TestSelectTraitRejectsUnavailable(t *testing.T) {
	m, _ := testManager()
	s := m.Create()

	if err := s.SelectTrait(trait.CategoryHairStyle, "Mohawk"); err != nil {
		t.Fatalf("Mohawk selection failed: %v", err)
	}
	err := s.SelectTrait(trait.CategoryHat, "Brimmed")
	if err == nil {
		t.Fatal("Expected Brimmed to be rejected while Mohawk is selected")
	}
}

func TestSelectTraitClearsExcludedCategories(t *testing.T) {
	m, _ := testManager()
	s := m.Create()

	if err := s.SelectTrait(trait.CategoryGlasses, "Sunglasses"); err != nil {
		t.Fatalf("Sunglasses selection failed: %v", err)
	}
	if err := s.SelectTrait(trait.CategoryHat, "Cap"); err != nil {
		t.Fatalf("Cap selection failed: %v", err)
	}

	snap := s.Snapshot()
	if snap.Build[trait.CategoryGlasses] != "" {
		t.Error("Selecting a hat must clear the excluded glasses")
	}
	if snap.Build[trait.CategoryHat] != "Cap" {
		t.Errorf("Expected Cap in build, got %q", snap.Build[trait.CategoryHat])
	}
}

func TestSelectNeverHasColorClearsColor(t *testing.T) {
	m, _ := testManager()
	s := m.Create()

	if err := s.SelectTrait(trait.CategoryShirt, "Hoodie"); err != nil {
		t.Fatalf("Hoodie selection failed: %v", err)
	}
	if err := s.SelectTrait(trait.CategoryShirtColor, "Red"); err != nil {
		t.Fatalf("Red selection failed: %v", err)
	}
	if err := s.SelectTrait(trait.CategoryShirt, "Suit"); err != nil {
		t.Fatalf("Suit selection failed: %v", err)
	}

	snap := s.Snapshot()
	if snap.Build[trait.CategoryShirtColor] != "" {
		t.Error("Switching to a colorless shirt must clear the shirt color")
	}
}

func TestClearTraitClearsDependentColor(t *testing.T) {
	m, _ := testManager()
	s := m.Create()

	if err := s.SelectTrait(trait.CategoryShirt, "Hoodie"); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectTrait(trait.CategoryShirtColor, "Red"); err != nil {
		t.Fatal(err)
	}
	s.ClearTrait(trait.CategoryShirt)

	snap := s.Snapshot()
	if len(snap.Build) != 0 {
		t.Errorf("Clearing the shirt must also clear its color, build: %v", snap.Build)
	}
}

func TestSetGenderDropsMismatchedTraits(t *testing.T) {
	m, _ := testManager()
	s := m.Create()

	if err := s.SelectTrait(trait.CategoryBeard, "Full"); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectTrait(trait.CategoryPants, "Skirt"); err != nil {
		t.Fatal(err)
	}

	s.SetGender(trait.GenderFemale)
	snap := s.Snapshot()
	if snap.Build[trait.CategoryBeard] != "" {
		t.Error("Female gender must drop the male-only beard")
	}
	if snap.Build[trait.CategoryPants] != "Skirt" {
		t.Error("Female-only skirt must survive a female gender selection")
	}
}

func TestSetTypeResetsSession(t *testing.T) {
	m, _ := testManager()
	s := m.Create()

	if err := s.SelectTrait(trait.CategoryShirt, "Hoodie"); err != nil {
		t.Fatal(err)
	}
	s.SetGender(trait.GenderMale)
	if err := s.SetType(trait.TypeRobot); err != nil {
		t.Fatalf("SetType failed: %v", err)
	}

	snap := s.Snapshot()
	if snap.Type != trait.TypeRobot || snap.Gender != "" || len(snap.Build) != 0 {
		t.Errorf("Type change must reset gender and build, got %+v", snap)
	}

	if err := s.SetType("Unicorn"); err == nil {
		t.Error("Expected unknown type to be rejected")
	}
}

func TestSessionEventsEmitted(t *testing.T) {
	m, el := testManager()
	s := m.Create()

	if err := s.SelectTrait(trait.CategoryGlasses, "Sunglasses"); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectTrait(trait.CategoryHat, "Cap"); err != nil {
		t.Fatal(err)
	}

	history := el.GetBySession(s.ID)
	var types []events.EventType
	for _, e := range history {
		types = append(types, e.Type)
	}
	want := []events.EventType{
		events.EventTypeSessionStarted,
		events.EventTypeTraitSelected,
		events.EventTypeTraitSelected,
		events.EventTypeTraitRepaired,
	}
	if len(types) != len(want) {
		t.Fatalf("Expected %d events, got %d: %v", len(want), len(types), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], types[i])
		}
	}
}

func TestManagerLifecycle(t *testing.T) {
	m, _ := testManager()
	s := m.Create()

	if m.Count() != 1 {
		t.Fatalf("Expected 1 session, got %d", m.Count())
	}
	got, err := m.Get(s.ID)
	if err != nil || got.ID != s.ID {
		t.Fatalf("Get failed: %v", err)
	}
	if err := m.Close(s.ID); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := m.Get(s.ID); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
	if err := m.Close(s.ID); err != ErrSessionNotFound {
		t.Errorf("Closing twice should report ErrSessionNotFound, got %v", err)
	}
}

func TestSwapIndexAffectsNewSessionsOnly(t *testing.T) {
	m, _ := testManager()
	old := m.Create()

	m.SwapIndex(rules.NewIndex(&rules.Document{
		Metadata: rules.Metadata{Types: map[string]int{"Robot": 1000}},
		TypeLevelRules: map[string]rules.TypeRules{
			"Robot": {Count: 1000, AvailableTraits: map[string]int{"shirt": 900}},
		},
		PerTypeValuePools: map[string]map[string]rules.ValuePool{
			"Robot": {"shirt": {"Jersey": 100}},
		},
	}))

	// The old session still resolves against the index it started with.
	if err := old.SelectTrait(trait.CategoryShirt, "Hoodie"); err != nil {
		t.Errorf("Existing session lost its index after a reload: %v", err)
	}

	fresh := m.Create()
	if err := fresh.SetType(trait.TypeHuman); err == nil {
		t.Error("New session should only know types from the reloaded index")
	}
}

package icons

import "testing"

func TestTraitsString(t *testing.T) {
	tests := []struct {
		name   string
		traits Traits
		want   string
	}{
		{name: "scored", traits: scores(4, 4, 3, 3, 4), want: "A4 C4 E3 N3 O4"},
		{name: "undefined", traits: Traits{}, want: "-"},
		{name: "partial", traits: Traits{Agreeableness: LevelHigh}, want: "-"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.traits.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if got := LevelVeryHigh.String(); got != "very high" {
		t.Fatalf("LevelVeryHigh = %q", got)
	}
	if got := Level(9).String(); got != "undefined" {
		t.Fatalf("Level(9) = %q", got)
	}
	if Level(9).Valid() {
		t.Fatal("expected Level(9) to be invalid")
	}
}

func TestIconTraitAnnotations(t *testing.T) {
	for _, c := range Collections() {
		for _, def := range c.Definitions() {
			for _, level := range def.Traits.levels() {
				if !level.Valid() {
					t.Fatalf("%s/%s has invalid level %d", c.ID(), def.ID, level)
				}
			}
			wantDefined := c.ID() != CollectionMeta && def.ID != "cipher"
			if def.Traits.Defined() != wantDefined {
				t.Fatalf("%s/%s traits defined = %v, want %v", c.ID(), def.ID, def.Traits.Defined(), wantDefined)
			}
		}
	}

	architect, err := Archetypes().Definition("architect")
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	if got := architect.Traits.String(); got != "A2 C4 E2 N2 O4" {
		t.Fatalf("architect traits = %q", got)
	}

	picket, err := GreenEmber().Definition("picket")
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	if picket.Traits.Neuroticism != LevelVeryHigh {
		t.Fatalf("picket neuroticism = %s", picket.Traits.Neuroticism)
	}
}

func TestAnalystAndStoicShareProfile(t *testing.T) {
	analyst, err := Archetypes().Definition("analyst")
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	stoic, err := Archetypes().Definition("stoic")
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	if analyst.Traits != stoic.Traits {
		t.Fatalf("analyst %s != stoic %s", analyst.Traits, stoic.Traits)
	}
}

package gazetteer

import (
	"testing"
)

func testStations() []Station {
	return []Station{
		{Name: "Paris Gare de Lyon", UIC: "87686006", Lat: 48.8443, Lon: 2.3730},
		{Name: "Paris Montparnasse", UIC: "87391003", Lat: 48.8409, Lon: 2.3219},
		{Name: "Lyon Part Dieu", UIC: "87723197", Lat: 45.7606, Lon: 4.8590},
		{Name: "Lyon Perrache", UIC: "87722025", Lat: 45.7485, Lon: 4.8260},
		{Name: "Gare de Brest", UIC: "87474007", Lat: 48.3884, Lon: -4.4288},
	}
}

func testGazetteer(t *testing.T) *Gazetteer {
	t.Helper()
	cities := []string{
		"Paris", "Lyon", "Marseille", "Brest", "Toulouse",
		"Valence", "Saint-Étienne", "Besançon",
		"Sainte-Foy", "Sainte Foy",
	}
	g, err := New(cities, testStations(), 85)
	if err != nil {
		t.Fatalf("failed to build gazetteer: %v", err)
	}
	return g
}

func TestNew_EmptyCityList(t *testing.T) {
	if _, err := New(nil, nil, 0); err == nil {
		t.Error("expected an error for an empty city list")
	}
	if _, err := New([]string{"", "  ", "??"}, nil, 0); err == nil {
		t.Error("expected an error when no city survives normalization")
	}
}

func TestNew_CollapsesDuplicates(t *testing.T) {
	g, err := New([]string{"Paris", "Paris", " Paris "}, nil, 0)
	if err != nil {
		t.Fatalf("failed to build gazetteer: %v", err)
	}
	if g.CityCount() != 1 {
		t.Errorf("expected 1 city, got %d", g.CityCount())
	}
	if places := g.LookupExact("paris"); len(places) != 1 {
		t.Errorf("expected 1 place under paris, got %d", len(places))
	}
}

func TestLookupExact(t *testing.T) {
	g := testGazetteer(t)

	places := g.LookupExact("saint etienne")
	if len(places) != 1 {
		t.Fatalf("expected 1 place, got %d", len(places))
	}
	if places[0].Canonical != "Saint-Étienne" || places[0].Key != "saint etienne" {
		t.Errorf("unexpected place %+v", places[0])
	}

	// Lookup is by normalized key only.
	if g.LookupExact("PARIS") != nil {
		t.Error("expected no places under a non-normalized key")
	}
	if g.LookupExact("nantes") != nil {
		t.Error("expected no places under an unknown key")
	}
}

func TestLookupExact_HomonymsShareKey(t *testing.T) {
	g := testGazetteer(t)

	places := g.LookupExact("sainte foy")
	if len(places) != 2 {
		t.Fatalf("expected 2 places under sainte foy, got %d", len(places))
	}
	// Alphabetical by canonical name.
	if places[0].Canonical != "Sainte Foy" || places[1].Canonical != "Sainte-Foy" {
		t.Errorf("unexpected ordering: %q then %q", places[0].Canonical, places[1].Canonical)
	}
}

func TestIsAmbiguousPersonalName(t *testing.T) {
	g := testGazetteer(t)

	tests := []struct {
		key      string
		expected bool
	}{
		{key: "paris", expected: true},
		{key: "etienne", expected: true},
		{key: "francois", expected: true},
		{key: "saint etienne", expected: false},
		{key: "brest", expected: false},
		{key: "", expected: false},
	}

	for _, tt := range tests {
		if got := g.IsAmbiguousPersonalName(tt.key); got != tt.expected {
			t.Errorf("IsAmbiguousPersonalName(%q) = %v, want %v", tt.key, got, tt.expected)
		}
	}
}

func TestKeys_Sorted(t *testing.T) {
	g := testGazetteer(t)
	keys := g.Keys()
	if len(keys) != g.CityCount() {
		t.Fatalf("expected %d keys, got %d", g.CityCount(), len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
}

func TestStationsForCity(t *testing.T) {
	g := testGazetteer(t)

	t.Run("prefix beats containment", func(t *testing.T) {
		stations := g.StationsForCity("lyon")
		if len(stations) != 2 {
			t.Fatalf("expected 2 stations, got %d", len(stations))
		}
		for _, s := range stations {
			if s.Name == "Paris Gare de Lyon" {
				t.Error("containment match must not override prefix matches")
			}
		}
	})

	t.Run("containment fallback", func(t *testing.T) {
		stations := g.StationsForCity("brest")
		if len(stations) != 1 || stations[0].Name != "Gare de Brest" {
			t.Fatalf("expected the contained station, got %+v", stations)
		}
	})

	t.Run("unknown city", func(t *testing.T) {
		if stations := g.StationsForCity("nantes"); len(stations) != 0 {
			t.Errorf("expected no stations, got %d", len(stations))
		}
	})

	t.Run("empty key", func(t *testing.T) {
		if stations := g.StationsForCity(""); stations != nil {
			t.Errorf("expected nil, got %+v", stations)
		}
	})
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		haystack string
		word     string
		expected bool
	}{
		{"paris gare de lyon", "lyon", true},
		{"paris gare de lyon", "gare", true},
		{"paris gare de lyon", "paris", true},
		{"equivalence", "valence", false},
		{"saint etienne", "etienne", true},
		{"sainte", "saint", false},
		{"lyon", "lyon", true},
		{"lyon part dieu", "part", true},
		{"lyon", "", false},
		{"", "lyon", false},
	}

	for _, tt := range tests {
		if got := ContainsWord(tt.haystack, tt.word); got != tt.expected {
			t.Errorf("ContainsWord(%q, %q) = %v, want %v", tt.haystack, tt.word, got, tt.expected)
		}
	}
}

func TestLookupFuzzy(t *testing.T) {
	g := testGazetteer(t)

	t.Run("close misspelling found", func(t *testing.T) {
		cands := g.LookupFuzzy("marseile")
		if len(cands) == 0 {
			t.Fatal("expected at least one candidate")
		}
		if cands[0].Place.Key != "marseille" {
			t.Errorf("expected marseille first, got %q", cands[0].Place.Key)
		}
		if cands[0].Score < g.SimilarityFloor() {
			t.Errorf("candidate score %d below the floor %d", cands[0].Score, g.SimilarityFloor())
		}
	})

	t.Run("scores ordered and floored", func(t *testing.T) {
		cands := g.LookupFuzzy("pariss")
		for i, c := range cands {
			if c.Score < g.SimilarityFloor() {
				t.Errorf("candidate %d below floor: %+v", i, c)
			}
			if i > 0 && cands[i-1].Score < c.Score {
				t.Errorf("candidates not sorted by descending score at %d", i)
			}
		}
	})

	t.Run("nothing close", func(t *testing.T) {
		if cands := g.LookupFuzzy("wxyz"); len(cands) != 0 {
			t.Errorf("expected no candidates, got %+v", cands)
		}
	})

	t.Run("empty key", func(t *testing.T) {
		if cands := g.LookupFuzzy(""); cands != nil {
			t.Errorf("expected nil, got %+v", cands)
		}
	})
}

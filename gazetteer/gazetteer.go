package gazetteer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/travel-order-resolver/nlp"
)

// PlaceName is a canonical place identifier plus its normalized key. Two
// PlaceNames with equal keys name the same entity for matching purposes.
type PlaceName struct {
	Canonical string
	Key       string
}

// Station is one row of the national station table.
type Station struct {
	Name string
	UIC  string
	Lat  float64
	Lon  float64
}

// Candidate is a scored fuzzy-lookup result.
type Candidate struct {
	Place PlaceName
	Score int
}

// Names that are valid French cities and common first names at the same
// time. Fuzzy correction is never applied to them.
var ambiguousPersonalNames = []string{
	"Albert", "Paris", "Lourdes", "Florence", "Valence", "Angers",
	"Bernard", "Claude", "Denis", "Étienne", "François", "Henri",
	"Jean", "Louis", "Marc", "Marie", "Michel", "Pierre", "Paul",
}

// Gazetteer is the immutable lookup structure over known place names.
type Gazetteer struct {
	cities    map[string][]PlaceName
	keys      []string
	ambiguous map[string]struct{}
	stations  []Station
	floor     int
	scanner   *Scanner
}

const defaultSimilarityFloor = 85

// New builds a gazetteer from a canonical city list and a station table.
// Duplicate canonical names collapse; distinct names sharing a normalized
// key are kept side by side and surface as AMBIGUOUS at resolution time.
func New(cities []string, stations []Station, similarityFloor int) (*Gazetteer, error) {
	if similarityFloor <= 0 {
		similarityFloor = defaultSimilarityFloor
	}
	g := &Gazetteer{
		cities:    make(map[string][]PlaceName, len(cities)),
		ambiguous: make(map[string]struct{}, len(ambiguousPersonalNames)),
		stations:  stations,
		floor:     similarityFloor,
	}
	seen := map[string]struct{}{}
	for _, c := range cities {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		key := nlp.Normalize(c)
		if key == "" {
			continue
		}
		g.cities[key] = append(g.cities[key], PlaceName{Canonical: c, Key: key})
	}
	if len(g.cities) == 0 {
		return nil, fmt.Errorf("gazetteer: empty city list")
	}
	g.keys = make([]string, 0, len(g.cities))
	for k := range g.cities {
		g.keys = append(g.keys, k)
		sort.Slice(g.cities[k], func(i, j int) bool {
			return g.cities[k][i].Canonical < g.cities[k][j].Canonical
		})
	}
	sort.Strings(g.keys)
	for _, n := range ambiguousPersonalNames {
		g.ambiguous[nlp.Normalize(n)] = struct{}{}
	}
	sc, err := newScanner(g.keys)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: build scanner: %w", err)
	}
	g.scanner = sc
	return g, nil
}

// LookupExact returns the canonical places registered under a normalized
// key, nil when the key is unknown.
func (g *Gazetteer) LookupExact(key string) []PlaceName {
	return g.cities[key]
}

// IsAmbiguousPersonalName reports whether a normalized key belongs to the
// curated first-name set.
func (g *Gazetteer) IsAmbiguousPersonalName(key string) bool {
	_, ok := g.ambiguous[key]
	return ok
}

// CityCount returns the number of distinct normalized city keys.
func (g *Gazetteer) CityCount() int { return len(g.cities) }

// Keys returns all normalized city keys in sorted order.
func (g *Gazetteer) Keys() []string { return g.keys }

// StationCount returns the number of station table rows.
func (g *Gazetteer) StationCount() int { return len(g.stations) }

// Stations returns the full station table in load order.
func (g *Gazetteer) Stations() []Station { return g.stations }

// StationsForCity returns the stations plausibly belonging to a city, by
// normalized-name prefix first and whole-name containment as fallback,
// mirroring how the national table prefixes station names with their city.
func (g *Gazetteer) StationsForCity(cityKey string) []Station {
	if cityKey == "" {
		return nil
	}
	var prefixed, contained []Station
	for _, s := range g.stations {
		name := nlp.Normalize(s.Name)
		switch {
		case name == cityKey || strings.HasPrefix(name, cityKey+" "):
			prefixed = append(prefixed, s)
		case ContainsWord(name, cityKey):
			contained = append(contained, s)
		}
	}
	if len(prefixed) > 0 {
		return prefixed
	}
	return contained
}

// ContainsWord reports whether word occurs in haystack on word boundaries.
// Both strings must already be normalized.
func ContainsWord(haystack, word string) bool {
	if word == "" {
		return false
	}
	idx := 0
	for {
		i := strings.Index(haystack[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		leftOK := start == 0 || haystack[start-1] == ' '
		rightOK := end == len(haystack) || haystack[end] == ' '
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}

package gazetteer

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// LookupFuzzy ranks every known city key against the given normalized key
// and returns the candidates scoring at or above the similarity floor,
// ordered by descending score then ascending canonical name. Below-floor
// candidates are never returned; an empty result means the caller should
// treat the mention as unresolved rather than guess.
func (g *Gazetteer) LookupFuzzy(key string) []Candidate {
	if key == "" {
		return nil
	}
	var out []Candidate
	for _, k := range g.keys {
		score := fuzzy.Ratio(key, k)
		if score < g.floor {
			continue
		}
		for _, p := range g.cities[k] {
			out = append(out, Candidate{Place: p, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Place.Canonical < out[j].Place.Canonical
	})
	return out
}

// SimilarityFloor returns the configured minimum fuzzy score.
func (g *Gazetteer) SimilarityFloor() int { return g.floor }

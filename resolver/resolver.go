package resolver

import (
	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
	"github.com/theoremus-urban-solutions/travel-order-resolver/nlp"
)

const defaultTieBreakMargin = 5

// Resolver maps extracted mentions to canonical places.
type Resolver struct {
	gaz    *gazetteer.Gazetteer
	margin int
}

// New builds a Resolver over a gazetteer. tieBreakMargin is the similarity
// lead a fuzzy winner must have over the runner-up; zero selects the default.
func New(gaz *gazetteer.Gazetteer, tieBreakMargin int) *Resolver {
	if tieBreakMargin <= 0 {
		tieBreakMargin = defaultTieBreakMargin
	}
	return &Resolver{gaz: gaz, margin: tieBreakMargin}
}

// Resolve maps one mention to a place. UNRESOLVED and AMBIGUOUS are regular
// outcomes; the caller decides what they mean for the sentence.
func (r *Resolver) Resolve(m *nlp.Mention) *ResolvedEntity {
	if m == nil || m.Norm == "" {
		return &ResolvedEntity{Status: EntityUnresolved}
	}
	key := m.Norm

	if places := r.gaz.LookupExact(key); len(places) > 0 {
		if len(places) == 1 {
			return resolvedEntity(m, places[0], 100)
		}
		return &ResolvedEntity{
			Mention:    m,
			Status:     EntityAmbiguous,
			Candidates: asCandidates(places, 100),
		}
	}

	if ent := r.resolveEmbedded(m, key); ent != nil {
		return ent
	}

	// A name that doubles as a French first name is never fuzzy-corrected.
	if r.gaz.IsAmbiguousPersonalName(key) {
		return &ResolvedEntity{Mention: m, Status: EntityUnresolved}
	}

	return r.resolveFuzzy(m, key)
}

// ResolveKey resolves a key already known to be normalized, bypassing the
// fuzzy stage. Used when a city name was located by scanning rather than
// extracted from a marker pattern.
func (r *Resolver) ResolveKey(m *nlp.Mention, key string) *ResolvedEntity {
	places := r.gaz.LookupExact(key)
	switch len(places) {
	case 0:
		return &ResolvedEntity{Mention: m, Status: EntityUnresolved}
	case 1:
		return resolvedEntity(m, places[0], 100)
	default:
		return &ResolvedEntity{
			Mention:    m,
			Status:     EntityAmbiguous,
			Candidates: asCandidates(places, 100),
		}
	}
}

// resolveEmbedded recovers a city name buried in a longer span, as in
// "la gare de Lyon". The leftmost embedded city wins; the others stay
// attached as candidates so the scorer can see them.
func (r *Resolver) resolveEmbedded(m *nlp.Mention, key string) *ResolvedEntity {
	mentions := r.gaz.Scanner().Scan(key)
	if len(mentions) == 0 {
		return nil
	}
	var distinct []string
	seen := map[string]struct{}{}
	for _, cm := range mentions {
		if _, dup := seen[cm.Key]; dup {
			continue
		}
		seen[cm.Key] = struct{}{}
		distinct = append(distinct, cm.Key)
	}

	places := r.gaz.LookupExact(distinct[0])
	if len(places) > 1 {
		return &ResolvedEntity{
			Mention:    m,
			Status:     EntityAmbiguous,
			Candidates: asCandidates(places, 100),
		}
	}
	ent := &ResolvedEntity{
		Mention:    m,
		Status:     EntityResolved,
		Kind:       MatchNormalized,
		Place:      places[0],
		Similarity: 100,
	}
	for _, k := range distinct[1:] {
		ent.Candidates = append(ent.Candidates, asCandidates(r.gaz.LookupExact(k), 100)...)
	}
	return ent
}

// resolveFuzzy accepts a correction only when the best candidate clears the
// floor strictly and leads the runner-up by more than the tie-break margin.
func (r *Resolver) resolveFuzzy(m *nlp.Mention, key string) *ResolvedEntity {
	cands := r.gaz.LookupFuzzy(key)
	if len(cands) == 0 {
		return &ResolvedEntity{Mention: m, Status: EntityUnresolved}
	}
	best := cands[0]
	if best.Score <= r.gaz.SimilarityFloor() {
		return &ResolvedEntity{Mention: m, Status: EntityUnresolved, Candidates: cands}
	}
	if len(cands) > 1 && best.Score-cands[1].Score <= r.margin {
		return &ResolvedEntity{Mention: m, Status: EntityUnresolved, Candidates: cands}
	}
	return &ResolvedEntity{
		Mention:    m,
		Status:     EntityResolved,
		Kind:       MatchFuzzy,
		Place:      best.Place,
		Candidates: cands[1:],
		Similarity: best.Score,
	}
}

func resolvedEntity(m *nlp.Mention, p gazetteer.PlaceName, score int) *ResolvedEntity {
	kind := MatchNormalized
	if m.Text == p.Canonical {
		kind = MatchExact
	}
	return &ResolvedEntity{
		Mention:    m,
		Status:     EntityResolved,
		Kind:       kind,
		Place:      p,
		Similarity: score,
	}
}

func asCandidates(places []gazetteer.PlaceName, score int) []gazetteer.Candidate {
	out := make([]gazetteer.Candidate, 0, len(places))
	for _, p := range places {
		out = append(out, gazetteer.Candidate{Place: p, Score: score})
	}
	return out
}

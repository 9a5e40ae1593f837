package resolver

import (
	"strings"

	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
	"github.com/theoremus-urban-solutions/travel-order-resolver/nlp"
)

// Confidence bases from the literal-presence heuristic: how many of the two
// resolved names appear verbatim, case folded, in the raw sentence.
const (
	baseBothLiteral = 0.92
	baseOneLiteral  = 0.82
	baseNoLiteral   = 0.75
)

// rejectConfidence is reported for pairs that fail resolution outright.
const rejectConfidence = 0.15

const (
	defaultAcceptThreshold = 0.5

	// Every extra candidate attached to a resolved city shaves a little
	// confidence, up to the cap per side.
	ambiguityPenaltyStep = 0.01
	ambiguityPenaltyCap  = 0.10

	contaminationPenalty = 0.08

	// Tokens shorter than this never count as contamination evidence.
	minContaminationToken = 3
)

// Scorer computes explainable confidence values over resolved pairs.
type Scorer struct {
	gaz             *gazetteer.Gazetteer
	acceptThreshold float64
}

// NewScorer builds a Scorer. A non-positive threshold selects the default.
func NewScorer(gaz *gazetteer.Gazetteer, acceptThreshold float64) *Scorer {
	if acceptThreshold <= 0 {
		acceptThreshold = defaultAcceptThreshold
	}
	return &Scorer{gaz: gaz, acceptThreshold: acceptThreshold}
}

// Score folds the two entity resolutions into a confidence value and a
// decision. The penalty terms are always computed and reported, even when
// they do not change the decision.
func (s *Scorer) Score(origin, destination *ResolvedEntity, raw string) (float64, Decision, Breakdown) {
	var bd Breakdown
	if !usable(origin) || !usable(destination) {
		bd.Base = rejectConfidence
		return rejectConfidence, DecisionReject, bd
	}
	if origin.Resolved() && destination.Resolved() && origin.Key() == destination.Key() {
		bd.Base = rejectConfidence
		return rejectConfidence, DecisionReject, bd
	}

	low := strings.ToLower(raw)
	bd.OriginLiteral = strings.Contains(low, strings.ToLower(bestCanonical(origin)))
	bd.DestinationLiteral = strings.Contains(low, strings.ToLower(bestCanonical(destination)))
	switch {
	case bd.OriginLiteral && bd.DestinationLiteral:
		bd.Base = baseBothLiteral
	case bd.OriginLiteral || bd.DestinationLiteral:
		bd.Base = baseOneLiteral
	default:
		bd.Base = baseNoLiteral
	}

	bd.FuzzyDamp = fuzzyDamp(origin) * fuzzyDamp(destination)
	bd.AmbiguityPenalty = s.ambiguityPenalty(origin) + s.ambiguityPenalty(destination)
	if s.contaminated(origin, destination) || s.contaminated(destination, origin) {
		bd.ContaminationPenalty = contaminationPenalty
	}

	conf := bd.Base*bd.FuzzyDamp - bd.AmbiguityPenalty - bd.ContaminationPenalty
	if conf < 0 {
		conf = 0
	} else if conf > 1 {
		conf = 1
	}

	if origin.Status == EntityAmbiguous || destination.Status == EntityAmbiguous {
		return conf, DecisionAsk, bd
	}
	if conf < s.acceptThreshold {
		return conf, DecisionAsk, bd
	}
	return conf, DecisionAccept, bd
}

func usable(e *ResolvedEntity) bool {
	return e.Resolved() || (e != nil && e.Status == EntityAmbiguous)
}

// fuzzyDamp scales confidence down in proportion to the fuzzy-match distance;
// exact and normalized matches pass through untouched.
func fuzzyDamp(e *ResolvedEntity) float64 {
	if e.Resolved() && e.Kind == MatchFuzzy {
		return float64(e.Similarity) / 100
	}
	return 1
}

func bestCanonical(e *ResolvedEntity) string {
	if e.Resolved() {
		return e.Place.Canonical
	}
	if len(e.Candidates) > 0 {
		return e.Candidates[0].Place.Canonical
	}
	return ""
}

func bestKey(e *ResolvedEntity) string {
	if e.Resolved() {
		return e.Place.Key
	}
	if len(e.Candidates) > 0 {
		return e.Candidates[0].Place.Key
	}
	return ""
}

// ambiguityPenalty grows with the number of distinct downstream candidates
// attached to a side: homonym places for an AMBIGUOUS entity, stations under
// the city name for a resolved one.
func (s *Scorer) ambiguityPenalty(e *ResolvedEntity) float64 {
	n := 0
	switch {
	case e.Status == EntityAmbiguous:
		n = len(e.Candidates)
	case e.Resolved():
		n = len(s.gaz.StationsForCity(e.Key()))
	}
	if n <= 1 {
		return 0
	}
	p := ambiguityPenaltyStep * float64(n-1)
	if p > ambiguityPenaltyCap {
		p = ambiguityPenaltyCap
	}
	return p
}

// contaminated reports whether tokens of b's resolved name leak into a's
// orbit, either the mention span a was read from or the station names under
// a's city. Tokens shared by both names do not count.
func (s *Scorer) contaminated(a, b *ResolvedEntity) bool {
	bKey := bestKey(b)
	aKey := bestKey(a)
	if bKey == "" || aKey == "" {
		return false
	}
	for _, tok := range strings.Fields(bKey) {
		if len(tok) < minContaminationToken {
			continue
		}
		if gazetteer.ContainsWord(aKey, tok) {
			continue
		}
		if a.Mention != nil && gazetteer.ContainsWord(a.Mention.Norm, tok) {
			return true
		}
		for _, st := range s.gaz.StationsForCity(aKey) {
			if gazetteer.ContainsWord(nlp.Normalize(st.Name), tok) {
				return true
			}
		}
	}
	return false
}

package resolver

import (
	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
	"github.com/theoremus-urban-solutions/travel-order-resolver/nlp"
)

// MatchKind says how a mention was mapped to its place name.
type MatchKind string

const (
	MatchExact      MatchKind = "EXACT"
	MatchNormalized MatchKind = "NORMALIZED"
	MatchFuzzy      MatchKind = "FUZZY"
)

// EntityStatus is the outcome class of resolving one mention.
type EntityStatus string

const (
	EntityResolved   EntityStatus = "RESOLVED"
	EntityAmbiguous  EntityStatus = "AMBIGUOUS"
	EntityUnresolved EntityStatus = "UNRESOLVED"
)

// Decision is the scorer's verdict over a resolved pair.
type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionReject Decision = "REJECT"
	DecisionAsk    Decision = "ASK"
)

// ResolvedEntity is the result of resolving one mention. Place and Kind are
// meaningful when Status is RESOLVED; Candidates carries the full candidate
// set for AMBIGUOUS entities and the alternatives considered for the others.
// Similarity is the match score on the 0..100 fuzzy scale, 100 for exact and
// normalized matches.
type ResolvedEntity struct {
	Mention    *nlp.Mention          `json:"Mention,omitempty"`
	Status     EntityStatus          `json:"Status"`
	Kind       MatchKind             `json:"Kind,omitempty"`
	Place      gazetteer.PlaceName   `json:"Place,omitempty"`
	Candidates []gazetteer.Candidate `json:"Candidates,omitempty"`
	Similarity int                   `json:"Similarity,omitempty"`
}

// Resolved reports whether the entity settled on exactly one place.
func (e *ResolvedEntity) Resolved() bool { return e != nil && e.Status == EntityResolved }

// Key returns the normalized key of the resolved place, empty otherwise.
func (e *ResolvedEntity) Key() string {
	if !e.Resolved() {
		return ""
	}
	return e.Place.Key
}

// Breakdown itemizes how a confidence value was computed.
type Breakdown struct {
	Base                 float64 `json:"Base"`
	OriginLiteral        bool    `json:"OriginLiteral"`
	DestinationLiteral   bool    `json:"DestinationLiteral"`
	FuzzyDamp            float64 `json:"FuzzyDamp"`
	AmbiguityPenalty     float64 `json:"AmbiguityPenalty"`
	ContaminationPenalty float64 `json:"ContaminationPenalty"`
}

// Resolution is the final verdict for one sentence.
type Resolution struct {
	SentenceID  string          `json:"SentenceId"`
	Sentence    string          `json:"Sentence"`
	Pattern     string          `json:"Pattern,omitempty"`
	Origin      *ResolvedEntity `json:"Origin,omitempty"`
	Destination *ResolvedEntity `json:"Destination,omitempty"`
	Confidence  float64         `json:"Confidence"`
	Decision    Decision        `json:"Decision"`
	Breakdown   Breakdown       `json:"Breakdown"`
}

// Accepted reports whether the sentence yielded a usable city pair.
func (r Resolution) Accepted() bool { return r.Decision == DecisionAccept }

package tracking

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/travel-order-resolver/journey"
	"github.com/theoremus-urban-solutions/travel-order-resolver/resolver"
	"github.com/theoremus-urban-solutions/travel-order-resolver/utils"
)

// Tracker accumulates outcome counts. Safe for concurrent use; batch workers
// and request handlers record into one shared instance.
type Tracker struct {
	mu          sync.Mutex
	startedAt   time.Time
	sentences   int
	decisions   map[string]int
	matchKinds  map[string]int
	journeys    map[string]int
	itineraries map[string]int
}

// Summary is a point-in-time copy of the tracker's counts.
type Summary struct {
	StartedAt   string         `json:"StartedAt"`
	Sentences   int            `json:"Sentences"`
	Decisions   map[string]int `json:"Decisions"`
	MatchKinds  map[string]int `json:"MatchKinds"`
	Journeys    map[string]int `json:"Journeys,omitempty"`
	Itineraries map[string]int `json:"Itineraries,omitempty"`
}

func NewTracker() *Tracker {
	return &Tracker{
		startedAt:   time.Now(),
		decisions:   map[string]int{},
		matchKinds:  map[string]int{},
		journeys:    map[string]int{},
		itineraries: map[string]int{},
	}
}

// RecordResolution tallies one resolved sentence: its decision and the match
// kind of both sides.
func (t *Tracker) RecordResolution(res resolver.Resolution) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sentences++
	t.decisions[string(res.Decision)]++
	t.matchKinds[entityKind(res.Origin)]++
	t.matchKinds[entityKind(res.Destination)]++
}

// RecordPlan tallies one pathfinder outcome, splitting planned journeys by
// itinerary kind.
func (t *Tracker) RecordPlan(p journey.Plan) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.journeys[p.Status]++
	if p.Status == journey.StatusPlanned && p.Itinerary != nil {
		t.itineraries[p.Itinerary.Kind]++
	}
}

// Counts returns a snapshot safe to serialize while recording continues.
func (t *Tracker) Counts() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Summary{
		StartedAt:   utils.Iso8601FromUnixSeconds(t.startedAt.Unix()),
		Sentences:   t.sentences,
		Decisions:   copyCounts(t.decisions),
		MatchKinds:  copyCounts(t.matchKinds),
		Journeys:    copyCounts(t.journeys),
		Itineraries: copyCounts(t.itineraries),
	}
}

// LogSummary emits one structured line with the current counts. Batch runs
// call it once at the end; the server calls it on shutdown.
func (t *Tracker) LogSummary() {
	s := t.Counts()
	zap.L().Info("run summary",
		zap.String("day", utils.Iso8601DateFromUnixSeconds(t.startedAt.Unix())),
		zap.Int("sentences", s.Sentences),
		zap.Any("decisions", s.Decisions),
		zap.Any("matchKinds", s.MatchKinds),
		zap.Any("journeys", s.Journeys),
		zap.Any("itineraries", s.Itineraries),
	)
}

func entityKind(e *resolver.ResolvedEntity) string {
	switch {
	case e == nil:
		return "MISSING"
	case e.Status == resolver.EntityResolved:
		return string(e.Kind)
	default:
		return string(e.Status)
	}
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

package tracking

import (
	"sync"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/travel-order-resolver/journey"
	"github.com/theoremus-urban-solutions/travel-order-resolver/resolver"
)

func resolvedEntity(kind resolver.MatchKind) *resolver.ResolvedEntity {
	return &resolver.ResolvedEntity{Status: resolver.EntityResolved, Kind: kind}
}

func TestRecordResolution(t *testing.T) {
	tr := NewTracker()

	tr.RecordResolution(resolver.Resolution{
		Decision:    resolver.DecisionAccept,
		Origin:      resolvedEntity(resolver.MatchExact),
		Destination: resolvedEntity(resolver.MatchFuzzy),
	})
	tr.RecordResolution(resolver.Resolution{
		Decision:    resolver.DecisionReject,
		Destination: &resolver.ResolvedEntity{Status: resolver.EntityUnresolved},
	})
	tr.RecordResolution(resolver.Resolution{
		Decision:    resolver.DecisionAsk,
		Origin:      &resolver.ResolvedEntity{Status: resolver.EntityAmbiguous},
		Destination: resolvedEntity(resolver.MatchNormalized),
	})

	s := tr.Counts()
	if s.Sentences != 3 {
		t.Errorf("expected 3 sentences, got %d", s.Sentences)
	}
	for decision, want := range map[string]int{"ACCEPT": 1, "REJECT": 1, "ASK": 1} {
		if s.Decisions[decision] != want {
			t.Errorf("expected %d %s, got %d", want, decision, s.Decisions[decision])
		}
	}
	wantKinds := map[string]int{
		"EXACT": 1, "FUZZY": 1, "NORMALIZED": 1,
		"MISSING": 1, "UNRESOLVED": 1, "AMBIGUOUS": 1,
	}
	for kind, want := range wantKinds {
		if s.MatchKinds[kind] != want {
			t.Errorf("expected %d %s entities, got %d", want, kind, s.MatchKinds[kind])
		}
	}
	if _, err := time.Parse(time.RFC3339, s.StartedAt); err != nil {
		t.Errorf("expected RFC3339 StartedAt, got %q: %v", s.StartedAt, err)
	}
}

func TestRecordPlan(t *testing.T) {
	tr := NewTracker()

	tr.RecordPlan(journey.Plan{Status: journey.StatusPlanned, Itinerary: &journey.Itinerary{Kind: journey.KindDirect}})
	tr.RecordPlan(journey.Plan{Status: journey.StatusPlanned, Itinerary: &journey.Itinerary{Kind: journey.KindOneTransfer}})
	tr.RecordPlan(journey.Plan{Status: journey.StatusPlanned})
	tr.RecordPlan(journey.Plan{Status: journey.StatusNoRoute})
	tr.RecordPlan(journey.Plan{Status: journey.StatusUnknownCity})

	s := tr.Counts()
	if s.Journeys[journey.StatusPlanned] != 3 {
		t.Errorf("expected 3 planned, got %d", s.Journeys[journey.StatusPlanned])
	}
	if s.Journeys[journey.StatusNoRoute] != 1 || s.Journeys[journey.StatusUnknownCity] != 1 {
		t.Errorf("unexpected journey counts: %v", s.Journeys)
	}
	if s.Itineraries[journey.KindDirect] != 1 || s.Itineraries[journey.KindOneTransfer] != 1 {
		t.Errorf("unexpected itinerary counts: %v", s.Itineraries)
	}
}

func TestCounts_SnapshotIsIndependent(t *testing.T) {
	tr := NewTracker()
	tr.RecordResolution(resolver.Resolution{Decision: resolver.DecisionAccept})

	snap := tr.Counts()
	snap.Decisions["ACCEPT"] = 99

	if got := tr.Counts().Decisions["ACCEPT"]; got != 1 {
		t.Errorf("expected snapshot mutation not to leak back, got %d", got)
	}

	tr.RecordResolution(resolver.Resolution{Decision: resolver.DecisionAccept})
	if snap.Sentences != 1 {
		t.Errorf("expected old snapshot frozen at 1 sentence, got %d", snap.Sentences)
	}
}

func TestTracker_ConcurrentRecording(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.RecordResolution(resolver.Resolution{Decision: resolver.DecisionAccept})
			tr.RecordPlan(journey.Plan{Status: journey.StatusNoRoute})
		}()
	}
	wg.Wait()

	s := tr.Counts()
	if s.Sentences != 50 {
		t.Errorf("expected 50 sentences, got %d", s.Sentences)
	}
	if s.Journeys[journey.StatusNoRoute] != 50 {
		t.Errorf("expected 50 NO_ROUTE plans, got %d", s.Journeys[journey.StatusNoRoute])
	}
}

func TestEntityKind(t *testing.T) {
	tests := []struct {
		name   string
		entity *resolver.ResolvedEntity
		want   string
	}{
		{"missing", nil, "MISSING"},
		{"resolved reports kind", resolvedEntity(resolver.MatchExact), "EXACT"},
		{"ambiguous", &resolver.ResolvedEntity{Status: resolver.EntityAmbiguous}, "AMBIGUOUS"},
		{"unresolved", &resolver.ResolvedEntity{Status: resolver.EntityUnresolved}, "UNRESOLVED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := entityKind(tt.entity); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

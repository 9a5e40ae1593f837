package travelorder

import (
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/travel-order-resolver/config"
	"github.com/theoremus-urban-solutions/travel-order-resolver/journey"
	"github.com/theoremus-urban-solutions/travel-order-resolver/resolver"
	"github.com/theoremus-urban-solutions/travel-order-resolver/tests/helpers"
)

func newTestService(t *testing.T, withTimetable bool) *Service {
	t.Helper()
	config.LoadDefaults()
	gaz := helpers.FixtureGazetteer(t)
	if !withTimetable {
		return NewService(gaz, nil)
	}
	return NewService(gaz, helpers.FixtureTimetable(t))
}

func TestService_ProcessWithPlan(t *testing.T) {
	svc := newTestService(t, true)

	out := svc.Process(Order{ID: "1", Sentence: "Je veux aller de Paris à Lyon"}, true)
	if out.Resolution.Decision != resolver.DecisionAccept {
		t.Fatalf("expected ACCEPT, got %s", out.Resolution.Decision)
	}
	if out.Plan == nil {
		t.Fatal("expected a journey plan")
	}
	if out.Plan.Status != journey.StatusPlanned {
		t.Fatalf("expected PLANNED, got %s", out.Plan.Status)
	}
	if out.Plan.Itinerary.Legs[0].TripID != "T2" {
		t.Errorf("expected earliest trip T2, got %s", out.Plan.Itinerary.Legs[0].TripID)
	}
}

func TestService_RejectedOrderSkipsPlanning(t *testing.T) {
	svc := newTestService(t, true)

	out := svc.Process(Order{ID: "2", Sentence: "Bonjour toi"}, true)
	if out.Resolution.Decision != resolver.DecisionReject {
		t.Fatalf("expected REJECT, got %s", out.Resolution.Decision)
	}
	if out.Plan != nil {
		t.Error("expected no plan for a rejected order")
	}
}

func TestService_WithoutTimetable(t *testing.T) {
	svc := newTestService(t, false)

	if svc.Pathfinder() != nil {
		t.Error("expected nil pathfinder without a timetable")
	}
	out := svc.Process(Order{ID: "3", Sentence: "Je veux aller de Paris à Lyon"}, true)
	if out.Resolution.Decision != resolver.DecisionAccept {
		t.Fatalf("expected ACCEPT, got %s", out.Resolution.Decision)
	}
	if out.Plan != nil {
		t.Error("expected no plan without a timetable")
	}
}

func TestService_PlanJourneyUnknownCity(t *testing.T) {
	svc := newTestService(t, true)

	// Bordeaux resolves as a city but maps to no stop in the feed.
	out := svc.Process(Order{ID: "4", Sentence: "Je veux aller de Bordeaux à Lyon"}, true)
	if out.Resolution.Decision != resolver.DecisionAccept {
		t.Fatalf("expected ACCEPT, got %s", out.Resolution.Decision)
	}
	if out.Plan == nil || out.Plan.Status != journey.StatusUnknownCity {
		t.Fatalf("expected UNKNOWN_CITY plan, got %+v", out.Plan)
	}
	if out.Plan.UnknownCity != "Bordeaux" {
		t.Errorf("expected Bordeaux flagged, got %q", out.Plan.UnknownCity)
	}
}

func batchOrders() []Order {
	return []Order{
		{ID: "1", Sentence: "Je veux aller de Paris à Lyon"},
		{ID: "2", Sentence: "Je souhaite me rendre à Marseille depuis Toulouse"},
		{ID: "3", Sentence: "Bonjour toi"},
		{ID: "4", Sentence: "Je veux aller de Marseile à Brest"},
		{ID: "5", Sentence: "trouve moi un billet paris marseille"},
		{ID: "6", Sentence: "Je veux aller à Paris"},
	}
}

func TestProcessBatch_PreservesInputOrder(t *testing.T) {
	svc := newTestService(t, true)
	orders := batchOrders()

	out := svc.ProcessBatch(orders, 4, true)
	if len(out) != len(orders) {
		t.Fatalf("expected %d outcomes, got %d", len(orders), len(out))
	}
	for i, o := range orders {
		if out[i].Resolution.SentenceID != o.ID {
			t.Errorf("outcome %d: expected id %s, got %s", i, o.ID, out[i].Resolution.SentenceID)
		}
	}
}

func TestProcessBatch_WorkerCountDoesNotChangeResults(t *testing.T) {
	svc := newTestService(t, true)
	orders := batchOrders()

	parallel := svc.ProcessBatch(orders, 4, true)
	serial := svc.ProcessBatch(orders, 1, true)
	if !reflect.DeepEqual(parallel, serial) {
		t.Error("expected identical outcomes regardless of worker count")
	}
}

func TestProcessBatch_Empty(t *testing.T) {
	svc := newTestService(t, true)
	if out := svc.ProcessBatch(nil, 4, false); len(out) != 0 {
		t.Errorf("expected no outcomes, got %d", len(out))
	}
}

func TestService_TracksOutcomes(t *testing.T) {
	svc := newTestService(t, true)
	svc.ProcessBatch(batchOrders(), 2, true)

	counts := svc.Tracker().Counts()
	if counts.Sentences != 6 {
		t.Errorf("expected 6 sentences tracked, got %d", counts.Sentences)
	}
	if counts.Decisions["ACCEPT"] != 4 {
		t.Errorf("expected 4 accepts, got %d", counts.Decisions["ACCEPT"])
	}
	if counts.Decisions["REJECT"] != 2 {
		t.Errorf("expected 2 rejects, got %d", counts.Decisions["REJECT"])
	}
}

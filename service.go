package travelorder

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/travel-order-resolver/config"
	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
	"github.com/theoremus-urban-solutions/travel-order-resolver/gtfs"
	"github.com/theoremus-urban-solutions/travel-order-resolver/journey"
	"github.com/theoremus-urban-solutions/travel-order-resolver/pathfinder"
	"github.com/theoremus-urban-solutions/travel-order-resolver/resolver"
	"github.com/theoremus-urban-solutions/travel-order-resolver/tracking"
	"github.com/theoremus-urban-solutions/travel-order-resolver/utils"
)

// Order is one input sentence with its caller-assigned id.
type Order struct {
	ID       string
	Sentence string
}

// Outcome carries the resolution for one order, plus the journey plan when
// planning was requested and the order resolved to a usable city pair.
type Outcome struct {
	Resolution resolver.Resolution
	Plan       *journey.Plan
}

// Service owns the loaded reference data and wires the sentence pipeline to
// the schedule search. Reference data is read-only after construction, so a
// Service is safe for concurrent use.
type Service struct {
	gaz     *gazetteer.Gazetteer
	tt      *gtfs.Timetable
	pipe    *resolver.Pipeline
	pf      *pathfinder.Pathfinder
	tracker *tracking.Tracker
	feed    string
}

// NewService assembles a Service around already-loaded reference data,
// taking thresholds and search bounds from the global configuration. tt may
// be nil when only resolution is needed; planning then reports no plan.
func NewService(gaz *gazetteer.Gazetteer, tt *gtfs.Timetable) *Service {
	pipe := resolver.NewPipeline(gaz, resolver.Options{
		TieBreakMargin:  config.Config.Resolver.TieBreakMargin,
		AcceptThreshold: config.Config.Resolver.AcceptThreshold,
	})
	var pf *pathfinder.Pathfinder
	if tt != nil {
		pf = pathfinder.New(tt, gaz, pathfinder.Options{
			MaxHubStops:      config.Config.Pathfinder.MaxHubStops,
			MaxLegCandidates: config.Config.Pathfinder.MaxLegCandidates,
			MaxHubPairs:      config.Config.Pathfinder.MaxHubPairs,
		})
	}
	return &Service{gaz: gaz, tt: tt, pipe: pipe, pf: pf, tracker: tracking.NewTracker()}
}

// NewServiceFromConfig loads the gazetteer and, when withTimetable is set,
// the GTFS feed selected by feedName, audits both, and assembles the Service.
func NewServiceFromConfig(feedName string, withTimetable bool) (*Service, error) {
	gazCfg := config.Config.Gazetteer
	gaz, err := gazetteer.FromFiles(gazCfg.CityListPath, gazCfg.StationTablePath, config.Config.Resolver.SimilarityFloor)
	if err != nil {
		return nil, fmt.Errorf("failed to load gazetteer: %w", err)
	}
	tracking.AuditGazetteer(gaz, gazCfg.StationTablePath)
	zap.L().Info("gazetteer loaded",
		zap.Int("cities", gaz.CityCount()),
		zap.Int("stations", gaz.StationCount()))

	var tt *gtfs.Timetable
	if withTimetable {
		feedCfg := config.SelectFeed(feedName)
		tt, err = gtfs.LoadFromConfig(feedCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load timetable: %w", err)
		}
		tracking.AuditTimetable(tt, feedName)
		zap.L().Info("timetable loaded",
			zap.Int("stops", tt.StopCount()),
			zap.Int("trips", tt.TripCount()))
	}
	svc := NewService(gaz, tt)
	svc.feed = feedName
	return svc, nil
}

// Gazetteer exposes the loaded place reference data.
func (s *Service) Gazetteer() *gazetteer.Gazetteer { return s.gaz }

// Timetable exposes the loaded timetable, nil when none was requested.
func (s *Service) Timetable() *gtfs.Timetable { return s.tt }

// Pathfinder exposes the schedule search, nil without a timetable.
func (s *Service) Pathfinder() *pathfinder.Pathfinder { return s.pf }

// Tracker exposes the run counters.
func (s *Service) Tracker() *tracking.Tracker { return s.tracker }

// ResolveSentence runs one sentence through the pipeline and records the
// outcome.
func (s *Service) ResolveSentence(id, sentence string) resolver.Resolution {
	res := s.pipe.ResolveSentence(id, sentence)
	s.tracker.RecordResolution(res)
	zap.L().Debug("order resolved",
		zap.String("id", res.SentenceID),
		zap.String("decision", string(res.Decision)),
		zap.Float64("confidence", res.Confidence))
	return res
}

// PlanJourney searches the timetable for the resolved city pair. Returns nil
// when no timetable is loaded or the resolution was not accepted.
func (s *Service) PlanJourney(res resolver.Resolution) *journey.Plan {
	if s.pf == nil || !res.Accepted() {
		return nil
	}
	p := s.pf.Plan(res.SentenceID, res.Origin.Place.Canonical, res.Destination.Place.Canonical)
	s.tracker.RecordPlan(p)
	if p.Itinerary != nil {
		var km float64
		for _, l := range p.Itinerary.Legs {
			km += l.DistanceKM
		}
		zap.L().Debug("journey planned",
			zap.String("id", p.OrderID),
			zap.String("kind", p.Itinerary.Kind),
			zap.String("distance", utils.PresentableDistance(km)))
	}
	return &p
}

// Process resolves one order and, when withPlan is set, plans its journey.
func (s *Service) Process(o Order, withPlan bool) Outcome {
	res := s.ResolveSentence(o.ID, o.Sentence)
	out := Outcome{Resolution: res}
	if withPlan {
		out.Plan = s.PlanJourney(res)
	}
	return out
}

// ProcessBatch fans orders out over a bounded worker pool and returns the
// outcomes in input order, so batch runs stay reproducible.
func (s *Service) ProcessBatch(orders []Order, workers int, withPlan bool) []Outcome {
	out := make([]Outcome, len(orders))
	if len(orders) == 0 {
		return out
	}
	if workers <= 0 {
		workers = config.Config.Batch.Workers
	}
	if workers > len(orders) {
		workers = len(orders)
	}
	if workers <= 1 {
		for i, o := range orders {
			out[i] = s.Process(o, withPlan)
		}
		return out
	}

	idx := make(chan int, len(orders))
	for i := range orders {
		idx <- i
	}
	close(idx)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				out[i] = s.Process(orders[i], withPlan)
			}
		}()
	}
	wg.Wait()
	return out
}

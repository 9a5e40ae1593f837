package pathfinder

import (
	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
	"github.com/theoremus-urban-solutions/travel-order-resolver/gtfs"
	"github.com/theoremus-urban-solutions/travel-order-resolver/journey"
)

// Search bounds. All three are config-tunable; zero Options fields fall
// back to these.
const (
	defaultMaxHubStops      = 30
	defaultMaxLegCandidates = 400
	defaultMaxHubPairs      = 3
)

// Options bounds the search cost per query.
type Options struct {
	// MaxHubStops caps how many stop ids one hub may expand to.
	MaxHubStops int
	// MaxLegCandidates caps each side of the one-transfer join.
	MaxLegCandidates int
	// MaxHubPairs caps how many (origin hub, destination hub) combinations
	// are attempted before giving up with NO_ROUTE.
	MaxHubPairs int
}

// Pathfinder answers (origin city, destination city) queries against one
// timetable and one station table. Safe for concurrent use once built.
type Pathfinder struct {
	tt  *gtfs.Timetable
	gaz *gazetteer.Gazetteer

	maxHubStops      int
	maxLegCandidates int
	maxHubPairs      int
}

// New builds a Pathfinder over an immutable timetable and gazetteer.
func New(tt *gtfs.Timetable, gaz *gazetteer.Gazetteer, opts Options) *Pathfinder {
	if opts.MaxHubStops <= 0 {
		opts.MaxHubStops = defaultMaxHubStops
	}
	if opts.MaxLegCandidates <= 0 {
		opts.MaxLegCandidates = defaultMaxLegCandidates
	}
	if opts.MaxHubPairs <= 0 {
		opts.MaxHubPairs = defaultMaxHubPairs
	}
	return &Pathfinder{
		tt:               tt,
		gaz:              gaz,
		maxHubStops:      opts.MaxHubStops,
		maxLegCandidates: opts.MaxLegCandidates,
		maxHubPairs:      opts.MaxHubPairs,
	}
}

// Plan maps both cities to hub stop sets and walks bounded hub pairs, best
// ranked first. Within a pair the direct search runs before the one-transfer
// search; the first itinerary found wins. A city with no timetable stops
// fails fast as UNKNOWN_CITY, the origin checked first. When every pair is
// exhausted the plan is NO_ROUTE.
func (p *Pathfinder) Plan(orderID, origin, destination string) journey.Plan {
	plan := journey.Plan{OrderID: orderID, Origin: origin, Destination: destination}

	originSets := p.stopSets(origin)
	if len(originSets) == 0 {
		plan.Status = journey.StatusUnknownCity
		plan.UnknownCity = origin
		return plan
	}
	destSets := p.stopSets(destination)
	if len(destSets) == 0 {
		plan.Status = journey.StatusUnknownCity
		plan.UnknownCity = destination
		return plan
	}

	for _, pair := range hubPairs(len(originSets), len(destSets), p.maxHubPairs) {
		from, to := originSets[pair[0]], destSets[pair[1]]
		it := p.findDirect(from, to)
		if it == nil {
			it = p.findOneTransfer(from, to)
		}
		if it != nil {
			it.Origin = origin
			it.Destination = destination
			plan.Status = journey.StatusPlanned
			plan.Itinerary = it
			return plan
		}
	}

	plan.Status = journey.StatusNoRoute
	return plan
}

// hubPairs enumerates (origin hub, destination hub) index pairs outward from
// the top of both rankings, capped at limit attempts.
func hubPairs(nFrom, nTo, limit int) [][2]int {
	var pairs [][2]int
	for sum := 0; sum <= nFrom+nTo-2; sum++ {
		for i := 0; i <= sum; i++ {
			j := sum - i
			if i >= nFrom || j >= nTo {
				continue
			}
			pairs = append(pairs, [2]int{i, j})
			if len(pairs) >= limit {
				return pairs
			}
		}
	}
	return pairs
}

package pathfinder

import (
	"sort"

	"github.com/theoremus-urban-solutions/travel-order-resolver/gtfs"
	"github.com/theoremus-urban-solutions/travel-order-resolver/journey"
)

// directHit is one trip serving an origin stop strictly before a destination
// stop.
type directHit struct {
	tripID string
	from   gtfs.StopTime
	to     gtfs.StopTime
}

func (d directHit) less(o directHit) bool {
	if d.from.DepSec != o.from.DepSec {
		return d.from.DepSec < o.from.DepSec
	}
	if d.tripID != o.tripID {
		return d.tripID < o.tripID
	}
	if d.to.ArrSec != o.to.ArrSec {
		return d.to.ArrSec < o.to.ArrSec
	}
	if d.from.StopID != o.from.StopID {
		return d.from.StopID < o.from.StopID
	}
	return d.to.StopID < o.to.StopID
}

// findDirect scans every trip through the origin stops for a destination stop
// later in its sequence and returns the earliest departure as a one-leg
// itinerary. Equal departures fall back to the lowest trip id. Rows without
// a parseable time cannot be ordered and are skipped.
func (p *Pathfinder) findDirect(fromIDs, toIDs []string) *journey.Itinerary {
	fromSet := stringSet(fromIDs)
	toSet := stringSet(toIDs)

	var best *directHit
	for _, tripID := range p.tripsThrough(fromIDs) {
		rows := p.tt.GetStopTimes(tripID)
		for i, a := range rows {
			if !fromSet[a.StopID] || a.DepSec < 0 {
				continue
			}
			for _, b := range rows[i+1:] {
				if b.Seq <= a.Seq || !toSet[b.StopID] || b.ArrSec < 0 {
					continue
				}
				hit := directHit{tripID: tripID, from: a, to: b}
				if best == nil || hit.less(*best) {
					h := hit
					best = &h
				}
			}
		}
	}
	if best == nil {
		return nil
	}
	return &journey.Itinerary{
		Kind:           journey.KindDirect,
		Legs:           []journey.Leg{p.leg(best.tripID, best.from, best.to)},
		ElapsedSeconds: best.to.ArrSec - best.from.DepSec,
	}
}

// legCandidate is one boarded ride on a single trip, from the board row to
// the alight row.
type legCandidate struct {
	tripID string
	board  gtfs.StopTime
	alight gtfs.StopTime
}

type transferHit struct {
	leg1    legCandidate
	leg2    legCandidate
	elapsed int
}

func (t transferHit) less(o transferHit) bool {
	if t.elapsed != o.elapsed {
		return t.elapsed < o.elapsed
	}
	if t.leg1.board.DepSec != o.leg1.board.DepSec {
		return t.leg1.board.DepSec < o.leg1.board.DepSec
	}
	if t.leg1.tripID != o.leg1.tripID {
		return t.leg1.tripID < o.leg1.tripID
	}
	if t.leg2.tripID != o.leg2.tripID {
		return t.leg2.tripID < o.leg2.tripID
	}
	if t.leg1.board.StopID != o.leg1.board.StopID {
		return t.leg1.board.StopID < o.leg1.board.StopID
	}
	if t.leg1.alight.StopID != o.leg1.alight.StopID {
		return t.leg1.alight.StopID < o.leg1.alight.StopID
	}
	return t.leg2.alight.StopID < o.leg2.alight.StopID
}

// findOneTransfer joins outbound legs from the origin stops with inbound legs
// into the destination stops on a shared transfer stop. Both candidate lists
// are sorted by departure and capped before the join. A valid pair rides two
// distinct trips and leaves the transfer stop no earlier than the first leg
// arrives there; the winner minimizes total elapsed time, with ties broken by
// earliest first departure then lowest trip ids.
func (p *Pathfinder) findOneTransfer(fromIDs, toIDs []string) *journey.Itinerary {
	leg1 := p.outboundLegs(fromIDs)
	if len(leg1) == 0 {
		return nil
	}
	leg2 := p.inboundLegs(toIDs)
	if len(leg2) == 0 {
		return nil
	}

	byTransfer := make(map[string][]legCandidate, len(leg2))
	for _, l := range leg2 {
		byTransfer[l.board.StopID] = append(byTransfer[l.board.StopID], l)
	}

	var best *transferHit
	for _, l1 := range leg1 {
		for _, l2 := range byTransfer[l1.alight.StopID] {
			if l2.tripID == l1.tripID || l2.board.DepSec < l1.alight.ArrSec {
				continue
			}
			hit := transferHit{leg1: l1, leg2: l2, elapsed: l2.alight.ArrSec - l1.board.DepSec}
			if best == nil || hit.less(*best) {
				h := hit
				best = &h
			}
		}
	}
	if best == nil {
		return nil
	}
	return &journey.Itinerary{
		Kind:             journey.KindOneTransfer,
		TransferStopName: p.stopName(best.leg1.alight.StopID),
		Legs: []journey.Leg{
			p.leg(best.leg1.tripID, best.leg1.board, best.leg1.alight),
			p.leg(best.leg2.tripID, best.leg2.board, best.leg2.alight),
		},
		ElapsedSeconds: best.elapsed,
	}
}

// outboundLegs lists (origin stop, later stop) rides per trip through the
// origin stops, earliest departure first, capped at the leg-candidate bound.
func (p *Pathfinder) outboundLegs(fromIDs []string) []legCandidate {
	fromSet := stringSet(fromIDs)
	var legs []legCandidate
	for _, tripID := range p.tripsThrough(fromIDs) {
		rows := p.tt.GetStopTimes(tripID)
		for i, a := range rows {
			if !fromSet[a.StopID] || a.DepSec < 0 {
				continue
			}
			for _, x := range rows[i+1:] {
				if x.Seq <= a.Seq || x.StopID == a.StopID || x.ArrSec < 0 {
					continue
				}
				legs = append(legs, legCandidate{tripID: tripID, board: a, alight: x})
			}
		}
	}
	return p.capLegs(legs)
}

// inboundLegs lists (earlier stop, destination stop) rides per trip through
// the destination stops, earliest transfer departure first, capped at the
// leg-candidate bound.
func (p *Pathfinder) inboundLegs(toIDs []string) []legCandidate {
	toSet := stringSet(toIDs)
	var legs []legCandidate
	for _, tripID := range p.tripsThrough(toIDs) {
		rows := p.tt.GetStopTimes(tripID)
		for i, b := range rows {
			if !toSet[b.StopID] || b.ArrSec < 0 {
				continue
			}
			for _, x := range rows[:i] {
				if x.Seq >= b.Seq || x.StopID == b.StopID || x.DepSec < 0 {
					continue
				}
				legs = append(legs, legCandidate{tripID: tripID, board: x, alight: b})
			}
		}
	}
	return p.capLegs(legs)
}

func (p *Pathfinder) capLegs(legs []legCandidate) []legCandidate {
	sort.Slice(legs, func(i, j int) bool {
		a, b := legs[i], legs[j]
		if a.board.DepSec != b.board.DepSec {
			return a.board.DepSec < b.board.DepSec
		}
		if a.tripID != b.tripID {
			return a.tripID < b.tripID
		}
		if a.board.StopID != b.board.StopID {
			return a.board.StopID < b.board.StopID
		}
		if a.alight.Seq != b.alight.Seq {
			return a.alight.Seq < b.alight.Seq
		}
		return a.alight.StopID < b.alight.StopID
	})
	if len(legs) > p.maxLegCandidates {
		legs = legs[:p.maxLegCandidates]
	}
	return legs
}

// tripsThrough returns the sorted union of trips serving any of the stops.
func (p *Pathfinder) tripsThrough(stopIDs []string) []string {
	seen := make(map[string]bool)
	var trips []string
	for _, id := range stopIDs {
		for _, tripID := range p.tt.TripsThrough(id) {
			if !seen[tripID] {
				seen[tripID] = true
				trips = append(trips, tripID)
			}
		}
	}
	sort.Strings(trips)
	return trips
}

func (p *Pathfinder) leg(tripID string, board, alight gtfs.StopTime) journey.Leg {
	return journey.Leg{
		TripID:       tripID,
		FromStopID:   board.StopID,
		FromStopName: p.stopName(board.StopID),
		ToStopID:     alight.StopID,
		ToStopName:   p.stopName(alight.StopID),
		Departure:    board.Departure,
		Arrival:      alight.Arrival,
		DistanceKM:   p.tt.LegDistanceKM(tripID, board.StopID, alight.StopID),
	}
}

// stopName falls back to the stop id for timetable rows that reference a
// stop absent from stops.txt.
func (p *Pathfinder) stopName(stopID string) string {
	if name := p.tt.GetStopName(stopID); name != "" {
		return name
	}
	return stopID
}

func stringSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

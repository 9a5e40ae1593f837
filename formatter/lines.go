package formatter

import (
	"fmt"

	"github.com/theoremus-urban-solutions/travel-order-resolver/journey"
	"github.com/theoremus-urban-solutions/travel-order-resolver/resolver"
)

// The line protocol is the system's primary interchange format: one record
// per line, comma separated, no quoting. Times and names are emitted verbatim
// as they appear in the reference data.

// ResolverLine renders one resolution outcome. Accepted pairs yield
// "id,Origin,Destination"; everything else collapses to "id,INVALID".
func ResolverLine(res resolver.Resolution) string {
	if !res.Accepted() {
		return res.SentenceID + ",INVALID"
	}
	return fmt.Sprintf("%s,%s,%s", res.SentenceID, res.Origin.Place.Canonical, res.Destination.Place.Canonical)
}

// JourneyLines renders the line protocol for one plan: a route line plus a
// schedule proof line for planned journeys, a single failure line otherwise.
func JourneyLines(p journey.Plan) []string {
	switch p.Status {
	case journey.StatusUnknownCity:
		return []string{fmt.Sprintf("%s,%s,%s", p.OrderID, journey.StatusUnknownCity, p.UnknownCity)}
	case journey.StatusPlanned:
		if p.Itinerary != nil {
			return routeAndSchedule(p)
		}
	}
	return []string{fmt.Sprintf("%s,%s,%s,%s", p.OrderID, journey.StatusNoRoute, p.Origin, p.Destination)}
}

func routeAndSchedule(p journey.Plan) []string {
	it := p.Itinerary
	if it.Kind == journey.KindOneTransfer && len(it.Legs) == 2 {
		route := fmt.Sprintf("%s,%s,%s,%s", p.OrderID, p.Origin, it.TransferStopName, p.Destination)
		first, second := it.Legs[0], it.Legs[1]
		schedule := fmt.Sprintf("%s,SCHEDULE,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s",
			p.OrderID, journey.KindOneTransfer, p.Origin, p.Destination,
			first.Departure, first.Arrival, first.TripID,
			second.Departure, second.Arrival, second.TripID,
			first.FromStopName, it.TransferStopName, second.ToStopName)
		return []string{route, schedule}
	}
	route := fmt.Sprintf("%s,%s,%s", p.OrderID, p.Origin, p.Destination)
	leg := it.Legs[0]
	schedule := fmt.Sprintf("%s,SCHEDULE,%s,%s,%s,%s,%s,%s,%s,%s",
		p.OrderID, journey.KindDirect, p.Origin, p.Destination,
		leg.Departure, leg.Arrival, leg.TripID, leg.FromStopName, leg.ToStopName)
	return []string{route, schedule}
}

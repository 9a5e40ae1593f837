package gtfs

import (
	"math"
)

// LegDistanceKM returns the distance in kilometers covered by one trip between
// two of its stops, summing haversine segments over the stop sequence. Returns
// 0 when either stop is not on the trip, when the stops are out of order, or
// when coordinates are missing for the whole span.
func (t *Timetable) LegDistanceKM(tripID, fromStopID, toStopID string) float64 {
	rows := t.TripStops[tripID]
	idx := t.TripStopIdx[tripID]
	if len(rows) == 0 || idx == nil {
		return 0
	}
	fromIdx, okFrom := idx[fromStopID]
	toIdx, okTo := idx[toStopID]
	if !okFrom || !okTo || fromIdx >= toIdx {
		return 0
	}

	cumKM := 0.0
	for i := fromIdx; i < toIdx; i++ {
		c1, ok1 := t.StopCoord[rows[i].StopID]
		c2, ok2 := t.StopCoord[rows[i+1].StopID]
		if !ok1 || !ok2 {
			continue
		}
		cumKM += HasversineKM(c1[1], c1[0], c2[1], c2[0])
	}
	return cumKM
}

// LegDistanceMeters returns the distance in meters
func (t *Timetable) LegDistanceMeters(tripID, fromStopID, toStopID string) float64 {
	km := t.LegDistanceKM(tripID, fromStopID, toStopID)
	if math.IsNaN(km) {
		return 0
	}
	return km * 1000
}

// Helpers

func HasversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

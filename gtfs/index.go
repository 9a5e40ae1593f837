package gtfs

import (
	"sort"
	"strings"
)

// Timetable stores GTFS static data in memory for fast lookups. All maps are
// built once by the loader and never mutated afterwards, so the index is safe
// for concurrent readers. Fields are exported for the gob cache.
type Timetable struct {
	AgencyID        string
	RouteShortNames map[string]string         // route_id -> short name
	TripToRoute     map[string]string         // trip_id -> route_id
	TripStops       map[string][]StopTime     // trip_id -> rows in stop_sequence order
	TripStopIdx     map[string]map[string]int // trip_id -> stop_id -> row position
	StopNames       map[string]string         // stop_id -> name
	StopNameNorm    map[string]string         // stop_id -> normalized name
	StopCoord       map[string][2]float64     // stop_id -> [lon, lat]
	StopUIC         map[string]string         // stop_id -> 8-digit UIC code
	UICStops        map[string][]string       // UIC code -> stop_ids sharing it
	StopTrips       map[string][]string       // stop_id -> trip_ids calling there
	StopIDs         []string                  // all stop_ids, sorted
}

func newTimetable() *Timetable {
	return &Timetable{
		RouteShortNames: map[string]string{},
		TripToRoute:     map[string]string{},
		TripStops:       map[string][]StopTime{},
		TripStopIdx:     map[string]map[string]int{},
		StopNames:       map[string]string{},
		StopNameNorm:    map[string]string{},
		StopCoord:       map[string][2]float64{},
		StopUIC:         map[string]string{},
		UICStops:        map[string][]string{},
		StopTrips:       map[string][]string{},
	}
}

// Accessor methods
func (t *Timetable) GetStopName(stopID string) string { return t.StopNames[stopID] }

func (t *Timetable) GetStopCoord(stopID string) ([2]float64, bool) {
	c, ok := t.StopCoord[stopID]
	return c, ok
}

func (t *Timetable) GetRouteIDForTrip(tripID string) string { return t.TripToRoute[tripID] }

func (t *Timetable) GetRouteShortName(routeID string) string { return t.RouteShortNames[routeID] }

func (t *Timetable) GetUICForStop(stopID string) string { return t.StopUIC[stopID] }

// GetStopTimes returns the timetable rows of a trip in stop_sequence order.
func (t *Timetable) GetStopTimes(tripID string) []StopTime { return t.TripStops[tripID] }

// GetStopIndex returns the position of a stop within a trip's row sequence.
func (t *Timetable) GetStopIndex(tripID, stopID string) (int, bool) {
	m, ok := t.TripStopIdx[tripID]
	if !ok {
		return 0, false
	}
	idx, ok := m[stopID]
	return idx, ok
}

// GetStopTimeAt returns the row where a trip calls at a stop.
func (t *Timetable) GetStopTimeAt(tripID, stopID string) (StopTime, bool) {
	idx, ok := t.GetStopIndex(tripID, stopID)
	if !ok {
		return StopTime{}, false
	}
	return t.TripStops[tripID][idx], true
}

// TripsThrough returns the trips calling at a stop, sorted by trip_id.
func (t *Timetable) TripsThrough(stopID string) []string { return t.StopTrips[stopID] }

// StopsForUIC returns the stop_ids registered under an 8-digit UIC code.
func (t *Timetable) StopsForUIC(uic string) []string { return t.UICStops[uic] }

func (t *Timetable) TripIsScheduled(tripID string) bool {
	_, ok := t.TripStops[tripID]
	return ok
}

func (t *Timetable) StopCount() int { return len(t.StopNames) }

func (t *Timetable) TripCount() int { return len(t.TripStops) }

// AllStopIDs returns every stop_id in sorted order.
func (t *Timetable) AllStopIDs() []string { return t.StopIDs }

// StopsMatchingName returns up to limit stop_ids whose normalized name
// contains the already-normalized query as a substring, in sorted stop_id
// order. This is the fallback when no UIC code maps into the feed.
func (t *Timetable) StopsMatchingName(normQuery string, limit int) []string {
	if normQuery == "" || limit == 0 {
		return nil
	}
	var out []string
	for _, sid := range t.StopIDs {
		if strings.Contains(t.StopNameNorm[sid], normQuery) {
			out = append(out, sid)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}

// finalize sorts every per-trip row list, then derives the lookup maps that
// depend on complete data.
func (t *Timetable) finalize(stopCodes map[string]string) {
	for tripID, rows := range t.TripStops {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Seq < rows[j].Seq })
		idx := make(map[string]int, len(rows))
		for i, r := range rows {
			// First call wins when a trip loops through a stop twice.
			if _, dup := idx[r.StopID]; !dup {
				idx[r.StopID] = i
			}
		}
		t.TripStopIdx[tripID] = idx
	}

	t.StopIDs = make([]string, 0, len(t.StopNames))
	for sid := range t.StopNames {
		t.StopIDs = append(t.StopIDs, sid)
	}
	sort.Strings(t.StopIDs)

	t.buildUICMaps(stopCodes)
	t.buildStopTrips()
}

// buildUICMaps registers stops under their 8-digit UIC code, read from
// stop_code when the feed carries one and recovered from the first 8-digit
// run inside stop_id otherwise.
func (t *Timetable) buildUICMaps(stopCodes map[string]string) {
	for _, sid := range t.StopIDs {
		if code, ok := stopCodes[sid]; ok && isUIC(code) {
			t.StopUIC[sid] = code
			t.UICStops[code] = append(t.UICStops[code], sid)
		}
	}
	if len(t.UICStops) > 0 {
		return
	}
	for _, sid := range t.StopIDs {
		if uic := uicFromStopID(sid); uic != "" {
			t.StopUIC[sid] = uic
			t.UICStops[uic] = append(t.UICStops[uic], sid)
		}
	}
}

func (t *Timetable) buildStopTrips() {
	tripIDs := make([]string, 0, len(t.TripStops))
	for tripID := range t.TripStops {
		tripIDs = append(tripIDs, tripID)
	}
	sort.Strings(tripIDs)
	for _, tripID := range tripIDs {
		seen := map[string]struct{}{}
		for _, r := range t.TripStops[tripID] {
			if _, dup := seen[r.StopID]; dup {
				continue
			}
			seen[r.StopID] = struct{}{}
			t.StopTrips[r.StopID] = append(t.StopTrips[r.StopID], tripID)
		}
	}
}

func isUIC(s string) bool {
	if len(s) != 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// uicFromStopID extracts the first 8-digit run from a stop_id such as
// "StopPoint:OCETGV INOUI-87686006".
func uicFromStopID(stopID string) string {
	run := 0
	for i := 0; i < len(stopID); i++ {
		if stopID[i] >= '0' && stopID[i] <= '9' {
			run++
			if run == 8 {
				return stopID[i-7 : i+1]
			}
			continue
		}
		run = 0
	}
	return ""
}

package tracking

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
	"github.com/theoremus-urban-solutions/travel-order-resolver/gtfs"
)

// Warning type constants
const (
	// Timetable warnings
	WarningStopNoUIC       = "stop_no_uic"
	WarningUnparseableTime = "unparseable_time"
	WarningTripNoTimes     = "trip_no_times"

	// Gazetteer warnings
	WarningStationNoUIC   = "station_no_uic"
	WarningStationNoCoord = "station_no_coord"
	WarningSharedCityKey  = "shared_city_key"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects findings during reference-data loads and outputs
// consolidated summaries instead of one line per row
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(dataset, source string) {
	if len(w.warnings) == 0 {
		return
	}

	types := make([]string, 0, len(w.warnings))
	for warningType := range w.warnings {
		types = append(types, warningType)
	}
	sort.Strings(types)
	for _, warningType := range types {
		zap.L().Warn(w.formatWarningMessage(warningType, dataset, source, w.warnings[warningType]))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, dataset, source string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningStopNoUIC:
		description = "stops without an 8-digit code"
		action = "Hub selection reaches them only through name matching"
	case WarningUnparseableTime:
		description = "stop_times rows with unparseable times"
		action = "Excluding the rows from schedule ordering"
	case WarningTripNoTimes:
		description = "trips without any parseable departure"
		action = "The trips never win a schedule search"
	case WarningStationNoUIC:
		description = "station rows without a usable UIC code"
		action = "The stations cannot anchor hub selection"
	case WarningStationNoCoord:
		description = "station rows without coordinates"
		action = "Legs through them report no distance"
	case WarningSharedCityKey:
		description = "city names sharing one normalized key"
		action = "The keys resolve as multi-candidate lookups"
	default:
		description = "unknown issue"
		action = "Continuing with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Dataset %s from %s has %s (%d occurrences). %s. Examples: %s",
		dataset, source, description, info.count, action, examplesStr)
}

// AuditTimetable scans a loaded timetable for data gaps and logs one
// consolidated line per finding.
func AuditTimetable(tt *gtfs.Timetable, feedName string) {
	w := NewWarningAggregator()
	for _, stopID := range tt.AllStopIDs() {
		if tt.GetUICForStop(stopID) == "" {
			w.Add(WarningStopNoUIC, stopID)
		}
	}
	tripIDs := make([]string, 0, len(tt.TripStops))
	for tripID := range tt.TripStops {
		tripIDs = append(tripIDs, tripID)
	}
	sort.Strings(tripIDs)
	for _, tripID := range tripIDs {
		hasDeparture := false
		for _, row := range tt.TripStops[tripID] {
			if row.DepSec < 0 || row.ArrSec < 0 {
				w.Add(WarningUnparseableTime, tripID)
			}
			if row.DepSec >= 0 {
				hasDeparture = true
			}
		}
		if !hasDeparture {
			w.Add(WarningTripNoTimes, tripID)
		}
	}
	w.LogAll("timetable", feedName)
}

// AuditGazetteer scans the reference tables for rows that weaken resolution
// or journey enrichment.
func AuditGazetteer(gaz *gazetteer.Gazetteer, source string) {
	w := NewWarningAggregator()
	for _, st := range gaz.Stations() {
		if st.UIC == "" {
			w.Add(WarningStationNoUIC, st.Name)
		}
		if st.Lat == 0 && st.Lon == 0 {
			w.Add(WarningStationNoCoord, st.Name)
		}
	}
	for _, key := range gaz.Keys() {
		if len(gaz.LookupExact(key)) > 1 {
			w.Add(WarningSharedCityKey, key)
		}
	}
	w.LogAll("gazetteer", source)
}

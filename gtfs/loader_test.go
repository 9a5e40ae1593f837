package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/travel-order-resolver/config"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s in zip: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func fixtureFiles() map[string]string {
	return map[string]string{
		"stops.txt": `stop_id,stop_name,stop_lat,stop_lon,stop_code
SP1,Paris Gare de Lyon,48.8443,2.3744,87686006
SL1,Lyon Part Dieu,45.7606,4.8595,87723197
SM1,Marseille Saint Charles,43.3028,5.3806,87751008
SB1,Brest,48.3904,-4.4861,87474007
SC1,Culoz,45.8470,5.7790,
`,
		"routes.txt": `route_id,route_short_name,route_long_name
R1,TGV A,TGV Paris Marseille
R2,,Intercites Lyon Brest
`,
		"trips.txt": `route_id,trip_id
R1,T1
R1,T2
R2,T3
`,
		// Rows deliberately out of stop_sequence order.
		"stop_times.txt": `trip_id,stop_id,stop_sequence,arrival_time,departure_time
T1,SM1,3,12:00:00,12:00:00
T1,SP1,1,08:00:00,08:00:00
T1,SL1,2,10:00:00,10:05:00
T2,SP1,1,06:30:00,06:30:00
T2,SL1,2,08:30:00,08:30:00
T3,SL1,1,11:00:00,11:00:00
T3,SB1,2,15:00:00,15:00:00
`,
	}
}

func fixtureTimetable(t *testing.T) *Timetable {
	t.Helper()
	tt, err := NewTimetableFromBytes(buildZip(t, fixtureFiles()))
	if err != nil {
		t.Fatalf("parsing fixture zip: %v", err)
	}
	return tt
}

func TestNewTimetableFromBytes_Counts(t *testing.T) {
	tt := fixtureTimetable(t)
	if tt.StopCount() != 5 {
		t.Errorf("expected 5 stops, got %d", tt.StopCount())
	}
	if tt.TripCount() != 3 {
		t.Errorf("expected 3 trips, got %d", tt.TripCount())
	}
	want := []string{"SB1", "SC1", "SL1", "SM1", "SP1"}
	if !reflect.DeepEqual(tt.AllStopIDs(), want) {
		t.Errorf("expected stop ids %v, got %v", want, tt.AllStopIDs())
	}
}

func TestTripRowsSortedBySequence(t *testing.T) {
	tt := fixtureTimetable(t)
	rows := tt.GetStopTimes("T1")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows for T1, got %d", len(rows))
	}
	order := []string{"SP1", "SL1", "SM1"}
	for i, want := range order {
		if rows[i].StopID != want {
			t.Errorf("row %d: expected stop %s, got %s", i, want, rows[i].StopID)
		}
	}
	if rows[1].ArrSec != 36000 || rows[1].DepSec != 36300 {
		t.Errorf("expected Lyon dwell 36000/36300, got %d/%d", rows[1].ArrSec, rows[1].DepSec)
	}

	idx, ok := tt.GetStopIndex("T1", "SM1")
	if !ok || idx != 2 {
		t.Errorf("expected SM1 at row 2, got %d (ok=%v)", idx, ok)
	}
	st, ok := tt.GetStopTimeAt("T1", "SL1")
	if !ok || st.Departure != "10:05:00" {
		t.Errorf("expected SL1 departure 10:05:00, got %q (ok=%v)", st.Departure, ok)
	}
	if _, ok := tt.GetStopIndex("T1", "missing"); ok {
		t.Error("expected lookup of unknown stop to fail")
	}
	if _, ok := tt.GetStopIndex("missing", "SP1"); ok {
		t.Error("expected lookup of unknown trip to fail")
	}
}

func TestRouteNameFallsBackToLongName(t *testing.T) {
	tt := fixtureTimetable(t)
	if name := tt.GetRouteShortName("R1"); name != "TGV A" {
		t.Errorf("expected short name TGV A, got %q", name)
	}
	if name := tt.GetRouteShortName("R2"); name != "Intercites Lyon Brest" {
		t.Errorf("expected long-name fallback, got %q", name)
	}
	if route := tt.GetRouteIDForTrip("T3"); route != "R2" {
		t.Errorf("expected T3 on route R2, got %q", route)
	}
}

func TestStopCoordStoresLonLat(t *testing.T) {
	tt := fixtureTimetable(t)
	c, ok := tt.GetStopCoord("SP1")
	if !ok {
		t.Fatal("expected coordinates for SP1")
	}
	if c[0] != 2.3744 || c[1] != 48.8443 {
		t.Errorf("expected [lon lat] = [2.3744 48.8443], got %v", c)
	}
	c, ok = tt.GetStopCoord("SB1")
	if !ok || c[0] != -4.4861 {
		t.Errorf("expected negative longitude kept, got %v (ok=%v)", c, ok)
	}
	if _, ok := tt.GetStopCoord("missing"); ok {
		t.Error("expected no coordinates for unknown stop")
	}
}

func TestUICFromStopCode(t *testing.T) {
	tt := fixtureTimetable(t)
	if uic := tt.GetUICForStop("SP1"); uic != "87686006" {
		t.Errorf("expected UIC 87686006, got %q", uic)
	}
	if got := tt.StopsForUIC("87723197"); !reflect.DeepEqual(got, []string{"SL1"}) {
		t.Errorf("expected [SL1], got %v", got)
	}
	// SC1 has no stop_code and the stop_id fallback is off once any code
	// registered.
	if uic := tt.GetUICForStop("SC1"); uic != "" {
		t.Errorf("expected no UIC for SC1, got %q", uic)
	}
}

func TestUICFallbackFromStopID(t *testing.T) {
	data := buildZip(t, map[string]string{
		"stops.txt": "\uFEFFstop_id,stop_name\n" +
			"StopPoint:OCETrain TER-87686006,Paris Gare de Lyon\n" +
			"StopPoint:OCETrain TER-87723197,Lyon Part Dieu\n" +
			"OpB12345,Bus Stop\n",
		"stop_times.txt": `trip_id,stop_id,stop_sequence,arrival_time,departure_time
T1,StopPoint:OCETrain TER-87686006,1,08:00:00,08:00:00
T1,StopPoint:OCETrain TER-87723197,2,10:00:00,10:00:00
`,
	})
	tt, err := NewTimetableFromBytes(data)
	if err != nil {
		t.Fatalf("parsing zip: %v", err)
	}
	if uic := tt.GetUICForStop("StopPoint:OCETrain TER-87686006"); uic != "87686006" {
		t.Errorf("expected UIC recovered from stop_id, got %q", uic)
	}
	got := tt.StopsForUIC("87723197")
	if !reflect.DeepEqual(got, []string{"StopPoint:OCETrain TER-87723197"}) {
		t.Errorf("expected Lyon stop under its UIC, got %v", got)
	}
	// A digit run shorter than 8 yields nothing.
	if uic := tt.GetUICForStop("OpB12345"); uic != "" {
		t.Errorf("expected no UIC for short digit run, got %q", uic)
	}
}

func TestTripsThroughSorted(t *testing.T) {
	tt := fixtureTimetable(t)
	got := tt.TripsThrough("SL1")
	want := []string{"T1", "T2", "T3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected trips %v through SL1, got %v", want, got)
	}
	if trips := tt.TripsThrough("missing"); len(trips) != 0 {
		t.Errorf("expected no trips through unknown stop, got %v", trips)
	}
}

func TestStopsMatchingName(t *testing.T) {
	tt := fixtureTimetable(t)
	got := tt.StopsMatchingName("lyon", -1)
	want := []string{"SL1", "SP1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := tt.StopsMatchingName("lyon", 1); !reflect.DeepEqual(got, []string{"SL1"}) {
		t.Errorf("expected limit to cap results, got %v", got)
	}
	if got := tt.StopsMatchingName("", -1); got != nil {
		t.Errorf("expected nil for empty query, got %v", got)
	}
	if got := tt.StopsMatchingName("lyon", 0); got != nil {
		t.Errorf("expected nil for zero limit, got %v", got)
	}
}

func TestLoopTripKeepsFirstCall(t *testing.T) {
	data := buildZip(t, map[string]string{
		"stops.txt": `stop_id,stop_name
S1,Ville Basse
S2,Ville Haute
`,
		"stop_times.txt": `trip_id,stop_id,stop_sequence,arrival_time,departure_time
T9,S1,1,08:00:00,08:00:00
T9,S2,2,09:00:00,09:00:00
T9,S1,3,10:00:00,10:00:00
`,
	})
	tt, err := NewTimetableFromBytes(data)
	if err != nil {
		t.Fatalf("parsing zip: %v", err)
	}
	idx, ok := tt.GetStopIndex("T9", "S1")
	if !ok || idx != 0 {
		t.Errorf("expected first call to win, got index %d (ok=%v)", idx, ok)
	}
	if got := tt.TripsThrough("S1"); !reflect.DeepEqual(got, []string{"T9"}) {
		t.Errorf("expected T9 listed once, got %v", got)
	}
}

func TestUnparseableTimeKeepsTextAndFlagsSeconds(t *testing.T) {
	data := buildZip(t, map[string]string{
		"stops.txt": `stop_id,stop_name
S1,Ville Basse
S2,Ville Haute
`,
		"stop_times.txt": `trip_id,stop_id,stop_sequence,arrival_time,departure_time
T1,S1,1,,xx
T1,S2,2,09:00:00,09:00:00
`,
	})
	tt, err := NewTimetableFromBytes(data)
	if err != nil {
		t.Fatalf("parsing zip: %v", err)
	}
	rows := tt.GetStopTimes("T1")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ArrSec != -1 || rows[0].DepSec != -1 {
		t.Errorf("expected -1 sentinels for unparseable times, got %d/%d", rows[0].ArrSec, rows[0].DepSec)
	}
	if rows[0].Departure != "xx" {
		t.Errorf("expected raw text kept, got %q", rows[0].Departure)
	}
}

func TestNewTimetableFromBytes_Errors(t *testing.T) {
	if _, err := NewTimetableFromBytes([]byte("not a zip")); err == nil {
		t.Error("expected error for non-zip bytes")
	}
	if _, err := NewTimetableFromBytes(buildZip(t, map[string]string{})); err == nil {
		t.Error("expected error for zip with no GTFS files")
	}
	onlyRoutes := buildZip(t, map[string]string{"routes.txt": "route_id,route_short_name\nR1,TGV\n"})
	if _, err := NewTimetableFromBytes(onlyRoutes); err == nil {
		t.Error("expected error for zip without stops or stop_times")
	}
}

func TestLoadFromConfig_CacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "feed.zip")
	if err := os.WriteFile(zipPath, buildZip(t, fixtureFiles()), 0o644); err != nil {
		t.Fatalf("writing zip: %v", err)
	}
	cfg := config.GTFSConfig{
		AgencyID:  "SNCF",
		LocalPath: zipPath,
		CachePath: filepath.Join(dir, "feed.cache"),
	}

	tt, err := LoadFromConfig(cfg)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if tt.AgencyID != "SNCF" {
		t.Errorf("expected agency SNCF, got %q", tt.AgencyID)
	}

	// Drop the zip; the second load must come from the cache alone.
	if err := os.Remove(zipPath); err != nil {
		t.Fatalf("removing zip: %v", err)
	}
	cached, err := LoadFromConfig(cfg)
	if err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if cached.StopCount() != tt.StopCount() || cached.TripCount() != tt.TripCount() {
		t.Errorf("expected cache to reproduce %d stops and %d trips, got %d and %d",
			tt.StopCount(), tt.TripCount(), cached.StopCount(), cached.TripCount())
	}
}

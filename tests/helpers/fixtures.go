package helpers

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
	"github.com/theoremus-urban-solutions/travel-order-resolver/gtfs"
)

// BuildGTFSZip assembles an in-memory GTFS zip from file name to content.
func BuildGTFSZip(t *testing.T, files map[string]string) []byte {
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

// FixtureGTFSZip returns the standard test network as GTFS zip bytes.
//
//	T1 (R1 "TGV A"): Paris Gare de Lyon 08:00 -> Lyon Part Dieu 10:00/10:05 -> Marseille Saint Charles 12:00
//	T2 (R1):         Paris Gare de Lyon 06:30 -> Lyon Part Dieu 08:30
//	T3 (R2):         Lyon Part Dieu    11:00 -> Brest 15:00
//
// Culoz (SC1) carries no stop_code, so it is only reachable through the
// stop-name fallback. Marseille and Brest share no trip and no transfer.
func FixtureGTFSZip(t *testing.T) []byte {
	t.Helper()
	return BuildGTFSZip(t, map[string]string{
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
		"stop_times.txt": `trip_id,stop_id,stop_sequence,arrival_time,departure_time
T1,SP1,1,08:00:00,08:00:00
T1,SL1,2,10:00:00,10:05:00
T1,SM1,3,12:00:00,12:00:00
T2,SP1,1,06:30:00,06:30:00
T2,SL1,2,08:30:00,08:30:00
T3,SL1,1,11:00:00,11:00:00
T3,SB1,2,15:00:00,15:00:00
`,
	})
}

// FixtureTimetable parses the standard network into a Timetable.
func FixtureTimetable(t *testing.T) *gtfs.Timetable {
	t.Helper()
	tt, err := gtfs.NewTimetableFromBytes(FixtureGTFSZip(t))
	if err != nil {
		t.Fatalf("parsing fixture network: %v", err)
	}
	return tt
}

// FixtureGazetteer returns a gazetteer aligned with the standard network.
// Bordeaux and Toulouse carry stations whose UIC codes map nowhere in the
// feed; Culoz's station has a UIC but the feed stop carries none, leaving
// only the name fallback. The two Sainte Foy spellings share a key and
// resolve as homonyms.
func FixtureGazetteer(t *testing.T) *gazetteer.Gazetteer {
	t.Helper()
	cities := []string{
		"Paris", "Lyon", "Marseille", "Brest", "Toulouse",
		"Bordeaux", "Culoz", "Sainte-Foy", "Sainte Foy",
	}
	stations := []gazetteer.Station{
		{Name: "Paris Gare de Lyon", UIC: "87686006", Lat: 48.8443, Lon: 2.3744},
		{Name: "Paris Montparnasse", UIC: "87391003", Lat: 48.8409, Lon: 2.3188},
		{Name: "Paris Est", UIC: "87113001", Lat: 48.8768, Lon: 2.3592},
		{Name: "Lyon Part Dieu", UIC: "87723197", Lat: 45.7606, Lon: 4.8595},
		{Name: "Lyon Perrache", UIC: "87722025", Lat: 45.7486, Lon: 4.8261},
		{Name: "Marseille Saint Charles", UIC: "87751008", Lat: 43.3028, Lon: 5.3806},
		{Name: "Brest", UIC: "87474007", Lat: 48.3904, Lon: -4.4861},
		{Name: "Toulouse Matabiau", UIC: "87611004", Lat: 43.6112, Lon: 1.4531},
		{Name: "Bordeaux Saint Jean", UIC: "87581009", Lat: 44.8256, Lon: -0.5565},
		{Name: "Culoz", UIC: "87741009", Lat: 45.8470, Lon: 5.7790},
	}
	gaz, err := gazetteer.New(cities, stations, 85)
	if err != nil {
		t.Fatalf("building fixture gazetteer: %v", err)
	}
	return gaz
}

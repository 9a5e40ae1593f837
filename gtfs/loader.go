package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/travel-order-resolver/config"
	"github.com/theoremus-urban-solutions/travel-order-resolver/nlp"
)

// LoadFromConfig builds a Timetable for one configured feed. When CachePath
// is set, a readable cache short-circuits parsing and a fresh parse is
// written back; the cache write is best effort.
func LoadFromConfig(cfg config.GTFSConfig) (*Timetable, error) {
	if cfg.CachePath != "" {
		if tt, err := DeserializeTimetableFromFile(cfg.CachePath); err == nil {
			return tt, nil
		}
	}
	var (
		tt  *Timetable
		err error
	)
	switch {
	case cfg.LocalPath != "":
		tt, err = LoadZipFile(cfg.LocalPath)
	case cfg.StaticURL != "":
		tt, err = LoadZipURL(cfg.StaticURL)
	default:
		return nil, fmt.Errorf("gtfs: feed has neither localPath nor staticURL")
	}
	if err != nil {
		return nil, err
	}
	tt.AgencyID = cfg.AgencyID
	if cfg.CachePath != "" {
		_ = SerializeTimetableToFile(tt, cfg.CachePath)
	}
	return tt, nil
}

// LoadZipFile parses a local GTFS zip into a Timetable.
func LoadZipFile(path string) (*Timetable, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return buildFromZip(&zr.Reader)
}

// LoadZipURL downloads a GTFS zip and parses it into a Timetable.
func LoadZipURL(url string) (*Timetable, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gtfs: fetch %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return NewTimetableFromBytes(data)
}

// NewTimetableFromBytes parses raw GTFS zip bytes into a Timetable.
func NewTimetableFromBytes(data []byte) (*Timetable, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return buildFromZip(zr)
}

func buildFromZip(zr *zip.Reader) (*Timetable, error) {
	tt := newTimetable()
	stopCodes := map[string]string{}
	for _, f := range zr.File {
		name := strings.ToLower(f.Name)
		if name == "routes.txt" || name == "trips.txt" || name == "stops.txt" || name == "stop_times.txt" {
			if err := tt.consumeCSV(f, stopCodes); err != nil {
				return nil, fmt.Errorf("gtfs: %s: %w", f.Name, err)
			}
		}
	}
	if len(tt.StopNames) == 0 || len(tt.TripStops) == 0 {
		return nil, fmt.Errorf("gtfs: zip carries no usable stops or stop_times")
	}
	tt.finalize(stopCodes)
	return tt, nil
}

func (t *Timetable) consumeCSV(f *zip.File, stopCodes map[string]string) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\uFEFF")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(h, col) {
				return i
			}
		}
		return -1
	}
	cell := func(row []string, i int) string {
		if i >= 0 && i < len(row) {
			return row[i]
		}
		return ""
	}
	switch strings.ToLower(f.Name) {
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		rLN := idx("route_long_name")
		for _, row := range rec[1:] {
			id := cell(row, rID)
			if id == "" {
				continue
			}
			name := cell(row, rSN)
			if name == "" {
				name = cell(row, rLN)
			}
			t.RouteShortNames[id] = name
		}
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		for _, row := range rec[1:] {
			if trip := cell(row, tID); trip != "" {
				t.TripToRoute[trip] = cell(row, rID)
			}
		}
	case "stops.txt":
		sID := idx("stop_id")
		sN := idx("stop_name")
		sLat := idx("stop_lat")
		sLon := idx("stop_lon")
		sCode := idx("stop_code")
		for _, row := range rec[1:] {
			id := cell(row, sID)
			if id == "" {
				continue
			}
			name := cell(row, sN)
			t.StopNames[id] = name
			t.StopNameNorm[id] = nlp.Normalize(name)
			if lat, errLat := strconv.ParseFloat(cell(row, sLat), 64); errLat == nil {
				if lon, errLon := strconv.ParseFloat(cell(row, sLon), 64); errLon == nil {
					t.StopCoord[id] = [2]float64{lon, lat}
				}
			}
			if code := strings.TrimSpace(cell(row, sCode)); code != "" {
				stopCodes[id] = code
			}
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		arr := idx("arrival_time")
		dep := idx("departure_time")
		if tID < 0 || sID < 0 || sq < 0 {
			return nil
		}
		for _, row := range rec[1:] {
			trip := cell(row, tID)
			stop := cell(row, sID)
			seq, errSeq := strconv.Atoi(strings.TrimSpace(cell(row, sq)))
			if trip == "" || stop == "" || errSeq != nil {
				continue
			}
			st := StopTime{StopID: stop, Seq: seq, Arrival: cell(row, arr), Departure: cell(row, dep)}
			if sec, ok := ParseTime(st.Arrival); ok {
				st.ArrSec = sec
			} else {
				st.ArrSec = -1
			}
			if sec, ok := ParseTime(st.Departure); ok {
				st.DepSec = sec
			} else {
				st.DepSec = -1
			}
			t.TripStops[trip] = append(t.TripStops[trip], st)
		}
	}
	return nil
}

package gazetteer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCityList reads a city list file with one canonical name per line.
// Blank lines and lines starting with '#' are skipped.
func LoadCityList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cities []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cities = append(cities, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cities, nil
}

// LoadStationTable reads the cleaned national station table. Expected columns
// are station_name, uic_code, latitude and longitude; extra columns are
// ignored. Rows without a station name are dropped and rows without usable
// coordinates load with zero coordinates.
func LoadStationTable(path string) ([]Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readStations(f)
}

func readStations(r io.Reader) ([]Station, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("station table: empty file")
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\uFEFF")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	name := idx("station_name")
	uic := idx("uic_code")
	lat := idx("latitude")
	lon := idx("longitude")
	if name < 0 {
		return nil, fmt.Errorf("station table: missing station_name column")
	}
	var stations []Station
	for _, row := range rec[1:] {
		if name >= len(row) {
			continue
		}
		st := Station{Name: strings.TrimSpace(row[name])}
		if st.Name == "" {
			continue
		}
		if uic >= 0 && uic < len(row) {
			st.UIC = sanitizeUIC(row[uic])
		}
		if lat >= 0 && lat < len(row) && lon >= 0 && lon < len(row) {
			la, errLa := strconv.ParseFloat(strings.TrimSpace(row[lat]), 64)
			lo, errLo := strconv.ParseFloat(strings.TrimSpace(row[lon]), 64)
			if errLa == nil && errLo == nil {
				st.Lat, st.Lon = la, lo
			}
		}
		stations = append(stations, st)
	}
	return stations, nil
}

// sanitizeUIC reduces a raw uic_code cell to its leading digit run. The source
// table sometimes carries several codes separated by ';' and float formatting
// such as "87686006.0"; the first code wins and the fraction is dropped.
func sanitizeUIC(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FromFiles builds a gazetteer from a city list file and a station table file.
// The station path may be empty when no timetable features are needed.
func FromFiles(cityPath, stationPath string, similarityFloor int) (*Gazetteer, error) {
	cities, err := LoadCityList(cityPath)
	if err != nil {
		return nil, fmt.Errorf("city list %s: %w", cityPath, err)
	}
	var stations []Station
	if stationPath != "" {
		stations, err = LoadStationTable(stationPath)
		if err != nil {
			return nil, fmt.Errorf("station table %s: %w", stationPath, err)
		}
	}
	return New(cities, stations, similarityFloor)
}

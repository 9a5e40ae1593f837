package pathfinder

import (
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
	"github.com/theoremus-urban-solutions/travel-order-resolver/nlp"
)

// Flagship designations. These dominate every additive trait so the primary
// station always outranks its siblings.
const (
	scoreParisGareDeLyon = 10000
	scoreLyonPartDieu    = 9000
	scoreLyonPerrache    = 8000
)

// HubCandidate is one station considered as a city's timetable anchor.
type HubCandidate struct {
	Station gazetteer.Station
	Score   int
}

// RankHubs returns a city's candidate hub stations, best first. Scoring is
// additive over flagship designations and name traits, shorter names score
// higher, and equal scores fall back to alphabetical order, so the same city
// always yields the same list.
func (p *Pathfinder) RankHubs(city string) []HubCandidate {
	cityKey := nlp.Normalize(city)
	if cityKey == "" {
		return nil
	}
	stations := p.gaz.StationsForCity(cityKey)
	hubs := make([]HubCandidate, 0, len(stations))
	for _, st := range stations {
		hubs = append(hubs, HubCandidate{Station: st, Score: hubScore(cityKey, st.Name)})
	}
	sort.SliceStable(hubs, func(i, j int) bool {
		if hubs[i].Score != hubs[j].Score {
			return hubs[i].Score > hubs[j].Score
		}
		return hubs[i].Station.Name < hubs[j].Station.Name
	})
	return hubs
}

func hubScore(cityKey, stationName string) int {
	n := nlp.Normalize(stationName)

	if cityKey == "paris" && strings.Contains(n, "gare de lyon") {
		return scoreParisGareDeLyon
	}
	if cityKey == "lyon" && strings.Contains(n, "part dieu") {
		return scoreLyonPartDieu
	}
	if cityKey == "lyon" && strings.Contains(n, "perrache") {
		return scoreLyonPerrache
	}

	s := 0
	if strings.Contains(n, "tgv") {
		s += 200
	}
	if strings.Contains(n, "gare") {
		s += 100
	}
	if strings.Contains(n, "centre") {
		s += 40
	}
	if strings.Contains(n, "halte") {
		s -= 60
	}
	if strings.Contains(n, "car") {
		s -= 80
	}
	s += shortNameBonus(n)
	return s
}

func shortNameBonus(n string) int {
	b := 30 - len(n)/3
	if b < 0 {
		return 0
	}
	return b
}

// stopSets maps a city to timetable stop-id sets, one per ranked hub with a
// usable UIC code, in hub order. When no hub resolves to stops, a single set
// is built by substring match of the city name over stop names. An empty
// result means the city is absent from the timetable.
func (p *Pathfinder) stopSets(city string) [][]string {
	var sets [][]string
	seen := make(map[string]bool)
	for _, hub := range p.RankHubs(city) {
		if len(sets) >= p.maxHubPairs {
			break
		}
		uic := hub.Station.UIC
		if uic == "" || seen[uic] {
			continue
		}
		seen[uic] = true
		if ids := p.tt.StopsForUIC(uic); len(ids) > 0 {
			sets = append(sets, capStops(ids, p.maxHubStops))
		}
	}
	if len(sets) == 0 {
		if ids := p.tt.StopsMatchingName(nlp.Normalize(city), p.maxHubStops); len(ids) > 0 {
			sets = append(sets, ids)
		}
	}
	return sets
}

func capStops(ids []string, max int) []string {
	if len(ids) > max {
		return ids[:max]
	}
	return ids
}

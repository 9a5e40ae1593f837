package gazetteer

import (
	"sort"

	"github.com/coregx/ahocorasick"
)

// Scanner finds known-city mentions inside normalized text with a single
// automaton pass over all gazetteer keys.
type Scanner struct {
	ac   *ahocorasick.Automaton
	keys []string
}

// CityMention is one automaton hit: a whole-word city key occurrence with
// byte offsets into the scanned (normalized) text.
type CityMention struct {
	Key   string
	Start int
	End   int
}

func newScanner(keys []string) (*Scanner, error) {
	ac, err := ahocorasick.NewBuilder().
		AddStrings(keys).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	return &Scanner{ac: ac, keys: keys}, nil
}

// Scanner returns the sentence scanner built over all city keys.
func (g *Gazetteer) Scanner() *Scanner { return g.scanner }

// Scan returns the whole-word city mentions in a normalized sentence, in
// reading order. Substring hits inside longer tokens are discarded, so
// "valence" is not reported inside "equivalence", and when two keys overlap
// the leftmost longest one wins, so "saint etienne" hides "etienne".
func (s *Scanner) Scan(norm string) []CityMention {
	if norm == "" {
		return nil
	}
	matches := s.ac.FindAllOverlapping([]byte(norm))
	hits := make([]CityMention, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.End > len(norm) || m.Start >= m.End {
			continue
		}
		leftOK := m.Start == 0 || norm[m.Start-1] == ' '
		rightOK := m.End == len(norm) || norm[m.End] == ' '
		if !leftOK || !rightOK {
			continue
		}
		hits = append(hits, CityMention{Key: norm[m.Start:m.End], Start: m.Start, End: m.End})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Start != hits[j].Start {
			return hits[i].Start < hits[j].Start
		}
		return hits[i].End > hits[j].End
	})
	out := hits[:0]
	prevEnd := -1
	for _, h := range hits {
		if h.Start < prevEnd {
			continue
		}
		out = append(out, h)
		prevEnd = h.End
	}
	return out
}

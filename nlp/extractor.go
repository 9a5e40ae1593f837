package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role tags a mention as the origin or the destination of a travel order.
type Role string

const (
	RoleOrigin      Role = "ORIGIN"
	RoleDestination Role = "DESTINATION"
)

// Mention is a span of the raw sentence believed to name a place. Offsets are
// byte positions in the raw sentence; Norm carries the cleaned normalized
// slot text used for gazetteer lookups.
type Mention struct {
	Role  Role
	Text  string
	Norm  string
	Start int
	End   int
}

// Extraction is the extractor's verdict for one sentence. Pattern names the
// winning surface pattern and is empty when nothing matched.
type Extraction struct {
	Origin      *Mention
	Destination *Mention
	Pattern     string
}

// Complete reports whether both roles were located.
func (e Extraction) Complete() bool { return e.Origin != nil && e.Destination != nil }

// Extract locates origin and destination mentions in a raw sentence. Patterns
// are tried most specific first and the first one producing both roles wins.
// When no marker-based pattern matches, two consecutive capitalized tokens are
// read as origin then destination in left-to-right order. Known limitation:
// a marker-less sentence written in inverted order is misread, since nothing
// in it distinguishes the two readings.
func Extract(sentence string) Extraction {
	norm, mapping := NormalizeMapped(sentence)
	if norm == "" {
		return Extraction{}
	}
	for _, p := range surfacePatterns {
		idx := p.re.FindStringSubmatchIndex(norm)
		if idx == nil {
			continue
		}
		origin := mentionFromSlot(sentence, norm, mapping, idx[2*p.origin], idx[2*p.origin+1], RoleOrigin)
		destination := mentionFromSlot(sentence, norm, mapping, idx[2*p.destination], idx[2*p.destination+1], RoleDestination)
		if origin == nil || destination == nil {
			continue
		}
		return Extraction{Origin: origin, Destination: destination, Pattern: p.name}
	}
	return adjacencyFallback(sentence, norm, mapping)
}

// mentionFromSlot trims a captured slot to a plausible place-name span and
// maps it back onto the raw sentence.
func mentionFromSlot(sentence, norm string, mapping []int, start, end int, role Role) *Mention {
	if start < 0 || end > len(norm) || start >= end {
		return nil
	}
	slot := norm[start:end]
	cleaned := cleanSlot(slot)
	if cleaned == "" {
		return nil
	}
	offset := strings.Index(slot, cleaned)
	if offset < 0 {
		offset = 0
	}
	nStart := start + offset
	nEnd := nStart + len(cleaned)
	text, rawStart, rawEnd := SliceOriginal(sentence, mapping, nStart, nEnd)
	if text == "" {
		return nil
	}
	return &Mention{Role: role, Text: text, Norm: cleaned, Start: rawStart, End: rawEnd}
}

// cleanSlot cuts a captured slot at the first word that cannot belong to a
// place name and bounds it to the token window.
func cleanSlot(slot string) string {
	if loc := slotStopper.FindStringIndex(slot); loc != nil {
		slot = slot[:loc[0]]
	}
	slot = strings.TrimSpace(slot)
	fields := strings.Fields(slot)
	if len(fields) > slotTokenWindow {
		fields = fields[:slotTokenWindow]
	}
	return strings.Join(fields, " ")
}

// markerWords excludes French function words from adjacency candidates, so a
// title-cased marker never masquerades as a place token.
var markerWords = map[string]struct{}{
	"de": {}, "depuis": {}, "a": {}, "vers": {}, "jusqu": {}, "pour": {},
	"et": {}, "avec": {}, "en": {}, "le": {}, "la": {}, "les": {}, "je": {},
	"partir": {}, "aller": {}, "vais": {},
}

func adjacencyFallback(sentence, norm string, mapping []int) Extraction {
	type span struct{ start, end int }
	var tokens []span
	i := 0
	for i < len(norm) {
		if norm[i] == ' ' {
			i++
			continue
		}
		j := i
		for j < len(norm) && norm[j] != ' ' {
			j++
		}
		tokens = append(tokens, span{i, j})
		i = j
	}

	placeLike := func(t span) bool {
		if _, marker := markerWords[norm[t.start:t.end]]; marker {
			return false
		}
		r, _ := utf8.DecodeRuneInString(sentence[mapping[t.start]:])
		return unicode.IsUpper(r)
	}

	for k := 0; k+1 < len(tokens); k++ {
		if !placeLike(tokens[k]) || !placeLike(tokens[k+1]) {
			continue
		}
		origin := mentionFromSlot(sentence, norm, mapping, tokens[k].start, tokens[k].end, RoleOrigin)
		destination := mentionFromSlot(sentence, norm, mapping, tokens[k+1].start, tokens[k+1].end, RoleDestination)
		if origin == nil || destination == nil {
			continue
		}
		return Extraction{Origin: origin, Destination: destination, Pattern: "adjacency"}
	}
	return Extraction{}
}

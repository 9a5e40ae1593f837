package resolver

import (
	"regexp"
	"strings"

	"github.com/theoremus-urban-solutions/travel-order-resolver/gazetteer"
	"github.com/theoremus-urban-solutions/travel-order-resolver/nlp"
)

// Sentences shorter than this are rejected without extraction.
const minSentenceLength = 4

// Options tune the resolution chain. Zero values select the defaults.
type Options struct {
	TieBreakMargin  int
	AcceptThreshold float64
}

// Pipeline ties the extractor, the mention resolver and the scorer together.
type Pipeline struct {
	gaz    *gazetteer.Gazetteer
	res    *Resolver
	scorer *Scorer
}

// NewPipeline builds the full sentence pipeline over a gazetteer.
func NewPipeline(gaz *gazetteer.Gazetteer, opts Options) *Pipeline {
	return &Pipeline{
		gaz:    gaz,
		res:    New(gaz, opts.TieBreakMargin),
		scorer: NewScorer(gaz, opts.AcceptThreshold),
	}
}

// Resolver exposes the mention resolver for callers that work span by span.
func (p *Pipeline) Resolver() *Resolver { return p.res }

// ResolveSentence runs extraction, resolution, scan recovery and scoring for
// one sentence. It never fails; unusable sentences come back as REJECT.
func (p *Pipeline) ResolveSentence(id, sentence string) Resolution {
	sentence = strings.TrimSpace(sentence)
	res := Resolution{SentenceID: id, Sentence: sentence}
	if len(sentence) < minSentenceLength {
		res.Decision = DecisionReject
		return res
	}
	ext := nlp.Extract(sentence)
	res.Pattern = ext.Pattern
	origin := p.res.Resolve(ext.Origin)
	destination := p.res.Resolve(ext.Destination)
	origin, destination = p.recoverByScan(sentence, origin, destination)
	res.Origin, res.Destination = origin, destination
	res.Confidence, res.Decision, res.Breakdown = p.scorer.Score(origin, destination, sentence)
	return res
}

// Cues used to type a lone scanned city as origin or destination.
var (
	originCue      = regexp.MustCompile(`\b(?:de|depuis) `)
	destinationCue = regexp.MustCompile(`\b(?:a|vers) `)
)

// recoverByScan fills roles the pattern stage could not settle by scanning
// the whole sentence for known city names, leftmost first. Cities already
// claimed by a usable role are skipped.
func (p *Pipeline) recoverByScan(sentence string, origin, destination *ResolvedEntity) (*ResolvedEntity, *ResolvedEntity) {
	if usable(origin) && usable(destination) {
		return origin, destination
	}
	norm, mapping := nlp.NormalizeMapped(sentence)
	hits := p.gaz.Scanner().Scan(norm)
	if len(hits) == 0 {
		return origin, destination
	}

	taken := map[string]struct{}{}
	if usable(origin) {
		taken[bestKey(origin)] = struct{}{}
	}
	if usable(destination) {
		taken[bestKey(destination)] = struct{}{}
	}
	var free []gazetteer.CityMention
	seen := map[string]struct{}{}
	for _, h := range hits {
		if _, dup := seen[h.Key]; dup {
			continue
		}
		seen[h.Key] = struct{}{}
		if _, used := taken[h.Key]; used {
			continue
		}
		free = append(free, h)
	}
	if len(free) == 0 {
		return origin, destination
	}

	switch {
	case !usable(origin) && !usable(destination):
		if len(free) >= 2 {
			return p.entityFromScan(sentence, norm, mapping, free[0], nlp.RoleOrigin),
				p.entityFromScan(sentence, norm, mapping, free[1], nlp.RoleDestination)
		}
		return p.assignSingle(sentence, norm, mapping, free[0], origin, destination)
	case !usable(origin):
		origin = p.entityFromScan(sentence, norm, mapping, free[0], nlp.RoleOrigin)
	default:
		destination = p.entityFromScan(sentence, norm, mapping, free[0], nlp.RoleDestination)
	}
	return origin, destination
}

// assignSingle types the only known city in the sentence by the marker that
// precedes it: an origin marker anywhere before the name reads as departure,
// else a destination marker reads as arrival. With no cue at all the role
// stays open and the sentence will be rejected downstream.
func (p *Pipeline) assignSingle(sentence, norm string, mapping []int, hit gazetteer.CityMention, origin, destination *ResolvedEntity) (*ResolvedEntity, *ResolvedEntity) {
	prefix := norm[:hit.Start]
	switch {
	case originCue.MatchString(prefix):
		return p.entityFromScan(sentence, norm, mapping, hit, nlp.RoleOrigin), destination
	case destinationCue.MatchString(prefix):
		return origin, p.entityFromScan(sentence, norm, mapping, hit, nlp.RoleDestination)
	}
	return origin, destination
}

func (p *Pipeline) entityFromScan(sentence, norm string, mapping []int, hit gazetteer.CityMention, role nlp.Role) *ResolvedEntity {
	text, start, end := nlp.SliceOriginal(sentence, mapping, hit.Start, hit.End)
	m := &nlp.Mention{Role: role, Text: text, Norm: hit.Key, Start: start, End: end}
	return p.res.ResolveKey(m, hit.Key)
}

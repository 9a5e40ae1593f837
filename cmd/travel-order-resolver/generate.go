package main

import (
	"encoding/csv"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Sentence templates for the labeled corpus. {dep} and {dest} are filled
// with sampled city names.
var validTemplates = []string{
	"Je veux aller de {dep} à {dest}",
	"Je souhaite me rendre à {dest} depuis {dep}",
	"Je vais à {dest} depuis {dep}",
	"Je veux un trajet de {dep} vers {dest}",
	"Aller de {dep} à {dest} s'il vous plaît",
}

var trashTexts = []string{
	"Bonjour", "Salut", "Merci", "Comment ça va",
	"Quel temps fait-il", "Je m'appelle Paul",
	"Paris est une belle ville", "J'aime le train",
}

var ambiguousTemplates = []string{
	"Je veux aller de {dep1} ou {dep2} à {dest}",
	"Je souhaite aller de {dep} à {dest1} ou {dest2}",
}

var destOnlyTemplates = []string{
	"Je veux aller à {dest}",
	"Aller à {dest} s'il te plaît",
}

var depOnlyTemplates = []string{
	"Je pars de {dep}",
	"Depuis {dep}",
}

const typoProbability = 0.25

// corpusGenerator produces a labeled evaluation corpus: valid travel orders
// with the expected city pair, plus trash, incomplete and ambiguous
// sentences labeled invalid. Output is reproducible for a given seed.
type corpusGenerator struct {
	rng    *rand.Rand
	cities []string
}

func newCorpusGenerator(cities []string, seed int64) *corpusGenerator {
	return &corpusGenerator{rng: rand.New(rand.NewSource(seed)), cities: cities}
}

// WriteCorpus writes n labeled rows as CSV with a header.
func (g *corpusGenerator) WriteCorpus(w io.Writer, n int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sentence_id", "sentence", "expected_dep", "expected_dest", "expected_valid"}); err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		if err := cw.Write(g.row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (g *corpusGenerator) row(id int) []string {
	r := g.rng.Float64()
	var sentence, dep, dest string
	valid := "0"
	switch {
	case r < 0.55:
		sentence, dep, dest = g.validSentence()
		valid = "1"
	case r < 0.75:
		sentence = trashTexts[g.rng.Intn(len(trashTexts))]
	case r < 0.90:
		sentence = g.incompleteSentence()
	default:
		sentence = g.ambiguousSentence()
	}
	return []string{strconv.Itoa(id), sentence, dep, dest, valid}
}

// validSentence labels the canonical pair even when the surface form gets a
// typo, so the corpus scores typo tolerance.
func (g *corpusGenerator) validSentence() (string, string, string) {
	pair := g.sample(2)
	dep, dest := pair[0], pair[1]
	depOut, destOut := dep, dest
	if g.rng.Float64() < typoProbability {
		if g.rng.Float64() < 0.5 {
			depOut = g.typo(dep)
		}
		if g.rng.Float64() < 0.5 {
			destOut = g.typo(dest)
		}
	}
	tmpl := validTemplates[g.rng.Intn(len(validTemplates))]
	return strings.NewReplacer("{dep}", depOut, "{dest}", destOut).Replace(tmpl), dep, dest
}

func (g *corpusGenerator) incompleteSentence() string {
	if g.rng.Float64() < 0.5 {
		tmpl := destOnlyTemplates[g.rng.Intn(len(destOnlyTemplates))]
		return strings.Replace(tmpl, "{dest}", g.sample(1)[0], 1)
	}
	tmpl := depOnlyTemplates[g.rng.Intn(len(depOnlyTemplates))]
	return strings.Replace(tmpl, "{dep}", g.sample(1)[0], 1)
}

func (g *corpusGenerator) ambiguousSentence() string {
	cities := g.sample(3)
	tmpl := ambiguousTemplates[g.rng.Intn(len(ambiguousTemplates))]
	if strings.Contains(tmpl, "{dep1}") {
		return strings.NewReplacer("{dep1}", cities[0], "{dep2}", cities[1], "{dest}", cities[2]).Replace(tmpl)
	}
	return strings.NewReplacer("{dep}", cities[0], "{dest1}", cities[1], "{dest2}", cities[2]).Replace(tmpl)
}

// typo drops one interior character or swaps two adjacent ones, on the
// transliterated name. Names shorter than four characters pass through.
func (g *corpusGenerator) typo(city string) string {
	c := unidecode.Unidecode(city)
	if len(c) < 4 {
		return c
	}
	s := []byte(c)
	if g.rng.Intn(2) == 0 {
		i := 1 + g.rng.Intn(len(s)-2)
		s = append(s[:i], s[i+1:]...)
	} else {
		i := 1 + g.rng.Intn(len(s)-3)
		s[i], s[i+1] = s[i+1], s[i]
	}
	return string(s)
}

// sample returns n distinct city names.
func (g *corpusGenerator) sample(n int) []string {
	idx := g.rng.Perm(len(g.cities))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = g.cities[idx[i]]
	}
	return out
}

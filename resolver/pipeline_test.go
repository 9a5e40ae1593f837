package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSentence_MarkerPair(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	res := p.ResolveSentence("1", "Je veux aller de Paris à Lyon")
	assert.Equal(t, "1", res.SentenceID)
	assert.Equal(t, "origin-first", res.Pattern)
	require.True(t, res.Origin.Resolved())
	require.True(t, res.Destination.Resolved())
	assert.Equal(t, "Paris", res.Origin.Place.Canonical)
	assert.Equal(t, "Lyon", res.Destination.Place.Canonical)
	assert.Equal(t, DecisionAccept, res.Decision)
	// Station fanout on both sides plus the "Gare de Lyon" name leak.
	assert.InDelta(t, 0.81, res.Confidence, 1e-9)
}

func TestResolveSentence_InvertedOrder(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	res := p.ResolveSentence("2", "Je souhaite me rendre à Marseille depuis Toulouse")
	assert.Equal(t, "inverted-verb", res.Pattern)
	require.True(t, res.Origin.Resolved())
	require.True(t, res.Destination.Resolved())
	assert.Equal(t, "Toulouse", res.Origin.Place.Canonical)
	assert.Equal(t, "Marseille", res.Destination.Place.Canonical)
	assert.Equal(t, DecisionAccept, res.Decision)
	assert.InDelta(t, 0.92, res.Confidence, 1e-9)
}

func TestResolveSentence_HomonymAsks(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	res := p.ResolveSentence("3", "Je veux aller de Sainte-Foy à Brest")
	require.NotNil(t, res.Origin)
	assert.Equal(t, EntityAmbiguous, res.Origin.Status)
	assert.Len(t, res.Origin.Candidates, 2)
	assert.Equal(t, DecisionAsk, res.Decision)
	assert.InDelta(t, 0.91, res.Confidence, 1e-9)
}

func TestResolveSentence_ScanRecovery(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	// No marker pattern and no capitalized pair; the gazetteer scan is the
	// only stage that can type these two names.
	res := p.ResolveSentence("4", "trouve moi un billet paris marseille")
	assert.Empty(t, res.Pattern)
	require.True(t, res.Origin.Resolved())
	require.True(t, res.Destination.Resolved())
	assert.Equal(t, "Paris", res.Origin.Place.Canonical)
	assert.Equal(t, "Marseille", res.Destination.Place.Canonical)
	assert.Equal(t, DecisionAccept, res.Decision)
	assert.InDelta(t, 0.90, res.Confidence, 1e-9)
}

func TestResolveSentence_FuzzyAccept(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	res := p.ResolveSentence("5", "Je veux aller de Marseile à Brest")
	require.True(t, res.Origin.Resolved())
	assert.Equal(t, MatchFuzzy, res.Origin.Kind)
	assert.Equal(t, "Marseille", res.Origin.Place.Canonical)
	assert.Equal(t, DecisionAccept, res.Decision)
	assert.InDelta(t, 0.82*float64(res.Origin.Similarity)/100, res.Confidence, 1e-9)
}

func TestResolveSentence_PersonalNameRejected(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	res := p.ResolveSentence("6", "Je veux aller de Pierre à Paris")
	require.NotNil(t, res.Origin)
	assert.Equal(t, EntityUnresolved, res.Origin.Status)
	require.True(t, res.Destination.Resolved())
	assert.Equal(t, "Paris", res.Destination.Place.Canonical)
	assert.Equal(t, DecisionReject, res.Decision)
	assert.InDelta(t, 0.15, res.Confidence, 1e-9)
}

func TestResolveSentence_DestinationOnlyRejected(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	res := p.ResolveSentence("7", "Je veux aller à Paris")
	assert.False(t, res.Origin.Resolved())
	require.True(t, res.Destination.Resolved())
	assert.Equal(t, "Paris", res.Destination.Place.Canonical)
	assert.Equal(t, DecisionReject, res.Decision)
}

func TestResolveSentence_OriginOnlyRejected(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	res := p.ResolveSentence("8", "Je pars de Marseille")
	require.True(t, res.Origin.Resolved())
	assert.Equal(t, "Marseille", res.Origin.Place.Canonical)
	assert.False(t, res.Destination.Resolved())
	assert.Equal(t, DecisionReject, res.Decision)
}

func TestResolveSentence_NoPlaces(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	res := p.ResolveSentence("9", "Bonjour")
	assert.Equal(t, DecisionReject, res.Decision)
	assert.InDelta(t, 0.15, res.Confidence, 1e-9)
}

func TestResolveSentence_TooShort(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	res := p.ResolveSentence("10", "ok")
	assert.Equal(t, DecisionReject, res.Decision)
	assert.Zero(t, res.Confidence)
	assert.Nil(t, res.Origin)
	assert.Nil(t, res.Destination)
	assert.Empty(t, res.Pattern)
}

func TestResolveSentence_TrimsInput(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	res := p.ResolveSentence("11", "  Je veux aller de Paris à Lyon  ")
	assert.Equal(t, "Je veux aller de Paris à Lyon", res.Sentence)
	assert.Equal(t, DecisionAccept, res.Decision)
}

func TestResolveSentence_ScanBackfillsMissingRole(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})

	// The origin slot is gibberish but another known city sits later in the
	// sentence. The scan skips Lyon, already claimed by the destination, and
	// promotes Brest into the open origin role.
	res := p.ResolveSentence("12", "Je veux aller de Qqqq à Lyon et passer par Brest")
	require.True(t, res.Origin.Resolved())
	require.True(t, res.Destination.Resolved())
	assert.Equal(t, "Brest", res.Origin.Place.Canonical)
	assert.Equal(t, "Lyon", res.Destination.Place.Canonical)
	assert.Equal(t, DecisionAccept, res.Decision)
}

func TestPipeline_ResolverAccessor(t *testing.T) {
	p := NewPipeline(testGazetteer(t), Options{})
	require.NotNil(t, p.Resolver())

	e := p.Resolver().Resolve(mention("brest", "Brest"))
	assert.True(t, e.Resolved())
}

package nlp

import "regexp"

// Surface patterns are matched against the normalized sentence, most specific
// first; the first pattern that yields both roles wins. Markers are written in
// their normalized (accent-stripped) form.
type surfacePattern struct {
	name        string
	re          *regexp.Regexp
	origin      int
	destination int
}

const (
	originMarkers      = `de|depuis|a partir de|en partant de|en quittant`
	destinationMarkers = `jusqu a|pour aller a|pour se rendre a|vers|a`
	movementVerbs      = `aller|vais|va|allons|allez|me rendre|se rendre|rendre|partir`
)

var surfacePatterns = []surfacePattern{
	// "de X à Y", "depuis X vers Y", "en partant de X jusqu'à Y", ...
	{
		name:        "origin-first",
		re:          regexp.MustCompile(`\b(?:` + originMarkers + `)\s+(.+?)\s+(?:` + destinationMarkers + `)\s+(.+)$`),
		origin:      1,
		destination: 2,
	},
	// "aller à Y depuis X", "me rendre à Y en partant de X", ...
	{
		name:        "inverted-verb",
		re:          regexp.MustCompile(`\b(?:` + movementVerbs + `)\s+(?:` + destinationMarkers + `)\s+(.+?)\s+(?:depuis|en partant de|en quittant)\s+(.+)$`),
		origin:      2,
		destination: 1,
	},
	// "à Y depuis X" without a recognizable verb.
	{
		name:        "inverted-bare",
		re:          regexp.MustCompile(`\b(?:` + destinationMarkers + `)\s+(.+?)\s+(?:depuis|en partant de|en quittant)\s+(.+)$`),
		origin:      2,
		destination: 1,
	},
}

// Captured slots are cut at the first trailing word that cannot belong to a
// place name, then bounded to a short token window.
var slotStopper = regexp.MustCompile(`\b(?:aujourd|demain|ce soir|ce matin|svp|s il te plait|s il vous plait|merci|avec|pour|et)\b`)

const slotTokenWindow = 4

/*
Package resolver turns raw French travel orders into resolved city pairs.

The package ties three stages together:

  - mention resolution: mapping an extracted span to a canonical place
    through exact lookup, embedded-name scanning and bounded fuzzy matching
  - confidence scoring: a deterministic, explainable score over the pair,
    with ambiguity and contamination dampers
  - the sentence pipeline: extraction, resolution, recovery of missing
    roles by scanning the whole sentence, then scoring

# Resolution chain

Resolve tries, in order, first success wins: exact lookup on the normalized
mention (one place resolves, several places are AMBIGUOUS), a whole-word scan
for a city name embedded in a longer span such as "la gare de Lyon", then
fuzzy lookup bounded by the similarity floor. Fuzzy correction is skipped
entirely for names that double as French first names, and a fuzzy winner must
beat the runner-up by more than the tie-break margin; everything else is
UNRESOLVED.

# Decisions

Score folds the two entities into a confidence in [0,1] and one of three
decisions: ACCEPT, REJECT when either side is unresolved or both sides name
the same city, and ASK when a side is ambiguous or the confidence lands under
the accept threshold. Ambiguity and contamination penalties dampen the
confidence but never cause a REJECT on their own.
*/
package resolver

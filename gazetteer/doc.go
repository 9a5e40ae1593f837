/*
Package gazetteer holds the immutable place-name reference data used by the
resolver and the pathfinder: the known city list, the national station table,
and the curated set of city names that double as French first names.

The gazetteer is built once at startup and is read-only afterwards, so any
number of concurrent lookups may share one instance without locking.

# Lookups

Exact lookup works on normalized keys and is O(1):

	places := gaz.LookupExact(nlp.Normalize("Paris"))

Fuzzy lookup ranks every known key by similarity and never returns a
candidate below the configured floor:

	cands := gaz.LookupFuzzy("marsseille")

Names in the ambiguous set (Pierre, Lourdes, Albert, ...) are reported by
IsAmbiguousPersonalName; callers are expected to refuse fuzzy corrections
for them.

# Sentence scanning

Scan runs an Aho-Corasick automaton built over every normalized city key
against a normalized sentence and returns the mentions in reading order.
It backs the resolver's last-resort mention discovery and contamination
checks.
*/
package gazetteer

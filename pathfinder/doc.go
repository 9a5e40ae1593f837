/*
Package pathfinder answers city-pair queries against a GTFS timetable.

Given a resolved (origin city, destination city) pair it selects hub
stations for both cities, maps them to timetable stops, and searches for a
direct trip first, then a one-transfer itinerary. The search is bounded:
only a few top-ranked hub combinations are attempted, and transfer
candidates are capped per leg, so a query never degenerates into a full
timetable scan.

# Hub Selection

A city usually maps to several stations ("Lyon Part Dieu", "Lyon Perrache",
"Lyon St-Exupery TGV", ...). RankHubs scores every station attached to the
city with a fixed additive heuristic (flagship designations first, then
name traits like "tgv" or "gare", shorter names preferred, alphabetical
final tie-break) so the same city always yields the same ranked list. Each
hub is mapped to concrete stop ids through its UIC code; when no hub
resolves, a substring match of the city name over stop names stands in.

A city that maps to no timetable stop at all fails fast with UNKNOWN_CITY.
Fuzzy correction is deliberately not attempted here; that is the resolver's
job, already done upstream.

# Search

Direct search scans trips through the origin stops for a destination stop
strictly later in the stop sequence and keeps the earliest departure,
breaking ties on the lowest trip id. One-transfer search runs only when the
direct search fails for the hub pair: outbound legs from the origin stops
join inbound legs into the destination stops on a shared transfer stop,
requiring two distinct trips and a transfer departure no earlier than the
first leg's arrival, minimizing total elapsed time. When every attempted
hub pair is exhausted the query ends as NO_ROUTE; a partial answer is never
fabricated.

All results are deterministic: rerunning a query against the same timetable
yields byte-identical itineraries.
*/
package pathfinder

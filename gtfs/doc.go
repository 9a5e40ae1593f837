/*
Package gtfs loads GTFS static timetable data and indexes it for schedule
search.

The package reads the standard zip layout (stops.txt, trips.txt,
stop_times.txt, routes.txt) from a local file, a URL or raw bytes, and builds
an in-memory Timetable with the lookups the pathfinder needs.

# Basic Usage

Load from a local zip:

	tt, err := gtfs.LoadZipFile("data/gtfs_sncf.zip")
	if err != nil {
	    log.Fatal(err)
	}

	name := tt.GetStopName("StopPoint:OCETGV-87686006")
	rows := tt.GetStopTimes("OCESN9572F0100230257")

Load from configuration, with the gob cache handled for you:

	tt, err := gtfs.LoadFromConfig(config.SelectFeed(""))

# Performance: Cache the Index

Parse GTFS once at startup and keep the Timetable in memory; parsing a
national feed takes seconds while a lookup is sub-microsecond. For repeated
runs, point CachePath at a writable location and the parsed index is stored
with encoding/gob and reloaded directly on the next start.

# Data Structure

The index provides fast lookups for:

- Stops (stop_id → stop_name, lat/lon, UIC code)
- UIC codes (8-digit code → stop_ids sharing it)
- Trips (trip_id → route_id, ordered stop-time rows)
- Stop membership (stop_id → trips calling there, trip_id+stop_id → position)

Arrival and departure times are kept both as verbatim timetable text and as
parsed seconds since local midnight, so overnight rows past 24:00:00 order
correctly while output stays byte-identical to the feed.

# Memory Footprint

A national rail feed indexes to a few hundred MB; regional extracts are far
smaller. The Timetable is immutable after load and safe for concurrent reads.
*/
package gtfs

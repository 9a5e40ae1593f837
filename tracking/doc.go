// Package tracking tallies pipeline outcomes and data-quality findings.
//
// This package handles:
// - Counting resolver decisions and match kinds across a batch or server lifetime
// - Counting pathfinder outcomes (planned, no route, unknown city)
// - Aggregating reference-data warnings so a noisy feed logs once, not per row
//
// The Tracker type is the shared counter; handlers and the CLI record into it
// and surface its Summary in logs and the health endpoint.
package tracking

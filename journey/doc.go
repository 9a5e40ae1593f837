// Package journey defines the data types a planned journey is made of.
//
// This package contains the plain structures exchanged between the timetable
// search and the output surfaces:
//
//   - Plan: the outcome of planning one travel order
//   - Itinerary: a rideable connection, direct or with one transfer
//   - Leg: a single ridden segment of an itinerary
//
// All types include JSON struct tags for the HTTP API; the CSV and XML
// renderings are built manually by the formatter package.
package journey

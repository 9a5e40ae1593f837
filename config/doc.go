// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The package supports multiple timetable feeds, selection by name, and
// supplies defaults for every tuning knob, so a minimal file only has to
// point at the gazetteer and timetable data.
package config

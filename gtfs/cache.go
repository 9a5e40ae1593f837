package gtfs

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// SerializeTimetable encodes a Timetable to bytes using gob encoding.
// This is useful for disk-based caching to avoid re-parsing GTFS static data.
//
// Example:
//
//	tt, _ := gtfs.NewTimetableFromBytes(zipBytes)
//	data, err := gtfs.SerializeTimetable(tt)
//	if err != nil {
//	    // handle error
//	}
//	// Save to disk
//	os.WriteFile("/path/to/cache/timetable.gob", data, 0644)
//
// Thread safety: Safe for concurrent use once the timetable is fully constructed.
func SerializeTimetable(tt *Timetable) ([]byte, error) {
	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(tt); err != nil {
		return nil, fmt.Errorf("failed to encode Timetable: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeTimetable decodes a Timetable from bytes using gob encoding.
// Use this to load a previously serialized timetable from disk cache.
//
// Example:
//
//	data, _ := os.ReadFile("/path/to/cache/timetable.gob")
//	tt, err := gtfs.DeserializeTimetable(data)
//	if err != nil {
//	    // Cache is corrupted or invalid, fetch fresh data
//	    tt, _ = gtfs.NewTimetableFromBytes(freshZipBytes)
//	}
//
// Thread safety: The returned timetable is safe for concurrent read access.
func DeserializeTimetable(data []byte) (*Timetable, error) {
	buf := bytes.NewReader(data)
	decoder := gob.NewDecoder(buf)
	var tt Timetable
	if err := decoder.Decode(&tt); err != nil {
		return nil, fmt.Errorf("failed to decode Timetable: %w", err)
	}
	return &tt, nil
}

// SerializeTimetableToFile writes a Timetable to a file using gob encoding.
// This is a convenience wrapper around SerializeTimetable for direct file I/O.
func SerializeTimetableToFile(tt *Timetable, filepath string) error {
	data, err := SerializeTimetable(tt)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// DeserializeTimetableFromFile reads a Timetable from a file using gob encoding.
// This is a convenience wrapper around DeserializeTimetable for direct file I/O.
//
// Example:
//
//	tt, err := gtfs.DeserializeTimetableFromFile("/cache/timetable.gob")
//	if err != nil {
//	    // Cache miss or corrupted, fetch fresh data
//	    tt, _ = gtfs.LoadZipFile("/data/gtfs.zip")
//	}
func DeserializeTimetableFromFile(filepath string) (*Timetable, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeTimetable(data)
}

// SerializeTimetableToWriter writes a Timetable to an io.Writer using gob
// encoding, for custom storage backends (S3, MinIO, etc.).
func SerializeTimetableToWriter(tt *Timetable, w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(tt); err != nil {
		return fmt.Errorf("failed to encode Timetable: %w", err)
	}
	return nil
}

// DeserializeTimetableFromReader reads a Timetable from an io.Reader using gob
// encoding, for custom storage backends (S3, MinIO, etc.).
func DeserializeTimetableFromReader(r io.Reader) (*Timetable, error) {
	decoder := gob.NewDecoder(r)
	var tt Timetable
	if err := decoder.Decode(&tt); err != nil {
		return nil, fmt.Errorf("failed to decode Timetable: %w", err)
	}
	return &tt, nil
}

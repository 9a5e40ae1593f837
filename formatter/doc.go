// Package formatter renders resolver and journey results for output.
//
// This package is organized into:
// - lines.go: the CSV line protocol (resolver lines, route and schedule lines, failure lines)
// - wrapper.go: response envelopes for the HTTP surface
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
//
// All serialization is done manually for precise control over output format;
// the line protocol in particular must stay byte-identical across runs.
package formatter

// Package nlp implements the rule-based front half of the travel-order
// pipeline: text normalization and origin/destination mention extraction.
//
// Normalization is a pure function shared by every matching component so
// that sentences, gazetteer keys, and station names all collapse to the
// same form. Extraction applies an ordered list of French surface patterns
// over the normalized sentence; it locates mention spans only and never
// decides whether a mention is a real place name.
package nlp

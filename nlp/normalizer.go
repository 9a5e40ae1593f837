package nlp

import (
	"strings"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
)

// Normalize canonicalizes text for matching: accents are transliterated to
// ASCII, everything is lowercased, any character outside [a-z0-9] becomes a
// space (hyphens and apostrophes included, so "Aix-en-Provence" and "Aix en
// Provence" collapse to the same key), whitespace runs collapse to a single
// space, and the result is trimmed. Total and idempotent; the empty string
// maps to itself.
func Normalize(s string) string {
	norm, _ := NormalizeMapped(s)
	return norm
}

func isTokenChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// NormalizeMapped normalizes s and returns, for every byte of the normalized
// output, the byte offset of the source rune in s. A final sentinel entry
// maps one past the last normalized byte to the end of the last contributing
// source rune, so [start:end) spans of the normalized text slice cleanly back
// into the original sentence.
func NormalizeMapped(s string) (string, []int) {
	var out strings.Builder
	out.Grow(len(s))
	mapping := make([]int, 0, len(s)+1)

	wrote := false
	pendingSpace := false
	spaceOrigin := 0
	lastTokenEnd := 0

	pos := 0
	for _, r := range s {
		runeLen := utf8.RuneLen(r)
		for _, c := range []byte(strings.ToLower(unidecode.Unidecode(string(r)))) {
			if !isTokenChar(c) {
				if !pendingSpace {
					pendingSpace = true
					spaceOrigin = pos
				}
				continue
			}
			if pendingSpace && wrote {
				out.WriteByte(' ')
				mapping = append(mapping, spaceOrigin)
			}
			pendingSpace = false
			out.WriteByte(c)
			mapping = append(mapping, pos)
			wrote = true
			lastTokenEnd = pos + runeLen
		}
		pos += runeLen
	}

	mapping = append(mapping, lastTokenEnd)
	return out.String(), mapping
}

// SliceOriginal maps a [start:end) span of the normalized text back to the
// corresponding slice of the original sentence.
func SliceOriginal(original string, mapping []int, start, end int) (string, int, int) {
	if start < 0 || end > len(mapping)-1 || start >= end {
		return "", 0, 0
	}
	from := mapping[start]
	to := mapping[end]
	if to <= from {
		// Span ends inside a multi-byte transliteration; cover the whole rune.
		_, n := utf8.DecodeRuneInString(original[from:])
		to = from + n
	}
	return original[from:to], from, to
}

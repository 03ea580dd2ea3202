package utils

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes to NFD, drops combining marks, and recomposes.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes diacritical marks from s ("café" -> "cafe").
// The transform is lossy and one-way: the original string cannot be
// reconstructed from the result.
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		// Invalid UTF-8 passes through untouched; the store accepts it as-is.
		return s
	}
	return out
}

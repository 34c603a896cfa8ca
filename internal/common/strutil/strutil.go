// Package strutil holds the string normalization helpers shared by the
// fixture transport and the response mappers.
package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and drops their combining marks, so
// "notebook gamer acentuação" and "notebook gamer acentuacao" resolve to
// the same lookup key.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Sanitize strips diacritics, replaces every non-alphanumeric character with
// a space, collapses whitespace runs into single spaces and trims. It does
// not change letter case; callers that need a case-insensitive key fold the
// result themselves.
func Sanitize(s string) string {
	plain, _, err := transform.String(stripMarks, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	b.Grow(len(plain))
	for _, r := range plain {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ForceHTTPS rewrites the first occurrence of "http://" to "https://".
// The rest of the URL is left untouched.
func ForceHTTPS(s string) string {
	return strings.Replace(s, "http://", "https://", 1)
}

// ForceHTTPSPtr is the pointer form used on optional wire fields: nil in,
// nil out.
func ForceHTTPSPtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := ForceHTTPS(*s)
	return &out
}

// Package fold normalizes free text coming from vendor documents into comparable keys.
package fold

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveDiacritics strips combining marks, so "Café" becomes "Cafe".
func RemoveDiacritics(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, value)
	if err != nil {
		return value
	}
	return result
}

// Key returns upper-cased, accent-free value with collapsed whitespace.
func Key(value string) string {
	return strings.Join(strings.Fields(strings.ToUpper(RemoveDiacritics(value))), " ")
}

// Lower returns lower-cased, accent-free value with collapsed whitespace.
func Lower(value string) string {
	return strings.ToLower(Key(value))
}

// Equal compares two values after folding.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

// Compact removes everything but letters and digits from folded value.
// "B.M.E.C." and "BMEC" compact to the same key.
func Compact(value string) string {
	var b strings.Builder
	for _, r := range Key(value) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContainsWord reports whether term occurs in text as whole words.
// An occurrence glued to a letter or digit, like "boss" in "embossed", does not count.
func ContainsWord(text, term string) bool {
	if term == "" {
		return false
	}

	for offset := 0; offset <= len(text)-len(term); {
		ix := strings.Index(text[offset:], term)
		if ix < 0 {
			return false
		}
		start := offset + ix
		end := start + len(term)

		if boundaryBefore(text, start, term) && boundaryAfter(text, end, term) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}

	return false
}

func boundaryBefore(text string, start int, term string) bool {
	first, _ := utf8.DecodeRuneInString(term)
	if start == 0 || !isWordRune(first) {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(prev)
}

func boundaryAfter(text string, end int, term string) bool {
	last, _ := utf8.DecodeLastRuneInString(term)
	if end == len(text) || !isWordRune(last) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

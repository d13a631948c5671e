// Package normalize canonicalizes free-text venue names so that the loose
// spellings found in schedule sheets ("Lincoln Park Field (turf)",
// "lincoln-park") resolve to the same field-directory key.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Pre-compiled regular expressions for key normalization.
var (
	parentheticalRe = regexp.MustCompile(`\([^)]*\)`)
	qualifierRe     = regexp.MustCompile(`\b(?:field|park|elementary)\b`)
	separatorRe     = regexp.MustCompile(`[-_,.#\s]+`)
)

// Key normalizes a venue name into its lookup key:
//  1. ToLower, TrimSpace
//  2. Strip diacritics (Unicode NFD decompose, remove combining marks)
//  3. Drop any parenthesized suffix, e.g. "(turf)"
//  4. Drop the generic qualifiers "field", "park", "elementary"
//  5. Collapse separator runs (-, _, ",", ".", "#", whitespace) to one space
//
// Empty or all-qualifier input yields "", which callers must treat as a
// guaranteed lookup miss. Key is idempotent.
func Key(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return s
	}

	s = stripDiacritics(s)
	s = parentheticalRe.ReplaceAllString(s, " ")
	s = qualifierRe.ReplaceAllString(s, " ")
	s = separatorRe.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// stripDiacritics removes accent marks by decomposing to NFD form and
// dropping combining marks (the Mn category).
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var result strings.Builder
	result.Grow(len(decomposed))

	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}

package md

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slugify derives an ID from heading text. The text is lowercased, every run of
// characters other than letters and digits becomes a single "-", and leading
// and trailing "-" are removed.
//
// For example, "Project Setup" becomes "project-setup".
func Slugify(text string) string {
	// A Caser is stateful, so a new one is needed for each call.
	words := strings.FieldsFunc(cases.Lower(language.Und).String(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return strings.Join(words, "-")
}

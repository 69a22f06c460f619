package tools

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

const maxStripPasses = 8

// StripTags removes any markup from a free-text value and trims it.
// Entities are decoded and the value sanitized again until it is stable, so
// "&lt;b&gt;x&lt;/b&gt;" becomes "x" while "A & B" survives.
func StripTags(value string) string {
	for i := 0; i < maxStripPasses; i++ {
		clean := html.UnescapeString(strictPolicy.Sanitize(value))
		if clean == value {
			return strings.TrimSpace(clean)
		}
		value = clean
	}
	// still decoding: keep the escaped form, which carries no markup
	return strings.TrimSpace(strictPolicy.Sanitize(value))
}

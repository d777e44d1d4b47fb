package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup, null bytes and surrounding whitespace from user supplied text.
// Entities escaped by the policy are decoded again since the result is stored, not rendered.
func SanitizeText(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")
	input = html.UnescapeString(htmlPolicy.Sanitize(input))
	return strings.TrimSpace(input)
}

func SanitizeOptional(input *string) *string {
	if input == nil {
		return nil
	}

	sanitized := SanitizeText(*input)
	return &sanitized
}

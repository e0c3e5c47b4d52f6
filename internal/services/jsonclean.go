package services

import (
	"strings"
	"unicode/utf8"
)

// StripCodeFence removes a Markdown code-fence wrapper (```json ... ``` or
// ``` ... ```) around a model response. Input without a fence is returned
// unchanged apart from surrounding whitespace; the function never touches
// backticks inside the body.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}

	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}

	return strings.TrimSpace(s)
}

// snippet truncates s for inclusion in error messages, never splitting a
// multi-byte rune.
func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

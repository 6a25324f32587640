// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Used to clean provider markup before injecting text into prompts

package html

import (
	"strings"
)

// StripHTML removes HTML tags and decodes common entities from a string.
// Indian Kanoon wraps matched query terms in <b> tags and escapes
// punctuation in titles and snippets; prompts need the plain text.
func StripHTML(html string) string {
	text := html

	// Remove HTML tags
	for strings.Contains(text, "<") && strings.Contains(text, ">") {
		start := strings.Index(text, "<")
		end := strings.Index(text, ">")
		if start < end && start >= 0 && end >= 0 {
			text = text[:start] + " " + text[end+1:]
		} else {
			break
		}
	}

	text = DecodeEntities(text)
	text = strings.TrimSpace(text)

	// Replace multiple spaces with single space
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}

	return text
}

// DecodeEntities decodes the HTML entities that occur in provider snippets
func DecodeEntities(text string) string {
	replacements := map[string]string{
		"&nbsp;":  " ",
		"&amp;":   "&",
		"&lt;":    "<",
		"&gt;":    ">",
		"&quot;":  "\"",
		"&#39;":   "'",
		"&apos;":  "'",
		"&#8217;": "'",
		"&ldquo;": "\"",
		"&rdquo;": "\"",
		"&mdash;": "-",
		"&ndash;": "-",
	}

	result := text
	for entity, replacement := range replacements {
		result = strings.ReplaceAll(result, entity, replacement)
	}

	return result
}

// ABOUTME: Text utilities for bounding strings by code point count
// ABOUTME: Used to derive search queries and summaries from longer text

package text

// Prefix returns at most n code points from the start of s.
// Slicing by code points rather than bytes keeps multibyte characters intact.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

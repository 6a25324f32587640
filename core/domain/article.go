// ABOUTME: Article domain model represents a normalized news article
// ABOUTME: Provides normalization from heterogeneous upstream article objects

package domain

import "github.com/google/uuid"

// Article represents a news article normalized from an upstream provider.
// Missing upstream fields default to the empty string.
type Article struct {
	// ID is a deterministic identifier derived from the article URL.
	// The positional index into a fetched list is the lookup contract, but
	// that list is rebuilt from live data on every request; the ID lets
	// clients detect when an index no longer refers to the same article.
	ID string `json:"id"`

	// Title is the article headline
	Title string `json:"title"`

	// Description is the short summary provided by the source
	Description string `json:"description"`

	// Content is the (possibly truncated) article body
	Content string `json:"content"`

	// URL is the canonical article URL
	URL string `json:"url"`

	// URLToImage is the lead image URL
	URLToImage string `json:"urlToImage"`

	// PublishedAt is the publish timestamp as reported by the provider
	// (RFC 3339, which sorts correctly as a string)
	PublishedAt string `json:"publishedAt"`

	// Source is the human-readable name of the publishing source
	Source string `json:"source"`
}

// ArticleID returns the deterministic identifier for an article URL.
// Articles without a URL get a nil-namespace ID of the empty string, which
// is stable but not unique; callers treat it as "identity unknown".
func ArticleID(articleURL string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(articleURL)).String()
}

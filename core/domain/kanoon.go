// ABOUTME: Domain models for Indian Kanoon search results and case documents
// ABOUTME: Defines structures for provider responses used in prompt composition

package domain

// KanoonDoc is a single search hit from the Indian Kanoon search API.
// Only the fields used for prompt composition are decoded; the direct
// search endpoint passes the provider JSON through untouched.
type KanoonDoc struct {
	// TID is the provider's numeric document identifier
	TID int64 `json:"tid"`

	// Title is the case title, with query terms wrapped in <b> tags
	Title string `json:"title"`

	// Snippet is a short matching fragment, also carrying <b> markup
	Snippet string `json:"snippet"`

	// Headline is an alternate fragment field some endpoints return
	Headline string `json:"headline"`
}

// KanoonSearchResult is the decoded shape of a search response
type KanoonSearchResult struct {
	Docs []KanoonDoc `json:"docs"`
}

// DocumentDetails is the merged view of a case document and its metadata,
// combined from two provider calls into one stable shape.
type DocumentDetails struct {
	Title      string `json:"title"`
	Court      string `json:"court"`
	Judges     string `json:"judges"`
	Date       string `json:"date"`
	CaseNumber string `json:"caseNumber"`
	Petitioner string `json:"petitioner"`
	Respondent string `json:"respondent"`
	Summary    string `json:"summary"`
	FullText   string `json:"fullText"`
	URL        string `json:"url"`
}

// ABOUTME: Indian Kanoon service wraps the case-law provider's HTTP API
// ABOUTME: Provides search, document, fragment, details, and court copy operations

package kanoon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"lexassist-api/core/domain"
	coreerrors "lexassist-api/core/errors"
	"lexassist-api/core/interfaces"
	htmlutil "lexassist-api/pkg/utils/html"
	textutil "lexassist-api/pkg/utils/text"
)

const (
	providerName = "Indian Kanoon"

	// contextFallback replaces search context when the provider is down;
	// prompt composition degrades gracefully instead of failing the request
	contextFallback = "Unable to fetch information from Indian Kanoon API."

	// maxContextResults bounds how many search hits feed a prompt
	maxContextResults = 3
)

// Config holds provider connection settings
type Config struct {
	// BaseURL is the provider API root, e.g. https://api.indiankanoon.org
	BaseURL string

	// APIKey is the provider token sent as an Authorization header
	APIKey string
}

// Service wraps the Indian Kanoon HTTP API behind stable operations
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewService creates a new Indian Kanoon service instance
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	return &Service{
		deps: deps,
		cfg:  cfg,
	}
}

func (s *Service) authHeaders() map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Token %s", s.cfg.APIKey),
	}
}

// readResponse drains one provider round trip into the response body.
// Non-2xx responses and transport failures both surface as ExternalAPIError.
func (s *Service) readResponse(resp interfaces.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:     providerName,
			Message: err.Error(),
		}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:     providerName,
			Message: fmt.Sprintf("reading response: %s", err.Error()),
		}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ExternalAPIError{
			API:        providerName,
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}

// searchRaw performs the provider search call and returns the raw JSON body
func (s *Service) searchRaw(ctx context.Context, query string) ([]byte, error) {
	form := url.Values{
		"formInput": {query},
		"pagenum":   {"0"},
		"format":    {"json"},
	}
	return s.readResponse(s.deps.HTTPClient.PostForm(ctx, s.cfg.BaseURL+"/search/", form, s.authHeaders()))
}

// Search queries the provider's search endpoint and returns its JSON verbatim
func (s *Service) Search(ctx context.Context, query string) (map[string]interface{}, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &coreerrors.ValidationError{Field: "query", Message: "search query cannot be empty"}
	}

	body, err := s.searchRaw(ctx, query)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:     providerName,
			Message: fmt.Sprintf("invalid JSON in search response: %s", err.Error()),
		}
	}

	return result, nil
}

// Document fetches the full text of a case document by identifier
func (s *Service) Document(ctx context.Context, docID string) (map[string]interface{}, error) {
	return s.getJSON(ctx, fmt.Sprintf("%s/doc/%s/", s.cfg.BaseURL, docID))
}

// DocumentFragment fetches the snippet of a document matching a query
func (s *Service) DocumentFragment(ctx context.Context, docID, query string) (map[string]interface{}, error) {
	u := fmt.Sprintf("%s/docfragment/%s/?formInput=%s", s.cfg.BaseURL, docID, url.QueryEscape(query))
	return s.getJSON(ctx, u)
}

// CourtCopy fetches the reference to the original certified copy of a document
func (s *Service) CourtCopy(ctx context.Context, docID string) (map[string]interface{}, error) {
	return s.getJSON(ctx, fmt.Sprintf("%s/origdoc/%s/", s.cfg.BaseURL, docID))
}

// DocumentDetails combines the document body and its metadata into one
// object with stable field names. Either provider call failing fails the
// whole operation.
func (s *Service) DocumentDetails(ctx context.Context, docID string) (*domain.DocumentDetails, error) {
	doc, err := s.Document(ctx, docID)
	if err != nil {
		return nil, err
	}

	meta, err := s.getJSON(ctx, fmt.Sprintf("%s/docmeta/%s/", s.cfg.BaseURL, docID))
	if err != nil {
		return nil, err
	}

	return mergeDetails(docID, doc, meta), nil
}

// getJSON performs a GET round trip and decodes the provider JSON
func (s *Service) getJSON(ctx context.Context, u string) (map[string]interface{}, error) {
	body, err := s.readResponse(s.deps.HTTPClient.Get(ctx, u, s.authHeaders()))
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:     providerName,
			Message: fmt.Sprintf("invalid JSON in response: %s", err.Error()),
		}
	}

	return result, nil
}

// mergeDetails builds the combined details view from the document and
// metadata payloads. Petitioner and respondent only appear in the canonical
// "X vs Y" case title, so they are derived from it.
func mergeDetails(docID string, doc, meta map[string]interface{}) *domain.DocumentDetails {
	title := stringField(meta, "title")
	if title == "" {
		title = htmlutil.StripHTML(stringField(doc, "title"))
	}

	petitioner, respondent := splitCaseTitle(title)

	fullText := htmlutil.StripHTML(stringField(doc, "doc"))

	summary := stringField(meta, "headline")
	if summary == "" {
		summary = textutil.Prefix(fullText, 400)
	}

	return &domain.DocumentDetails{
		Title:      title,
		Court:      stringField(meta, "docsource"),
		Judges:     firstNonEmpty(stringField(meta, "bench"), stringField(meta, "author")),
		Date:       stringField(meta, "publishdate"),
		CaseNumber: stringField(meta, "casenumber"),
		Petitioner: petitioner,
		Respondent: respondent,
		Summary:    summary,
		FullText:   fullText,
		URL:        fmt.Sprintf("https://indiankanoon.org/doc/%s/", docID),
	}
}

// ContextSummary composes a textual summary of the top search results for
// prompt injection. A provider failure here is not an error: the summary
// degrades to a fixed fallback sentence so the chat request can proceed.
func (s *Service) ContextSummary(ctx context.Context, query string) string {
	body, err := s.searchRaw(ctx, query)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Kanoon context lookup failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return contextFallback
	}

	var result domain.KanoonSearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return contextFallback
	}

	docs := result.Docs
	if len(docs) > maxContextResults {
		docs = docs[:maxContextResults]
	}

	entries := make([]string, 0, len(docs))
	for _, doc := range docs {
		snippet := doc.Snippet
		if snippet == "" {
			snippet = doc.Headline
		}
		entries = append(entries, fmt.Sprintf("Title: %s\nSnippet: %s\n",
			htmlutil.StripHTML(doc.Title), htmlutil.StripHTML(snippet)))
	}

	return strings.Join(entries, "\n")
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// splitCaseTitle derives the parties from a "Petitioner vs Respondent" title
func splitCaseTitle(title string) (string, string) {
	for _, sep := range []string{" vs ", " Vs ", " vs. ", " Vs. ", " V. ", " v. "} {
		if idx := strings.Index(title, sep); idx > 0 {
			return strings.TrimSpace(title[:idx]), strings.TrimSpace(title[idx+len(sep):])
		}
	}
	return "", ""
}

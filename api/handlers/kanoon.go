// ABOUTME: Indian Kanoon handlers exposing the legal search facade endpoints
// ABOUTME: Passes provider JSON through, reshaping only the details endpoint

package handlers

import (
	"context"
	"net/http"

	"lexassist-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// KanoonService interface defines the methods needed from the kanoon service
type KanoonService interface {
	Search(ctx context.Context, query string) (map[string]interface{}, error)
	Document(ctx context.Context, docID string) (map[string]interface{}, error)
	DocumentFragment(ctx context.Context, docID, query string) (map[string]interface{}, error)
	DocumentDetails(ctx context.Context, docID string) (*domain.DocumentDetails, error)
	CourtCopy(ctx context.Context, docID string) (map[string]interface{}, error)
}

// KanoonHandler handles legal search HTTP requests
type KanoonHandler struct {
	service KanoonService
}

// NewKanoonHandler creates a new kanoon handler
func NewKanoonHandler(service KanoonService) *KanoonHandler {
	return &KanoonHandler{
		service: service,
	}
}

// RegisterRoutes registers all legal search routes
func (h *KanoonHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchKanoon",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Search Indian case law",
		Tags:        []string{"Kanoon"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "getKanoonDocument",
		Method:      http.MethodGet,
		Path:        "/api/indiankanoon/document/{docid}",
		Summary:     "Fetch the full text of a case document",
		Tags:        []string{"Kanoon"},
	}, h.Document)

	huma.Register(api, huma.Operation{
		OperationID: "getKanoonDocFragment",
		Method:      http.MethodGet,
		Path:        "/api/indiankanoon/docfragment/{docid}",
		Summary:     "Fetch a document fragment matching a query",
		Tags:        []string{"Kanoon"},
	}, h.DocumentFragment)

	huma.Register(api, huma.Operation{
		OperationID: "getKanoonDetails",
		Method:      http.MethodGet,
		Path:        "/api/indiankanoon/details/{docid}",
		Summary:     "Fetch combined document details and metadata",
		Tags:        []string{"Kanoon"},
	}, h.DocumentDetails)

	huma.Register(api, huma.Operation{
		OperationID: "getKanoonCourtCopy",
		Method:      http.MethodGet,
		Path:        "/api/indiankanoon/court_copy/{docid}",
		Summary:     "Fetch the original certified copy reference",
		Tags:        []string{"Kanoon"},
	}, h.CourtCopy)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Query string `query:"query" doc:"Search query"`
}

// ProviderJSONOutput wraps a provider response passed through verbatim
type ProviderJSONOutput struct {
	Body map[string]interface{}
}

// Search handles the GET /api/search endpoint
func (h *KanoonHandler) Search(ctx context.Context, input *SearchInput) (*ProviderJSONOutput, error) {
	result, err := h.service.Search(ctx, input.Query)
	if err != nil {
		return nil, upstreamError(err, "Failed to search Indian Kanoon")
	}

	return &ProviderJSONOutput{Body: result}, nil
}

// DocIDInput defines the path input shared by the document endpoints
type DocIDInput struct {
	DocID string `path:"docid" doc:"Provider document identifier"`
}

// Document handles the GET /api/indiankanoon/document/{docid} endpoint
func (h *KanoonHandler) Document(ctx context.Context, input *DocIDInput) (*ProviderJSONOutput, error) {
	result, err := h.service.Document(ctx, input.DocID)
	if err != nil {
		return nil, upstreamError(err, "Failed to fetch document from Indian Kanoon")
	}

	return &ProviderJSONOutput{Body: result}, nil
}

// DocFragmentInput defines the input for the DocumentFragment operation
type DocFragmentInput struct {
	DocID string `path:"docid" doc:"Provider document identifier"`
	Query string `query:"query" doc:"Fragment query"`
}

// DocumentFragment handles the GET /api/indiankanoon/docfragment/{docid} endpoint
func (h *KanoonHandler) DocumentFragment(ctx context.Context, input *DocFragmentInput) (*ProviderJSONOutput, error) {
	result, err := h.service.DocumentFragment(ctx, input.DocID, input.Query)
	if err != nil {
		return nil, upstreamError(err, "Failed to fetch document fragment from Indian Kanoon")
	}

	return &ProviderJSONOutput{Body: result}, nil
}

// DocumentDetailsOutput defines the output for the DocumentDetails operation
type DocumentDetailsOutput struct {
	Body domain.DocumentDetails
}

// DocumentDetails handles the GET /api/indiankanoon/details/{docid} endpoint
func (h *KanoonHandler) DocumentDetails(ctx context.Context, input *DocIDInput) (*DocumentDetailsOutput, error) {
	details, err := h.service.DocumentDetails(ctx, input.DocID)
	if err != nil {
		return nil, upstreamError(err, "Failed to fetch document details from Indian Kanoon")
	}

	return &DocumentDetailsOutput{Body: *details}, nil
}

// CourtCopy handles the GET /api/indiankanoon/court_copy/{docid} endpoint
func (h *KanoonHandler) CourtCopy(ctx context.Context, input *DocIDInput) (*ProviderJSONOutput, error) {
	result, err := h.service.CourtCopy(ctx, input.DocID)
	if err != nil {
		return nil, upstreamError(err, "Failed to fetch court copy from Indian Kanoon")
	}

	return &ProviderJSONOutput{Body: result}, nil
}

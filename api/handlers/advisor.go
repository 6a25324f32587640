// ABOUTME: Advisor handlers for the chat and document analysis endpoints
// ABOUTME: Validates uploads at the boundary and delegates to the advisor service

package handlers

import (
	"context"
	"io"
	"net/http"

	"lexassist-api/core/extract"

	"github.com/danielgtaylor/huma/v2"
)

// AdvisorService interface defines the methods needed from the advisor service
type AdvisorService interface {
	Chat(ctx context.Context, message string) (string, error)
	AnalyzeDocument(ctx context.Context, filename string, file io.Reader) (string, error)
}

// AdvisorHandler handles chat and document analysis HTTP requests
type AdvisorHandler struct {
	service AdvisorService
}

// NewAdvisorHandler creates a new advisor handler
func NewAdvisorHandler(service AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{
		service: service,
	}
}

// RegisterRoutes registers the advisor routes
func (h *AdvisorHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "chat",
		Method:      http.MethodPost,
		Path:        "/chat",
		Summary:     "Answer a legal question",
		Description: "Augments the question with Indian Kanoon search context and returns the model's answer",
		Tags:        []string{"Advisor"},
	}, h.Chat)

	huma.Register(api, huma.Operation{
		OperationID: "analyzeDocument",
		Method:      http.MethodPost,
		Path:        "/analyze-document",
		Summary:     "Analyze an uploaded legal document",
		Description: "Extracts document text, gathers legal search context, and returns a structured analysis",
		Tags:        []string{"Advisor"},
	}, h.AnalyzeDocument)
}

// ChatInput defines the input for the Chat operation. The message field is
// schema-optional so that a blank and a missing message both reach the
// service's own validation and map to the same 400.
type ChatInput struct {
	Body struct {
		Message string `json:"message,omitempty" doc:"User's legal question"`
	}
}

// ChatOutput defines the output for the Chat operation
type ChatOutput struct {
	Body struct {
		Response string `json:"response" doc:"Model's answer"`
	}
}

// Chat handles the POST /chat endpoint
func (h *AdvisorHandler) Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	response, err := h.service.Chat(ctx, input.Body.Message)
	if err != nil {
		return nil, toHumaError(err)
	}

	out := &ChatOutput{}
	out.Body.Response = response
	return out, nil
}

// DocumentForm is the multipart form carrying the uploaded document
type DocumentForm struct {
	Document huma.FormFile `form:"document" doc:"Document to analyze (txt, pdf, doc, docx)"`
}

// AnalyzeDocumentInput defines the input for the AnalyzeDocument operation
type AnalyzeDocumentInput struct {
	RawBody huma.MultipartFormFiles[DocumentForm]
}

// AnalyzeDocumentOutput defines the output for the AnalyzeDocument operation
type AnalyzeDocumentOutput struct {
	Body struct {
		Analysis string `json:"analysis" doc:"Model's analysis of the document"`
	}
}

// AnalyzeDocument handles the POST /analyze-document endpoint
func (h *AdvisorHandler) AnalyzeDocument(ctx context.Context, input *AnalyzeDocumentInput) (*AnalyzeDocumentOutput, error) {
	form := input.RawBody.Data()

	if !form.Document.IsSet {
		return nil, huma.Error400BadRequest("No file part")
	}
	if form.Document.Filename == "" {
		return nil, huma.Error400BadRequest("No selected file")
	}
	if !extract.Allowed(form.Document.Filename) {
		return nil, huma.Error400BadRequest("Invalid file format")
	}

	analysis, err := h.service.AnalyzeDocument(ctx, form.Document.Filename, form.Document)
	if err != nil {
		return nil, toHumaError(err)
	}

	out := &AnalyzeDocumentOutput{}
	out.Body.Analysis = analysis
	return out, nil
}

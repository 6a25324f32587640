// ABOUTME: Advisor service turns chat messages and uploaded documents into answers
// ABOUTME: Augments prompts with legal search context before querying the chat model

package advisor

import (
	"context"
	"fmt"
	"io"
	"strings"

	coreerrors "lexassist-api/core/errors"
	"lexassist-api/core/extract"
	"lexassist-api/core/interfaces"
	textutil "lexassist-api/pkg/utils/text"
)

// queryPrefixLen bounds how much extracted document text seeds the legal search
const queryPrefixLen = 500

// LegalSearch provides search context for prompt composition.
// Implementations degrade to a fallback sentence on provider failure.
type LegalSearch interface {
	ContextSummary(ctx context.Context, query string) string
}

// Service orchestrates chat and document analysis requests
type Service struct {
	deps  interfaces.Dependencies
	model interfaces.ChatModel
	legal LegalSearch
}

// NewService creates a new advisor service instance
func NewService(deps interfaces.Dependencies, model interfaces.ChatModel, legal LegalSearch) *Service {
	return &Service{
		deps:  deps,
		model: model,
		legal: legal,
	}
}

// Chat answers a user message with legal search context attached
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", &coreerrors.ValidationError{Field: "message", Message: "message is required"}
	}

	kanoonInfo := s.legal.ContextSummary(ctx, message)

	response, err := s.model.Complete(ctx, advisorSystemPrompt, userPrompt(message, kanoonInfo))
	if err != nil {
		return "", err
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Chat completed", map[string]interface{}{
			"message_len":  len(message),
			"response_len": len(response),
		})
	}

	return response, nil
}

// AnalyzeDocument extracts the text of an uploaded document, gathers legal
// search context from its leading characters, and asks the model for a
// structured analysis. The caller validates filename presence and extension.
func (s *Service) AnalyzeDocument(ctx context.Context, filename string, file io.Reader) (string, error) {
	documentText, err := extract.Text(filename, file)
	if err != nil {
		return "", err
	}

	kanoonInfo := s.legal.ContextSummary(ctx, textutil.Prefix(documentText, queryPrefixLen))

	prompt := documentAnalysisPrompt(documentText, kanoonInfo)
	analysis, err := s.model.Complete(ctx, advisorSystemPrompt, userPrompt(prompt, kanoonInfo))
	if err != nil {
		return "", err
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Document analyzed", map[string]interface{}{
			"filename":     filename,
			"document_len": len(documentText),
		})
	}

	return analysis, nil
}

// userPrompt fills the fixed human message template
func userPrompt(question, kanoonInfo string) string {
	return fmt.Sprintf("Query: %s\n\nRelevant Indian Kanoon Information: %s", question, kanoonInfo)
}

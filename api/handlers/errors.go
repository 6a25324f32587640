// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to JSON error responses with appropriate status codes

package handlers

import (
	"strings"

	coreerrors "lexassist-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorModel is the JSON error body for every failed request.
// It replaces huma's default problem+json shape: clients expect an
// object with at least an "error" field, plus "details" when an upstream
// error message is available.
type ErrorModel struct {
	Status  int    `json:"-"`
	Message string `json:"error" example:"Failed to search Indian Kanoon" doc:"Human-readable error message"`
	Details string `json:"details,omitempty" doc:"Upstream error details, when available"`
}

// Error implements the error interface
func (e *ErrorModel) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *ErrorModel) GetStatus() int {
	return e.Status
}

// ContentType forces plain application/json for error bodies
func (e *ErrorModel) ContentType(string) string {
	return "application/json"
}

func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}
		return &ErrorModel{
			Status:  status,
			Message: message,
			Details: strings.Join(details, "; "),
		}
	}
}

// toHumaError converts domain errors to appropriate HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if coreerrors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if coreerrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if coreerrors.IsExtraction(err) {
		return huma.Error400BadRequest("Could not extract text from document", err)
	}

	if coreerrors.IsExternalAPI(err) {
		return huma.Error500InternalServerError("External service error", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// upstreamError maps a failure to the endpoint's fixed upstream message,
// preserving the provider error as details. Non-upstream failures fall
// through to the generic mapping.
func upstreamError(err error, message string) error {
	if coreerrors.IsExternalAPI(err) {
		return huma.Error500InternalServerError(message, err)
	}
	return toHumaError(err)
}

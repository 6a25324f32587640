package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	coreerrors "lexassist-api/core/errors"

	"github.com/danielgtaylor/huma/v2/humatest"
)

// mockAdvisorService is a mock implementation of the advisor service
type mockAdvisorService struct {
	chatFunc    func(ctx context.Context, message string) (string, error)
	analyzeFunc func(ctx context.Context, filename string, file io.Reader) (string, error)
}

func (m *mockAdvisorService) Chat(ctx context.Context, message string) (string, error) {
	if m.chatFunc != nil {
		return m.chatFunc(ctx, message)
	}
	return "", nil
}

func (m *mockAdvisorService) AnalyzeDocument(ctx context.Context, filename string, file io.Reader) (string, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, filename, file)
	}
	return "", nil
}

func TestNewAdvisorHandler(t *testing.T) {
	handler := NewAdvisorHandler(&mockAdvisorService{})

	if handler == nil {
		t.Fatal("NewAdvisorHandler returned nil")
	}
	if handler.service == nil {
		t.Error("AdvisorHandler.service is nil")
	}
}

func TestChat_ReturnsModelResponse(t *testing.T) {
	service := &mockAdvisorService{
		chatFunc: func(ctx context.Context, message string) (string, error) {
			return "consult Section 420 IPC", nil
		},
	}
	_, api := humatest.New(t)
	NewAdvisorHandler(service).RegisterRoutes(api)

	resp := api.Post("/chat", map[string]interface{}{
		"message": "What is Section 420 IPC?",
	})

	if resp.Code != 200 {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	var body struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if body.Response != "consult Section 420 IPC" {
		t.Errorf("response = %q", body.Response)
	}
}

func TestChat_EmptyMessageReturns400(t *testing.T) {
	service := &mockAdvisorService{
		chatFunc: func(ctx context.Context, message string) (string, error) {
			return "", &coreerrors.ValidationError{Field: "message", Message: "message is required"}
		},
	}
	_, api := humatest.New(t)
	NewAdvisorHandler(service).RegisterRoutes(api)

	resp := api.Post("/chat", map[string]interface{}{
		"message": "",
	})

	if resp.Code != 400 {
		t.Fatalf("status = %d, want 400", resp.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Error("error body should contain an error field")
	}
}

func TestChat_MissingMessageReturns400(t *testing.T) {
	service := &mockAdvisorService{
		chatFunc: func(ctx context.Context, message string) (string, error) {
			if message != "" {
				t.Errorf("message = %q, want empty", message)
			}
			return "", &coreerrors.ValidationError{Field: "message", Message: "message is required"}
		},
	}
	_, api := humatest.New(t)
	NewAdvisorHandler(service).RegisterRoutes(api)

	resp := api.Post("/chat", map[string]interface{}{})

	if resp.Code != 400 {
		t.Fatalf("status = %d, want 400: %s", resp.Code, resp.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error JSON: %v", err)
	}
	if body["error"] != "message is required" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestChat_UpstreamFailureReturns500(t *testing.T) {
	service := &mockAdvisorService{
		chatFunc: func(ctx context.Context, message string) (string, error) {
			return "", &coreerrors.ExternalAPIError{API: "OpenAI", Message: "quota exceeded"}
		},
	}
	_, api := humatest.New(t)
	NewAdvisorHandler(service).RegisterRoutes(api)

	resp := api.Post("/chat", map[string]interface{}{
		"message": "hello",
	})

	if resp.Code != 500 {
		t.Fatalf("status = %d, want 500", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "quota exceeded") {
		t.Error("error body should carry upstream details")
	}
}

// multipartUpload builds a multipart body with one file part
func multipartUpload(t *testing.T, field, filename, content string) (string, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
	return writer.FormDataContentType(), &buf
}

func TestAnalyzeDocument_ReturnsAnalysis(t *testing.T) {
	service := &mockAdvisorService{
		analyzeFunc: func(ctx context.Context, filename string, file io.Reader) (string, error) {
			data, _ := io.ReadAll(file)
			if string(data) != "Hello World" {
				t.Errorf("extracted upload = %q, want %q", data, "Hello World")
			}
			return "document analysis", nil
		},
	}
	_, api := humatest.New(t)
	NewAdvisorHandler(service).RegisterRoutes(api)

	contentType, body := multipartUpload(t, "document", "note.txt", "Hello World")
	resp := api.Post("/analyze-document", "Content-Type: "+contentType, body)

	if resp.Code != 200 {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "document analysis") {
		t.Errorf("body = %s", resp.Body.String())
	}
}

func TestAnalyzeDocument_InvalidFormatReturns400(t *testing.T) {
	_, api := humatest.New(t)
	NewAdvisorHandler(&mockAdvisorService{}).RegisterRoutes(api)

	contentType, body := multipartUpload(t, "document", "image.png", "data")
	resp := api.Post("/analyze-document", "Content-Type: "+contentType, body)

	if resp.Code != 400 {
		t.Fatalf("status = %d, want 400: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Invalid file format") {
		t.Errorf("body = %s", resp.Body.String())
	}
}

func TestAnalyzeDocument_MissingFileReturns400(t *testing.T) {
	_, api := humatest.New(t)
	NewAdvisorHandler(&mockAdvisorService{}).RegisterRoutes(api)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.Close()

	resp := api.Post("/analyze-document", "Content-Type: "+writer.FormDataContentType(), &buf)

	if resp.Code != 400 {
		t.Fatalf("status = %d, want 400: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "No file part") {
		t.Errorf("body = %s", resp.Body.String())
	}
}

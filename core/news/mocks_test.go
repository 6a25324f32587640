package news

import (
	"context"
	"io"
	"net/url"
	"strings"

	"lexassist-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc      func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
	postFormFunc func(ctx context.Context, url string, form url.Values, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return nil, nil
}

func (m *mockHTTPClient) PostForm(ctx context.Context, url string, form url.Values, headers map[string]string) (interfaces.Response, error) {
	if m.postFormFunc != nil {
		return m.postFormFunc(ctx, url, form, headers)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockChatModel is a mock implementation of the ChatModel interface
type mockChatModel struct {
	completeFunc func(ctx context.Context, system, user string) (string, error)
}

func (m *mockChatModel) Complete(ctx context.Context, system, user string) (string, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, system, user)
	}
	return "", nil
}

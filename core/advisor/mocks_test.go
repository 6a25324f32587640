package advisor

import "context"

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

// mockLegalSearch is a mock implementation of the LegalSearch interface
type mockLegalSearch struct {
	summaryFunc func(ctx context.Context, query string) string
}

func (m *mockLegalSearch) ContextSummary(ctx context.Context, query string) string {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, query)
	}
	return ""
}

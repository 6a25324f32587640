package interfaces

import "context"

// ChatModel defines the interface for a conversational language model.
// A single completion is requested per call: one system prompt establishing
// the model's role and one user message carrying the composed query.
type ChatModel interface {
	// Complete submits the prompts and returns the model's textual answer.
	Complete(ctx context.Context, system string, user string) (string, error)
}

// Package ai holds the completion-service boundary: a small message type,
// the Completer port, and the OpenAI-backed implementation.
package ai

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the outbound completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer performs exactly one completion round trip. Implementations
// may fail; callers own retry policy (there is none - the next user action
// is the retry).
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

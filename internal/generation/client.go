// Package generation defines the contract between the chat service and the
// model backend. Callers depend only on the Client interface; concrete
// backends live under internal/infrastructure and are selected at startup.
package generation

import "context"

// Message roles used on the wire.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry in the prompt message list.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options are the sampling parameters derived from the personality profile.
type Options struct {
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// Payload is the complete request handed to a backend. It is built fresh
// per turn and never mutated after construction.
type Payload struct {
	System   string    `json:"system"`
	Messages []Message `json:"messages"`
	Options  Options   `json:"options"`
}

// Client generates a reply for a composed payload. Implementations make a
// single attempt per call, honor the context deadline, and surface every
// failure as one of the typed errors in this package. An empty reply with a
// nil error is a contract violation.
type Client interface {
	Generate(ctx context.Context, payload *Payload) (string, error)
}

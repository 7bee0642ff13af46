package core

import (
	"time"

	"github.com/google/uuid"
)

// Roles a Message may carry. They map one-to-one onto the role strings the
// chat-completion providers accept.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single conversational turn. After creation it should be
// treated as immutable; the session store hands out copies, never aliases.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewID returns a fresh unique message identifier.
func NewID() string { return uuid.NewString() }

// NewMessage creates a timestamped message for the given role.
func NewMessage(role, content string) Message {
	return Message{
		ID:        NewID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// NewUserMessage creates a user-authored message.
func NewUserMessage(content string) Message { return NewMessage(RoleUser, content) }

// NewAssistantMessage creates an assistant-authored message.
func NewAssistantMessage(content string) Message { return NewMessage(RoleAssistant, content) }

// Tail returns the trailing n messages of history, preserving order. The
// returned slice shares no backing storage with the input.
func Tail(history []Message, n int) []Message {
	if n < 0 {
		n = 0
	}
	if len(history) > n {
		history = history[len(history)-n:]
	}
	out := make([]Message, len(history))
	copy(out, history)
	return out
}

// Package prompt renders the system instruction sent alongside every chat
// completion request. Composition is deterministic and side-effect free:
// persona header, optional first-message greeting directive, style
// directive, a serialized slice of recent history and the literal current
// user message.
package prompt

import (
	"fmt"
	"strings"

	"github.com/fina-ai/fina/core"
)

// ContextWindow is the number of trailing history entries included both in
// the composed instruction and as conversational turns in the outbound
// request.
const ContextWindow = 6

const (
	personaHeader = "You are Fina, a friendly personal finance assistant for Indonesian users."

	greetingDirective = `This is the user's first message. Open your reply with the greeting "Halo! Aku Fina 👋" before answering.`

	styleDirective = "Keep replies concise and conversational, answer in casual Bahasa Indonesia, " +
		"and when it helps understanding, illustrate with concrete rupiah amounts (e.g. Rp500.000)."
)

// Compose renders the system instruction for userMessage given the session
// history as it stood before the current message was appended. Only the
// trailing ContextWindow entries of history are serialized; timestamps are
// stripped, leaving role and content pairs.
func Compose(userMessage string, history []core.Message) string {
	recent := core.Tail(history, ContextWindow)

	var b strings.Builder
	b.WriteString(personaHeader)
	b.WriteString("\n\n")
	if len(recent) == 0 {
		b.WriteString(greetingDirective)
		b.WriteString("\n\n")
	}
	b.WriteString(styleDirective)
	b.WriteString("\n\nRecent conversation for reference:\n")
	for _, msg := range recent {
		fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
	}
	b.WriteString("\nCurrent user message:\n")
	b.WriteString(userMessage)
	return b.String()
}

package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fina-ai/fina/core"
)

func TestCompose_FirstMessageIncludesGreeting(t *testing.T) {
	out := Compose("halo", nil)
	assert.Contains(t, out, "Halo! Aku Fina")
	assert.Contains(t, out, personaHeader)
	assert.True(t, strings.HasSuffix(out, "halo"))
}

func TestCompose_NonEmptyHistoryOmitsGreeting(t *testing.T) {
	history := []core.Message{core.NewUserMessage("hi")}
	out := Compose("lanjut", history)
	assert.NotContains(t, out, greetingDirective)
	assert.Contains(t, out, "user: hi")
}

func TestCompose_WindowsToTrailingSix(t *testing.T) {
	history := make([]core.Message, 0, 10)
	for i := 0; i < 10; i++ {
		history = append(history, core.NewUserMessage(fmt.Sprintf("msg-%d", i)))
	}
	out := Compose("current", history)
	assert.NotContains(t, out, "msg-3")
	for i := 4; i < 10; i++ {
		assert.Contains(t, out, fmt.Sprintf("msg-%d", i))
	}
}

func TestCompose_StripsTimestamps(t *testing.T) {
	history := []core.Message{core.NewAssistantMessage("sure")}
	out := Compose("x", history)
	assert.Contains(t, out, "assistant: sure")
	assert.NotContains(t, out, history[0].Timestamp.Format("2006"))
}

func TestCompose_Deterministic(t *testing.T) {
	history := []core.Message{core.NewUserMessage("a"), core.NewAssistantMessage("b")}
	assert.Equal(t, Compose("c", history), Compose("c", history))
}

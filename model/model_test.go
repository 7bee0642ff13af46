package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fina-ai/fina/core"
)

// Interface compliance (compile-time assertion)
var _ Model = (*MockModel)(nil)

func TestMockModel_CannedResponse(t *testing.T) {
	m := NewMockModel("test")
	m.AddResponse("hello", "world")

	resp, err := m.Complete(context.Background(), Request{
		Instructions: "be brief",
		Turns:        []core.Message{core.NewUserMessage("hello")},
	})
	require.NoError(t, err)
	assert.Equal(t, "world", resp.Text)
	assert.Equal(t, "stop", resp.FinishReason)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 2, resp.Usage.TotalTokens)
}

func TestMockModel_DefaultEcho(t *testing.T) {
	m := NewMockModel("test")
	resp, err := m.Complete(context.Background(), Request{Turns: []core.Message{core.NewUserMessage("ping")}})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: ping", resp.Text)
}

func TestMockModel_FailWith(t *testing.T) {
	m := NewMockModel("test")
	m.FailWith(errors.New("upstream down"))
	_, err := m.Complete(context.Background(), Request{})
	assert.Error(t, err)
}

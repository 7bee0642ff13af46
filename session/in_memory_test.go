package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fina-ai/fina/core"
)

// Interface compliance (compile-time assertion)
var _ core.SessionStore = (*InMemoryStore)(nil)

func TestInMemoryStore_GetMissingKey(t *testing.T) {
	store := NewInMemoryStore()
	history := store.Get("never-seen")
	assert.NotNil(t, history)
	assert.Empty(t, history)
	assert.Zero(t, store.Size())
}

func TestInMemoryStore_AppendCreatesAndOrders(t *testing.T) {
	store := NewInMemoryStore()
	store.Append("k1", core.NewUserMessage("first"))
	store.Append("k1", core.NewAssistantMessage("second"))

	history := store.Get("k1")
	require.Len(t, history, 2)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, core.RoleUser, history[0].Role)
	assert.Equal(t, "second", history[1].Content)
	assert.Equal(t, core.RoleAssistant, history[1].Role)
	assert.False(t, history[1].Timestamp.Before(history[0].Timestamp))
	assert.Equal(t, 1, store.Size())
}

func TestInMemoryStore_CapKeepsMostRecent(t *testing.T) {
	store := NewInMemoryStore()
	for i := 0; i < MaxHistory+13; i++ {
		store.Append("k1", core.NewUserMessage(fmt.Sprintf("msg-%d", i)))
	}
	history := store.Get("k1")
	require.Len(t, history, MaxHistory)
	assert.Equal(t, "msg-13", history[0].Content)
	assert.Equal(t, fmt.Sprintf("msg-%d", MaxHistory+12), history[len(history)-1].Content)
}

func TestInMemoryStore_CapUnderfill(t *testing.T) {
	store := NewInMemoryStore()
	for i := 0; i < 5; i++ {
		store.Append("k1", core.NewUserMessage(fmt.Sprintf("msg-%d", i)))
	}
	assert.Len(t, store.Get("k1"), 5)
}

func TestInMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewInMemoryStore()
	store.Append("k1", core.NewUserMessage("original"))

	history := store.Get("k1")
	history[0].Content = "mutated"

	assert.Equal(t, "original", store.Get("k1")[0].Content)
}

func TestInMemoryStore_SweepRetention(t *testing.T) {
	store := NewInMemoryStore()
	last := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Append("stale", core.Message{ID: core.NewID(), Role: core.RoleUser, Content: "hi", Timestamp: last})

	// 1h after the last message: retained.
	store.Sweep(24*time.Hour, last.Add(time.Hour))
	assert.Equal(t, 1, store.Size())

	// 25h after the last message: evicted.
	store.Sweep(24*time.Hour, last.Add(25*time.Hour))
	assert.Zero(t, store.Size())
	assert.Empty(t, store.Get("stale"))
}

func TestInMemoryStore_SweepKeepsFreshEvictsStale(t *testing.T) {
	store := NewInMemoryStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Append("fresh", core.Message{ID: core.NewID(), Role: core.RoleUser, Content: "a", Timestamp: now.Add(-time.Minute)})
	store.Append("stale", core.Message{ID: core.NewID(), Role: core.RoleUser, Content: "b", Timestamp: now.Add(-30 * time.Hour)})

	store.Sweep(24*time.Hour, now)

	assert.Equal(t, 1, store.Size())
	assert.Len(t, store.Get("fresh"), 1)
	assert.Empty(t, store.Get("stale"))
}

func TestInMemoryStore_ConcurrentAppend(t *testing.T) {
	store := NewInMemoryStore()
	wg := sync.WaitGroup{}
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Append(fmt.Sprintf("k%d", i%5), core.NewUserMessage("x"))
			_ = store.Get(fmt.Sprintf("k%d", i%5))
			_ = store.Size()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 5, store.Size())
}

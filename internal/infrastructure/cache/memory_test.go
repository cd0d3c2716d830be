package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "k", "v", time.Minute)
	got, ok := store.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	store.Delete(ctx, "k")
	_, ok = store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStore_ExpiredKeyIsMiss(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	store.Set(ctx, "k", "v", -time.Second)
	_, ok := store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStore_CloseStopsCleanup(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "k", "v", time.Minute)
	store.Close()

	// The store stays usable after Close, only the background
	// cleanup goroutine is stopped
	got, ok := store.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	select {
	case <-store.done:
	default:
		t.Fatal("done channel should be closed after Close")
	}
}

package viewstore_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"visionmines/internal/viewstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeView struct {
	closed atomic.Int32
}

func (v *fakeView) Close() { v.closed.Add(1) }

func TestStore_OpenGetClose(t *testing.T) {
	store := viewstore.New[*fakeView]("test", time.Minute, zap.NewNop())
	v := &fakeView{}

	id := store.Open(v)
	require.NotEmpty(t, id)

	got, ok := store.Get(id)
	assert.True(t, ok)
	assert.Same(t, v, got)

	assert.True(t, store.Close(id))
	assert.Equal(t, int32(1), v.closed.Load())

	_, ok = store.Get(id)
	assert.False(t, ok)
	assert.False(t, store.Close(id), "second close is unknown")
	assert.Equal(t, int32(1), v.closed.Load())
}

func TestStore_Sweep(t *testing.T) {
	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	now := base
	store := viewstore.New[*fakeView]("test", 10*time.Minute, zap.NewNop())
	store.SetClock(func() time.Time { return now })

	stale := &fakeView{}
	fresh := &fakeView{}
	staleID := store.Open(stale)

	now = base.Add(8 * time.Minute)
	freshID := store.Open(fresh)

	assert.Equal(t, 1, store.Sweep(base.Add(11*time.Minute)))
	assert.Equal(t, int32(1), stale.closed.Load())
	assert.Equal(t, int32(0), fresh.closed.Load())

	_, ok := store.Get(staleID)
	assert.False(t, ok)
	_, ok = store.Get(freshID)
	assert.True(t, ok)
}

func TestStore_SweepDisabled(t *testing.T) {
	store := viewstore.New[*fakeView]("test", 0, zap.NewNop())
	store.Open(&fakeView{})

	assert.Equal(t, 0, store.Sweep(time.Now().Add(24*time.Hour)))
	assert.Equal(t, 1, store.Len())
}

func TestStore_RunClosesAllOnCancel(t *testing.T) {
	store := viewstore.New[*fakeView]("test", time.Hour, zap.NewNop())
	v := &fakeView{}
	store.Open(v)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Hour)
		close(done)
	}()

	cancel()
	<-done

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, int32(1), v.closed.Load())
}

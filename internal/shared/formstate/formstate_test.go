package formstate_test

import (
	"sync"
	"testing"
	"time"

	"visionmines/internal/shared/formstate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type owner struct {
	mu      sync.Mutex
	machine *formstate.Machine
	resets  int
}

func newOwner(delay time.Duration) *owner {
	o := &owner{}
	o.machine = formstate.New(&o.mu, delay)
	return o
}

func (o *owner) submit() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.machine.Submit(time.Now(), func() { o.resets++ })
}

func (o *owner) state() (formstate.State, int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.machine.State(), o.resets
}

func TestMachine_SubmitThenReset(t *testing.T) {
	o := newOwner(20 * time.Millisecond)

	require.NoError(t, o.submit())
	state, _ := o.state()
	assert.Equal(t, formstate.StateSubmitted, state)

	assert.ErrorIs(t, o.submit(), formstate.ErrAlreadySubmitted)

	assert.Eventually(t, func() bool {
		state, resets := o.state()
		return state == formstate.StateIdle && resets == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, o.submit(), "idle again after the reset")
}

func TestMachine_StopCancelsReset(t *testing.T) {
	o := newOwner(20 * time.Millisecond)
	require.NoError(t, o.submit())

	o.mu.Lock()
	o.machine.Stop()
	o.mu.Unlock()

	time.Sleep(60 * time.Millisecond)

	state, resets := o.state()
	assert.Equal(t, formstate.StateSubmitted, state)
	assert.Equal(t, 0, resets)
	assert.ErrorIs(t, o.submit(), formstate.ErrClosed)
}

func TestMachine_ResetsAt(t *testing.T) {
	var mu sync.Mutex
	m := formstate.New(&mu, 3*time.Second)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, m.ResetsAt().IsZero())
	require.NoError(t, m.Submit(now, func() {}))
	assert.Equal(t, now.Add(3*time.Second), m.ResetsAt())
	m.Stop()
}

func TestMachine_DefaultDelay(t *testing.T) {
	var mu sync.Mutex
	m := formstate.New(&mu, 0)
	now := time.Now()

	mu.Lock()
	defer mu.Unlock()
	require.NoError(t, m.Submit(now, func() {}))
	assert.Equal(t, now.Add(formstate.DefaultResetDelay), m.ResetsAt())
	m.Stop()
}

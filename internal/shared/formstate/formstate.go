// Package formstate models the idle -> submitted -> idle cycle of a form
// whose submission is acknowledged for a fixed delay before it resets.
//
// A Machine has no lock of its own. Every method must be called with the
// owner's lock held; the reset timer takes that same lock before it runs.
package formstate

import (
	"net/http"
	"sync"
	"time"

	"visionmines/internal/shared/apperror"
)

type State string

const (
	StateIdle      State = "idle"
	StateSubmitted State = "submitted"
)

const DefaultResetDelay = 3 * time.Second

var (
	ErrAlreadySubmitted = apperror.New(
		apperror.CodeInvalidState,
		"Form was just submitted and is locked until it resets",
		http.StatusConflict,
	)
	ErrClosed = apperror.New(
		apperror.CodeInvalidState,
		"Form view has been closed",
		http.StatusGone,
	)
)

type Machine struct {
	lock     sync.Locker
	delay    time.Duration
	state    State
	timer    *time.Timer
	resetsAt time.Time
	gen      uint64
	closed   bool
}

// New returns an idle machine guarded by lock.
func New(lock sync.Locker, delay time.Duration) *Machine {
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	return &Machine{lock: lock, delay: delay, state: StateIdle}
}

func (m *Machine) State() State { return m.state }

// ResetsAt is when a submitted form goes back to idle; zero when idle.
func (m *Machine) ResetsAt() time.Time { return m.resetsAt }

// Editable reports whether the form accepts input.
func (m *Machine) Editable() error {
	if m.closed {
		return ErrClosed
	}
	if m.state == StateSubmitted {
		return ErrAlreadySubmitted
	}
	return nil
}

// Submit moves the form to submitted and schedules onReset after the
// delay. onReset runs with the owner's lock held, once, unless Stop is
// called first.
func (m *Machine) Submit(now time.Time, onReset func()) error {
	if err := m.Editable(); err != nil {
		return err
	}

	m.state = StateSubmitted
	m.resetsAt = now.Add(m.delay)
	m.gen++
	gen := m.gen

	m.timer = time.AfterFunc(m.delay, func() {
		m.lock.Lock()
		defer m.lock.Unlock()

		// A Stop that raced with the timer wins.
		if m.closed || m.gen != gen || m.state != StateSubmitted {
			return
		}
		m.state = StateIdle
		m.resetsAt = time.Time{}
		m.timer = nil
		onReset()
	})
	return nil
}

// Stop cancels a pending reset and refuses further submissions.
func (m *Machine) Stop() {
	m.closed = true
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

package contact

import (
	"sync"
	"time"

	"visionmines/internal/shared/formstate"
)

// View holds one contact form. Sent messages are kept only for the
// lifetime of the view.
type View struct {
	mu      sync.Mutex
	machine *formstate.Machine
	sent    []Message
	onReset func()
}

func NewView(resetDelay time.Duration) *View {
	v := &View{}
	v.machine = formstate.New(&v.mu, resetDelay)
	return v
}

func (v *View) OnReset(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onReset = fn
}

type Snapshot struct {
	State    formstate.State
	ResetsAt time.Time
	Sent     int
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		State:    v.machine.State(),
		ResetsAt: v.machine.ResetsAt(),
		Sent:     len(v.sent),
	}
}

// Submit accepts msg and shows the sent state until the reset fires.
func (v *View) Submit(msg Message, now time.Time) (Snapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.machine.Editable(); err != nil {
		return Snapshot{}, err
	}
	if err := msg.Validate(); err != nil {
		return Snapshot{}, err
	}

	msg.SentAt = now
	if err := v.machine.Submit(now, func() {
		if v.onReset != nil {
			v.onReset()
		}
	}); err != nil {
		return Snapshot{}, err
	}
	v.sent = append(v.sent, msg)

	return Snapshot{
		State:    v.machine.State(),
		ResetsAt: v.machine.ResetsAt(),
		Sent:     len(v.sent),
	}, nil
}

func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.machine.Stop()
}

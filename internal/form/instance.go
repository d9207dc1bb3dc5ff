package form

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"turfdesk/internal/staging"
)

// Mode says whether submitting creates a listing or updates an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Instance is one open form. All work on it happens on user-triggered
// requests serialized by the mutex; preview generation is the only
// background activity and lives on its own board. The busy flag is the
// caller-visible guard against re-entrant submits.
type Instance struct {
	ID     string
	Mode   Mode
	TurfID int64

	mu       sync.Mutex
	state    State
	previews *staging.PreviewBoard
	busy     bool
	flash    []string
	touched  time.Time
}

// NewInstance opens a form in the given mode. turfID is only meaningful for
// ModeEdit.
func NewInstance(mode Mode, turfID int64, seed State) *Instance {
	return &Instance{
		ID:       uuid.NewString(),
		Mode:     mode,
		TurfID:   turfID,
		state:    seed,
		previews: staging.NewPreviewBoard(),
		touched:  time.Now(),
	}
}

// Apply runs one reducer against the current state and installs the result.
func (in *Instance) Apply(reduce func(State) State) State {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.state = reduce(in.state)
	in.touched = time.Now()
	return in.state
}

// Snapshot returns the current state value.
func (in *Instance) Snapshot() State {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.touched = time.Now()
	return in.state
}

// Previews exposes the board previews are appended to as they finish.
func (in *Instance) Previews() *staging.PreviewBoard {
	return in.previews
}

// BeginSubmit flips the busy flag and hands back the state the submission
// will operate on. A second submit while the first is in flight gets
// ErrSubmitInFlight.
func (in *Instance) BeginSubmit() (State, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.busy {
		return State{}, ErrSubmitInFlight
	}
	in.busy = true
	in.touched = time.Now()
	return in.state, nil
}

// EndSubmit clears the busy flag once the submission finished, whatever the
// outcome.
func (in *Instance) EndSubmit() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.busy = false
	in.touched = time.Now()
}

func (in *Instance) Busy() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.busy
}

// AddFlash queues messages for the next render of this form.
func (in *Instance) AddFlash(msgs ...string) {
	if len(msgs) == 0 {
		return
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	in.flash = append(in.flash, msgs...)
}

// PopFlash drains the queued messages; each shows exactly once.
func (in *Instance) PopFlash() []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := in.flash
	in.flash = nil
	return out
}

func (in *Instance) idleSince(now time.Time) time.Duration {
	in.mu.Lock()
	defer in.mu.Unlock()
	return now.Sub(in.touched)
}

package progress

import (
	"context"
	"sync"
	"time"
)

// Phase is a step of the submission state machine.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
	PhaseErrored    Phase = "errored"
)

// Delta is an incremental counter change.
type Delta struct {
	Requests int
	Exports  int
	Prompts  int
}

// State is a read-only copy of the tracker.
type State struct {
	SubmissionID string
	StartedAt    time.Time
	Phase        Phase
	// Outcome keeps the last terminal phase once the tracker is back to idle.
	Outcome  Phase
	Requests int
	Exports  int
	Prompts  int
}

// Progress keeps the state of one submission. It is safe for concurrent use.
type Progress struct {
	mu       sync.Mutex
	state    State
	onChange func(State)
}

// Update applies d and notifies the onChange callback outside the lock.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.state.Requests += d.Requests
	p.state.Exports += d.Exports
	p.state.Prompts += d.Prompts
	snapshot, cb := p.state, p.onChange
	p.mu.Unlock()
	if cb != nil {
		cb(snapshot)
	}
}

// SetPhase moves the tracker to phase.
func (p *Progress) SetPhase(phase Phase) {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.state.Phase == phase {
		p.mu.Unlock()
		return
	}
	switch phase {
	case PhaseSucceeded, PhaseFailed, PhaseErrored:
		p.state.Outcome = phase
	}
	p.state.Phase = phase
	snapshot, cb := p.state, p.onChange
	p.mu.Unlock()
	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the current state.
func (p *Progress) Snapshot() State {
	if p == nil {
		return State{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates an idle tracker for submissionID and embeds it in ctx.
func WithNewTracker(ctx context.Context, submissionID string, onChange func(State)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		state: State{
			SubmissionID: submissionID,
			StartedAt:    time.Now(),
			Phase:        PhaseIdle,
		},
		onChange: onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx applies d to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}

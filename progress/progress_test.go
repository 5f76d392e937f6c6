package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Lifecycle(t *testing.T) {
	var phases []Phase
	ctx, tracker := WithNewTracker(context.Background(), "sub-1", func(s State) {
		phases = append(phases, s.Phase)
	})

	tracker.SetPhase(PhaseSubmitting)
	UpdateCtx(ctx, Delta{Requests: 1})
	tracker.SetPhase(PhaseFailed)
	UpdateCtx(ctx, Delta{Prompts: 1})
	UpdateCtx(ctx, Delta{Exports: 1, Prompts: 1})
	tracker.SetPhase(PhaseIdle)
	tracker.SetPhase(PhaseIdle)

	state := tracker.Snapshot()
	assert.Equal(t, "sub-1", state.SubmissionID)
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Equal(t, PhaseFailed, state.Outcome)
	assert.Equal(t, 1, state.Requests)
	assert.Equal(t, 1, state.Exports)
	assert.Equal(t, 2, state.Prompts)
	assert.Equal(t, []Phase{PhaseSubmitting, PhaseSubmitting, PhaseFailed, PhaseFailed, PhaseFailed, PhaseIdle}, phases)
}

func TestProgress_NoTracker(t *testing.T) {
	ctx := context.Background()
	_, ok := FromContext(ctx)
	assert.False(t, ok)
	UpdateCtx(ctx, Delta{Requests: 1})

	var tracker *Progress
	tracker.Update(Delta{Requests: 1})
	tracker.SetPhase(PhaseErrored)
	assert.Equal(t, State{}, tracker.Snapshot())
}

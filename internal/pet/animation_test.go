package pet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimator_TransientRevertsToIdle(t *testing.T) {
	sched := &fakeScheduler{}
	a := newTestAnimator(sched, allStateAssets())

	a.SetState(StateHappy)
	require.Equal(t, StateHappy, a.State())

	sched.Advance(RevertDelay)
	assert.Equal(t, StateIdle, a.State())
}

func TestAnimator_SupersededRevertNeverFires(t *testing.T) {
	sched := &fakeScheduler{}
	a := newTestAnimator(sched, allStateAssets())

	a.SetState(StateHappy)
	sched.Advance(3 * time.Second)

	// a newer mood takes over; the old revert must not cut it short
	a.SetState(StateWow)
	sched.Advance(3 * time.Second)
	assert.Equal(t, StateWow, a.State())

	sched.Advance(3 * time.Second)
	assert.Equal(t, StateIdle, a.State())
}

func TestAnimator_AtMostOnePendingRevert(t *testing.T) {
	sched := &fakeScheduler{}
	a := newTestAnimator(sched, allStateAssets())

	a.SetState(StateHappy)
	a.SetState(StateSad)
	a.SetState(StateLaugh)

	assert.Equal(t, 1, sched.pending())
}

func TestAnimator_ThinkingIsPersistent(t *testing.T) {
	sched := &fakeScheduler{}
	a := newTestAnimator(sched, allStateAssets())

	a.SetState(StateThinking)
	sched.Advance(time.Minute)
	assert.Equal(t, StateThinking, a.State())
}

func TestAnimator_MissingAssetKeepsCurrent(t *testing.T) {
	sched := &fakeScheduler{}
	a := newTestAnimator(sched, newStubAssets("idle", "happy"))

	a.SetState(StateHappy)
	require.Equal(t, StateHappy, a.State())

	a.SetState(StateWow)
	assert.Equal(t, StateHappy, a.State(), "unknown asset must not change the mood")

	// the happy revert is still armed and still fires
	sched.Advance(RevertDelay)
	assert.Equal(t, StateIdle, a.State())
}

func TestAnimator_AdvanceWrapsAround(t *testing.T) {
	sched := &fakeScheduler{}
	a := newTestAnimator(sched, allStateAssets())

	first := a.Frame()
	a.Advance()
	assert.NotEqual(t, first, a.Frame())
	a.Advance()
	assert.Equal(t, first, a.Frame())
}

func TestAnimator_SetStateResetsFrameIndex(t *testing.T) {
	sched := &fakeScheduler{}
	a := newTestAnimator(sched, allStateAssets())

	a.Advance()
	a.SetState(StateHappy)
	assert.Equal(t, "[happy 0]", a.Frame())
}

package pet

import (
	"time"

	"github.com/rs/zerolog"
)

// State is an animation mood. Idle and Thinking are persistent; everything
// else reverts to Idle on its own.
type State string

const (
	StateIdle     State = "idle"
	StateHappy    State = "happy"
	StateLaugh    State = "laugh"
	StateWow      State = "wow"
	StateSad      State = "sad"
	StateThinking State = "thinking"
)

// Transient reports whether the state auto-reverts to Idle.
func (s State) Transient() bool {
	return s != StateIdle && s != StateThinking
}

// RevertDelay is how long a transient mood is shown before the pet goes
// back to idling.
const RevertDelay = 6 * time.Second

// AssetSource serves ordered frame sequences by animation key. A missing
// key must be reported as an error, not a panic; the animator treats it as
// "keep what is showing".
type AssetSource interface {
	Frames(key string) ([]string, error)
}

// Animator owns the current mood, its frame sequence, and the pending
// revert timer. Every method must be called on the runtime goroutine.
type Animator struct {
	assets AssetSource
	sched  Scheduler
	log    *zerolog.Logger

	state  State
	frames []string
	idx    int

	// gen tags every transition so a superseded revert can never fire late
	gen    uint64
	revert Handle
}

func NewAnimator(assets AssetSource, sched Scheduler, log *zerolog.Logger) *Animator {
	a := &Animator{
		assets: assets,
		sched:  sched,
		log:    log,
		state:  StateIdle,
	}
	if frames, err := assets.Frames(string(StateIdle)); err == nil {
		a.frames = frames
	}
	return a
}

// SetState switches the animation. On a missing asset nothing changes and
// no error is raised. A transient state arms a single revert-to-idle timer
// tagged with the current generation.
func (a *Animator) SetState(s State) {
	frames, err := a.assets.Frames(string(s))
	if err != nil {
		a.log.Debug().Str("state", string(s)).Err(err).Msg("animation asset missing, keeping current")
		return
	}

	a.gen++
	if a.revert != nil {
		a.revert.Cancel()
		a.revert = nil
	}

	a.state = s
	a.frames = frames
	a.idx = 0

	if s.Transient() {
		gen := a.gen
		a.revert = a.sched.Schedule(RevertDelay, false, func() {
			if a.gen == gen {
				a.SetState(StateIdle)
			}
		})
	}
}

// Advance steps to the next frame, wrapping around.
func (a *Animator) Advance() {
	if len(a.frames) == 0 {
		return
	}
	a.idx = (a.idx + 1) % len(a.frames)
}

// Frame returns the current frame art.
func (a *Animator) Frame() string {
	if len(a.frames) == 0 {
		return ""
	}
	return a.frames[a.idx]
}

func (a *Animator) State() State {
	return a.state
}

package component

import "github.com/hajimehoshi/ebiten/v2"

// Transition maps a named event to a state change. Self transitions are
// allowed and restart the target animation.
type Transition struct {
	From  int
	To    int
	Event string
}

// AnimationSM is a small state machine over animations driven by named
// events ("hit", "move_up", ...). Callers fire events with Trigger; events
// with no transition out of the current state are ignored.
type AnimationSM struct {
	states      []*Animation
	transitions []Transition
	current     int
	startTick   int
}

// NewAnimationSM creates a state machine starting in `initial` at `startTick`.
func NewAnimationSM(states []*Animation, transitions []Transition, startTick, initial int) *AnimationSM {
	if initial < 0 || initial >= len(states) {
		initial = 0
	}
	return &AnimationSM{
		states:      states,
		transitions: transitions,
		current:     initial,
		startTick:   startTick,
	}
}

// Trigger fires a named event at the given tick. The first transition out of
// the current state matching the event wins.
func (sm *AnimationSM) Trigger(event string, tick int) {
	if sm == nil {
		return
	}
	for _, tr := range sm.transitions {
		if tr.From == sm.current && tr.Event == event {
			sm.current = tr.To
			sm.startTick = tick
			return
		}
	}
}

// Current returns the index of the active state.
func (sm *AnimationSM) Current() int {
	if sm == nil {
		return 0
	}
	return sm.current
}

// Frame returns the active animation's frame image for tick `now`.
func (sm *AnimationSM) Frame(now int) *ebiten.Image {
	if sm == nil || len(sm.states) == 0 {
		return nil
	}
	return sm.states[sm.current].Frame(sm.startTick, now)
}

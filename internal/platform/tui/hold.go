package tui

import (
	"time"

	"github.com/vovakirdan/fruit-catch/internal/core"
)

// DefaultHoldWindow is how long a direction stays held after its last
// key press. It must cover the gap between terminal key repeats.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldTracker emulates held direction keys. Terminals report key presses
// and auto-repeats but never releases, so a direction counts as held for
// a short window after each press.
type HoldTracker struct {
	window  time.Duration
	pressed map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses
// DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:  window,
		pressed: make(map[core.Action]time.Time),
	}
}

// Holdable reports whether an action is a held direction.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		return true
	}
	return false
}

// Press records a press at now. Pressing a direction releases the
// opposite one immediately.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !Holdable(a) {
		return
	}
	for _, o := range opposites(a) {
		delete(h.pressed, o)
	}
	h.pressed[a] = now
}

// Apply sets every still-held action on the frame and forgets the
// expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, at := range h.pressed {
		if now.Sub(at) > h.window {
			delete(h.pressed, a)
			continue
		}
		frame.Set(a)
	}
}

// Release forgets every held key.
func (h *HoldTracker) Release() {
	clear(h.pressed)
}

func opposites(a core.Action) []core.Action {
	switch a {
	case core.ActionLeft, core.ActionUp:
		return []core.Action{core.ActionRight, core.ActionDown}
	default:
		return []core.Action{core.ActionLeft, core.ActionUp}
	}
}

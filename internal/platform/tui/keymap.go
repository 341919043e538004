package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last
// press or autorepeat event. Terminals never report key release.
const DefaultHoldWindow = 120 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionThrust, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// Holdable reports whether an action models a held key (steering, thrust)
// rather than a one-shot press.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionThrust:
		return true
	}
	return false
}

// HoldTracker turns a stream of key events into held-key state.
// An action stays held for the window after its most recent event, which
// bridges the gaps between terminal autorepeat events.
type HoldTracker struct {
	window time.Duration
	seen   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		seen:   make(map[core.Action]time.Time),
	}
}

// Press records an event for a at time now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	h.seen[a] = now
}

// Apply marks every still-held action in frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, at := range h.seen {
		if now.Sub(at) > h.window {
			delete(h.seen, a)
			continue
		}
		frame.Set(a)
	}
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	at, ok := h.seen[a]
	return ok && now.Sub(at) <= h.window
}

// Release forgets all held keys.
func (h *HoldTracker) Release() {
	clear(h.seen)
}

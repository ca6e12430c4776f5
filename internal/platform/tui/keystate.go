package tui

import "github.com/vovakirdan/tui-bomberman/internal/core"

// KeyState coalesces key messages arriving between ticks into one input frame
// per tick. Terminals report no key release, so a movement key stays held
// until holdTicks frames pass without a press or auto-repeat. Pressing a new
// direction releases the others. The bomb key is a one-shot pending flag.
type KeyState struct {
	holdTicks int
	frame     uint64
	lastSeen  map[core.Action]uint64
	bomb      bool
}

// NewKeyState creates a key state that holds movement for holdTicks frames.
func NewKeyState(holdTicks int) *KeyState {
	return &KeyState{
		holdTicks: max(1, holdTicks),
		lastSeen:  make(map[core.Action]uint64),
	}
}

// Press records a key press or auto-repeat.
func (s *KeyState) Press(a core.Action) {
	switch {
	case a.IsMovement():
		clear(s.lastSeen)
		s.lastSeen[a] = s.frame
	case a == core.ActionBomb:
		s.bomb = true
	}
}

// Frame builds the input for the next tick and consumes the pending bomb.
func (s *KeyState) Frame() core.InputFrame {
	s.frame++

	f := core.NewInputFrame()
	for a, seen := range s.lastSeen {
		if s.frame-seen > uint64(s.holdTicks) { //#nosec G115 -- holdTicks is at least 1
			delete(s.lastSeen, a)
			continue
		}
		f.Set(a)
	}
	if s.bomb {
		f.Set(core.ActionBomb)
		s.bomb = false
	}
	return f
}

// Reset releases every key and drops a pending bomb.
func (s *KeyState) Reset() {
	clear(s.lastSeen)
	s.bomb = false
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move/carve left
	ActionRight          // D, Right arrow - move/carve right
	ActionUp             // W, Up arrow - trick modifier
	ActionDown           // S, Down arrow - trick modifier / ollie
	ActionJump           // Space - jump off the ground
	ActionTrick1         // J - trick button 1
	ActionTrick2         // K - trick button 2
	ActionTrick3         // L - trick button 3
	ActionPause          // P, Escape - pause/unpause game
	ActionMenu           // M - return to menu
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart run after it ends
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionTrick1:
		return "Trick1"
	case ActionTrick2:
		return "Trick2"
	case ActionTrick3:
		return "Trick3"
	case ActionPause:
		return "Pause"
	case ActionMenu:
		return "Menu"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
//
// Two consumption styles coexist: trick initiation is edge-triggered
// (Pressed reports keys that went down this frame, each press fires once),
// while movement is level-polled (Held reports keys currently down, so the
// character keeps accelerating as long as the key is held). The platform
// layer is responsible for filling both sets.
type InputFrame struct {
	// Pressed maps actions to whether they were newly triggered this frame.
	Pressed map[Action]bool

	// Held maps actions to whether the key is currently held down.
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks an action as newly triggered for this frame.
// A pressed action is also held for the duration of the frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// Hold marks an action's key as currently held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was newly triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[a]
}

// IsHeld returns true if the given action's key is currently held down.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// ClearPressed resets edge-triggered actions for the next frame,
// leaving held state intact.
func (f *InputFrame) ClearPressed() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.ClearPressed()
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// Package character interprets abstract input actions into movement and
// trick execution. It owns the trick state machine and the visible combo
// counter.
package character

import (
	"math"

	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/physics"
	"github.com/vovakirdan/tui-shred/internal/game/tricks"
)

// Base states. While a trick executes, the state is the trick's id.
const (
	StateIdle    = "idle"
	StateMoving  = "moving"
	StateJumping = "jumping"
)

// Facing directions.
const (
	FacingLeft  = "left"
	FacingRight = "right"
)

const (
	// ComboWindow is the character-side combo window in frames. The
	// scoring system keeps its own, longer window; the two counters are
	// distinct state on purpose and must not be merged.
	ComboWindow = 90

	// facingHysteresis avoids facing flicker at near-zero speed.
	facingHysteresis = 0.1

	// waveFaceRange is how close (in units) the player must be to the
	// wave surface for surf tricks to be eligible.
	waveFaceRange = 20
)

// MaxComboBonus caps the combo factor applied to a trick's base score.
const MaxComboBonus = 4.0

// Surroundings carries the per-frame context the state machine needs
// from the rest of the simulation.
type Surroundings struct {
	// WaveY is the wave surface height under the player (surf mode).
	WaveY float64

	// InTube is true while the player is inside a tube zone (surf mode).
	InTube bool
}

// Controller is the trick state machine. It mutates its own state only;
// physics is driven through the controller's methods.
type Controller struct {
	mode  string
	phys  *physics.Controller
	table map[string]*tricks.Def

	State           string
	Facing          string
	TrickInProgress bool
	TrickTimer      int
	CurrentTrick    *tricks.Def
	ComboCounter    int
	ComboTimer      int

	// continuousAccum carries fractional per-second trick points between
	// frames so grind/tube scoring stays integer.
	continuousAccum float64
}

// New creates a character controller for the given mode.
func New(mode string, phys *physics.Controller) *Controller {
	return &Controller{
		mode:   mode,
		phys:   phys,
		table:  tricks.ForMode(mode),
		State:  StateIdle,
		Facing: FacingRight,
	}
}

// Update runs one frame of the state machine: movement polling, trick
// initiation, trick/combo timers and state transitions. Returned events
// are drained by the orchestrator.
func (c *Controller) Update(in core.InputFrame, now float64, env Surroundings) []core.Event {
	var events []core.Event

	// Movement is level-polled: the key being down accelerates every
	// frame, regardless of trick state.
	if in.IsHeld(core.ActionLeft) {
		c.phys.MoveLeft()
	}
	if in.IsHeld(core.ActionRight) {
		c.phys.MoveRight()
	}
	if in.Has(core.ActionJump) {
		c.phys.Jump()
	}

	// Facing follows the sign of horizontal velocity, with a hysteresis
	// band so it doesn't flicker around zero.
	if c.phys.VX > facingHysteresis {
		c.Facing = FacingRight
	} else if c.phys.VX < -facingHysteresis {
		c.Facing = FacingLeft
	}

	if !c.TrickInProgress {
		if id := c.trickInput(in, env); id != "" {
			if ev := c.PerformTrick(id, now, env); ev != nil {
				events = append(events, *ev)
			}
		}
	}

	if c.TrickInProgress {
		c.tickTrick(env)
	}

	if !c.TrickInProgress {
		c.applyBaseState(in)
	}

	// Character-side combo window. Independent from the scoring system's
	// combo timer, which runs 120 frames; the two must not be merged.
	if c.ComboTimer > 0 {
		c.ComboTimer--
		if c.ComboTimer == 0 {
			if c.ComboCounter > 1 {
				events = append(events, core.ComboEnded{Count: c.ComboCounter})
			}
			c.ComboCounter = 0
		}
	}

	return events
}

// trickInput maps this frame's input to a trick id. The mapping is
// deterministic and exclusive: the first matching condition wins.
func (c *Controller) trickInput(in core.InputFrame, env Surroundings) string {
	if c.mode == "surf" {
		return c.surfTrickInput(in, env)
	}
	return c.skateTrickInput(in)
}

func (c *Controller) skateTrickInput(in core.InputFrame) string {
	if !c.phys.Grounded {
		switch {
		case in.Has(core.ActionTrick1):
			return "kickflip"
		case in.Has(core.ActionTrick2):
			return "heelflip"
		case in.Has(core.ActionTrick3):
			return "treflip"
		case in.Has(core.ActionDown):
			return "ollie"
		}
		return ""
	}
	// Grounded tricks require rail contact this frame.
	if c.phys.OnRail() && in.Has(core.ActionTrick1) {
		return "boardslide"
	}
	return ""
}

func (c *Controller) surfTrickInput(in core.InputFrame, env Surroundings) string {
	// Surf tricks are only readable on the wave face.
	if core.AbsF(c.phys.Bounds().Bottom()-env.WaveY) >= waveFaceRange {
		return ""
	}
	if env.InTube && in.Has(core.ActionTrick1) {
		return "tuberide"
	}
	combo := func(a, b core.Action) bool {
		return (in.Has(a) || in.Has(b)) && in.IsHeld(a) && in.IsHeld(b)
	}
	switch {
	case combo(core.ActionUp, core.ActionLeft):
		return "cutback"
	case combo(core.ActionDown, core.ActionRight):
		return "snap"
	case combo(core.ActionLeft, core.ActionRight):
		return "floater"
	case in.Has(core.ActionDown):
		return "bottomturn"
	}
	return ""
}

// PerformTrick attempts to start the named trick. It returns nil without
// any state change when the trick is unknown or ineligible (a failure
// sentinel, not an error): airOnly tricks while grounded, grind tricks
// without rail contact, wave tricks off the face, tube tricks outside a
// tube.
func (c *Controller) PerformTrick(id string, now float64, env Surroundings) *core.TrickPerformed {
	def := c.table[id]
	if def == nil {
		return nil
	}
	if def.AirOnly && c.phys.Grounded {
		return nil
	}
	if def.GrindTrick && !c.phys.OnRail() {
		return nil
	}
	if def.TubeTrick && !env.InTube {
		return nil
	}

	c.State = def.ID
	c.TrickInProgress = true
	c.TrickTimer = def.Duration
	c.CurrentTrick = def
	c.ComboCounter++
	c.ComboTimer = ComboWindow
	c.continuousAccum = 0

	comboFactor := math.Min(MaxComboBonus, 1+0.5*float64(c.ComboCounter-1))
	score := int(math.Floor(float64(def.BaseScore)*comboFactor)) + c.phys.CalculateTrickScore(now)

	return &core.TrickPerformed{
		TrickID: def.ID,
		Name:    def.Name,
		Score:   score,
		Combo:   c.ComboCounter,
	}
}

// tickTrick advances the active trick: timed tricks count down their
// frame timer, continuous tricks (grind, tube ride) run until their
// supporting condition disappears.
func (c *Controller) tickTrick(env Surroundings) {
	def := c.CurrentTrick
	if def == nil {
		c.endTrick()
		return
	}

	if def.Continuous() {
		if def.GrindTrick && !c.phys.OnRail() {
			c.endTrick()
		}
		if def.TubeTrick && !env.InTube {
			c.endTrick()
		}
		return
	}

	c.TrickTimer--
	if c.TrickTimer <= 0 {
		c.endTrick()
	}
}

// ContinuousPoints returns the whole points accrued by an active
// continuous trick this frame, carrying the fractional remainder.
func (c *Controller) ContinuousPoints() int {
	if !c.TrickInProgress || c.CurrentTrick == nil || !c.CurrentTrick.Continuous() {
		return 0
	}
	c.continuousAccum += float64(c.CurrentTrick.ScorePerSecond) / physics.TimeScale
	whole := math.Floor(c.continuousAccum)
	c.continuousAccum -= whole
	return int(whole)
}

func (c *Controller) endTrick() {
	c.TrickInProgress = false
	c.CurrentTrick = nil
	c.TrickTimer = 0
	c.applyBaseState(core.InputFrame{})
}

// applyBaseState sets the non-trick state from physics: airborne is
// jumping; grounded is moving or idle depending on horizontal speed.
func (c *Controller) applyBaseState(in core.InputFrame) {
	if !c.phys.Grounded {
		c.State = StateJumping
		return
	}
	moving := in.IsHeld(core.ActionLeft) || in.IsHeld(core.ActionRight) ||
		core.AbsF(c.phys.VX) > facingHysteresis
	if moving {
		c.State = StateMoving
	} else {
		c.State = StateIdle
	}
}

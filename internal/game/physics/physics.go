// Package physics implements the per-frame movement integration and
// collision resolution primitives for both game modes.
package physics

import (
	"math"

	"github.com/vovakirdan/tui-shred/internal/config"
	"github.com/vovakirdan/tui-shred/internal/core"
)

const (
	// TimeScale is the reference tick rate. Velocities are expressed in
	// world units per reference frame; Update scales them by dt*TimeScale.
	TimeScale = 60.0

	// MaxDelta bounds a single physics step after a stall (for example a
	// backgrounded terminal). No sub-stepping happens beyond this clamp.
	MaxDelta = 0.1
)

// Mode selects the active rule set.
type Mode string

const (
	ModeSkate Mode = "skate"
	ModeSurf  Mode = "surf"
)

// Obstacle is the view of a level obstacle the physics layer needs for
// collision resolution. The level package owns the concrete types.
type Obstacle interface {
	Bounds() core.Rect
	Grindable() bool
}

// CollisionResponse records the most recent obstacle collision.
// It is transient: Update clears it at the end of every frame, so a
// non-nil response always refers to the current tick.
type CollisionResponse struct {
	Obstacle Obstacle
	Overlap  core.Rect
}

// Controller owns the physics state of the player. Position and velocity
// are mutated here only; the character and level systems read them.
type Controller struct {
	mode  Mode
	cfg   config.ModePhysics
	wave  config.WaveTuning
	trick config.TrickTuning

	// Position is the top-left corner of the player's bounding box.
	X, Y   float64
	VX, VY float64
	W, H   float64

	Grounded bool

	resp *CollisionResponse
}

// NewSkate creates a physics controller with skate mode constants.
func NewSkate(cfg config.SkateConfig, w, h float64) *Controller {
	return &Controller{
		mode:  ModeSkate,
		cfg:   cfg.Physics,
		trick: cfg.Trick,
		W:     w,
		H:     h,
	}
}

// NewSurf creates a physics controller with surf mode constants.
func NewSurf(cfg config.SurfConfig, w, h float64) *Controller {
	return &Controller{
		mode:  ModeSurf,
		cfg:   cfg.Physics,
		wave:  cfg.Wave,
		trick: cfg.Trick,
		W:     w,
		H:     h,
	}
}

// Mode returns the active rule set.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Bounds returns the player's current bounding box.
func (c *Controller) Bounds() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// Response returns the obstacle collision recorded this tick, or nil.
func (c *Controller) Response() *CollisionResponse {
	return c.resp
}

// OnRail reports whether the player currently overlaps a grindable
// obstacle, per the last collision response.
func (c *Controller) OnRail() bool {
	return c.resp != nil && c.resp.Obstacle.Grindable()
}

// Update advances position and velocity by one frame.
//
// dt is the wall-clock delta in seconds, clamped to MaxDelta before it
// reaches the integrator. now is wall-clock milliseconds and drives the
// surf wave force; the global wave animation runs on real time, not
// simulation time.
func (c *Controller) Update(dt, now float64) {
	dt = core.ClampF(dt, 0, MaxDelta)
	steps := dt * TimeScale

	// Gravity, skipped while grounded.
	if !c.Grounded {
		c.VY += c.cfg.Gravity * steps
	}

	// Friction on horizontal velocity, frame-rate independent.
	c.VX *= math.Pow(c.cfg.Friction, steps)

	// Surf mode: the wave face pushes the board along its slope.
	if c.mode == ModeSurf {
		c.VX += c.WaveSlope(now) * c.wave.Force * steps
		c.VX = core.ClampF(c.VX, -c.cfg.MaxSpeed, c.cfg.MaxSpeed)
	}

	c.X += c.VX * steps
	c.Y += c.VY * steps

	// The collision response is valid for exactly one frame.
	c.resp = nil
}

// MoveLeft accelerates horizontal velocity toward -MaxSpeed.
func (c *Controller) MoveLeft() {
	c.VX = core.MaxF(c.VX-c.cfg.Acceleration, -c.cfg.MaxSpeed)
}

// MoveRight accelerates horizontal velocity toward +MaxSpeed.
func (c *Controller) MoveRight() {
	c.VX = core.MinF(c.VX+c.cfg.Acceleration, c.cfg.MaxSpeed)
}

// Jump launches the player if grounded. Returns whether the jump
// happened; an airborne jump is a no-op, not an error.
func (c *Controller) Jump() bool {
	if !c.Grounded {
		return false
	}
	c.VY = -c.cfg.JumpForce
	c.Grounded = false
	return true
}

// HandleGroundCollision snaps the player onto the terrain at groundY,
// zeroes vertical velocity and marks the player grounded.
func (c *Controller) HandleGroundCollision(groundY float64) {
	c.Y = groundY - c.H
	c.VY = 0
	c.Grounded = true
}

// HandleObstacleCollision resolves an obstacle overlap along the axis of
// minimum penetration and records the collision response for this tick.
func (c *Controller) HandleObstacleCollision(obs Obstacle, overlap core.Rect) {
	c.resp = &CollisionResponse{Obstacle: obs, Overlap: overlap}

	bounds := obs.Bounds()
	if overlap.W < overlap.H {
		// Horizontal push-out; stop travel into the obstacle.
		if c.Bounds().CenterX() < bounds.CenterX() {
			c.X -= overlap.W
			if c.VX > 0 {
				c.VX = 0
			}
		} else {
			c.X += overlap.W
			if c.VX < 0 {
				c.VX = 0
			}
		}
		return
	}

	if c.Bounds().CenterY() < bounds.CenterY() {
		// Pushed upward: the player landed on top of the obstacle.
		c.Y -= overlap.H
		c.VY = 0
		c.Grounded = true
	} else {
		c.Y += overlap.H
		c.VY = core.MaxF(c.VY, 0)
	}
}

// ApplyBoost adds a horizontal velocity kick, clamped to MaxSpeed.
// Speed zones use this.
func (c *Controller) ApplyBoost(vx float64) {
	c.VX = core.ClampF(c.VX+vx, -c.cfg.MaxSpeed, c.cfg.MaxSpeed)
}

// Launch throws the player off a ramp with the given velocities.
func (c *Controller) Launch(vx, vy float64) {
	c.VX = core.ClampF(c.VX+vx, -c.cfg.MaxSpeed*1.5, c.cfg.MaxSpeed*1.5)
	c.VY = -vy
	c.Grounded = false
}

// CalculateTrickScore returns the mode-dependent situational bonus added
// to a trick's base score. Skate rewards height above the skyline floor;
// surf rewards the steepness of the wave face at the moment of the trick.
// Both add a speed term. The result is floored to an integer.
func (c *Controller) CalculateTrickScore(now float64) int {
	var bonus float64
	switch c.mode {
	case ModeSurf:
		bonus = core.AbsF(c.WaveSlope(now)) * c.trick.SteepnessWeight
	default:
		bonus = core.MaxF(0, c.trick.Skyline-c.Y) * c.trick.HeightWeight
	}

	speed := math.Hypot(c.VX, c.VY)
	return int(math.Floor(bonus + speed*c.trick.SpeedWeight))
}

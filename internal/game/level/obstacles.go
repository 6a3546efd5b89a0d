// Package level implements procedural terrain and wave generation,
// obstacle/collectible/zone placement, spatial queries and collision
// detection against the player's bounding box.
package level

import (
	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/leveldata"
)

// Props is the kind-specific payload of an obstacle, selected by type
// switch rather than string-keyed property maps.
type Props interface {
	obstacleProps()
}

// RailProps marks a grindable rail and its grind bonus.
type RailProps struct {
	TrickBonus int
}

// RampProps launches the player on contact.
type RampProps struct {
	LaunchVX float64
	LaunchVY float64
}

// BoxProps is a plain solid box (ledges, crates).
type BoxProps struct{}

// RockProps is a solid surf hazard.
type RockProps struct{}

// BuoyProps is a floating surf hazard.
type BuoyProps struct{}

// DriftwoodProps is a low floating surf hazard.
type DriftwoodProps struct{}

func (RailProps) obstacleProps()      {}
func (RampProps) obstacleProps()      {}
func (BoxProps) obstacleProps()       {}
func (RockProps) obstacleProps()      {}
func (BuoyProps) obstacleProps()      {}
func (DriftwoodProps) obstacleProps() {}

// Obstacle is a solid level feature the player can collide with.
// The rect is mutated only by the level system (moving obstacles sway on
// wall-clock time around their anchor X).
type Obstacle struct {
	Kind  string
	Rect  core.Rect
	Props Props

	Moving    bool
	Amplitude float64
	anchorX   float64
}

// Bounds returns the obstacle's current bounding box.
func (o *Obstacle) Bounds() core.Rect {
	return o.Rect
}

// Grindable reports whether the obstacle can be grinded (rail type).
func (o *Obstacle) Grindable() bool {
	_, ok := o.Props.(RailProps)
	return ok
}

// propsFor maps an authored obstacle kind to its tagged variant.
// Unknown kinds degrade to a plain box rather than failing.
func propsFor(def leveldata.ObstacleDef) Props {
	switch def.Kind {
	case "rail":
		bonus := def.TrickBonus
		if bonus == 0 {
			bonus = 50
		}
		return RailProps{TrickBonus: bonus}
	case "ramp":
		return RampProps{LaunchVX: def.LaunchVX, LaunchVY: def.LaunchVY}
	case "rock":
		return RockProps{}
	case "buoy":
		return BuoyProps{}
	case "driftwood":
		return DriftwoodProps{}
	default:
		return BoxProps{}
	}
}

// Collectible is a pickup with a point value. Collected ones are
// reported exactly once and pruned lazily on the next Update.
type Collectible struct {
	Kind      string
	Rect      core.Rect
	Value     int
	Collected bool
}

// ZoneProps is the kind-specific payload of a special zone.
type ZoneProps interface {
	zoneProps()
}

// HalfPipeProps starts a timed score multiplier (skate).
type HalfPipeProps struct {
	Multiplier float64
	Seconds    int
}

// TubeProps starts a timed score multiplier and enables tube tricks (surf).
type TubeProps struct {
	Multiplier float64
	Seconds    int
}

// SpeedProps kicks the player's horizontal velocity.
type SpeedProps struct {
	Boost float64
}

func (HalfPipeProps) zoneProps() {}
func (TubeProps) zoneProps()     {}
func (SpeedProps) zoneProps()    {}

// SpecialZone is a level region that modifies scoring or physics while
// the player's x-position is within its span.
type SpecialZone struct {
	Kind   string
	X      float64
	Width  float64
	Props  ZoneProps
	Active bool
}

// ContainsX reports whether an x-position falls inside the zone's span.
func (z *SpecialZone) ContainsX(x float64) bool {
	return x >= z.X && x <= z.X+z.Width
}

func zonePropsFor(def leveldata.ZoneDef) ZoneProps {
	mult := def.Multiplier
	if mult == 0 {
		mult = 2
	}
	secs := def.Seconds
	if secs == 0 {
		secs = 8
	}
	switch def.Kind {
	case "speed":
		boost := def.Boost
		if boost == 0 {
			boost = 3
		}
		return SpeedProps{Boost: boost}
	case "tube":
		return TubeProps{Multiplier: mult, Seconds: secs}
	default:
		return HalfPipeProps{Multiplier: mult, Seconds: secs}
	}
}

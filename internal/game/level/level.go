package level

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/leveldata"
)

const (
	// SegmentLength is the span of a single terrain or wave segment.
	SegmentLength = 200

	// DefaultGroundY is the baseline terrain height when x falls outside
	// any generated segment.
	DefaultGroundY = 320

	// CameraLead keeps the player this many units from the left edge.
	CameraLead = 200
)

// GroundSegment is one span of the skate ground profile. Ramps
// interpolate linearly from StartY to EndY across the segment.
type GroundSegment struct {
	X      float64
	StartY float64
	EndY   float64
}

// WaveSegment is one span of the surf wave profile, carrying its own
// amplitude and frequency.
type WaveSegment struct {
	X         float64
	Kind      string
	Amplitude float64
	Frequency float64
}

// ObstacleHit pairs an obstacle with the overlap rectangle of the
// player's AABB against it.
type ObstacleHit struct {
	Obstacle *Obstacle
	Overlap  core.Rect
}

// Report is the result of one collision pass.
type Report struct {
	OnGround bool
	GroundY  float64

	Obstacles []ObstacleHit
	Collected []*Collectible
	Zones     []*SpecialZone
}

// System owns all level state: terrain, obstacles, collectibles, zones
// and the camera. Obstacles and zones are created once at init and are
// append-only; collectibles are filtered after collection.
type System struct {
	def        leveldata.Def
	surf       bool
	waterLevel float64

	rng *rand.Rand

	ground       []GroundSegment
	waves        []WaveSegment
	obstacles    []*Obstacle
	collectibles []*Collectible
	zones        []*SpecialZone

	CameraX float64
}

// New builds a fresh level instance from its definition. The seed drives
// all procedural placement, so identical (def, seed) pairs produce
// identical levels.
func New(def leveldata.Def, seed int64) *System {
	s := &System{
		def:        def,
		surf:       def.Mode == "surf",
		waterLevel: DefaultGroundY,
		rng:        rand.New(rand.NewSource(seed)),
	}
	s.initialize()
	return s
}

// Def returns the authored definition this level was built from.
func (s *System) Def() leveldata.Def {
	return s.def
}

// Length returns the level length in world units.
func (s *System) Length() float64 {
	return s.def.Layout.Length
}

// Obstacles returns the live obstacle list (read-only for callers).
func (s *System) Obstacles() []*Obstacle {
	return s.obstacles
}

// Collectibles returns the uncollected collectibles.
func (s *System) Collectibles() []*Collectible {
	return s.collectibles
}

// Zones returns the special zones.
func (s *System) Zones() []*SpecialZone {
	return s.zones
}

// GroundSegments exposes the generated ground profile (render, tests).
func (s *System) GroundSegments() []GroundSegment {
	return s.ground
}

// WaveSegments exposes the generated wave profile (render, tests).
func (s *System) WaveSegments() []WaveSegment {
	return s.waves
}

// GroundYAt returns the skate terrain height at x. Ramps interpolate
// linearly across their segment; x outside any segment gets the default
// ground level.
func (s *System) GroundYAt(x float64) float64 {
	idx := int(x / SegmentLength)
	if x < 0 || idx < 0 || idx >= len(s.ground) {
		return DefaultGroundY
	}
	seg := s.ground[idx]
	t := (x - seg.X) / SegmentLength
	return core.Lerp(seg.StartY, seg.EndY, t)
}

// WaveYAt returns the surf terrain height at x for wall-clock time now
// (milliseconds), using the containing wave segment's own parameters.
// This is the collision surface, distinct from the global wave animation
// in the physics layer.
func (s *System) WaveYAt(x, now float64) float64 {
	idx := int(x / SegmentLength)
	if x < 0 || idx < 0 || idx >= len(s.waves) {
		return s.waterLevel
	}
	seg := s.waves[idx]
	normX := x / s.def.Layout.Length
	return s.waterLevel + math.Sin(2*math.Pi*normX*seg.Frequency+now*0.001)*seg.Amplitude
}

// TerrainYAt dispatches to the mode-appropriate terrain query.
func (s *System) TerrainYAt(x, now float64) float64 {
	if s.surf {
		return s.WaveYAt(x, now)
	}
	return s.GroundYAt(x)
}

// CheckCollisions runs one collision pass of the player AABB against the
// terrain, obstacles, collectibles and zones. Each collectible is marked
// and reported exactly once; removal happens lazily in Update.
func (s *System) CheckCollisions(player core.Rect, now float64) Report {
	var rep Report

	rep.GroundY = s.TerrainYAt(player.CenterX(), now)
	rep.OnGround = player.Bottom() >= rep.GroundY

	for _, obs := range s.obstacles {
		if overlap, ok := player.Overlap(obs.Rect); ok {
			rep.Obstacles = append(rep.Obstacles, ObstacleHit{Obstacle: obs, Overlap: overlap})
		}
	}

	for _, c := range s.collectibles {
		if c.Collected {
			continue
		}
		if player.Intersects(c.Rect) {
			c.Collected = true
			rep.Collected = append(rep.Collected, c)
		}
	}

	px := player.CenterX()
	for _, z := range s.zones {
		inside := z.ContainsX(px)
		z.Active = inside
		if inside {
			rep.Zones = append(rep.Zones, z)
		}
	}

	return rep
}

// Update recenters the camera on the player, sways moving obstacles on
// wall-clock time and prunes collected collectibles.
func (s *System) Update(playerX, now float64) {
	s.CameraX = playerX - CameraLead

	for _, obs := range s.obstacles {
		if obs.Moving {
			obs.Rect.X = obs.anchorX + math.Sin(now*0.003)*obs.Amplitude
		}
	}

	remaining := s.collectibles[:0]
	for _, c := range s.collectibles {
		if !c.Collected {
			remaining = append(remaining, c)
		}
	}
	s.collectibles = remaining
}

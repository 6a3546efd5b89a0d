package level

import (
	"math"

	"github.com/vovakirdan/tui-shred/internal/config"
	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/leveldata"
)

// Terrain generation bounds. Ramps may not wander past these so the
// playfield stays on screen.
const (
	minGroundY = DefaultGroundY - 120
	maxGroundY = DefaultGroundY + 60

	// obstacleMinDistance keeps procedural placements from crowding
	// authored or earlier obstacles.
	obstacleMinDistance = 100
)

func (s *System) initialize() {
	if s.surf {
		s.generateWaves()
	} else {
		s.generateGround()
	}
	s.placeObstacles()
	s.placeCollectibles()
	s.placeZones()
}

// generateGround builds the segmented skate ground profile: 70% flat,
// 15% ramp up, 15% ramp down, with the ramp delta bounded by the
// difficulty-derived (or level-authored) variation amount.
func (s *System) generateGround() {
	variation := s.def.Layout.GroundVariation
	if variation <= 0 {
		variation = config.ParseDifficulty(s.def.Difficulty).GroundVariation()
	}

	count := int(math.Ceil(s.def.Layout.Length / SegmentLength))
	s.ground = make([]GroundSegment, 0, count)

	y := float64(DefaultGroundY)
	for i := 0; i < count; i++ {
		seg := GroundSegment{X: float64(i) * SegmentLength, StartY: y, EndY: y}

		switch r := s.rng.Float64(); {
		case r < 0.70:
			// flat
		case r < 0.85:
			seg.EndY = core.ClampF(y-s.rng.Float64()*variation, minGroundY, maxGroundY)
		default:
			seg.EndY = core.ClampF(y+s.rng.Float64()*variation, minGroundY, maxGroundY)
		}

		y = seg.EndY
		s.ground = append(s.ground, seg)
	}
}

// generateWaves builds the surf wave profile. Authored wave sections
// repeat across the level; otherwise segment kinds are rolled per
// segment with type-specific amplitude/frequency presets.
func (s *System) generateWaves() {
	base := s.def.Layout.WaveHeight
	if base <= 0 {
		base = 30
	}

	count := int(math.Ceil(s.def.Layout.Length / SegmentLength))
	s.waves = make([]WaveSegment, 0, count)

	for i := 0; i < count; i++ {
		seg := WaveSegment{X: float64(i) * SegmentLength}

		if n := len(s.def.WaveSections); n > 0 {
			authored := s.def.WaveSections[i%n]
			seg.Kind = authored.Kind
			seg.Amplitude = authored.Amplitude
			seg.Frequency = authored.Frequency
			if seg.Amplitude <= 0 {
				seg.Amplitude = base
			}
			if seg.Frequency <= 0 {
				seg.Frequency = 1
			}
		} else {
			switch r := s.rng.Float64(); {
			case r < 0.60:
				seg.Kind = "normal"
				seg.Amplitude = base
				seg.Frequency = 1
			case r < 0.80:
				seg.Kind = "breaking"
				seg.Amplitude = base * 1.5
				seg.Frequency = 1.4
			default:
				seg.Kind = "choppy"
				seg.Amplitude = base * 0.6
				seg.Frequency = 3
			}
		}

		s.waves = append(s.waves, seg)
	}
}

// placeObstacles merges the level-authored fixed obstacles, then
// procedurally scatters additional ones at an average spacing of
// floor(500/obstacleFrequency) units, skipping placements too close to
// an existing obstacle.
func (s *System) placeObstacles() {
	for _, def := range s.def.Obstacles {
		s.addObstacle(def)
	}

	freq := s.def.Layout.ObstacleFrequency
	if freq <= 0 {
		return
	}
	spacing := math.Floor(500 / freq)
	if spacing < 50 {
		spacing = 50
	}

	palette := s.proceduralPalette()
	for x := spacing; x < s.def.Layout.Length-SegmentLength; x += spacing {
		// Average spacing with jitter.
		px := x + (s.rng.Float64()-0.5)*spacing/2
		if s.nearObstacle(px, obstacleMinDistance) {
			continue
		}

		kind := palette[s.rng.Intn(len(palette))]
		def := s.randomObstacle(kind, px)
		s.addObstacle(def)
	}
}

func (s *System) proceduralPalette() []string {
	if s.surf {
		return []string{"rock", "buoy", "driftwood"}
	}
	return []string{"box", "rail", "ramp"}
}

func (s *System) randomObstacle(kind string, x float64) leveldata.ObstacleDef {
	def := leveldata.ObstacleDef{Kind: kind, X: x}
	switch kind {
	case "rail":
		def.W = 120 + s.rng.Float64()*120
		def.H = 12
		def.TrickBonus = 50
	case "ramp":
		def.W = 60 + s.rng.Float64()*40
		def.H = 30 + s.rng.Float64()*30
		def.LaunchVX = 2 + s.rng.Float64()*2
		def.LaunchVY = 12 + s.rng.Float64()*6
	case "rock":
		def.W = 40 + s.rng.Float64()*30
		def.H = 30 + s.rng.Float64()*25
	case "buoy":
		def.W = 20
		def.H = 30
		def.Moving = true
		def.Amplitude = 20 + s.rng.Float64()*30
	case "driftwood":
		def.W = 60 + s.rng.Float64()*40
		def.H = 15
		def.Moving = true
		def.Amplitude = 30 + s.rng.Float64()*30
	default: // box
		def.W = 40 + s.rng.Float64()*30
		def.H = 20 + s.rng.Float64()*20
	}
	return def
}

func (s *System) addObstacle(def leveldata.ObstacleDef) {
	y := def.Y
	if y == 0 {
		// Sit on the terrain. Wave terrain moves, so surf obstacles
		// anchor at the water level instead.
		if s.surf {
			y = s.waterLevel - def.H
		} else {
			y = s.GroundYAt(def.X+def.W/2) - def.H
		}
	}

	s.obstacles = append(s.obstacles, &Obstacle{
		Kind:      def.Kind,
		Rect:      core.NewRect(def.X, y, def.W, def.H),
		Props:     propsFor(def),
		Moving:    def.Moving,
		Amplitude: def.Amplitude,
		anchorX:   def.X,
	})
}

func (s *System) nearObstacle(x, dist float64) bool {
	for _, obs := range s.obstacles {
		if core.AbsF(obs.Rect.CenterX()-x) < dist {
			return true
		}
	}
	return false
}

// placeCollectibles scatters pickups at floor(150/collectibleFrequency)
// spacing with +-50 unit jitter: 80% common type, 20% the rarer,
// higher-value alternate.
func (s *System) placeCollectibles() {
	freq := s.def.Layout.CollectibleFrequency
	if freq <= 0 {
		return
	}
	spacing := math.Floor(150 / freq)
	if spacing < 30 {
		spacing = 30
	}

	common, rare := "coin", "gem"
	if s.surf {
		common, rare = "shell", "pearl"
	}

	for x := spacing; x < s.def.Layout.Length-SegmentLength; x += spacing {
		px := x + (s.rng.Float64()*100 - 50)

		kind, value := common, 10
		if s.rng.Float64() >= 0.8 {
			kind, value = rare, 50
		}

		terrainY := DefaultGroundY
		if !s.surf {
			terrainY = int(s.GroundYAt(px))
		}
		py := float64(terrainY) - 30 - s.rng.Float64()*50

		s.collectibles = append(s.collectibles, &Collectible{
			Kind:  kind,
			Rect:  core.NewRect(px, py, 20, 20),
			Value: value,
		})
	}
}

// placeZones uses the authored special zones when present, otherwise
// rolls five random zones with type-specific property presets.
func (s *System) placeZones() {
	if len(s.def.SpecialZones) > 0 {
		for _, def := range s.def.SpecialZones {
			s.zones = append(s.zones, &SpecialZone{
				Kind:  def.Kind,
				X:     def.X,
				Width: def.Width,
				Props: zonePropsFor(def),
			})
		}
		return
	}

	kinds := []string{"halfpipe", "speed"}
	if s.surf {
		kinds = []string{"tube", "speed"}
	}

	for i := 0; i < 5; i++ {
		kind := kinds[s.rng.Intn(len(kinds))]
		def := leveldata.ZoneDef{
			Kind:  kind,
			X:     200 + s.rng.Float64()*(s.def.Layout.Length-600),
			Width: 150 + s.rng.Float64()*150,
		}
		s.zones = append(s.zones, &SpecialZone{
			Kind:  def.Kind,
			X:     def.X,
			Width: def.Width,
			Props: zonePropsFor(def),
		})
	}
}

// Package tricks holds the static trick definitions for each game mode.
// Definitions are immutable configuration data, looked up by (mode, id).
package tricks

// Def describes a single performable trick.
type Def struct {
	ID         string
	Name       string
	BaseScore  int
	Difficulty int

	// Duration is the trick length in frames. Zero means the duration is
	// determined externally: grind and tube tricks last as long as the
	// player stays on the rail / in the tube.
	Duration int

	// Eligibility flags.
	AirOnly      bool // only while airborne
	GrindTrick   bool // only while overlapping a rail obstacle
	WaveRequired bool // only while on the wave face
	TubeTrick    bool // continuous tube ride

	// ScorePerSecond applies to continuous tricks (Duration == 0).
	ScorePerSecond int
}

// Continuous reports whether the trick is scored per second rather than
// as a single burst.
func (d *Def) Continuous() bool {
	return d.Duration == 0
}

var skateTricks = map[string]*Def{
	"kickflip": {
		ID: "kickflip", Name: "Kickflip",
		BaseScore: 100, Difficulty: 1, Duration: 30, AirOnly: true,
	},
	"heelflip": {
		ID: "heelflip", Name: "Heelflip",
		BaseScore: 120, Difficulty: 2, Duration: 30, AirOnly: true,
	},
	"treflip": {
		ID: "treflip", Name: "360 Flip",
		BaseScore: 250, Difficulty: 4, Duration: 45, AirOnly: true,
	},
	"ollie": {
		ID: "ollie", Name: "Ollie",
		BaseScore: 50, Difficulty: 1, Duration: 20, AirOnly: true,
	},
	"boardslide": {
		ID: "boardslide", Name: "Boardslide",
		BaseScore: 150, Difficulty: 3, Duration: 0, GrindTrick: true,
		ScorePerSecond: 60,
	},
}

var surfTricks = map[string]*Def{
	"cutback": {
		ID: "cutback", Name: "Cutback",
		BaseScore: 120, Difficulty: 2, Duration: 35, WaveRequired: true,
	},
	"snap": {
		ID: "snap", Name: "Snap",
		BaseScore: 150, Difficulty: 3, Duration: 30, WaveRequired: true,
	},
	"floater": {
		ID: "floater", Name: "Floater",
		BaseScore: 180, Difficulty: 3, Duration: 40, WaveRequired: true,
	},
	"bottomturn": {
		ID: "bottomturn", Name: "Bottom Turn",
		BaseScore: 80, Difficulty: 1, Duration: 25, WaveRequired: true,
	},
	"tuberide": {
		ID: "tuberide", Name: "Tube Ride",
		BaseScore: 200, Difficulty: 5, Duration: 0, WaveRequired: true,
		TubeTrick: true, ScorePerSecond: 100,
	},
}

// ForMode returns the trick table for a game mode.
// Unknown modes fall back to the skate table (configuration-miss policy:
// substitute a safe default, never fail hard).
func ForMode(mode string) map[string]*Def {
	switch mode {
	case "surf":
		return surfTricks
	default:
		return skateTricks
	}
}

// Lookup returns the trick definition for (mode, id), or nil if the id is
// unknown. A nil result is the caller's no-op sentinel.
func Lookup(mode, id string) *Def {
	return ForMode(mode)[id]
}

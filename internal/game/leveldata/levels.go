package leveldata

// Built-in campaign levels. Three per mode, roughly increasing in length,
// obstacle density and objective targets.

var skateLevels = []Def{
	{
		ID: "skate-1", Name: "Warehouse Warmup", Mode: "skate",
		Difficulty: "low", TimeLimit: 120,
		Objectives: Objectives{
			ScoreTarget:        2000,
			CollectiblesTarget: 5,
			SpecialGoals: []GoalDef{
				{Type: GoalPerformTrick, TrickID: "kickflip", Count: 3, Label: "Land 3 kickflips"},
			},
		},
		Layout: Layout{
			Length:               4000,
			ObstacleFrequency:    1,
			CollectibleFrequency: 1,
		},
		Obstacles: []ObstacleDef{
			{Kind: "rail", X: 600, W: 160, H: 12, TrickBonus: 50},
			{Kind: "ramp", X: 1400, W: 80, H: 40, LaunchVX: 2, LaunchVY: 14},
			{Kind: "rail", X: 2400, W: 200, H: 12, TrickBonus: 50},
		},
		SpecialZones: []ZoneDef{
			{Kind: "halfpipe", X: 3000, Width: 300, Multiplier: 2, Seconds: 8},
		},
	},
	{
		ID: "skate-2", Name: "Downtown Lines", Mode: "skate",
		Difficulty: "medium", TimeLimit: 150,
		Objectives: Objectives{
			ScoreTarget:        6000,
			CollectiblesTarget: 12,
			SpecialGoals: []GoalDef{
				{Type: GoalCombo, Count: 4, Label: "String a 4-trick combo"},
				{Type: GoalPerformTrick, TrickID: "boardslide", Count: 2, Label: "Grind 2 rails"},
			},
		},
		Layout: Layout{
			Length:               6000,
			ObstacleFrequency:    1.4,
			CollectibleFrequency: 1.2,
		},
		Obstacles: []ObstacleDef{
			{Kind: "rail", X: 900, W: 240, H: 12, TrickBonus: 60},
			{Kind: "box", X: 1800, W: 60, H: 30},
			{Kind: "ramp", X: 2600, W: 90, H: 50, LaunchVX: 3, LaunchVY: 16},
			{Kind: "rail", X: 4200, W: 260, H: 12, TrickBonus: 60},
		},
		SpecialZones: []ZoneDef{
			{Kind: "speed", X: 2000, Width: 200, Boost: 3},
			{Kind: "halfpipe", X: 4800, Width: 350, Multiplier: 2, Seconds: 10},
		},
	},
	{
		ID: "skate-3", Name: "Mega Park", Mode: "skate",
		Difficulty: "high", TimeLimit: 180,
		Objectives: Objectives{
			ScoreTarget:        15000,
			CollectiblesTarget: 20,
			SpecialGoals: []GoalDef{
				{Type: GoalPerformTrick, TrickID: "treflip", Count: 3, Label: "Land 3 360 flips"},
				{Type: GoalCombo, Count: 6, Label: "String a 6-trick combo"},
			},
		},
		Layout: Layout{
			Length:               8000,
			ObstacleFrequency:    2,
			CollectibleFrequency: 1.5,
		},
		Obstacles: []ObstacleDef{
			{Kind: "ramp", X: 800, W: 100, H: 60, LaunchVX: 3, LaunchVY: 18},
			{Kind: "rail", X: 1600, W: 300, H: 12, TrickBonus: 80},
			{Kind: "box", X: 2800, W: 60, H: 35, Moving: true, Amplitude: 40},
			{Kind: "ramp", X: 4000, W: 100, H: 60, LaunchVX: 4, LaunchVY: 18},
			{Kind: "rail", X: 5600, W: 320, H: 12, TrickBonus: 80},
		},
		SpecialZones: []ZoneDef{
			{Kind: "speed", X: 1200, Width: 220, Boost: 4},
			{Kind: "halfpipe", X: 6400, Width: 400, Multiplier: 3, Seconds: 10},
		},
	},
}

var surfLevels = []Def{
	{
		ID: "surf-1", Name: "Morning Glass", Mode: "surf",
		Difficulty: "low", TimeLimit: 120,
		Objectives: Objectives{
			ScoreTarget:        2500,
			CollectiblesTarget: 5,
			SpecialGoals: []GoalDef{
				{Type: GoalPerformTrick, TrickID: "cutback", Count: 3, Label: "Carve 3 cutbacks"},
			},
		},
		Layout: Layout{
			Length:               4000,
			WaveHeight:           25,
			ObstacleFrequency:    0.8,
			CollectibleFrequency: 1,
		},
		WaveSections: []WaveSectionDef{
			{Kind: "normal", Amplitude: 25, Frequency: 1},
			{Kind: "normal", Amplitude: 25, Frequency: 1},
			{Kind: "breaking", Amplitude: 40, Frequency: 1.4},
		},
	},
	{
		ID: "surf-2", Name: "Reef Break", Mode: "surf",
		Difficulty: "medium", TimeLimit: 150,
		Objectives: Objectives{
			ScoreTarget:        7000,
			CollectiblesTarget: 10,
			SpecialGoals: []GoalDef{
				{Type: GoalPerformTrick, TrickID: "tuberide", Count: 1, Label: "Ride the tube"},
				{Type: GoalCombo, Count: 3, Label: "String a 3-trick combo"},
			},
		},
		Layout: Layout{
			Length:               6000,
			WaveHeight:           35,
			ObstacleFrequency:    1.2,
			CollectibleFrequency: 1.2,
		},
		Obstacles: []ObstacleDef{
			{Kind: "rock", X: 1500, W: 50, H: 40},
			{Kind: "buoy", X: 3000, W: 20, H: 30, Moving: true, Amplitude: 30},
		},
		SpecialZones: []ZoneDef{
			{Kind: "tube", X: 3800, Width: 400, Multiplier: 2, Seconds: 8},
		},
	},
	{
		ID: "surf-3", Name: "Storm Swell", Mode: "surf",
		Difficulty: "high", TimeLimit: 180,
		Objectives: Objectives{
			ScoreTarget:        16000,
			CollectiblesTarget: 18,
			SpecialGoals: []GoalDef{
				{Type: GoalPerformTrick, TrickID: "floater", Count: 4, Label: "Float 4 sections"},
				{Type: GoalCombo, Count: 5, Label: "String a 5-trick combo"},
			},
		},
		Layout: Layout{
			Length:               8000,
			WaveHeight:           45,
			ObstacleFrequency:    1.8,
			CollectibleFrequency: 1.5,
		},
		Obstacles: []ObstacleDef{
			{Kind: "rock", X: 1200, W: 60, H: 50},
			{Kind: "driftwood", X: 2600, W: 80, H: 15, Moving: true, Amplitude: 50},
			{Kind: "rock", X: 4400, W: 60, H: 50},
			{Kind: "buoy", X: 6000, W: 20, H: 30, Moving: true, Amplitude: 40},
		},
		SpecialZones: []ZoneDef{
			{Kind: "tube", X: 2000, Width: 350, Multiplier: 2, Seconds: 8},
			{Kind: "tube", X: 6800, Width: 500, Multiplier: 3, Seconds: 10},
		},
	},
}

// ByMode returns the campaign levels for a mode.
// Unknown modes fall back to the skate campaign.
func ByMode(mode string) []Def {
	switch mode {
	case "surf":
		return surfLevels
	default:
		return skateLevels
	}
}

// ByIndex returns the level definition at the given index for a mode.
// An out-of-range index substitutes the first level, per the
// configuration-miss policy.
func ByIndex(mode string, index int) Def {
	levels := ByMode(mode)
	if index < 0 || index >= len(levels) {
		return levels[0]
	}
	return levels[index]
}

// Count returns the number of campaign levels for a mode.
func Count(mode string) int {
	return len(ByMode(mode))
}

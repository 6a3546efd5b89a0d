package physics

import "math"

// The global wave animation is a pure function of wall-clock time. It is
// deliberately distinct from the per-position terrain height the level
// system computes: this one is the visual undulation the whole ocean
// shares, the other is the collision surface under a given x.

// WaveHeight returns the water surface height of the global wave
// animation at wall-clock time now (milliseconds).
func (c *Controller) WaveHeight(now float64) float64 {
	return c.wave.WaterLevel + math.Sin(now*0.002)*c.wave.Amplitude
}

// WaveSlope returns the slope of the global wave animation at wall-clock
// time now (milliseconds). Surf physics converts it into a horizontal
// force; the trick bonus reads it as steepness.
func (c *Controller) WaveSlope(now float64) float64 {
	return math.Cos(now*0.002) * c.wave.Steepness
}

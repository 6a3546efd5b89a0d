package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Base terminal colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Game-element palette. Renderers pick colors by what they draw, not by
// terminal name, so retuning the look is a one-file change.
const (
	ColorGround     = ColorWhite
	ColorGroundFill = ColorGray
	ColorWaveCrest  = ColorBrightCyan
	ColorWater      = ColorBlue

	ColorRail      = ColorBrightWhite
	ColorRamp      = ColorGreen
	ColorRock      = ColorGray
	ColorBuoy      = ColorOrange
	ColorDriftwood = ColorYellow
	ColorCrate     = ColorYellow

	ColorZone       = ColorMagenta
	ColorZoneActive = ColorBrightMagenta

	ColorPickup     = ColorBrightYellow
	ColorRarePickup = ColorBrightCyan

	ColorRider      = ColorBrightWhite
	ColorRiderHead  = ColorBrightCyan
	ColorRiderTrick = ColorBrightYellow
	ColorSkateboard = ColorOrange
	ColorSurfboard  = ColorBrightBlue

	ColorHUD      = ColorBrightWhite
	ColorHUDFaint = ColorGray
)

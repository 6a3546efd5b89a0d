package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shred/internal/core"
)

func TestGameElementPaletteRenderable(t *testing.T) {
	palette := []core.Color{
		core.ColorGround, core.ColorGroundFill,
		core.ColorWaveCrest, core.ColorWater,
		core.ColorRail, core.ColorRamp, core.ColorRock,
		core.ColorBuoy, core.ColorDriftwood, core.ColorCrate,
		core.ColorZone, core.ColorZoneActive,
		core.ColorPickup, core.ColorRarePickup,
		core.ColorRider, core.ColorRiderHead, core.ColorRiderTrick,
		core.ColorSkateboard, core.ColorSurfboard,
		core.ColorHUD, core.ColorHUDFaint,
	}

	for _, c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("palette color %d has no terminal style", c)
		}
	}
}

func TestRenderScreenPreservesLayout(t *testing.T) {
	s := core.NewScreen(5, 3)
	s.DrawText(0, 0, "hello")
	s.SetColored(2, 1, '~', core.ColorWaveCrest)
	s.SetColored(4, 2, '#', core.ColorRail)

	out := RenderScreen(s)

	// One newline between rows, none trailing; escape sequences never
	// contain newlines.
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("newline count = %d, want 2", got)
	}

	lines := strings.Split(out, "\n")
	for i, want := range []string{"hello", "~", "#"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("row %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
}

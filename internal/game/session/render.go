package session

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/level"
)

// World units shown across and down the screen. The world simulates in
// pixel-like units; the terminal grid is much coarser, so rendering
// scales everything down.
const (
	viewWorldW = 480.0
	viewWorldH = 480.0
)

// Sprite characters.
const (
	groundChar      = '═'
	groundFillChar  = '░'
	waveChar        = '~'
	waveFillChar    = '≈'
	boxChar         = '▓'
	railChar        = '━'
	rampChar        = '◢'
	rockChar        = '▲'
	buoyChar        = 'Θ'
	driftwoodChar   = '▬'
	commonPickup    = 'o'
	rarePickup      = '◆'
	zoneChar        = '·'
	playerHeadChar  = '◉'
	playerBodyChar  = '█'
	playerTrickChar = '✻'
	boardChar       = '▄'
)

// Render draws the run into the screen buffer. The coordinate origin is
// the camera's left edge; Y scales the full world height onto the rows
// below the two HUD lines.
func (r *Run) Render(dst *core.Screen) {
	dst.Clear()

	if r.lvl == nil {
		dst.DrawTextCentered(dst.Height()/2, "Loading...")
		return
	}

	r.drawTerrain(dst)
	r.drawZones(dst)
	r.drawObstacles(dst)
	r.drawCollectibles(dst)
	r.drawPlayer(dst)
	r.drawHUD(dst)

	switch {
	case r.gameOver:
		r.drawCenteredMessage(dst, "RUN OVER",
			fmt.Sprintf("Total: %d  |  R restart, Q quit", r.totalScore))
	case r.levelComplete:
		r.drawCenteredMessage(dst, "LEVEL COMPLETE",
			fmt.Sprintf("Score: %d  |  Enter for next level", r.score.Score))
	case r.paused:
		r.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// hudRows is how many top rows the HUD occupies; the world renders below.
const hudRows = 2

func (r *Run) scaleX(dst *core.Screen) float64 {
	return viewWorldW / float64(core.Max(dst.Width(), 1))
}

func (r *Run) scaleY(dst *core.Screen) float64 {
	return viewWorldH / float64(core.Max(dst.Height()-hudRows, 1))
}

// worldToScreen maps a world position to a screen cell.
func (r *Run) worldToScreen(dst *core.Screen, wx, wy float64) (int, int) {
	sx := int((wx - r.lvl.CameraX) / r.scaleX(dst))
	sy := hudRows + int(wy/r.scaleY(dst))
	return sx, sy
}

func (r *Run) drawTerrain(dst *core.Screen) {
	surf := r.mode == "surf"
	sc, fill := groundChar, groundFillChar
	color, fillColor := core.ColorGround, core.ColorGroundFill
	if surf {
		sc, fill = waveChar, waveFillChar
		color, fillColor = core.ColorWaveCrest, core.ColorWater
	}

	for x := 0; x < dst.Width(); x++ {
		wx := r.lvl.CameraX + float64(x)*r.scaleX(dst)
		_, sy := r.worldToScreen(dst, wx, r.lvl.TerrainYAt(wx, r.nowMs))
		if sy < hudRows {
			sy = hudRows
		}
		dst.SetColored(x, sy, sc, color)
		for y := sy + 1; y < dst.Height(); y++ {
			dst.SetColored(x, y, fill, fillColor)
		}
	}
}

func (r *Run) drawZones(dst *core.Screen) {
	for _, z := range r.lvl.Zones() {
		color := core.ColorZone
		if z.Active {
			color = core.ColorZoneActive
		}
		x0, _ := r.worldToScreen(dst, z.X, 0)
		x1, _ := r.worldToScreen(dst, z.X+z.Width, 0)
		for x := x0; x <= x1; x += 2 {
			if x < 0 || x >= dst.Width() {
				continue
			}
			dst.SetColored(x, hudRows, zoneChar, color)
		}
	}
}

func (r *Run) drawObstacles(dst *core.Screen) {
	for _, o := range r.lvl.Obstacles() {
		ch, color := obstacleSprite(o)
		r.fillWorldRect(dst, o.Bounds(), ch, color)
	}
}

func obstacleSprite(o *level.Obstacle) (rune, core.Color) {
	switch o.Props.(type) {
	case level.RailProps:
		return railChar, core.ColorRail
	case level.RampProps:
		return rampChar, core.ColorRamp
	case level.RockProps:
		return rockChar, core.ColorRock
	case level.BuoyProps:
		return buoyChar, core.ColorBuoy
	case level.DriftwoodProps:
		return driftwoodChar, core.ColorDriftwood
	default:
		return boxChar, core.ColorCrate
	}
}

// fillWorldRect paints every screen cell covered by a world rectangle.
// Rects smaller than one cell still get a single cell.
func (r *Run) fillWorldRect(dst *core.Screen, rect core.Rect, ch rune, color core.Color) {
	x0, y0 := r.worldToScreen(dst, rect.X, rect.Y)
	x1, y1 := r.worldToScreen(dst, rect.Right(), rect.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x < 0 || x >= dst.Width() || y < hudRows || y >= dst.Height() {
				continue
			}
			dst.SetColored(x, y, ch, color)
		}
	}
}

func (r *Run) drawCollectibles(dst *core.Screen) {
	for _, c := range r.lvl.Collectibles() {
		if c.Collected {
			continue
		}
		ch, color := commonPickup, core.ColorPickup
		if c.Kind == "gem" || c.Kind == "pearl" {
			ch, color = rarePickup, core.ColorRarePickup
		}
		x, y := r.worldToScreen(dst, c.Rect.CenterX(), c.Rect.CenterY())
		if x >= 0 && x < dst.Width() && y >= hudRows && y < dst.Height() {
			dst.SetColored(x, y, ch, color)
		}
	}
}

func (r *Run) drawPlayer(dst *core.Screen) {
	x, y := r.worldToScreen(dst, r.phys.X+playerW/2, r.phys.Y)

	body := playerBodyChar
	bodyColor := core.ColorRider
	if r.char.TrickInProgress {
		body = playerTrickChar
		bodyColor = core.ColorRiderTrick
	}

	board := boardChar
	boardColor := core.ColorSkateboard
	if r.mode == "surf" {
		boardColor = core.ColorSurfboard
	}

	dst.SetColored(x, y-1, playerHeadChar, core.ColorRiderHead)
	dst.SetColored(x, y, body, bodyColor)
	dst.SetColored(x, y+1, board, boardColor)
}

func (r *Run) drawHUD(dst *core.Screen) {
	def := r.lvl.Def()

	left := fmt.Sprintf(" %s | Score %d | x%.1f", def.Name, r.score.Score, r.score.Multiplier)
	if combo := r.char.ComboCounter; combo > 1 {
		left += fmt.Sprintf(" | Combo %d", combo)
	}
	if r.score.SpecialActive() {
		left += " | SPECIAL"
	}
	dst.DrawTextColored(0, 0, left, core.ColorHUD)

	right := fmt.Sprintf("Hi %d ", r.highScore)
	if def.TimeLimit > 0 {
		secs := int(r.timeRemaining)
		right = fmt.Sprintf("%d:%02d | %s", secs/60, secs%60, right)
	}
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorHUD)

	dst.DrawTextColored(0, 1, " "+r.objectivesLine(), core.ColorHUDFaint)

	if r.char.TrickInProgress && r.char.CurrentTrick != nil {
		dst.DrawTextColored(dst.Width()-len(r.char.CurrentTrick.Name)-1, 1,
			r.char.CurrentTrick.Name, core.ColorRiderTrick)
	}
}

// objectivesLine summarizes level objectives for the HUD.
func (r *Run) objectivesLine() string {
	def := r.lvl.Def()
	var parts []string

	if def.Objectives.ScoreTarget > 0 {
		parts = append(parts, fmt.Sprintf("Score %d/%d", core.Min(r.score.Score, def.Objectives.ScoreTarget), def.Objectives.ScoreTarget))
	}
	if def.Objectives.CollectiblesTarget > 0 {
		parts = append(parts, fmt.Sprintf("Items %d/%d", r.score.CollectiblesGathered(), def.Objectives.CollectiblesTarget))
	}

	goals := r.score.Goals()
	keys := make([]string, 0, len(goals))
	for k := range goals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		g := goals[k]
		mark := " "
		if g.Complete {
			mark = "*"
		}
		parts = append(parts, fmt.Sprintf("%s%s %d/%d", mark, g.Label, core.Min(g.Current, g.Target), g.Target))
	}

	line := ""
	for i, p := range parts {
		if i > 0 {
			line += "  "
		}
		line += p
	}
	return line
}

// drawCenteredMessage draws a message box in the center of the screen.
func (r *Run) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

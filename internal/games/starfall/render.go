package starfall

import (
	"fmt"
	"math"

	"github.com/vovakirdan/starfall/internal/core"
)

// hudRows is the height of the status header; the starfield occupies the
// rest of the screen.
const hudRows = 2

// shipGlyphs indexes by ShipClass.
var shipGlyphs = [classCount]rune{'^', 'x', 'M', 'W', '@'}

// Render implements registry.Game.
// The cell mapping follows the destination buffer, so a terminal resize
// re-maps the view without touching the run.
func (g *Game) Render(dst *core.Screen) {
	g.cfg.ScreenW = dst.Width()
	g.cfg.ScreenH = dst.Height()

	dst.Clear()

	if dst.Width() < 40 || dst.Height() < 12 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	g.drawHUD(dst)
	g.drawRing(dst)
	g.drawObjects(dst)
	g.drawEffects(dst)
	g.drawPlayer(dst)
	g.drawOverlay(dst)
}

// drawHUD renders the two status rows.
func (g *Game) drawHUD(dst *core.Screen) {
	title := g.Title()
	if g.galaxy.Name != "" {
		title += " · " + g.galaxy.Name
	}
	dst.DrawTextColored(1, 0, title, core.ColorBrightCyan)

	bar := healthBar(g.player.Health, g.params.Player.MaxHealth)
	status := fmt.Sprintf("Lv:%d  Score:%d  Best:%d  HP:%s  Boost:%d",
		g.player.Level, g.player.Score, g.player.HighScore, bar, g.player.Boost)
	if g.autoAim {
		status += "  [AUTO]"
	}
	dst.DrawText(1, 1, status)
}

// healthBar renders a ten-segment health gauge.
func healthBar(health, max int) string {
	if max <= 0 {
		return "[----------]"
	}
	filled := health * 10 / max
	out := []byte("[          ]")
	for i := 0; i < filled; i++ {
		out[1+i] = '#'
	}
	for i := filled; i < 10; i++ {
		out[1+i] = '-'
	}
	return string(out)
}

// drawRing marks the starfield horizon with a faint sampled circle.
func (g *Game) drawRing(dst *core.Screen) {
	c := g.proj.Center()
	r := g.proj.Scale()
	for i := 0; i < 120; i++ {
		a := float64(i) * 2 * math.Pi / 120
		pt := core.V2(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
		if x, y, ok := g.virtualToCell(pt); ok {
			if dst.Get(x, y) == ' ' {
				dst.SetCell(x, y, '.', core.ColorGray)
			}
		}
	}
}

// drawObjects renders every visible entity.
func (g *Game) drawObjects(dst *core.Screen) {
	for i := range g.objects {
		o := &g.objects[i]
		pt, ok := g.proj.Project(o.Lon, o.Lat)
		if !ok || !g.proj.Visible(pt) {
			continue
		}
		x, y, ok := g.virtualToCell(pt)
		if !ok {
			continue
		}

		switch o.Kind {
		case KindStar:
			dst.SetCell(x, y, '·', core.StarPalette[int(o.Color)%len(core.StarPalette)])
		case KindAsteroid:
			dst.SetCell(x, y, 'o', core.ColorGray)
		case KindHeart:
			dst.SetCell(x, y, '♥', core.ColorBrightRed)
		case KindBoost:
			dst.SetCell(x, y, '◆', core.ColorBrightCyan)
		case KindShip:
			c := core.ColorRed
			if o.Tier == TierMk2 {
				c = core.ColorBrightRed
			}
			dst.SetCell(x, y, shipGlyphs[o.Class], c)
		}
	}
}

// drawEffects renders lasers and explosions.
func (g *Game) drawEffects(dst *core.Screen) {
	for _, l := range g.effects.lasers {
		x0, y0, ok0 := g.virtualToCell(l.From)
		x1, y1, ok1 := g.virtualToCell(l.To)
		if !ok0 || !ok1 {
			continue
		}
		r := '|'
		if l.Enemy {
			r = '·'
		}
		dst.DrawLine(x0, y0, x1, y1, r, l.Color)
	}

	for _, ex := range g.effects.explosions {
		elapsed := g.tick - ex.Born
		life := ex.Expires - ex.Born
		if life == 0 {
			continue
		}
		frac := float64(elapsed) / float64(life)

		if frac < 0.25 {
			if x, y, ok := g.virtualToCell(ex.At); ok {
				dst.SetCell(x, y, '✸', core.ColorBrightYellow)
			}
		}
		for _, f := range ex.Fragments {
			if elapsed < f.Delay {
				continue
			}
			pt := core.V2(ex.At.X+f.DX*frac, ex.At.Y+f.DY*frac)
			if x, y, ok := g.virtualToCell(pt); ok {
				dst.SetCell(x, y, '*', core.ColorYellow)
			}
		}
	}
}

// drawPlayer marks the cannon at the bottom center.
func (g *Game) drawPlayer(dst *core.Screen) {
	if x, y, ok := g.virtualToCell(g.playerPos()); ok {
		dst.SetCell(x, y, '▲', g.laserColor())
	}
}

// drawOverlay renders phase banners over the field.
func (g *Game) drawOverlay(dst *core.Screen) {
	mid := hudRows + (dst.Height()-hudRows)/2
	switch g.phase {
	case PhasePaused:
		dst.DrawTextCentered(mid, "PAUSED  (press P to resume)")
	case PhaseLeaping:
		dst.DrawTextCentered(mid, "Leaping through hyperspace...")
	case PhaseGenerating:
		dst.DrawTextCentered(mid, fmt.Sprintf("Entering %s...", g.galaxy.Name))
		dst.DrawTextCentered(mid+1, g.galaxy.Description)
	case PhaseGameOver:
		dst.DrawTextCentered(mid, "GAME OVER")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Score: %d   Best: %d", g.player.Score, g.player.HighScore))
		dst.DrawTextCentered(mid+2, "Press R to restart")
	}
}

// virtualToCell maps a virtual point to a field cell. The false return
// means the point falls outside the field area.
func (g *Game) virtualToCell(pt core.Vec2) (int, int, bool) {
	fieldH := g.cfg.ScreenH - hudRows
	if fieldH <= 0 || g.cfg.ScreenW <= 0 {
		return 0, 0, false
	}
	x := int(pt.X / VirtualW * float64(g.cfg.ScreenW))
	y := hudRows + int(pt.Y/VirtualH*float64(fieldH))
	if x < 0 || x >= g.cfg.ScreenW || y < hudRows || y >= g.cfg.ScreenH {
		return 0, 0, false
	}
	return x, y, true
}

// cellToVirtual is the inverse mapping, used for pointer clicks. Cell
// centers map back to virtual points; clicks on the HUD are rejected.
func (g *Game) cellToVirtual(x, y int) (core.Vec2, bool) {
	fieldH := g.cfg.ScreenH - hudRows
	if fieldH <= 0 || g.cfg.ScreenW <= 0 {
		return core.Vec2{}, false
	}
	if x < 0 || x >= g.cfg.ScreenW || y < hudRows || y >= g.cfg.ScreenH {
		return core.Vec2{}, false
	}
	vx := (float64(x) + 0.5) * VirtualW / float64(g.cfg.ScreenW)
	vy := (float64(y-hudRows) + 0.5) * VirtualH / float64(fieldH)
	return core.V2(vx, vy), true
}

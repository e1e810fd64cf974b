package sushi

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	SushiChar    = 'o'
	EnemyShot    = '*'
	BossShotChar = '•'
	NetChar      = '#'
	TreeChar     = '♣'
	WaterChar    = '~'
	GrassChar    = '"'
	SandChar     = '.'
	SweepChar    = '='
)

// view maps logical viewport pixels onto terminal cells.
// Row 0 is the HUD; the playfield fills the rest.
type view struct {
	dst    *core.Screen
	field  core.Rect
	sx, sy float64
}

func (v view) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), 1 + int(math.Floor(y*v.sy))
}

func (v view) put(x, y float64, r rune, c core.Color) {
	cx, cy := v.cell(x, y)
	if !v.field.Contains(cx, cy) {
		return
	}
	v.dst.SetColored(cx, cy, r, c)
}

// disc fills the cells whose centres lie inside a circle.
func (v view) disc(center core.Vec2, radius float64, r rune, c core.Color) {
	x0, y0 := v.cell(center.X-radius, center.Y-radius)
	x1, y1 := v.cell(center.X+radius, center.Y+radius)
	filled := false
	for cy := max(y0, 1); cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px := (float64(cx) + 0.5) / v.sx
			py := (float64(cy-1) + 0.5) / v.sy
			if v.field.Contains(cx, cy) && core.PointInCircle(core.Vec2{X: px, Y: py}, center, radius) {
				v.dst.SetColored(cx, cy, r, c)
				filled = true
			}
		}
	}
	if !filled {
		v.put(center.X, center.Y, r, c)
	}
}

// RenderSnapshot draws a snapshot into dst. It reads only the snapshot.
func RenderSnapshot(s Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 8 || s.ViewW <= 0 || s.ViewH <= 0 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}
	v := view{
		dst:   dst,
		field: core.NewRect(0, 1, dst.Width(), dst.Height()-1),
		sx:    float64(dst.Width()) / s.ViewW,
		sy:    float64(dst.Height()-1) / s.ViewH,
	}

	if s.State == StateMenu {
		renderMenu(s, dst)
		return
	}

	renderTerrain(s, v)
	renderEntities(s, v)
	renderHUD(s, dst)
	renderOverlay(s, dst)
}

func renderTerrain(s Snapshot, v view) {
	w, h := v.dst.Width(), v.dst.Height()
	for cy := 1; cy < h; cy++ {
		py := (float64(cy-1) + 0.5) / v.sy
		worldY := s.Scroll + s.ViewH - py
		for cx := 0; cx < w; cx++ {
			px := (float64(cx) + 0.5) / v.sx
			switch TerrainAt(s.Level, px, worldY) {
			case TerrainWater:
				if (cx+cy+s.Tick/20)%3 == 0 {
					v.dst.SetColored(cx, cy, WaterChar, core.ColorBlue)
				} else {
					v.dst.SetColored(cx, cy, ' ', core.ColorBlue)
				}
			case TerrainGrass:
				if cellHash(px, worldY) < 0.35 {
					v.dst.SetColored(cx, cy, GrassChar, core.ColorGreen)
				}
			case TerrainSand:
				if cellHash(px, worldY) < 0.12 {
					v.dst.SetColored(cx, cy, SandChar, core.ColorSand)
				}
			}
		}
	}
}

func renderEntities(s Snapshot, v view) {
	for _, t := range s.Trees {
		v.disc(core.Vec2{X: t.X, Y: s.ScreenY(t.WorldY)}, t.Radius*0.6, TreeChar, core.ColorBrightGreen)
	}
	for _, p := range s.PowerUps {
		if p.Life < 120 && (p.Life/8)%2 == 0 {
			continue // Blink before expiring
		}
		v.put(p.X, s.ScreenY(p.WorldY), powerUpGlyph(p.Kind), core.ColorBrightYellow)
	}
	for _, e := range s.Enemies {
		v.put(e.X, s.ScreenY(e.WorldY), enemyGlyph(e.Kind), enemyColor(e.Kind))
	}
	for _, p := range s.BossShots {
		if p.Kind == ProjNet {
			v.disc(core.Vec2{X: p.X, Y: s.ScreenY(p.WorldY)}, p.Radius*0.7, NetChar, core.ColorGray)
			continue
		}
		v.put(p.X, s.ScreenY(p.WorldY), BossShotChar, core.ColorBrightMagenta)
	}
	for _, p := range s.EnemyShots {
		v.put(p.X, s.ScreenY(p.WorldY), EnemyShot, core.ColorOrange)
	}
	for _, p := range s.Sushi {
		v.put(p.X, s.ScreenY(p.WorldY), SushiChar, core.ColorPink)
	}

	if s.Sweep != nil {
		_, cy := v.cell(0, s.Sweep.Y)
		for cx := 0; cx < v.dst.Width(); cx++ {
			px := (float64(cx) + 0.5) / v.sx
			if px >= s.Sweep.GapX && px <= s.Sweep.GapX+s.Sweep.GapW {
				continue
			}
			if cy >= 1 {
				v.dst.SetColored(cx, cy, SweepChar, core.ColorMagenta)
			}
		}
	}

	if b := s.Boss; b != nil {
		flicker := s.Stage == StageDefeated && (s.StageTime/4)%2 == 0
		if !flicker {
			glyph, color := bossGlyph(b.Kind)
			if b.Shielded() {
				color = core.ColorBrightCyan
			}
			v.disc(b.Pos, b.Radius*0.8, glyph, color)
		}
	}

	for _, p := range s.Particles {
		r := '.'
		if p.Life*2 > p.MaxLife {
			r = '+'
		}
		v.put(p.X, p.Y, r, p.Color)
	}

	pl := s.Player
	if pl.Visible && !(pl.Invuln > 0 && (pl.Invuln/4)%2 == 1) {
		color := core.ColorBrightWhite
		if s.Effects.Shield > 0 {
			color = core.ColorBrightCyan
		}
		v.put(pl.Pos.X, pl.Pos.Y, PlayerChar, color)
		if s.Pole == nil {
			tip := pl.Pos.Add(core.FromAngle(pl.Facing, pl.Radius+4))
			v.put(tip.X, tip.Y, facingGlyph(pl.Facing), core.ColorWhite)
		}
	}
	if pl.Visible && s.Pole != nil {
		a := s.Pole.Angle()
		for i := 1; i <= 3; i++ {
			pt := pl.Pos.Add(core.FromAngle(a, s.Pole.Reach*float64(i)/3))
			v.put(pt.X, pt.Y, poleGlyph(a), core.ColorBrown)
		}
	}
}

func renderHUD(s Snapshot, dst *core.Screen) {
	lives := strings.Repeat("♥", max(s.Lives, 0))
	left := fmt.Sprintf("SCORE %d x%d  %s", s.Score, s.Multiplier, lives)

	var fx []string
	if s.Effects.Speed > 0 {
		fx = append(fx, "SPD")
	}
	if s.Effects.Triple > 0 {
		fx = append(fx, "TRI")
	}
	if s.Effects.Shield > 0 {
		fx = append(fx, "SHD")
	}
	if len(fx) > 0 {
		left += "  [" + strings.Join(fx, " ") + "]"
	}
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("HI %d  %d/%d", s.HighScore, s.Distance, s.Target)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorGray)

	if b := s.Boss; b != nil && b.MaxHP > 0 {
		barW := 20
		filled := core.Clamp(b.HP*barW/b.MaxHP, 0, barW)
		x := (dst.Width() - len([]rune(b.Name)) - 1 - barW) / 2
		dst.DrawTextColored(x, 1, b.Name, core.ColorBrightMagenta)
		x += len([]rune(b.Name)) + 1
		dst.DrawHLine(x, 1, barW, '·', core.ColorGray)
		dst.DrawHLine(x, 1, filled, '█', core.ColorBrightMagenta)
	}
}

func renderOverlay(s Snapshot, dst *core.Screen) {
	mid := dst.Height() / 2
	lvl := Levels[s.Level]

	switch s.State {
	case StateLevelIntro:
		dst.DrawTextCenteredColored(mid-1, fmt.Sprintf("LEVEL %d: %s", s.Level+1, lvl.Name), core.ColorBrightYellow)
		dst.DrawTextCenteredColored(mid+1, lvl.Subtitle, core.ColorWhite)
	case StateLevelComplete:
		dst.DrawTextCenteredColored(mid-1, "LEVEL COMPLETE", core.ColorBrightGreen)
		dst.DrawTextCenteredColored(mid+1, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite)
	case StateVictory:
		panel(dst, mid-3, 7, 34)
		dst.DrawTextCenteredColored(mid-2, "VICTORY!", core.ColorBrightYellow)
		dst.DrawTextCenteredColored(mid, fmt.Sprintf("Final score: %d", s.Score), core.ColorWhite)
		dst.DrawTextCenteredColored(mid+2, "R restart   B menu   Q quit", core.ColorGray)
	case StateGameOver:
		panel(dst, mid-3, 7, 34)
		dst.DrawTextCenteredColored(mid-2, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCenteredColored(mid, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite)
		dst.DrawTextCenteredColored(mid+2, "R restart   B menu   Q quit", core.ColorGray)
	case StatePlaying:
		if s.Paused {
			dst.DrawTextCenteredColored(mid, "PAUSED", core.ColorBrightYellow)
		} else if s.Stage == StageWarning && (s.StageTime/10)%2 == 0 {
			dst.DrawTextCenteredColored(mid-1, "!! WARNING !!", core.ColorBrightRed)
			dst.DrawTextCenteredColored(mid+1, BossSpecs[lvl.Boss].Name+" approaches", core.ColorRed)
		}
	}
}

// panel clears a centred box behind overlay text.
func panel(dst *core.Screen, top, h, w int) {
	w = min(w, dst.Width())
	r := core.NewRect((dst.Width()-w)/2, top, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
}

func renderMenu(s Snapshot, dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-4, "S U S H I   B R O S", core.ColorPink)
	dst.DrawTextCenteredColored(mid-2, "Throw sushi. Swing the pole. Reach the boss.", core.ColorWhite)
	dst.DrawTextCenteredColored(mid, "ENTER / SPACE to start", core.ColorBrightYellow)
	dst.DrawTextCenteredColored(mid+2, fmt.Sprintf("Controls: %s  (C to toggle)", s.ControlMode), core.ColorGray)
	if s.HighScore > 0 {
		dst.DrawTextCenteredColored(mid+4, fmt.Sprintf("High score: %d", s.HighScore), core.ColorCyan)
	}
}

func enemyGlyph(k EnemyKind) rune {
	switch k {
	case EnemyCrab:
		return 'X'
	case EnemySeagull:
		return 'v'
	case EnemyFisherman:
		return 'F'
	default:
		return '?'
	}
}

func bossGlyph(k BossKind) (rune, core.Color) {
	switch k {
	case BossOctopus:
		return '%', core.ColorMagenta
	case BossCrabKing:
		return 'W', core.ColorBrightRed
	case BossFisherman:
		return '&', core.ColorYellow
	default:
		return '?', core.ColorWhite
	}
}

func powerUpGlyph(k PowerUpKind) rune {
	switch k {
	case PowerSpeed:
		return 'S'
	case PowerTriple:
		return 'T'
	case PowerShield:
		return 'O'
	case PowerLife:
		return '♥'
	default:
		return '?'
	}
}

// poleGlyph picks a line character matching the pole angle.
func poleGlyph(a float64) rune {
	deg := degrees(a, 180)
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '-'
	case deg < 67.5:
		return '\\'
	case deg < 112.5:
		return '|'
	default:
		return '/'
	}
}

// facingGlyph is the arrow drawn in front of the player.
func facingGlyph(a float64) rune {
	deg := degrees(a, 360)
	switch {
	case deg >= 45 && deg < 135:
		return 'v'
	case deg >= 135 && deg < 225:
		return '<'
	case deg >= 225 && deg < 315:
		return '^'
	default:
		return '>'
	}
}

// degrees converts radians to degrees wrapped into [0, period).
func degrees(a, period float64) float64 {
	d := math.Mod(a*180/math.Pi, period)
	if d < 0 {
		d += period
	}
	return d
}

package diver

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
	"github.com/vovakirdan/tui-diver/internal/games/diver/sim"
)

// Sprites, drawn centred on the entity position.
const (
	diverSprite   = "[o]>"
	boostSprite   = "≈[o]>"
	sharkSprite   = "<°)══<"
	jellyTop      = "(^)"
	jellyTentacle = "¦¦¦"
	pearlGlyph    = '●'
	treasureGlyph = '$'
	bubbleGlyph   = '°'
	coralGlyph    = '♣'
	coralStem     = '|'
	heartGlyph    = '♥'
)

const (
	minCols = 24
	minRows = 8
)

// viewport maps world units to screen cells. Row 0 is the HUD.
type viewport struct {
	cols, rows int
	sx, sy     float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	cols, rows := dst.Width(), dst.Height()-1
	return viewport{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / worldW,
		sy:   float64(rows) / worldH,
	}
}

func (v viewport) cell(p core.Vec) (int, int) {
	return int(p.X * v.sx), 1 + int(p.Y*v.sy)
}

// Render draws the menu, the running world or the final summary.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < minCols || dst.Height() < minRows {
		dst.DrawText(0, 0, "window too small")
		return
	}

	switch g.session.State() {
	case sim.StateMenu:
		g.renderMenu(dst)
	case sim.StateRunning:
		g.renderWorld(dst, g.last)
		if g.paused {
			drawBanner(dst, "PAUSED", "P resume   B menu", core.ColorBrightYellow)
		}
	case sim.StateGameOver:
		g.renderWorld(dst, g.last)
		if s, ok := g.Summary(); ok {
			drawSummary(dst, s)
		}
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()
	top := h/2 - 6
	if top < 0 {
		top = 0
	}

	dst.DrawTextCentered(top, "≈≈≈  D E E P   D I V E R  ≈≈≈", core.ColorBrightCyan)
	dst.DrawTextCentered(top+2, "Collect pearls and treasure. Avoid sharks and jellyfish.", core.ColorGray)

	for i, t := range config.Tiers() {
		line := fmt.Sprintf("  %-7s best %6d  ", t.Label(), g.Record(t))
		color := core.ColorWhite
		if i == g.cursor {
			line = "▶" + line[1:]
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(top+4+i, line, color)
	}

	dst.DrawTextCentered(top+8, "↑/↓ select   Enter dive   Q quit", core.ColorGray)
	if g.err != nil {
		dst.DrawTextCentered(top+10, g.err.Error(), core.ColorRed)
	}
}

func (g *Game) renderWorld(dst *core.Screen, s sim.Snapshot) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	v := newViewport(dst, s.Width, s.Height)

	for _, d := range s.Decorations {
		drawDecoration(dst, v, d)
	}
	for _, p := range s.Particles {
		x, y := v.cell(p.Pos)
		glyph := '.'
		if p.Radius >= 3 {
			glyph = '*'
		}
		dst.SetColored(x, y, glyph, p.Color)
	}
	for _, c := range s.Collectibles {
		x, y := v.cell(c.Pos)
		if c.Kind == sim.Treasure {
			dst.SetColored(x, y, treasureGlyph, core.ColorGold)
		} else {
			dst.SetColored(x, y, pearlGlyph, core.ColorPink)
		}
	}
	for _, h := range s.Hazards {
		x, y := v.cell(h.Pos)
		switch h.Kind {
		case sim.Shark:
			drawSprite(dst, x, y, sharkSprite, core.ColorBrightRed)
		case sim.Jellyfish:
			drawSprite(dst, x, y, jellyTop, core.ColorBrightMagenta)
			drawSprite(dst, x, y+1, jellyTentacle, core.ColorMagenta)
		}
	}

	x, y := v.cell(s.Diver.Pos)
	sprite := diverSprite
	if s.Diver.Boosting {
		sprite = boostSprite
	}
	drawSprite(dst, x, y, sprite, core.ColorBrightYellow)

	drawHUD(dst, s.HUD)
}

func drawDecoration(dst *core.Screen, v viewport, d sim.Decoration) {
	x, y := v.cell(d.Pos)
	switch d.Kind {
	case sim.Bubble:
		dst.SetColored(x, y, bubbleGlyph, core.ColorCyan)
	case sim.Fish:
		fish := "<><"
		if d.Dir > 0 {
			fish = "><>"
		}
		drawSprite(dst, x, y, fish, core.ColorBlue)
	case sim.Coral:
		dst.SetColored(x, y, coralGlyph, core.ColorCoral)
		stem := int(d.H * v.sy)
		for i := 1; i <= stem && y+i <= v.rows; i++ {
			dst.SetColored(x, y+i, coralStem, core.ColorCoral)
		}
	}
}

func drawHUD(dst *core.Screen, h sim.HUD) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	x := 1
	x += drawField(dst, x, fmt.Sprintf("SCORE %d", h.Score), core.ColorBrightWhite)
	x += drawField(dst, x, "LIVES "+strings.Repeat(string(heartGlyph), h.Lives), core.ColorBrightRed)
	x += drawField(dst, x, fmt.Sprintf("PEARLS %d", h.Pearls), core.ColorPink)
	drawField(dst, x, h.Label(), core.ColorGray)
}

func drawField(dst *core.Screen, x int, text string, c core.Color) int {
	dst.DrawTextColored(x, 0, text, c)
	return utf8.RuneCountInString(text) + 3
}

func drawSprite(dst *core.Screen, cx, cy int, sprite string, c core.Color) {
	dst.DrawTextColored(cx-utf8.RuneCountInString(sprite)/2, cy, sprite, c)
}

func drawBanner(dst *core.Screen, title, hint string, c core.Color) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "  "+title+"  ", c)
	dst.DrawTextCentered(mid+1, "  "+hint+"  ", core.ColorGray)
}

func drawSummary(dst *core.Screen, s sim.Summary) {
	lines := []string{
		fmt.Sprintf("Score      %d", s.Score),
		fmt.Sprintf("Pearls     %d", s.Pearls),
		fmt.Sprintf("High score %d", s.HighScore),
	}
	const boxW, boxH = 30, 10
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightCyan)

	y := box.Y + 1
	dst.DrawTextCentered(y, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, s.Tier.Label(), core.ColorGray)
	for i, l := range lines {
		dst.DrawTextColored(box.X+4, y+3+i, l, core.ColorWhite)
	}
	if s.NewRecord {
		dst.DrawTextCentered(y+6, "NEW RECORD!", core.ColorGold)
	}
	dst.DrawTextCentered(y+7, "R again   B menu", core.ColorGray)
}

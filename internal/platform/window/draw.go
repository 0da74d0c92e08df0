package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-diver/internal/config"
	"github.com/vovakirdan/tui-diver/internal/core"
	"github.com/vovakirdan/tui-diver/internal/games/diver/sim"
)

var (
	waterTop    = color.RGBA{R: 10, G: 70, B: 120, A: 255}
	waterBottom = color.RGBA{R: 2, G: 18, B: 40, A: 255}
	sandColor   = color.RGBA{R: 150, G: 130, B: 90, A: 255}
	suitColor   = color.RGBA{R: 240, G: 200, B: 40, A: 255}
	maskColor   = color.RGBA{R: 150, G: 220, B: 255, A: 255}
	sharkColor  = color.RGBA{R: 130, G: 140, B: 150, A: 255}
	jellyColor  = color.RGBA{R: 220, G: 130, B: 230, A: 200}
	pearlColor  = color.RGBA{R: 255, G: 200, B: 220, A: 255}
	goldColor   = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	bubbleColor = color.RGBA{R: 200, G: 230, B: 255, A: 120}
	fishColor   = color.RGBA{R: 255, G: 150, B: 60, A: 200}
	coralColor  = color.RGBA{R: 255, G: 110, B: 90, A: 255}
	panelColor  = color.RGBA{A: 190}
)

// palette maps screen colors used by particles to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorWhite:       {R: 230, G: 230, B: 230, A: 255},
	core.ColorBrightRed:   {R: 255, G: 70, B: 70, A: 255},
	core.ColorBrightCyan:  {R: 120, G: 240, B: 255, A: 255},
	core.ColorBrightWhite: {R: 255, G: 255, B: 255, A: 255},
	core.ColorGold:        goldColor,
	core.ColorPink:        pearlColor,
	core.ColorCoral:       coralColor,
}

// rgba returns c with alpha scaled by fade in [0,1].
func rgba(c core.Color, fade float64) color.RGBA {
	out, ok := palette[c]
	if !ok {
		out = palette[core.ColorWhite]
	}
	out.A = uint8(float64(out.A) * min(max(fade, 0), 1))
	return out
}

// Draw renders the last presented snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	width, height := float32(w.cfg.World.Width), float32(w.cfg.World.Height)

	drawWater(screen, width, height)

	switch w.game.Phase() {
	case sim.StateMenu:
		w.drawMenu(screen)
		return
	case sim.StateRunning, sim.StateGameOver:
		drawWorld(screen, snap, w.cfg)
		drawHUD(screen, snap.HUD)
	}

	if w.game.State().Paused {
		drawPanel(screen, width, height, []string{"PAUSED", "", "P resume"})
	}
	if sum, ok := w.game.Summary(); ok {
		drawPanel(screen, width, height, summaryLines(sum))
	}
}

func drawWater(dst *ebiten.Image, width, height float32) {
	const bands = 12
	bandH := height / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		c := color.RGBA{
			R: lerp8(waterTop.R, waterBottom.R, t),
			G: lerp8(waterTop.G, waterBottom.G, t),
			B: lerp8(waterTop.B, waterBottom.B, t),
			A: 255,
		}
		vector.DrawFilledRect(dst, 0, float32(i)*bandH, width, bandH+1, c, false)
	}
	vector.DrawFilledRect(dst, 0, height-12, width, 12, sandColor, false)
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func drawWorld(dst *ebiten.Image, snap sim.Snapshot, cfg config.DiverConfig) {
	for _, d := range snap.Decorations {
		x, y := float32(d.Pos.X), float32(d.Pos.Y)
		switch d.Kind {
		case sim.Bubble:
			vector.DrawFilledCircle(dst, x, y, float32(d.W/2), bubbleColor, true)
		case sim.Fish:
			vector.DrawFilledRect(dst, x-float32(d.W/2), y-float32(d.H/2), float32(d.W), float32(d.H), fishColor, false)
		case sim.Coral:
			vector.DrawFilledRect(dst, x-float32(d.W/2), y-float32(d.H/2), float32(d.W), float32(d.H), coralColor, false)
		}
	}

	for _, c := range snap.Collectibles {
		x, y := float32(c.Pos.X), float32(c.Pos.Y)
		switch c.Kind {
		case sim.Pearl:
			vector.DrawFilledCircle(dst, x, y, float32(c.Radius), pearlColor, true)
		case sim.Treasure:
			vector.DrawFilledRect(dst, x-float32(c.W/2), y-float32(c.H/2), float32(c.W), float32(c.H), goldColor, false)
		}
	}

	for _, h := range snap.Hazards {
		x, y := float32(h.Pos.X), float32(h.Pos.Y)
		switch h.Kind {
		case sim.Shark:
			vector.DrawFilledRect(dst, x-float32(h.W/2), y-float32(h.H/4), float32(h.W), float32(h.H/2), sharkColor, false)
			vector.DrawFilledCircle(dst, x-float32(h.W/2), y, float32(h.H/4), sharkColor, true)
		case sim.Jellyfish:
			vector.DrawFilledCircle(dst, x, y-float32(h.H/4), float32(h.W/2), jellyColor, true)
			for i := -1; i <= 1; i++ {
				vector.DrawFilledRect(dst, x+float32(i)*float32(h.W/4)-1, y, 2, float32(h.H/2), jellyColor, false)
			}
		}
	}

	maxLife := float64(max(cfg.Particles.Collect.Life, cfg.Particles.Damage.Life, cfg.Particles.TrailLife, 1))
	for _, p := range snap.Particles {
		vector.DrawFilledCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), rgba(p.Color, float64(p.Life)/maxLife*2), true)
	}

	d := snap.Diver
	x, y := float32(d.Pos.X), float32(d.Pos.Y)
	vector.DrawFilledRect(dst, x-float32(d.W/2), y-float32(d.H/4), float32(d.W), float32(d.H/2), suitColor, false)
	vector.DrawFilledCircle(dst, x+float32(d.W/3), y, float32(d.H/4), maskColor, true)
	if d.Boosting {
		vector.DrawFilledCircle(dst, x-float32(d.W/2)-6, y, 4, bubbleColor, true)
	}
}

func drawHUD(dst *ebiten.Image, h sim.HUD) {
	line := fmt.Sprintf("SCORE %d   LIVES %d   PEARLS %d   %s", h.Score, h.Lives, h.Pearls, h.Label())
	ebitenutil.DebugPrintAt(dst, line, 10, 8)
}

func (w *Window) drawMenu(dst *ebiten.Image) {
	lines := []string{"D E E P   D I V E R", ""}
	selected := w.game.SelectedTier()
	for _, t := range config.Tiers() {
		cursor := "  "
		if t == selected {
			cursor = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-8s best %d", cursor, t.Label(), w.game.Record(t)))
	}
	lines = append(lines, "", "UP/DOWN choose   ENTER dive   Q quit")
	drawPanel(dst, float32(w.cfg.World.Width), float32(w.cfg.World.Height), lines)
}

func summaryLines(s sim.Summary) []string {
	lines := []string{"GAME OVER", ""}
	if s.NewRecord {
		lines = append(lines, "NEW RECORD!")
	}
	lines = append(lines,
		fmt.Sprintf("%s tier", s.Tier.Label()),
		fmt.Sprintf("score   %d", s.Score),
		fmt.Sprintf("pearls  %d", s.Pearls),
		fmt.Sprintf("best    %d", s.HighScore),
		"",
		"R again   B menu",
	)
	return lines
}

// drawPanel prints lines centred in a dark box. The debug font is 6x16.
func drawPanel(dst *ebiten.Image, width, height float32, lines []string) {
	const charW, lineH = 6, 16
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	boxW := float32(longest*charW + 40)
	boxH := float32(len(lines)*lineH + 30)
	x0, y0 := (width-boxW)/2, (height-boxH)/2
	vector.DrawFilledRect(dst, x0, y0, boxW, boxH, panelColor, false)

	for i, l := range lines {
		pad := (longest - len(strings.TrimSpace(l))) * charW / 2
		ebitenutil.DebugPrintAt(dst, strings.TrimSpace(l), int(x0)+20+pad, int(y0)+15+i*lineH)
	}
}

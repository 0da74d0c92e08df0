package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-diver/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "SCORE", core.ColorGold)
	s.DrawText(6, 0, "10")
	s.SetColored(3, 1, '●', core.ColorPink)
	s.DrawTextColored(0, 2, "<°)══<", core.ColorGray)

	if got, expected := RenderScreen(s), s.String(); got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("styleFor(unknown).Render() = %q, expected %q", got, "x")
	}
}

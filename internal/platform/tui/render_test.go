package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/langton/internal/core"
)

func TestRenderScreenPlainContent(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "12345")
	s.Set(4, 1, '█')

	out := RenderScreen(s)

	if !strings.Contains(out, "12345") {
		t.Error("rendered output should contain the counter text")
	}
	if !strings.Contains(out, "█") {
		t.Error("rendered output should contain the filled marker")
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered output has %d newlines, expected 2", got)
	}
}

func TestRenderScreenColorRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	for x := 0; x < 3; x++ {
		s.SetCell(x, 0, core.ScreenCell{Rune: '░', Color: core.ColorGray})
	}
	for x := 3; x < 6; x++ {
		s.SetCell(x, 0, core.ScreenCell{Rune: '█', Color: core.ColorDefault})
	}

	out := RenderScreen(s)

	// All runes survive styling
	if strings.Count(out, "░") != 3 {
		t.Errorf("expected 3 path markers, got %d", strings.Count(out, "░"))
	}
	if strings.Count(out, "█") != 3 {
		t.Errorf("expected 3 filled markers, got %d", strings.Count(out, "█"))
	}
}

func TestRenderScreenUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(2, 1)
	s.SetCell(0, 0, core.ScreenCell{Rune: 'x', Color: core.Color(200)})

	out := RenderScreen(s)
	if !strings.Contains(out, "x") {
		t.Error("unknown colors should still render their rune")
	}
}

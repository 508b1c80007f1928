package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

func TestFrameSetIgnoresTransparentAndOutOfBounds(t *testing.T) {
	f := NewFrame(3, 2)
	f.Set(0, 0, graphics.NewCell('a', tcell.ColorWhite, tcell.ColorBlack))
	f.Set(0, 0, graphics.EmptyCell)
	f.Set(5, 5, graphics.NewCell('b', tcell.ColorWhite, tcell.ColorBlack))

	if f.Get(0, 0).Rune != 'a' {
		t.Errorf("Expected 'a' kept, got %q", f.Get(0, 0).Rune)
	}
	if !f.Touched(0, 0) || f.Touched(1, 0) || f.Touched(5, 5) {
		t.Error("Unexpected touched state")
	}
}

func TestFrameClearAndResize(t *testing.T) {
	f := NewFrame(4, 4)
	f.Set(3, 3, graphics.NewCell('a', tcell.ColorWhite, tcell.ColorBlack))
	f.Clear()
	if f.Touched(3, 3) || !f.Get(3, 3).Empty() {
		t.Error("Expected frame cleared")
	}

	f.Resize(2, 1)
	if f.Size() != (core.Size{Width: 2, Height: 1}) {
		t.Errorf("Expected 2x1, got %v", f.Size())
	}
	f.Resize(-1, 3)
	if f.Size() != (core.Size{Width: 0, Height: 3}) {
		t.Errorf("Expected negative width clamped, got %v", f.Size())
	}
}

func TestFrameMapTouchedOnly(t *testing.T) {
	f := NewFrame(3, 1)
	f.Set(0, 0, graphics.NewCell('a', tcell.NewRGBColor(200, 200, 200), tcell.ColorDefault))
	f.Map(core.Area{Width: 3, Height: 1}, func(c graphics.Cell) graphics.Cell {
		c.Rune = 'm'
		return c
	})
	if f.Get(0, 0).Rune != 'm' {
		t.Error("Expected touched cell mapped")
	}
	if f.Touched(1, 0) {
		t.Error("Expected untouched cell left alone")
	}
}

func TestFrameFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(3, 1)

	f := NewFrame(3, 1)
	f.DrawText(1, 0, "hi!", tcell.StyleDefault)
	f.Flush(screen, tcell.StyleDefault)

	want := []rune{' ', 'h', 'i'}
	for x, w := range want {
		if r, _, _, _ := screen.GetContent(x, 0); r != w {
			t.Errorf("x=%d: expected %q, got %q", x, w, r)
		}
	}
}

// Package render composites projected layers and paints them on a terminal
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

// Flatten composites layers in list order into one image of size
// Later layers draw over earlier ones; transparent cells let lower layers show
func Flatten(layers []graphics.Layer, size core.Size) *graphics.TextImage {
	f := NewFrame(size.Width, size.Height)
	for _, l := range layers {
		f.Compose(l)
	}
	out := graphics.NewTextImage(size)
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			out.Set(x, y, f.Get(x, y))
		}
	}
	return out
}

// Paint draws layers directly onto screen in list order, skipping transparent cells
// The caller owns Clear and Show
func Paint(screen tcell.Screen, layers []graphics.Layer) {
	w, h := screen.Size()
	for _, l := range layers {
		if l.Image == nil {
			continue
		}
		size := l.Image.Size()
		for y := 0; y < size.Height; y++ {
			sy := l.Offset.Y + y
			if sy < 0 || sy >= h {
				continue
			}
			for x, c := range l.Image.Row(y) {
				sx := l.Offset.X + x
				if c.Empty() || sx < 0 || sx >= w {
					continue
				}
				screen.SetContent(sx, sy, c.Rune, nil, c.Style())
			}
		}
	}
}

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

// Frame is the screen-sized compositing target with dirty tracking
// Only touched cells are written on flush; the rest are cleared to the base style
type Frame struct {
	cells   []graphics.Cell
	touched []bool
	width   int
	height  int
}

// NewFrame creates a frame with the given dimensions
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (f *Frame) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]graphics.Cell, size)
		f.touched = make([]bool, size)
	} else {
		f.cells = f.cells[:size]
		f.touched = f.touched[:size]
	}
	f.width = width
	f.height = height
	f.Clear()
}

// Size returns frame dimensions
func (f *Frame) Size() core.Size {
	return core.Size{Width: f.width, Height: f.height}
}

// Clear resets all cells to transparent using exponential copy
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = graphics.EmptyCell
	f.touched[0] = false
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
	for filled := 1; filled < len(f.touched); filled *= 2 {
		copy(f.touched[filled:], f.touched[:filled])
	}
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes a cell; transparent cells leave the target untouched
func (f *Frame) Set(x, y int, c graphics.Cell) {
	if c.Empty() || !f.inBounds(x, y) {
		return
	}
	idx := y*f.width + x
	f.cells[idx] = c
	f.touched[idx] = true
}

// Get returns the cell at (x, y), transparent when out of bounds
func (f *Frame) Get(x, y int) graphics.Cell {
	if !f.inBounds(x, y) {
		return graphics.EmptyCell
	}
	return f.cells[y*f.width+x]
}

// Touched reports whether (x, y) was written since the last Clear
func (f *Frame) Touched(x, y int) bool {
	return f.inBounds(x, y) && f.touched[y*f.width+x]
}

// DrawText writes s starting at (x, y), clipped to the frame
func (f *Frame) DrawText(x, y int, s string, style tcell.Style) {
	fg, bg, attrs := style.Decompose()
	for _, r := range s {
		f.Set(x, y, graphics.Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs})
		x++
	}
}

// Compose paints a layer at its offset
func (f *Frame) Compose(l graphics.Layer) {
	if l.Image == nil {
		return
	}
	size := l.Image.Size()
	for y := 0; y < size.Height; y++ {
		for x, c := range l.Image.Row(y) {
			f.Set(l.Offset.X+x, l.Offset.Y+y, c)
		}
	}
}

// Map applies fn to every touched cell inside area
func (f *Frame) Map(area core.Area, fn func(graphics.Cell) graphics.Cell) {
	for y := max(area.Y, 0); y < min(area.Y+area.Height, f.height); y++ {
		for x := max(area.X, 0); x < min(area.X+area.Width, f.width); x++ {
			idx := y*f.width + x
			if f.touched[idx] {
				f.cells[idx] = fn(f.cells[idx])
			}
		}
	}
}

// Flush writes the frame to screen; untouched cells become blanks in base
func (f *Frame) Flush(screen tcell.Screen, base tcell.Style) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			idx := y*f.width + x
			if !f.touched[idx] {
				screen.SetContent(x, y, ' ', nil, base)
				continue
			}
			c := f.cells[idx]
			screen.SetContent(x, y, c.Rune, nil, c.Style())
		}
	}
}

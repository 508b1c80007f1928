package graphics

import "github.com/gdamore/tcell/v2"

// Cell is a single styled character
// Rune 0 marks a transparent cell that lets lower layers show through
type Cell struct {
	Rune  rune
	Fg    tcell.Color
	Bg    tcell.Color
	Attrs tcell.AttrMask
}

// EmptyCell is the transparent zero value
var EmptyCell = Cell{}

// NewCell creates an opaque cell with default attributes
func NewCell(r rune, fg, bg tcell.Color) Cell {
	return Cell{Rune: r, Fg: fg, Bg: bg, Attrs: tcell.AttrNone}
}

// Empty reports whether the cell is transparent
func (c Cell) Empty() bool {
	return c.Rune == 0
}

// Style converts the cell colors and attributes to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg).Attributes(c.Attrs)
}

// Darken returns the cell with both colors scaled toward black by factor in [0,1]
// Used to dim an inactive view
func (c Cell) Darken(factor float64) Cell {
	if factor <= 0 || c.Empty() {
		return c
	}
	if factor > 1 {
		factor = 1
	}
	c.Fg = darkenColor(c.Fg, factor)
	c.Bg = darkenColor(c.Bg, factor)
	return c
}

func darkenColor(col tcell.Color, factor float64) tcell.Color {
	if col == tcell.ColorDefault || !col.Valid() {
		return col
	}
	r, g, b := col.RGB()
	if r < 0 {
		return col
	}
	scale := 1 - factor
	return tcell.NewRGBColor(
		int32(float64(r)*scale),
		int32(float64(g)*scale),
		int32(float64(b)*scale),
	)
}

package graphics

import (
	"strings"

	"github.com/lixenwraith/gamearea/core"
)

// TextImage is a row-major 2D grid of cells
// Not safe for concurrent mutation; readers may share an image once it is no longer written
type TextImage struct {
	cells  []Cell
	width  int
	height int
}

// NewTextImage creates a transparent image of the given size
// Negative dimensions are treated as zero
func NewTextImage(size core.Size) *TextImage {
	w, h := size.Width, size.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &TextImage{
		cells:  make([]Cell, w*h),
		width:  w,
		height: h,
	}
}

// Size returns the image dimensions
func (img *TextImage) Size() core.Size {
	return core.Size{Width: img.width, Height: img.height}
}

// Empty reports whether the image has no cells
func (img *TextImage) Empty() bool {
	return img.width == 0 || img.height == 0
}

// inBounds returns true if inside the image
func (img *TextImage) inBounds(x, y int) bool {
	return x >= 0 && x < img.width && y >= 0 && y < img.height
}

// Get returns the cell at the given position
func (img *TextImage) Get(x, y int) (Cell, bool) {
	if !img.inBounds(x, y) {
		return Cell{}, false
	}
	return img.cells[y*img.width+x], true
}

// Set writes the cell at the given position, ignoring out of bounds writes
func (img *TextImage) Set(x, y int, c Cell) bool {
	if !img.inBounds(x, y) {
		return false
	}
	img.cells[y*img.width+x] = c
	return true
}

// Fill sets every cell to c
func (img *TextImage) Fill(c Cell) {
	if len(img.cells) == 0 {
		return
	}
	img.cells[0] = c
	// Exponential copy
	for filled := 1; filled < len(img.cells); filled *= 2 {
		copy(img.cells[filled:], img.cells[:filled])
	}
}

// Row returns a copy of row y, nil when out of bounds
func (img *TextImage) Row(y int) []Cell {
	if y < 0 || y >= img.height {
		return nil
	}
	row := make([]Cell, img.width)
	copy(row, img.cells[y*img.width:(y+1)*img.width])
	return row
}

// SubImage copies the region starting at offset with the given size
// The region is clipped to the image bounds; a region fully outside yields an empty image
func (img *TextImage) SubImage(offset core.Point, size core.Size) *TextImage {
	x0, y0 := offset.X, offset.Y
	w, h := size.Width, size.Height

	// Clip leading edge
	if x0 < 0 {
		w += x0
		x0 = 0
	}
	if y0 < 0 {
		h += y0
		y0 = 0
	}
	// Clip trailing edge
	if x0+w > img.width {
		w = img.width - x0
	}
	if y0+h > img.height {
		h = img.height - y0
	}
	if w <= 0 || h <= 0 {
		return NewTextImage(core.Size{Width: max(w, 0), Height: max(h, 0)})
	}

	sub := NewTextImage(core.Size{Width: w, Height: h})
	for y := 0; y < h; y++ {
		src := (y0+y)*img.width + x0
		copy(sub.cells[y*w:(y+1)*w], img.cells[src:src+w])
	}
	return sub
}

// Clone returns a deep copy of the image
func (img *TextImage) Clone() *TextImage {
	return img.SubImage(core.Point{}, img.Size())
}

// Map returns a copy with fn applied to every non-empty cell
func (img *TextImage) Map(fn func(Cell) Cell) *TextImage {
	out := img.Clone()
	for i, c := range out.cells {
		if !c.Empty() {
			out.cells[i] = fn(c)
		}
	}
	return out
}

// String renders the runes row by row, transparent cells as spaces
func (img *TextImage) String() string {
	var sb strings.Builder
	sb.Grow((img.width + 1) * img.height)
	for y := 0; y < img.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < img.width; x++ {
			r := img.cells[y*img.width+x].Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

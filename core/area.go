package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Size is a 2D extent measured in cells
type Size struct {
	Width, Height int
}

// WithRelativeHeight returns the size with delta rows added, never below zero
func (s Size) WithRelativeHeight(delta int) Size {
	h := s.Height + delta
	if h < 0 {
		h = 0
	}
	return Size{Width: s.Width, Height: h}
}

// Empty reports whether the size covers no cells
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Area represents a rectangular region anchored at its top-left corner
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// NewArea builds an area from a position and a size
func NewArea(pos Point, size Size) Area {
	return Area{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Position returns the top-left corner
func (a Area) Position() Point {
	return Point{X: a.X, Y: a.Y}
}

// Size returns the area extent
func (a Area) Size() Size {
	return Size{Width: a.Width, Height: a.Height}
}

// Empty reports whether the area covers no cells
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// ContainsPoint checks if point lies within the area, right and bottom edges exclusive
func (a Area) ContainsPoint(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// ContainsArea checks if o lies entirely within a
// An empty o is contained only when a is non-empty and o's corner is inside a
func (a Area) ContainsArea(o Area) bool {
	if a.Empty() {
		return false
	}
	if o.Empty() {
		return a.ContainsPoint(o.Position())
	}
	return o.X >= a.X && o.Y >= a.Y &&
		o.X+o.Width <= a.X+a.Width &&
		o.Y+o.Height <= a.Y+a.Height
}

// Intersects checks if the two areas share at least one cell
func (a Area) Intersects(o Area) bool {
	if a.Empty() || o.Empty() {
		return false
	}
	return o.X < a.X+a.Width && a.X < o.X+o.Width &&
		o.Y < a.Y+a.Height && a.Y < o.Y+o.Height
}

// Bounds returns the area itself, satisfying Boundable
func (a Area) Bounds() Area {
	return a
}

// Boundable is anything occupying a rectangle on screen
type Boundable interface {
	Bounds() Area
}

package core

import "fmt"

// Point3D is a coordinate in the virtual game space, Z indexes the level
type Point3D struct {
	X, Y, Z int
}

// Point3DFrom2D lifts a 2D position onto the given level
func Point3DFrom2D(p Point, z int) Point3D {
	return Point3D{X: p.X, Y: p.Y, Z: z}
}

// To2D drops the level component
func (p Point3D) To2D() Point {
	return Point{X: p.X, Y: p.Y}
}

// Add returns the component-wise sum of two coordinates
func (p Point3D) Add(o Point3D) Point3D {
	return Point3D{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Size3D is an extent in the virtual game space
// Levels is the number of stacked depth levels, not a 2D height
type Size3D struct {
	Width, Height, Levels int
}

// Size3DFrom2D lifts a 2D size to the given level count
func Size3DFrom2D(s Size, levels int) Size3D {
	return Size3D{Width: s.Width, Height: s.Height, Levels: levels}
}

// To2D drops the level component
func (s Size3D) To2D() Size {
	return Size{Width: s.Width, Height: s.Height}
}

func (s Size3D) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Width, s.Height, s.Levels)
}

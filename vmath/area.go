package vmath

import "github.com/lixenwraith/gamearea/core"

// AreaCenter returns the center point of the area
func AreaCenter(a core.Area) core.Point {
	return core.Point{
		X: a.X + a.Width/2,
		Y: a.Y + a.Height/2,
	}
}

// SpaceCenter returns the center of a 3D extent, levels included
func SpaceCenter(s core.Size3D) core.Point3D {
	return core.Point3D{X: s.Width / 2, Y: s.Height / 2, Z: s.Levels / 2}
}

// CenteredStart returns the window start placing center in the middle of span
// Callers clamp the result
func CenteredStart(center, span int) int {
	return center - span/2
}

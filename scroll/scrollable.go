// Package scroll tracks the visible window over a 3D virtual space
package scroll

import (
	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/vmath"
)

// Scrollable3D holds visible and virtual space sizes and the current scroll offset
// Offset invariant: each axis stays in [0, virtual - visible], collapsing to 0
// when the virtual space is smaller than the visible one
// Not safe for concurrent use; owned by a single render loop
type Scrollable3D struct {
	visible core.Size3D
	virtual core.Size3D
	offset  core.Point3D
}

// New creates scroll state with the offset at the origin
func New(visible, virtual core.Size3D) *Scrollable3D {
	return &Scrollable3D{
		visible: nonNegativeSize(visible),
		virtual: nonNegativeSize(virtual),
	}
}

// VisibleSpaceSize returns the on-screen window size
func (s *Scrollable3D) VisibleSpaceSize() core.Size3D {
	return s.visible
}

// VirtualSpaceSize returns the backing space size
func (s *Scrollable3D) VirtualSpaceSize() core.Size3D {
	return s.virtual
}

// VisibleOffset returns the virtual coordinate mapped to the window origin
func (s *Scrollable3D) VisibleOffset() core.Point3D {
	return s.offset
}

// SetVirtualSpaceSize replaces the virtual space size and re-clamps the offset
func (s *Scrollable3D) SetVirtualSpaceSize(size core.Size3D) {
	s.virtual = nonNegativeSize(size)
	s.clamp()
}

// SetVisibleSpaceSize replaces the window size and re-clamps the offset
func (s *Scrollable3D) SetVisibleSpaceSize(size core.Size3D) {
	s.visible = nonNegativeSize(size)
	s.clamp()
}

// ScrollBy moves the offset by delta, clamping each axis independently
func (s *Scrollable3D) ScrollBy(delta core.Point3D) core.Point3D {
	s.offset = s.offset.Add(delta)
	s.clamp()
	return s.offset
}

// ScrollTo moves the offset to pos, clamping each axis independently
func (s *Scrollable3D) ScrollTo(pos core.Point3D) core.Point3D {
	s.offset = pos
	s.clamp()
	return s.offset
}

// ScrollRightBy moves the window right by n columns
func (s *Scrollable3D) ScrollRightBy(n int) core.Point3D {
	return s.ScrollBy(core.Point3D{X: n})
}

// ScrollLeftBy moves the window left by n columns
func (s *Scrollable3D) ScrollLeftBy(n int) core.Point3D {
	return s.ScrollBy(core.Point3D{X: -n})
}

// ScrollForwardBy moves the window down the rows by n
func (s *Scrollable3D) ScrollForwardBy(n int) core.Point3D {
	return s.ScrollBy(core.Point3D{Y: n})
}

// ScrollBackwardBy moves the window up the rows by n
func (s *Scrollable3D) ScrollBackwardBy(n int) core.Point3D {
	return s.ScrollBy(core.Point3D{Y: -n})
}

// ScrollUpBy raises the window start by n levels
func (s *Scrollable3D) ScrollUpBy(n int) core.Point3D {
	return s.ScrollBy(core.Point3D{Z: n})
}

// ScrollDownBy lowers the window start by n levels
func (s *Scrollable3D) ScrollDownBy(n int) core.Point3D {
	return s.ScrollBy(core.Point3D{Z: -n})
}

// MaxOffset returns the largest valid offset on each axis
func (s *Scrollable3D) MaxOffset() core.Point3D {
	return core.Point3D{
		X: vmath.NonNegative(s.virtual.Width - s.visible.Width),
		Y: vmath.NonNegative(s.virtual.Height - s.visible.Height),
		Z: vmath.NonNegative(s.virtual.Levels - s.visible.Levels),
	}
}

// clamp restores the offset invariant after any size or offset change
func (s *Scrollable3D) clamp() {
	s.offset.X = vmath.ClampSpan(s.offset.X, s.visible.Width, s.virtual.Width)
	s.offset.Y = vmath.ClampSpan(s.offset.Y, s.visible.Height, s.virtual.Height)
	s.offset.Z = vmath.ClampSpan(s.offset.Z, s.visible.Levels, s.virtual.Levels)
}

func nonNegativeSize(s core.Size3D) core.Size3D {
	return core.Size3D{
		Width:  vmath.NonNegative(s.Width),
		Height: vmath.NonNegative(s.Height),
		Levels: vmath.NonNegative(s.Levels),
	}
}

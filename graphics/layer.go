package graphics

import "github.com/lixenwraith/gamearea/core"

// Layer is an image anchored at an absolute screen offset
// Layers are composited in slice order, later entries drawn on top
type Layer struct {
	Image  *TextImage
	Offset core.Point
}

// NewLayer creates a layer at the given screen offset
func NewLayer(img *TextImage, offset core.Point) Layer {
	return Layer{Image: img, Offset: offset}
}

// Area returns the screen region covered by the layer
func (l Layer) Area() core.Area {
	if l.Image == nil {
		return core.Area{X: l.Offset.X, Y: l.Offset.Y}
	}
	return core.NewArea(l.Offset, l.Image.Size())
}

package render

import (
	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

// LayerSource produces the ordered layers of a view
// Satisfied by *component.GameComponent
type LayerSource interface {
	TransformToLayers() ([]graphics.Layer, error)
	Bounds() core.Area
}

// GameAreaRenderer composites a component's projected layers
// A failed projection leaves the component area blank for that frame
type GameAreaRenderer struct {
	source  LayerSource
	dim     float64
	lastErr error
	layers  int
}

// NewGameAreaRenderer creates a renderer for source
func NewGameAreaRenderer(source LayerSource) *GameAreaRenderer {
	return &GameAreaRenderer{source: source}
}

// SetDim darkens the composited view by factor in [0,1]; 0 disables
func (r *GameAreaRenderer) SetDim(factor float64) {
	r.dim = factor
}

// Err returns the error of the last frame, nil on success
func (r *GameAreaRenderer) Err() error {
	return r.lastErr
}

// LayerCount returns the number of layers composited in the last frame
func (r *GameAreaRenderer) LayerCount() int {
	return r.layers
}

// Render implements Renderer
func (r *GameAreaRenderer) Render(ctx Context, frame *Frame) {
	layers, err := r.source.TransformToLayers()
	r.lastErr = err
	if err != nil {
		r.layers = 0
		return
	}
	r.layers = len(layers)

	for _, l := range layers {
		frame.Compose(l)
	}
	if r.dim > 0 {
		frame.Map(r.source.Bounds(), func(c graphics.Cell) graphics.Cell {
			return c.Darken(r.dim)
		})
	}
}

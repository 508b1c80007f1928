// Package projection turns a window of a 3D game area into ordered 2D layers
package projection

import (
	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/gamearea"
	"github.com/lixenwraith/gamearea/graphics"
	"github.com/lixenwraith/gamearea/status"
	"github.com/lixenwraith/gamearea/vmath"
)

// Request describes one projection pass
type Request struct {
	// Offset is the scroll offset; Z is the first visible level
	Offset core.Point3D
	// VirtualSize bounds the level range
	VirtualSize core.Size3D
	// VisibleLevels is the number of levels drawn at once
	VisibleLevels int
	// Size is the 2D window queried from the source
	Size core.Size
	// Position is the screen anchor shared by every produced layer
	Position core.Point
}

// LevelWindow returns the half-open level range [start, end) for a request
// start >= end means nothing is visible
func (r Request) LevelWindow() (start, end int) {
	start = r.Offset.Z
	end = min(start+vmath.NonNegative(r.VisibleLevels), r.VirtualSize.Levels)
	return start, end
}

// Projector reads segments from a source and stacks them per Mode
// Not safe for concurrent use; one render loop drives one projector
type Projector struct {
	source  gamearea.Source
	mode    Mode
	metrics *status.Registry
}

// New creates a projector over source
func New(source gamearea.Source, mode Mode) *Projector {
	return &Projector{source: source, mode: mode}
}

// Source returns the backing game area
func (p *Projector) Source() gamearea.Source {
	return p.source
}

// Mode returns the active projection mode
func (p *Projector) Mode() Mode {
	return p.mode
}

// SetMode switches the projection mode for subsequent passes
func (p *Projector) SetMode(m Mode) {
	p.mode = m
}

// SetMetrics attaches a registry receiving pass and layer counters
func (p *Projector) SetMetrics(r *status.Registry) {
	p.metrics = r
}

// Project produces layers for every level in the request's window, ascending
// Later entries composite on top. A source error aborts the pass and is
// returned unchanged; layers gathered so far are discarded
func (p *Projector) Project(req Request) ([]graphics.Layer, error) {
	start, end := req.LevelWindow()
	if start >= end {
		p.count(0)
		return nil, nil
	}

	layers := make([]graphics.Layer, 0, end-start)
	for level := start; level < end; level++ {
		seg, err := p.source.SegmentAt(core.Point3D{X: req.Offset.X, Y: req.Offset.Y, Z: level}, req.Size)
		if err != nil {
			if p.metrics != nil {
				p.metrics.Add("projection.errors", 1)
			}
			return nil, err
		}
		for _, img := range seg.Layers {
			layers = append(layers, graphics.NewLayer(Transform(img, level, p.mode), req.Position))
		}
	}
	p.count(len(layers))
	return layers, nil
}

func (p *Projector) count(layers int) {
	if p.metrics == nil {
		return
	}
	p.metrics.Add("projection.passes", 1)
	p.metrics.SetGauge("projection.layers", float64(layers))
}

// Transform applies mode to one image of the given level
// Isometric keeps rows [level, height); a level at or past the height yields an empty image
func Transform(img *graphics.TextImage, level int, mode Mode) *graphics.TextImage {
	if mode != Isometric || level <= 0 {
		return img
	}
	size := img.Size()
	return img.SubImage(core.Point{X: 0, Y: level}, size.WithRelativeHeight(-level))
}

// Package component exposes a scrollable 3D game area as a positioned UI element
package component

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/event"
	"github.com/lixenwraith/gamearea/gamearea"
	"github.com/lixenwraith/gamearea/graphics"
	"github.com/lixenwraith/gamearea/parameter"
	"github.com/lixenwraith/gamearea/projection"
	"github.com/lixenwraith/gamearea/scroll"
	"github.com/lixenwraith/gamearea/status"
	"github.com/lixenwraith/gamearea/vmath"
)

// ErrNoSource is returned by New without a game area
var ErrNoSource = errors.New("game component requires a source")

// Projector produces layers for a projection request
// Satisfied by *projection.Projector and *projection.CachedProjector
type Projector interface {
	Project(req projection.Request) ([]graphics.Layer, error)
	Mode() projection.Mode
	SetMode(m projection.Mode)
}

// Options configure a GameComponent
type Options struct {
	Position    core.Point
	VisibleSize core.Size3D
	Source      gamearea.Source

	// Projector defaults to an uncached projection.Projector over Source in Mode
	Projector Projector
	Mode      projection.Mode

	// Emitter receives change notifications; nil discards them
	Emitter event.Emitter

	// Metrics receives focus, scroll and projection counters; optional
	Metrics *status.Registry
}

// GameComponent is a viewport over a 3D game area
// Bounding-box queries delegate to an owned rectangle, scrolling to an owned
// Scrollable3D. Not safe for concurrent use; drive from one UI loop
type GameComponent struct {
	id        uuid.UUID
	bounds    core.Area
	scroll    *scroll.Scrollable3D
	source    gamearea.Source
	projector Projector
	emitter   event.Emitter
	metrics   *status.Registry

	visibleLevelCount int
}

// New creates the component and reads the source's current size
func New(opts Options) (*GameComponent, error) {
	if opts.Source == nil {
		return nil, ErrNoSource
	}
	p := opts.Projector
	if p == nil {
		p = projection.New(opts.Source, opts.Mode)
	}
	e := opts.Emitter
	if e == nil {
		e = event.NopEmitter{}
	}

	levels := visibleLevels(opts.VisibleSize.Levels)
	c := &GameComponent{
		id:                uuid.New(),
		bounds:            core.NewArea(opts.Position, opts.VisibleSize.To2D()),
		scroll:            scroll.New(core.Size3DFrom2D(opts.VisibleSize.To2D(), levels), opts.Source.Size()),
		source:            opts.Source,
		projector:         p,
		emitter:           e,
		metrics:           opts.Metrics,
		visibleLevelCount: levels,
	}
	return c, nil
}

func visibleLevels(requested int) int {
	return max(min(requested, parameter.MaxVisibleLevels), 0)
}

// ID identifies the component as the source of its events
func (c *GameComponent) ID() uuid.UUID {
	return c.id
}

// Source returns the backing game area
func (c *GameComponent) Source() gamearea.Source {
	return c.source
}

// VisibleLevelCount is the number of levels drawn at once, at most MaxVisibleLevels
func (c *GameComponent) VisibleLevelCount() int {
	return c.visibleLevelCount
}

// === Focus ===

// AcceptsFocus always reports true
func (c *GameComponent) AcceptsFocus() bool {
	return true
}

// GiveFocus refreshes the virtual space from the source and announces a change
// Always returns true; emission failures are ignored
func (c *GameComponent) GiveFocus(ev tcell.Event) bool {
	c.RefreshVirtualSpace()
	c.emit(event.EventComponentChange, nil)
	c.count("component.focus")
	return true
}

// TakeFocus is a no-op
func (c *GameComponent) TakeFocus(ev tcell.Event) {}

// ApplyColorTheme is a no-op; game imagery carries its own colors
func (c *GameComponent) ApplyColorTheme(theme graphics.Theme) {}

// RefreshVirtualSpace re-reads the source size into the scroll state
func (c *GameComponent) RefreshVirtualSpace() core.Size3D {
	prev := c.scroll.VirtualSpaceSize()
	next := c.source.Size()
	prevOffset := c.scroll.VisibleOffset()

	c.scroll.SetVirtualSpaceSize(next)
	if c.scroll.VirtualSpaceSize() != prev {
		c.emit(event.EventVirtualSpaceResized, &event.VirtualSpaceResizedPayload{Previous: prev, Current: c.scroll.VirtualSpaceSize()})
	}
	c.scrolled(prevOffset)
	return c.scroll.VirtualSpaceSize()
}

// === Bounds ===

// Bounds returns the on-screen rectangle
func (c *GameComponent) Bounds() core.Area {
	return c.bounds
}

// Position returns the top-left screen cell
func (c *GameComponent) Position() core.Point {
	return c.bounds.Position()
}

// BoundableSize returns the on-screen size
func (c *GameComponent) BoundableSize() core.Size {
	return c.bounds.Size()
}

// ContainsPosition reports whether p lies inside the component
func (c *GameComponent) ContainsPosition(p core.Point) bool {
	return c.bounds.ContainsPoint(p)
}

// ContainsBoundable reports whether b lies entirely inside the component
func (c *GameComponent) ContainsBoundable(b core.Boundable) bool {
	return c.bounds.ContainsArea(b.Bounds())
}

// Intersects reports whether b shares a cell with the component
func (c *GameComponent) Intersects(b core.Boundable) bool {
	return c.bounds.Intersects(b.Bounds())
}

// MoveTo re-anchors the component on screen
func (c *GameComponent) MoveTo(p core.Point) {
	c.bounds = core.NewArea(p, c.bounds.Size())
}

// Resize changes the visible space, re-deriving the visible level count
// with the same ceiling applied at construction
func (c *GameComponent) Resize(visible core.Size3D) {
	prevOffset := c.scroll.VisibleOffset()
	c.visibleLevelCount = visibleLevels(visible.Levels)
	c.bounds = core.NewArea(c.bounds.Position(), visible.To2D())
	c.scroll.SetVisibleSpaceSize(core.Size3DFrom2D(visible.To2D(), c.visibleLevelCount))
	c.scrolled(prevOffset)
	c.emit(event.EventComponentChange, nil)
}

// === Scrolling ===

// VisibleOffset returns the current scroll offset
func (c *GameComponent) VisibleOffset() core.Point3D {
	return c.scroll.VisibleOffset()
}

// VirtualSpaceSize returns the last size read from the source
func (c *GameComponent) VirtualSpaceSize() core.Size3D {
	return c.scroll.VirtualSpaceSize()
}

// VisibleSpaceSize returns the window size with the capped level count
func (c *GameComponent) VisibleSpaceSize() core.Size3D {
	return c.scroll.VisibleSpaceSize()
}

// ScrollBy moves the window by delta, clamped per axis
func (c *GameComponent) ScrollBy(delta core.Point3D) core.Point3D {
	prev := c.scroll.VisibleOffset()
	c.scroll.ScrollBy(delta)
	return c.scrolled(prev)
}

// ScrollTo moves the window to pos, clamped per axis
func (c *GameComponent) ScrollTo(pos core.Point3D) core.Point3D {
	prev := c.scroll.VisibleOffset()
	c.scroll.ScrollTo(pos)
	return c.scrolled(prev)
}

// CenterOn scrolls so p sits in the middle of the window; Z selects the lowest visible level
func (c *GameComponent) CenterOn(p core.Point3D) core.Point3D {
	size := c.bounds.Size()
	return c.ScrollTo(core.Point3D{
		X: vmath.CenteredStart(p.X, size.Width),
		Y: vmath.CenteredStart(p.Y, size.Height),
		Z: p.Z,
	})
}

// ScrollRightBy scrolls along +X
func (c *GameComponent) ScrollRightBy(n int) core.Point3D {
	return c.ScrollBy(core.Point3D{X: n})
}

// ScrollLeftBy scrolls along -X
func (c *GameComponent) ScrollLeftBy(n int) core.Point3D {
	return c.ScrollBy(core.Point3D{X: -n})
}

// ScrollForwardBy scrolls along +Y
func (c *GameComponent) ScrollForwardBy(n int) core.Point3D {
	return c.ScrollBy(core.Point3D{Y: n})
}

// ScrollBackwardBy scrolls along -Y
func (c *GameComponent) ScrollBackwardBy(n int) core.Point3D {
	return c.ScrollBy(core.Point3D{Y: -n})
}

// ScrollUpBy moves the level window up (+Z)
func (c *GameComponent) ScrollUpBy(n int) core.Point3D {
	return c.ScrollBy(core.Point3D{Z: n})
}

// ScrollDownBy moves the level window down (-Z)
func (c *GameComponent) ScrollDownBy(n int) core.Point3D {
	return c.ScrollBy(core.Point3D{Z: -n})
}

func (c *GameComponent) scrolled(prev core.Point3D) core.Point3D {
	cur := c.scroll.VisibleOffset()
	if cur != prev {
		c.emit(event.EventScrolled, &event.ScrolledPayload{Previous: prev, Current: cur})
		c.count("component.scrolls")
	}
	return cur
}

// === Projection ===

// ProjectionMode returns the active mode
func (c *GameComponent) ProjectionMode() projection.Mode {
	return c.projector.Mode()
}

// SetProjectionMode switches mode and announces a change when it differs
func (c *GameComponent) SetProjectionMode(m projection.Mode) {
	if c.projector.Mode() == m {
		return
	}
	c.projector.SetMode(m)
	c.emit(event.EventComponentChange, nil)
}

// Request builds the projection request for the current scroll state
func (c *GameComponent) Request() projection.Request {
	return projection.Request{
		Offset:        c.scroll.VisibleOffset(),
		VirtualSize:   c.scroll.VirtualSpaceSize(),
		VisibleLevels: c.visibleLevelCount,
		Size:          c.bounds.Size(),
		Position:      c.bounds.Position(),
	}
}

// TransformToLayers returns the ordered layers for the current view
// Source errors are returned unchanged and no partial result is produced
func (c *GameComponent) TransformToLayers() ([]graphics.Layer, error) {
	layers, err := c.projector.Project(c.Request())
	if err != nil {
		c.count("component.projection_errors")
		return nil, err
	}
	return layers, nil
}

func (c *GameComponent) emit(t event.EventType, payload any) {
	event.SafeEmit(c.emitter, event.GameEvent{Type: t, Source: c.id, Payload: payload})
}

func (c *GameComponent) count(key string) {
	if c.metrics != nil {
		c.metrics.Add(key, 1)
	}
}

// Package gamearea defines the 3D game area data source consumed by the
// viewport projector, with in-memory and SQLite-backed implementations
package gamearea

import (
	"errors"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

var (
	// ErrLevelOutOfRange is returned when a segment is requested outside [0, levels)
	ErrLevelOutOfRange = errors.New("level out of range")

	// ErrOutOfBounds is returned when a block is written outside the area
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidArea is returned for malformed sizes or block layouts
	ErrInvalidArea = errors.New("invalid game area")

	// ErrClosed is returned by a closed persistent area
	ErrClosed = errors.New("game area closed")
)

// Source provides drawable content of a 3D game area
// Implementations must be deterministic for a fixed offset, size and state,
// but may reflect mutation between calls
type Source interface {
	// Size returns the virtual space extent
	Size() core.Size3D

	// SegmentAt returns the images covering a 2D window of one level
	// offset.Z selects the level; size is the window in cells
	SegmentAt(offset core.Point3D, size core.Size) (Segment, error)
}

// Revisioned is implemented by sources that count their mutations
// Equal revisions guarantee equal segments for equal queries
type Revisioned interface {
	Revision() uint64
}

// Segment is the content of one level window, one image per block layer,
// bottom layer first
type Segment struct {
	Layers []*graphics.TextImage
}

// Block is a single voxel: one cell per block layer, bottom first
// Missing or empty cells are transparent
type Block struct {
	Layers []graphics.Cell
}

// NewBlock creates a block from bottom-to-top cells
func NewBlock(cells ...graphics.Cell) Block {
	return Block{Layers: cells}
}

// Empty reports whether every layer is transparent
func (b Block) Empty() bool {
	for _, c := range b.Layers {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// Top returns the highest non-transparent cell
func (b Block) Top() (graphics.Cell, bool) {
	for i := len(b.Layers) - 1; i >= 0; i-- {
		if !b.Layers[i].Empty() {
			return b.Layers[i], true
		}
	}
	return graphics.EmptyCell, false
}

func validSize(size core.Size3D) bool {
	return size.Width >= 0 && size.Height >= 0 && size.Levels >= 0
}

func inside(size core.Size3D, p core.Point3D) bool {
	return p.X >= 0 && p.X < size.Width &&
		p.Y >= 0 && p.Y < size.Height &&
		p.Z >= 0 && p.Z < size.Levels
}

func newSegment(layers int, size core.Size) Segment {
	seg := Segment{Layers: make([]*graphics.TextImage, layers)}
	for i := range seg.Layers {
		seg.Layers[i] = graphics.NewTextImage(size)
	}
	return seg
}

package gamearea

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

// MemoryArea is a sparse in-memory game area
// Safe for concurrent edits and reads; each read sees a consistent state
type MemoryArea struct {
	mu             sync.RWMutex
	size           core.Size3D
	layersPerBlock int
	blocks         map[core.Point3D]Block
	revision       atomic.Uint64
}

// NewMemoryArea creates an empty area with a fixed number of layers per block
func NewMemoryArea(size core.Size3D, layersPerBlock int) (*MemoryArea, error) {
	if !validSize(size) {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidArea, size)
	}
	if layersPerBlock < 1 {
		return nil, fmt.Errorf("%w: %d layers per block", ErrInvalidArea, layersPerBlock)
	}
	return &MemoryArea{
		size:           size,
		layersPerBlock: layersPerBlock,
		blocks:         make(map[core.Point3D]Block),
	}, nil
}

// Size returns the virtual space extent
func (a *MemoryArea) Size() core.Size3D {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.size
}

// LayersPerBlock returns the number of images per segment
func (a *MemoryArea) LayersPerBlock() int {
	return a.layersPerBlock
}

// Revision returns the mutation counter
func (a *MemoryArea) Revision() uint64 {
	return a.revision.Load()
}

// BlockCount returns the number of stored blocks
func (a *MemoryArea) BlockCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.blocks)
}

// SetSize resizes the area, dropping blocks that fall outside
func (a *MemoryArea) SetSize(size core.Size3D) error {
	if !validSize(size) {
		return fmt.Errorf("%w: size %v", ErrInvalidArea, size)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.size = size
	for p := range a.blocks {
		if !inside(size, p) {
			delete(a.blocks, p)
		}
	}
	a.revision.Add(1)
	return nil
}

// SetBlockAt stores a block; an empty block removes the position
func (a *MemoryArea) SetBlockAt(pos core.Point3D, b Block) error {
	if len(b.Layers) > a.layersPerBlock {
		return fmt.Errorf("%w: block has %d layers, area allows %d", ErrInvalidArea, len(b.Layers), a.layersPerBlock)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if !inside(a.size, pos) {
		return fmt.Errorf("%w: %v in %v", ErrOutOfBounds, pos, a.size)
	}
	if b.Empty() {
		delete(a.blocks, pos)
	} else {
		// Copy so later edits to the caller's slice do not leak in
		a.blocks[pos] = Block{Layers: append([]graphics.Cell(nil), b.Layers...)}
	}
	a.revision.Add(1)
	return nil
}

// BlockAt returns the block stored at pos
func (a *MemoryArea) BlockAt(pos core.Point3D) (Block, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	b, ok := a.blocks[pos]
	return b, ok
}

// RemoveBlockAt clears pos, returning whether a block was present
func (a *MemoryArea) RemoveBlockAt(pos core.Point3D) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.blocks[pos]; !ok {
		return false
	}
	delete(a.blocks, pos)
	a.revision.Add(1)
	return true
}

// EachBlock visits every stored block in unspecified order under the read lock
func (a *MemoryArea) EachBlock(fn func(pos core.Point3D, b Block)) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for p, b := range a.blocks {
		fn(p, b)
	}
}

// SegmentAt renders the window at offset into one image per block layer
// Cells outside the area or without a block are transparent
func (a *MemoryArea) SegmentAt(offset core.Point3D, size core.Size) (Segment, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if offset.Z < 0 || offset.Z >= a.size.Levels {
		return Segment{}, fmt.Errorf("%w: level %d of %d", ErrLevelOutOfRange, offset.Z, a.size.Levels)
	}

	seg := newSegment(a.layersPerBlock, size)
	if size.Empty() || len(a.blocks) == 0 {
		return seg, nil
	}

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			b, ok := a.blocks[core.Point3D{X: offset.X + x, Y: offset.Y + y, Z: offset.Z}]
			if !ok {
				continue
			}
			for i, c := range b.Layers {
				seg.Layers[i].Set(x, y, c)
			}
		}
	}
	return seg, nil
}

package projection

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lixenwraith/gamearea/cache"
	"github.com/lixenwraith/gamearea/gamearea"
	"github.com/lixenwraith/gamearea/graphics"
)

// CachedProjector memoizes Projector output
// Keys cover offset, size, position, level window, mode and, for sources
// implementing gamearea.Revisioned, the source revision; a mutated area is
// never served stale. Sources without revisions are assumed immutable
// Returned layers are shared between hits and must not be modified
type CachedProjector struct {
	inner *Projector
	cache *cache.Cache[[]graphics.Layer]
	ns    string
}

// NewCached wraps inner with c; c may be shared between projectors
func NewCached(inner *Projector, c *cache.Cache[[]graphics.Layer]) *CachedProjector {
	return &CachedProjector{
		inner: inner,
		cache: c,
		ns:    uuid.NewString(),
	}
}

// Projector returns the wrapped projector
func (cp *CachedProjector) Projector() *Projector {
	return cp.inner
}

// Cache returns the backing cache
func (cp *CachedProjector) Cache() *cache.Cache[[]graphics.Layer] {
	return cp.cache
}

// Mode returns the active projection mode
func (cp *CachedProjector) Mode() Mode {
	return cp.inner.Mode()
}

// SetMode switches mode; entries for the other mode stay valid
func (cp *CachedProjector) SetMode(m Mode) {
	cp.inner.SetMode(m)
}

// Project returns cached layers for req, projecting on a miss
// Errors are not cached
func (cp *CachedProjector) Project(req Request) ([]graphics.Layer, error) {
	return cp.cache.GetOrLoad(cp.Key(req), func() ([]graphics.Layer, error) {
		return cp.inner.Project(req)
	})
}

// Key returns the cache key for req under the current mode and revision
func (cp *CachedProjector) Key(req Request) string {
	start, end := req.LevelWindow()
	var rev uint64
	if r, ok := cp.inner.Source().(gamearea.Revisioned); ok {
		rev = r.Revision()
	}
	return fmt.Sprintf("%s|%d,%d|%dx%d|%d,%d|%d-%d|%s|%d",
		cp.ns,
		req.Offset.X, req.Offset.Y,
		req.Size.Width, req.Size.Height,
		req.Position.X, req.Position.Y,
		start, end,
		cp.inner.Mode(),
		rev)
}

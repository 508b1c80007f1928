package render

import (
	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	// Frame counter, starts at 1
	Frame uint64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	Theme graphics.Theme
}

// Screen returns the full screen rectangle
func (c Context) Screen() core.Area {
	return core.Area{Width: c.ScreenWidth, Height: c.ScreenHeight}
}

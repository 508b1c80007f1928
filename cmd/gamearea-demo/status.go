package main

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/gamearea/cache"
	"github.com/lixenwraith/gamearea/component"
	"github.com/lixenwraith/gamearea/render"
	"github.com/lixenwraith/gamearea/status"
)

// statusLine formats the bottom bar
func statusLine(c *component.GameComponent, gr *render.GameAreaRenderer, stats cache.Stats, reg *status.Registry) string {
	var sb strings.Builder
	off := c.VisibleOffset()
	virt := c.VirtualSpaceSize()
	start := off.Z
	end := min(start+c.VisibleLevelCount(), virt.Levels)

	fmt.Fprintf(&sb, " %d,%d z%d-%d/%d | %s | layers %d | cache %d %.0f%%",
		off.X, off.Y, start, max(end-1, start), virt.Levels,
		c.ProjectionMode(), gr.LayerCount(), stats.Size, stats.HitRatio()*100)
	if msg := reg.Labels.Get("demo.message").Load(); msg != "" {
		fmt.Fprintf(&sb, " | %s", msg)
	}
	if err := gr.Err(); err != nil {
		fmt.Fprintf(&sb, " | error: %v", err)
	}
	return sb.String()
}

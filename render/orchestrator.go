package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamearea/graphics"
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	frame     *Frame
	renderers []rendererEntry
	regCount  int
	frameNum  uint64
}

// NewOrchestrator creates an orchestrator sized to screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		frame:     NewFrame(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize re-reads the screen size and syncs the terminal
func (o *Orchestrator) Resize() {
	w, h := o.screen.Size()
	o.frame.Resize(w, h)
	o.screen.Sync()
}

// Frame exposes the compositing target of the last frame
func (o *Orchestrator) Frame() *Frame {
	return o.frame
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *Orchestrator) RenderFrame(theme graphics.Theme) {
	o.frameNum++
	size := o.frame.Size()
	ctx := Context{
		Frame:        o.frameNum,
		ScreenWidth:  size.Width,
		ScreenHeight: size.Height,
		Theme:        theme,
	}

	o.frame.Clear()
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.frame)
	}

	o.frame.Flush(o.screen, theme.Style())
	o.screen.Show()
}

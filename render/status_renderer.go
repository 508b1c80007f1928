package render

import "strings"

// StatusRenderer draws a single line on the bottom screen row
type StatusRenderer struct {
	text    func() string
	visible bool
}

// NewStatusRenderer creates a status line fed by text on every frame
func NewStatusRenderer(text func() string) *StatusRenderer {
	return &StatusRenderer{text: text, visible: true}
}

// SetVisible toggles the status line
func (r *StatusRenderer) SetVisible(v bool) {
	r.visible = v
}

// IsVisible implements VisibilityToggle
func (r *StatusRenderer) IsVisible() bool {
	return r.visible
}

// Render implements Renderer
func (r *StatusRenderer) Render(ctx Context, frame *Frame) {
	if ctx.ScreenHeight == 0 || ctx.ScreenWidth == 0 {
		return
	}
	y := ctx.ScreenHeight - 1
	line := r.text()
	if pad := ctx.ScreenWidth - len([]rune(line)); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	frame.DrawText(0, y, line, ctx.Theme.AccentStyle())
}

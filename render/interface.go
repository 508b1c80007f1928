package render

// Renderer draws one concern of the frame
type Renderer interface {
	Render(ctx Context, frame *Frame)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

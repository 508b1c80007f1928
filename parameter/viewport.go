package parameter

// Viewport projection limits
const (
	// MaxVisibleLevels caps how many depth levels a viewport shows at once
	// Deeper windows are clamped to this count regardless of requested size
	MaxVisibleLevels = 5

	// DefaultViewportWidth is the demo viewport width in cells
	DefaultViewportWidth = 80

	// DefaultViewportHeight is the demo viewport height in cells
	DefaultViewportHeight = 24
)

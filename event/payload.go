package event

import "github.com/lixenwraith/gamearea/core"

// VirtualSpaceResizedPayload carries old and new virtual space sizes
type VirtualSpaceResizedPayload struct {
	Previous core.Size3D
	Current  core.Size3D
}

// ScrolledPayload carries old and new visible offsets
type ScrolledPayload struct {
	Previous core.Point3D
	Current  core.Point3D
}

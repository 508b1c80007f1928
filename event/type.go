package event

import "github.com/google/uuid"

// EventType represents the kind of UI notification
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// EventComponentChange signals a component needs to be redrawn
	// Trigger: GameComponent gaining focus | Payload: nil
	EventComponentChange

	// EventVirtualSpaceResized signals the backing area reported a new size
	// Trigger: GameComponent size refresh when the size differs | Payload: *VirtualSpaceResizedPayload
	EventVirtualSpaceResized

	// EventScrolled signals the visible offset moved
	// Trigger: GameComponent scroll operations that change the offset | Payload: *ScrolledPayload
	EventScrolled
)

var typeNames = map[EventType]string{
	EventNone:                "None",
	EventComponentChange:     "ComponentChange",
	EventVirtualSpaceResized: "VirtualSpaceResized",
	EventScrolled:            "Scrolled",
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a notification published on the bus
// Source identifies the emitting component; payload is event specific
type GameEvent struct {
	Type    EventType
	Source  uuid.UUID
	Payload any
}

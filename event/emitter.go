package event

// Emitter is the publish-only side of the event bus
// Emit must not block and must not report failure; delivery is fire-and-forget
type Emitter interface {
	Emit(ev GameEvent)
}

// EmitterFunc adapts a function to Emitter
type EmitterFunc func(ev GameEvent)

// Emit calls f(ev)
func (f EmitterFunc) Emit(ev GameEvent) {
	f(ev)
}

// NopEmitter discards every event
type NopEmitter struct{}

// Emit does nothing
func (NopEmitter) Emit(GameEvent) {}

// SafeEmit publishes ev and swallows any panic raised by the emitter
// so a faulty subscriber chain never aborts the caller
func SafeEmit(e Emitter, ev GameEvent) {
	if e == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	e.Emit(ev)
}

package event

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/lixenwraith/gamearea/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	src := uuid.New()

	q.Emit(GameEvent{Type: EventComponentChange, Source: src})
	q.Emit(GameEvent{Type: EventScrolled, Source: src})

	if q.Len() != 2 {
		t.Errorf("Expected 2 pending, got %d", q.Len())
	}
	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventComponentChange || events[1].Type != EventScrolled {
		t.Errorf("Expected FIFO order, got %v then %v", events[0].Type, events[1].Type)
	}
	if events[0].Source != src {
		t.Error("Expected source identity preserved")
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventScrolled, Payload: i})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if first := events[0].Payload.(int); first != 10 {
		t.Errorf("Expected oldest surviving payload 10, got %d", first)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

func TestConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 32; i++ {
				q.Emit(GameEvent{Type: EventComponentChange})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 128 {
		t.Errorf("Expected 128 events, got %d", got)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventComponentChange.String() != "ComponentChange" {
		t.Errorf("Expected ComponentChange, got %s", EventComponentChange)
	}
	if EventType(999).String() != "Unknown" {
		t.Error("Expected Unknown for unregistered type")
	}
}

func TestSafeEmitRecoversPanic(t *testing.T) {
	panicky := EmitterFunc(func(GameEvent) { panic("subscriber failure") })
	SafeEmit(panicky, GameEvent{Type: EventComponentChange})
	SafeEmit(nil, GameEvent{Type: EventComponentChange})
	SafeEmit(NopEmitter{}, GameEvent{Type: EventComponentChange})
}

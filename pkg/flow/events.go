package flow

type EventType int

const (
	EventStateChanged EventType = iota
	EventHit
	EventFell
	EventLevelWon
	EventWorldUnlocked
	EventMenuSelect
)

type Event struct {
	Type  EventType
	State State
	Data  int // coins for wins, world number for unlocks
}

type EventHandler func(Event)

// EventBus fans events out to subscribers synchronously.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

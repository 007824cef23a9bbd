package game

import (
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

type EventType int

const (
	EventRoundStarted EventType = iota
	EventFoodEaten
	EventRoundOver
)

type Event struct {
	Type  EventType
	Round string
	Food  types.Position     // new food position for EventFoodEaten
	Stats manager.RoundStats // set for EventRoundOver
}

type EventHandler func(Event)

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

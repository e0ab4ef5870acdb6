package event

type TurnChangedPayload struct {
	Seat      int
	Clockwise bool
}

type TurnChangedListener interface {
	OnTurnChanged(TurnChangedPayload)
}

type turnChangedEmitter struct {
	listeners []TurnChangedListener
}

func (e *turnChangedEmitter) AddListener(listener TurnChangedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnChangedEmitter) Emit(payload TurnChangedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnChanged(payload)
	}
}

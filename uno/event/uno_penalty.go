package event

import "github.com/ratel-online/uno/uno/card"

type UnoPenaltyPayload struct {
	Seat  int
	Drawn []card.Card
}

type UnoPenaltyListener interface {
	OnUnoPenalty(UnoPenaltyPayload)
}

type unoPenaltyEmitter struct {
	listeners []UnoPenaltyListener
}

func (e *unoPenaltyEmitter) AddListener(listener UnoPenaltyListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *unoPenaltyEmitter) Emit(payload UnoPenaltyPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoPenalty(payload)
	}
}

package event

import "github.com/ratel-online/uno/uno/card"

type CardDrawnPayload struct {
	Seat int
	Card card.Card
}

type CardDrawnListener interface {
	OnCardDrawn(CardDrawnPayload)
}

type cardDrawnEmitter struct {
	listeners []CardDrawnListener
}

func (e *cardDrawnEmitter) AddListener(listener CardDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardDrawnEmitter) Emit(payload CardDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardDrawn(payload)
	}
}

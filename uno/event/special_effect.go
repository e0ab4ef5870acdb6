package event

import "github.com/ratel-online/uno/uno/card"

type SpecialEffectPayload struct {
	Seat   int
	Card   card.Card
	Effect card.Type
}

type SpecialEffectListener interface {
	OnSpecialEffect(SpecialEffectPayload)
}

type specialEffectEmitter struct {
	listeners []SpecialEffectListener
}

func (e *specialEffectEmitter) AddListener(listener SpecialEffectListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *specialEffectEmitter) Emit(payload SpecialEffectPayload) {
	for _, listener := range e.listeners {
		listener.OnSpecialEffect(payload)
	}
}

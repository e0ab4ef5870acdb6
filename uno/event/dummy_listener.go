package event

// DummyListener records every payload it receives, in order.
type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) record(payload interface{}) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload)           { l.record(payload) }
func (l *DummyListener) OnCardDrawn(payload CardDrawnPayload)             { l.record(payload) }
func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) { l.record(payload) }
func (l *DummyListener) OnColorPicked(payload ColorPickedPayload)         { l.record(payload) }
func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload)       { l.record(payload) }
func (l *DummyListener) OnTurnChanged(payload TurnChangedPayload)         { l.record(payload) }
func (l *DummyListener) OnPhaseChanged(payload PhaseChangedPayload)       { l.record(payload) }
func (l *DummyListener) OnSpecialEffect(payload SpecialEffectPayload)     { l.record(payload) }
func (l *DummyListener) OnGameOver(payload GameOverPayload)               { l.record(payload) }
func (l *DummyListener) OnUnoDeclared(payload UnoDeclaredPayload)         { l.record(payload) }
func (l *DummyListener) OnUnoPenalty(payload UnoPenaltyPayload)           { l.record(payload) }
func (l *DummyListener) OnDeckReshuffled(payload DeckReshuffledPayload)   { l.record(payload) }

package event

// Bus groups the emitters of one game session. Listeners are called
// synchronously in registration order.
type Bus struct {
	CardPlayed      *cardPlayedEmitter
	CardDrawn       *cardDrawnEmitter
	FirstCardPlayed *firstCardPlayedEmitter
	ColorPicked     *colorPickedEmitter
	PlayerPassed    *playerPassedEmitter
	TurnChanged     *turnChangedEmitter
	PhaseChanged    *phaseChangedEmitter
	SpecialEffect   *specialEffectEmitter
	GameOver        *gameOverEmitter
	UnoDeclared     *unoDeclaredEmitter
	UnoPenalty      *unoPenaltyEmitter
	DeckReshuffled  *deckReshuffledEmitter
}

func NewBus() *Bus {
	return &Bus{
		CardPlayed:      &cardPlayedEmitter{},
		CardDrawn:       &cardDrawnEmitter{},
		FirstCardPlayed: &firstCardPlayedEmitter{},
		ColorPicked:     &colorPickedEmitter{},
		PlayerPassed:    &playerPassedEmitter{},
		TurnChanged:     &turnChangedEmitter{},
		PhaseChanged:    &phaseChangedEmitter{},
		SpecialEffect:   &specialEffectEmitter{},
		GameOver:        &gameOverEmitter{},
		UnoDeclared:     &unoDeclaredEmitter{},
		UnoPenalty:      &unoPenaltyEmitter{},
		DeckReshuffled:  &deckReshuffledEmitter{},
	}
}

// Subscribe registers listener with every emitter whose listener interface it
// implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardDrawnListener); ok {
		b.CardDrawn.AddListener(l)
	}
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(TurnChangedListener); ok {
		b.TurnChanged.AddListener(l)
	}
	if l, ok := listener.(PhaseChangedListener); ok {
		b.PhaseChanged.AddListener(l)
	}
	if l, ok := listener.(SpecialEffectListener); ok {
		b.SpecialEffect.AddListener(l)
	}
	if l, ok := listener.(GameOverListener); ok {
		b.GameOver.AddListener(l)
	}
	if l, ok := listener.(UnoDeclaredListener); ok {
		b.UnoDeclared.AddListener(l)
	}
	if l, ok := listener.(UnoPenaltyListener); ok {
		b.UnoPenalty.AddListener(l)
	}
	if l, ok := listener.(DeckReshuffledListener); ok {
		b.DeckReshuffled.AddListener(l)
	}
}

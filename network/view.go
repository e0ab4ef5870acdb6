package network

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

type StateView struct {
	Top         string   `json:"top,omitempty"`
	Hand        []string `json:"hand"`
	Players     []string `json:"players"`
	HandCounts  []int    `json:"handCounts"`
	CurrentSeat int      `json:"currentSeat"`
	Clockwise   bool     `json:"clockwise"`
	DrawPile    int      `json:"drawPile"`
	Phase       string   `json:"phase"`
}

func NewStateView(state game.State) StateView {
	view := StateView{
		Hand:        cardNames(state.CurrentPlayerHand),
		Players:     state.PlayerSequence,
		HandCounts:  state.PlayerHandCounts,
		CurrentSeat: state.CurrentSeat,
		Clockwise:   state.Clockwise,
		DrawPile:    state.DrawPileCount,
		Phase:       state.Phase.String(),
	}
	if state.LastPlayedCard != nil {
		view.Top = state.LastPlayedCard.Name()
	}
	return view
}

func cardNames(cards []card.Card) []string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.Name())
	}
	return names
}

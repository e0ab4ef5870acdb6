package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// ChooseCardToPlay returns the first card in hand order that can be played on
// top. ok is false when nothing in the hand is playable.
func ChooseCardToPlay(hand []card.Card, top *card.Card) (chosen card.Card, ok bool) {
	for _, candidate := range hand {
		if candidate.CanPlayOn(top) {
			return candidate, true
		}
	}
	return card.Card{}, false
}

// ChooseColor picks the most frequent color among the hand's non-wild cards.
// Ties go to the earlier color in color.All; an all-wild or empty hand picks red.
func ChooseColor(hand []card.Card) color.Color {
	colorCounts := make(map[color.Color]int, len(color.All))
	for _, handCard := range hand {
		if handCard.IsWild() {
			continue
		}
		colorCounts[handCard.Color]++
	}

	mostFrequentColor := color.Red
	mostFrequentColorAmount := 0
	for _, availableColor := range color.All {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}

// ShouldCallUno reports whether playing one card from a hand of handSize
// leaves a single card.
func ShouldCallUno(handSize int) bool {
	return handSize == 2
}

package game

import (
	"github.com/ratel-online/uno/uno/card"
)

func Playable(candidateCard card.Card, top *card.Card) bool {
	return candidateCard.CanPlayOn(top)
}

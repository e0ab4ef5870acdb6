package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Pile is the discard pile. Its last card is the current top card.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(card card.Card) {
	p.cards[len(p.cards)-1] = card
}

// Top returns nil while the pile is empty.
func (p *Pile) Top() *card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	top := p.cards[pileSize-1]
	return &top
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// TakeAllButTop removes every card under the top card and returns them.
// Wild cards come back without their declared color.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	under := p.cards[:len(p.cards)-1]
	recycled := make([]card.Card, len(under))
	for index, c := range under {
		if c.IsWild() {
			c = c.WithColor(color.None)
		}
		recycled[index] = c
	}
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return recycled
}

package game

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the draw pile. The head of the slice is the next card drawn.
type Deck struct {
	cards []card.Card
}

func NewDeck(rng *rand.Rand) *Deck {
	cards := BuildDeck()
	Shuffle(cards, rng)
	return &Deck{cards: cards}
}

func newDeckOf(cards []card.Card) *Deck {
	return &Deck{cards: cards}
}

// DrawOne takes the head of the pile. ok is false when the pile is empty.
func (d *Deck) DrawOne() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	drawn := d.cards[0]
	d.cards = d.cards[1:]
	return drawn, true
}

// Draw takes up to amount cards from the head.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

func (d *Deck) Append(cards ...card.Card) {
	d.cards = append(d.cards, cards...)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// SelectFirstTopCard removes and returns the first non-wild card from the
// head of the pile.
func (d *Deck) SelectFirstTopCard() (card.Card, bool) {
	for index, candidate := range d.cards {
		if candidate.IsWild() {
			continue
		}
		d.cards = append(d.cards[:index], d.cards[index+1:]...)
		return candidate, true
	}
	return card.Card{}, false
}

// BuildDeck returns the 108 standard cards in a fixed order: per color the
// number cards then the action cards, followed by the wild cards.
func BuildDeck() []card.Card {
	cards := make([]card.Card, 0, 108)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	return append(cards,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	)
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

// Shuffle is an in-place Fisher-Yates shuffle.
func Shuffle(cards []card.Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

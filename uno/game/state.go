package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// State is a read-only snapshot of the table as seen from one seat.
type State struct {
	Seat              int
	LastPlayedCard    *card.Card
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  []int
	CurrentSeat       int
	Clockwise         bool
	DrawPileCount     int
	Phase             consts.GamePhase
}

func (s State) String() string {
	var lines []string
	if s.LastPlayedCard != nil {
		lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))
	}

	var playerStatuses []string
	for seat, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[seat])
		if seat == s.CurrentSeat {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	direction := "clockwise"
	if !s.Clockwise {
		direction = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", direction, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Draw pile: %d card(s)", s.DrawPileCount))
	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}

type Stats struct {
	CardsPlayed int
	CardsDrawn  int
	HandSizes   []int
}

func (g *Game) Snapshot(seat int) State {
	var hand []card.Card
	if g.validSeat(seat) {
		hand = g.hands[seat].Cards()
	}
	names := make([]string, len(g.names))
	copy(names, g.names)
	return State{
		Seat:              seat,
		LastPlayedCard:    g.pile.Top(),
		CurrentPlayerHand: hand,
		PlayerSequence:    names,
		PlayerHandCounts:  g.HandSizes(),
		CurrentSeat:       g.players.Current(),
		Clockwise:         g.players.Clockwise(),
		DrawPileCount:     g.deck.Size(),
		Phase:             g.phase,
	}
}

func (g *Game) Config() Config {
	return g.config
}

func (g *Game) Phase() consts.GamePhase {
	return g.phase
}

func (g *Game) Current() int {
	return g.players.Current()
}

// NextSeat is the seat the turn passes to if nothing skips it.
func (g *Game) NextSeat() int {
	return g.players.Peek()
}

func (g *Game) Clockwise() bool {
	return g.players.Clockwise()
}

// Top returns the current top card; ok is false before the first discard.
func (g *Game) Top() (top card.Card, ok bool) {
	if t := g.pile.Top(); t != nil {
		return *t, true
	}
	return card.Card{}, false
}

func (g *Game) DrawPileCount() int {
	return g.deck.Size()
}

func (g *Game) DiscardPileCount() int {
	return g.pile.Size()
}

func (g *Game) DiscardPile() []card.Card {
	return g.pile.Cards()
}

func (g *Game) Hand(seat int) []card.Card {
	if !g.validSeat(seat) {
		return nil
	}
	return g.hands[seat].Cards()
}

// PlayableCards lists the cards of seat that may go on the current top card.
func (g *Game) PlayableCards(seat int) []card.Card {
	if !g.validSeat(seat) {
		return nil
	}
	return g.hands[seat].PlayableCards(g.pile.Top())
}

func (g *Game) HandSizes() []int {
	sizes := make([]int, len(g.hands))
	for seat, hand := range g.hands {
		sizes[seat] = hand.Size()
	}
	return sizes
}

// TotalCards counts every card on the table. It stays at the deck size for
// the whole game.
func (g *Game) TotalCards() int {
	total := g.deck.Size() + g.pile.Size()
	for _, hand := range g.hands {
		total += hand.Size()
	}
	return total
}

func (g *Game) Names() []string {
	names := make([]string, len(g.names))
	copy(names, g.names)
	return names
}

func (g *Game) Name(seat int) string {
	if !g.validSeat(seat) {
		return ""
	}
	return g.names[seat]
}

func (g *Game) WaitingForColor() bool {
	return g.waitingForColor
}

// PendingColorSeat returns the seat that owes a color declaration.
func (g *Game) PendingColorSeat() (seat int, ok bool) {
	if !g.waitingForColor {
		return -1, false
	}
	return g.colorSeat, true
}

func (g *Game) HasCalledUno(seat int) bool {
	return g.validSeat(seat) && g.calledUno[seat]
}

func (g *Game) Winner() (seat int, ok bool) {
	return g.winner, g.winner >= 0
}

func (g *Game) Stats() Stats {
	return Stats{
		CardsPlayed: g.cardsPlayed,
		CardsDrawn:  g.cardsDrawn,
		HandSizes:   g.HandSizes(),
	}
}

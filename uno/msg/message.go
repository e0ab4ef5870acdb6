package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCard(card card.Card) string {
	return Sprintfln("You drew %s!", card)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card, hand []card.Card) string {
	return Sprintlns([]string{
		fmt.Sprintf("%s, none of your cards match %s!", playerName, lastPlayedCard),
		fmt.Sprintf("Your hand is %s", hand),
	})
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCard(playerName string) string {
	return Sprintfln("%s drew a card!", playerName)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) PlayerMustDraw(playerName string, amount int) string {
	return Sprintfln("%s must draw %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerMustPickColor(playerName string) string {
	return Sprintfln("%s must pick a color!", playerName)
}

func (m MessageWriter) PlayerDeclaredUno(playerName string) string {
	return Sprintfln("%s shouted UNO!", playerName)
}

func (m MessageWriter) PlayerForgotUno(playerName string) string {
	return Sprintfln("%s forgot to shout UNO and draws a card!", playerName)
}

func (m MessageWriter) DeckReshuffled(recycled int) string {
	return Sprintfln("Draw pile ran out, %d discarded cards were shuffled back in!", recycled)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func (m MessageWriter) GameStats(cardsPlayed int, cardsDrawn int) string {
	return Sprintfln("%d card(s) played, %d card(s) drawn.", cardsPlayed, cardsDrawn)
}

// CardSelection lists hand with one label per card, in hand order.
func (m MessageWriter) CardSelection(labels []string, hand []card.Card, playable func(card.Card) bool) string {
	lines := []string{"Select a card to play:"}
	for index, handCard := range hand {
		line := fmt.Sprintf("%s (enter %s)", handCard, labels[index])
		if !playable(handCard) {
			line += " -"
		}
		lines = append(lines, line)
	}
	lines = append(lines, "Enter 'draw' to draw a card, 'uno <label>' to shout UNO and play, 'state' for the table.")
	return Sprintlns(lines)
}

func (m MessageWriter) ColorSelection() string {
	return Sprintfln(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}

func (m MessageWriter) InvalidInput(input string, reason string) string {
	return Sprintfln("'%s': %s", strings.TrimSpace(input), strings.TrimSpace(reason))
}

func Sprintfln(format string, args ...interface{}) string {
	return Sprintln(fmt.Sprintf(format, args...))
}

func Sprintlns(lines []string) string {
	return Sprintln(strings.Join(lines, "\n"))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

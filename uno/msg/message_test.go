package msg_test

import (
	"testing"

	fcolor "github.com/fatih/color"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/stretchr/testify/require"
)

func init() {
	fcolor.NoColor = true
}

func TestMessages(t *testing.T) {
	scenarios := []struct {
		description     string
		message         string
		expectedMessage string
	}{
		{
			description:     "played_card",
			message:         msg.Message.PlayerPlayedCard("Jinx", card.NewNumberCard(color.Red, 5)),
			expectedMessage: "Jinx played [5](red)!\n",
		},
		{
			description:     "picked_color",
			message:         msg.Message.PlayerPickedColor("Zoe", color.Blue),
			expectedMessage: "Zoe picked color blue(blue)!\n",
		},
		{
			description:     "human_drew_card",
			message:         msg.Message.HumanPlayerDrewCard(card.NewSkipCard(color.Green)),
			expectedMessage: "You drew (/)(green)!\n",
		},
		{
			description:     "winner",
			message:         msg.Message.WinnerFound("Lulu"),
			expectedMessage: "Lulu wins!\n",
		},
		{
			description:     "invalid_input",
			message:         msg.Message.InvalidInput(" Z ", "No card at that position. "),
			expectedMessage: "'Z': No card at that position.\n",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedMessage, scenario.message)
		})
	}
}

func TestCardSelection(t *testing.T) {
	hand := []card.Card{card.NewNumberCard(color.Red, 1), card.NewWildCard()}
	selection := msg.Message.CardSelection([]string{"A", "B"}, hand, func(c card.Card) bool {
		return c.IsWild()
	})
	require.Equal(t, "Select a card to play:\n"+
		"[1](red) (enter A) -\n"+
		"(*) (enter B)\n"+
		"Enter 'draw' to draw a card, 'uno <label>' to shout UNO and play, 'state' for the table.\n", selection)
}

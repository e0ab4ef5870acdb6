package player_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

func TestChooseCardToPlay(t *testing.T) {
	top := card.NewNumberCard(color.Red, 5)

	t.Run("picks_the_first_playable_card_in_hand_order", func(t *testing.T) {
		hand := []card.Card{
			card.NewNumberCard(color.Blue, 1),
			card.NewWildCard(),
			card.NewNumberCard(color.Red, 9),
		}
		chosen, ok := player.ChooseCardToPlay(hand, &top)
		require.True(t, ok)
		require.Equal(t, card.NewWildCard(), chosen)
	})

	t.Run("reports_a_hand_without_playable_cards", func(t *testing.T) {
		hand := []card.Card{card.NewNumberCard(color.Blue, 1), card.NewSkipCard(color.Green)}
		_, ok := player.ChooseCardToPlay(hand, &top)
		require.False(t, ok)
	})

	t.Run("reports_an_empty_hand", func(t *testing.T) {
		_, ok := player.ChooseCardToPlay(nil, &top)
		require.False(t, ok)
	})
}

func TestChooseColor(t *testing.T) {
	scenarios := []struct {
		description   string
		hand          []card.Card
		expectedColor color.Color
	}{
		{
			description:   "most_frequent_color",
			hand:          []card.Card{card.NewNumberCard(color.Green, 1), card.NewSkipCard(color.Green), card.NewNumberCard(color.Blue, 3)},
			expectedColor: color.Green,
		},
		{
			description:   "tie_goes_to_red_before_blue",
			hand:          []card.Card{card.NewNumberCard(color.Blue, 1), card.NewNumberCard(color.Red, 3)},
			expectedColor: color.Red,
		},
		{
			description:   "tie_goes_to_green_before_yellow",
			hand:          []card.Card{card.NewNumberCard(color.Yellow, 1), card.NewNumberCard(color.Green, 3)},
			expectedColor: color.Green,
		},
		{
			description:   "wild_cards_are_not_counted",
			hand:          []card.Card{card.NewWildCard().WithColor(color.Blue), card.NewWildDrawFourCard(), card.NewNumberCard(color.Yellow, 2)},
			expectedColor: color.Yellow,
		},
		{
			description:   "only_wild_cards_default_to_red",
			hand:          []card.Card{card.NewWildCard(), card.NewWildDrawFourCard()},
			expectedColor: color.Red,
		},
		{
			description:   "empty_hand_defaults_to_red",
			hand:          nil,
			expectedColor: color.Red,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedColor, player.ChooseColor(scenario.hand))
		})
	}
}

func TestShouldCallUno(t *testing.T) {
	require.True(t, player.ShouldCallUno(2))
	require.False(t, player.ShouldCallUno(1))
	require.False(t, player.ShouldCallUno(3))
}

func TestSeatNames(t *testing.T) {
	t.Run("puts_the_human_first", func(t *testing.T) {
		names := player.SeatNames(4, "Alex", rand.New(rand.NewSource(1)))
		require.Len(t, names, 4)
		require.Equal(t, "Alex", names[0])
	})

	t.Run("defaults_the_human_name", func(t *testing.T) {
		names := player.SeatNames(2, "", rand.New(rand.NewSource(1)))
		require.Equal(t, "You", names[0])
	})

	t.Run("gives_distinct_computer_names", func(t *testing.T) {
		names := player.SeatNames(6, "", rand.New(rand.NewSource(2)))
		seen := map[string]bool{}
		for _, name := range names {
			require.False(t, seen[name], name)
			seen[name] = true
		}
	})
}

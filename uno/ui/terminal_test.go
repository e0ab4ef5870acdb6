package ui_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	t.Run("returns_lines_in_order", func(t *testing.T) {
		out := &bytes.Buffer{}
		terminal := ui.NewTerminal(strings.NewReader("A\ndraw\n"), out, 0)

		first, err := terminal.Ask(context.Background(), "> ", 0)
		require.NoError(t, err)
		require.Equal(t, "A", first)
		second, err := terminal.Ask(context.Background(), "> ", 0)
		require.NoError(t, err)
		require.Equal(t, "draw", second)
		require.Equal(t, "> > ", out.String())
	})

	t.Run("reports_the_end_of_input", func(t *testing.T) {
		terminal := ui.NewTerminal(strings.NewReader(""), io.Discard, 0)
		_, err := terminal.Ask(context.Background(), "> ", 0)
		require.ErrorIs(t, err, consts.ErrorsChanClosed)
	})

	t.Run("turns_exit_into_an_exit_error", func(t *testing.T) {
		terminal := ui.NewTerminal(strings.NewReader(" EXIT \n"), io.Discard, 0)
		_, err := terminal.Ask(context.Background(), "> ", 0)
		require.ErrorIs(t, err, consts.ErrorsExist)
	})

	t.Run("times_out", func(t *testing.T) {
		reader, writer := io.Pipe()
		defer writer.Close()
		terminal := ui.NewTerminal(reader, io.Discard, 0)
		_, err := terminal.Ask(context.Background(), "> ", 10*time.Millisecond)
		require.ErrorIs(t, err, consts.ErrorsTimeout)
	})

	t.Run("stops_with_the_context", func(t *testing.T) {
		reader, writer := io.Pipe()
		defer writer.Close()
		terminal := ui.NewTerminal(reader, io.Discard, 0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := terminal.Ask(ctx, "> ", 0)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestWrite(t *testing.T) {
	out := &bytes.Buffer{}
	terminal := ui.NewTerminal(strings.NewReader(""), out, 0)
	require.NoError(t, terminal.Write("Jinx passed!\n"))
	require.NoError(t, terminal.ShowState(game.State{
		PlayerSequence:   []string{"You"},
		PlayerHandCounts: []int{3},
		Clockwise:        true,
	}))
	require.Equal(t, "Jinx passed!\n"+
		"Turn order (clockwise): *You (3 card(s))\n"+
		"Draw pile: 0 card(s)\n"+
		"Your hand: []\n", out.String())
}

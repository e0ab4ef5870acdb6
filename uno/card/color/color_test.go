package color_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	scenarios := []struct {
		description   string
		input         string
		expectedColor color.Color
		expectError   bool
	}{
		{description: "full_name", input: "red", expectedColor: color.Red},
		{description: "upper_case", input: "BLUE", expectedColor: color.Blue},
		{description: "surrounding_spaces", input: "  green ", expectedColor: color.Green},
		{description: "first_letter", input: "y", expectedColor: color.Yellow},
		{description: "unknown_color", input: "purple", expectError: true},
		{description: "empty_input", input: "", expectError: true},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			c, err := color.ByName(scenario.input)
			if scenario.expectError {
				require.Error(t, err)
				require.Equal(t, color.None, c)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expectedColor, c)
		})
	}
}

func TestValid(t *testing.T) {
	for _, c := range color.All {
		require.True(t, c.Valid(), c.Name())
	}
	require.False(t, color.None.Valid())
	require.Equal(t, "none", color.None.Name())
}

func TestAllOrder(t *testing.T) {
	require.Equal(t, []color.Color{color.Red, color.Blue, color.Green, color.Yellow}, color.All)
}

package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
)

// Config is supplied once when a session starts.
type Config struct {
	PlayerCount     int `yaml:"player_count"`
	InitialHandSize int `yaml:"initial_hand_size"`
	// EnableStrictRules turns on the UNO declaration penalty.
	EnableStrictRules bool `yaml:"enable_strict_rules"`
}

func DefaultConfig() Config {
	return Config{
		PlayerCount:       consts.DefaultPlayers,
		InitialHandSize:   consts.DefaultHandSize,
		EnableStrictRules: true,
	}
}

// Validate rejects a configuration before any card is dealt. Enough cards
// must stay in the draw pile to find a non-wild starting card.
func (c Config) Validate() error {
	if c.PlayerCount < consts.MinPlayers || c.PlayerCount > consts.MaxPlayers {
		return fmt.Errorf("%d players: %w", c.PlayerCount, consts.ErrorsPlayerCountInvalid)
	}
	if c.InitialHandSize < 1 || c.InitialHandSize*c.PlayerCount > consts.DeckSize-9 {
		return fmt.Errorf("%d cards for %d players: %w", c.InitialHandSize, c.PlayerCount, consts.ErrorsHandSizeInvalid)
	}
	return nil
}

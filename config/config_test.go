package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func lookupIn(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func TestDefault(t *testing.T) {
	c := config.Default()
	require.Equal(t, 4, c.Game.PlayerCount)
	require.Equal(t, 7, c.Game.InitialHandSize)
	require.True(t, c.Game.EnableStrictRules)
	require.NoError(t, c.Validate())
	require.Equal(t, logrus.InfoLevel, c.Level())
}

func TestLoad(t *testing.T) {
	t.Run("reads_a_yaml_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "uno.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
game:
  player_count: 3
  initial_hand_size: 5
  enable_strict_rules: false
server:
  tcp_addr: ":7000"
display:
  delay: 250ms
  human_name: Alex
seed: 42
log_level: debug
`), 0o600))

		c, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, 3, c.Game.PlayerCount)
		require.Equal(t, 5, c.Game.InitialHandSize)
		require.False(t, c.Game.EnableStrictRules)
		require.Equal(t, ":7000", c.Server.TCPAddr)
		require.Equal(t, ":9998", c.Server.WSAddr)
		require.Equal(t, 250*time.Millisecond, c.Display.Delay)
		require.Equal(t, "Alex", c.Display.HumanName)
		require.Equal(t, int64(42), c.Seed)
		require.Equal(t, logrus.DebugLevel, c.Level())
	})

	t.Run("rejects_an_invalid_player_count", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "uno.yaml")
		require.NoError(t, os.WriteFile(path, []byte("game:\n  player_count: 8\n"), 0o600))
		_, err := config.Load(path)
		require.ErrorIs(t, err, consts.ErrorsPlayerCountInvalid)
	})

	t.Run("rejects_broken_yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "uno.yaml")
		require.NoError(t, os.WriteFile(path, []byte("game: [\n"), 0o600))
		_, err := config.Load(path)
		require.Error(t, err)
	})

	t.Run("fails_on_a_missing_file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestOverride(t *testing.T) {
	t.Run("applies_dotenv_values", func(t *testing.T) {
		env, err := godotenv.Unmarshal("UNO_PLAYERS=2\nUNO_HAND_SIZE=9\nUNO_STRICT=false\nUNO_DELAY=0s\nUNO_SEED=7\nUNO_WS_ADDR=:8000\nUNO_LOG_LEVEL=warn\n")
		require.NoError(t, err)

		c := config.Default()
		require.NoError(t, c.Override(lookupIn(env)))
		require.Equal(t, 2, c.Game.PlayerCount)
		require.Equal(t, 9, c.Game.InitialHandSize)
		require.False(t, c.Game.EnableStrictRules)
		require.Equal(t, time.Duration(0), c.Display.Delay)
		require.Equal(t, int64(7), c.Seed)
		require.Equal(t, ":8000", c.Server.WSAddr)
		require.Equal(t, logrus.WarnLevel, c.Level())
		require.NoError(t, c.Validate())
	})

	t.Run("rejects_malformed_numbers", func(t *testing.T) {
		c := config.Default()
		require.Error(t, c.Override(lookupIn(map[string]string{"UNO_PLAYERS": "four"})))
		require.Error(t, c.Override(lookupIn(map[string]string{"UNO_STRICT": "maybe"})))
		require.Error(t, c.Override(lookupIn(map[string]string{"UNO_DELAY": "soon"})))
	})

	t.Run("rejects_an_unknown_log_level", func(t *testing.T) {
		c := config.Default()
		require.NoError(t, c.Override(lookupIn(map[string]string{"UNO_LOG_LEVEL": "loud"})))
		require.Error(t, c.Validate())
	})
}

func TestSessions(t *testing.T) {
	c := config.Default()
	c.Display.HumanName = "Alex"

	local := c.Session()
	require.Equal(t, "Alex", local.HumanName)
	require.Zero(t, local.PlayTimeout)

	remote := c.RemoteSession("Sam")
	require.Equal(t, "Sam", remote.HumanName)
	require.Equal(t, consts.PlayTimeout, remote.PlayTimeout)
	require.Equal(t, consts.ColorTimeout, remote.ColorTimeout)
	require.Equal(t, c.Game, remote.Game)
}

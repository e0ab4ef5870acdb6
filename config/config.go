package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/uno/game"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Game     game.Config `yaml:"game"`
	Server   Server      `yaml:"server"`
	Display  Display     `yaml:"display"`
	Seed     int64       `yaml:"seed"`
	LogLevel string      `yaml:"log_level"`
}

type Server struct {
	TCPAddr string `yaml:"tcp_addr"`
	WSAddr  string `yaml:"ws_addr"`
}

type Display struct {
	Delay     time.Duration `yaml:"delay"`
	HumanName string        `yaml:"human_name"`
}

func Default() Config {
	return Config{
		Game: game.DefaultConfig(),
		Server: Server{
			TCPAddr: ":9999",
			WSAddr:  ":9998",
		},
		Display: Display{
			Delay: time.Second,
		},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over the defaults, then applies UNO_*
// environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	config := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config, err
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("parse config YAML: %w", err)
		}
	}
	if err := config.Override(os.LookupEnv); err != nil {
		return config, err
	}
	return config, config.Validate()
}

// Override applies the UNO_* variables that lookup finds.
func (c *Config) Override(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"UNO_PLAYERS":   &c.Game.PlayerCount,
		"UNO_HAND_SIZE": &c.Game.InitialHandSize,
	}
	for key, target := range ints {
		if value, ok := lookup(key); ok {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*target = parsed
		}
	}
	if value, ok := lookup("UNO_STRICT"); ok {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("UNO_STRICT: %w", err)
		}
		c.Game.EnableStrictRules = parsed
	}
	if value, ok := lookup("UNO_SEED"); ok {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("UNO_SEED: %w", err)
		}
		c.Seed = parsed
	}
	if value, ok := lookup("UNO_DELAY"); ok {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("UNO_DELAY: %w", err)
		}
		c.Display.Delay = parsed
	}
	strs := map[string]*string{
		"UNO_TCP_ADDR":   &c.Server.TCPAddr,
		"UNO_WS_ADDR":    &c.Server.WSAddr,
		"UNO_LOG_LEVEL":  &c.LogLevel,
		"UNO_HUMAN_NAME": &c.Display.HumanName,
	}
	for key, target := range strs {
		if value, ok := lookup(key); ok {
			*target = value
		}
	}
	return nil
}

func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Display.Delay < 0 {
		return fmt.Errorf("negative delay %s", c.Display.Delay)
	}
	return nil
}

func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// Session is the table for a local terminal player, who is never timed out.
func (c Config) Session() session.Config {
	return session.Config{
		Game:      c.Game,
		HumanName: c.Display.HumanName,
		Delay:     c.Display.Delay,
		Seed:      c.Seed,
	}
}

// RemoteSession is the table for a network player with the given name.
func (c Config) RemoteSession(name string) session.Config {
	config := c.Session()
	config.HumanName = name
	config.PlayTimeout = consts.PlayTimeout
	config.ColorTimeout = consts.ColorTimeout
	return config
}

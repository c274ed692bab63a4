package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// UI front ends selectable from config.
const (
	UIStream   = "stream"
	UITerminal = "tui"
)

// Config is the full session configuration.
type Config struct {
	Seed       int64   `yaml:"seed" json:"seed"`
	UI         string  `yaml:"ui" json:"ui"`
	LogLevel   string  `yaml:"log_level" json:"log_level"`
	Difficulty string  `yaml:"difficulty" json:"difficulty"`
	Balance    Balance `yaml:"balance" json:"balance"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		UI:         UIStream,
		LogLevel:   "warn",
		Difficulty: "normal",
		Balance:    Default(),
	}
}

// Load reads a YAML config. An empty path yields Defaults. The difficulty
// preset is applied first so explicit balance keys in the file override it.
func Load(path string) (*Config, error) {
	c := Defaults()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var head struct {
		Difficulty string `yaml:"difficulty"`
	}
	if err := yaml.Unmarshal(b, &head); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if head.Difficulty != "" {
		preset, ok := Preset(head.Difficulty)
		if !ok {
			return nil, fmt.Errorf("load config %s: unknown difficulty %q", path, head.Difficulty)
		}
		c.Balance = preset
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects configurations a session cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Balance.StartHP <= 0 {
		errs = append(errs, fmt.Errorf("start_hp must be positive, got %d", c.Balance.StartHP))
	}
	if c.Balance.StartAttack <= 0 {
		errs = append(errs, fmt.Errorf("start_attack must be positive, got %d", c.Balance.StartAttack))
	}
	if c.Balance.StoryEndWave < 5 {
		errs = append(errs, fmt.Errorf("story_end_wave must be at least 5, got %d", c.Balance.StoryEndWave))
	}
	if c.Balance.ShopEvery <= 0 || c.Balance.EventEvery <= 0 {
		errs = append(errs, errors.New("shop_every and event_every must be positive"))
	}
	if c.Balance.FragmentCap <= 0 || c.Balance.FragmentRounds <= 0 {
		errs = append(errs, errors.New("fragment_cap and fragment_rounds must be positive"))
	}
	switch c.UI {
	case UIStream, UITerminal:
	default:
		errs = append(errs, fmt.Errorf("unknown ui %q", c.UI))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return lvl, nil
}

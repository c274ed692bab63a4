package config

import (
	"os"
	"strconv"
)

// ApplyEnv overrides c from FARM_* environment variables. FARM_DIFFICULTY
// replaces the whole balance with a preset, so it is read first.
func (c *Config) ApplyEnv() {
	if mode := os.Getenv("FARM_DIFFICULTY"); mode != "" {
		if preset, ok := Preset(mode); ok {
			c.Difficulty = mode
			c.Balance = preset
		}
	}
	if val, ok := getEnvInt64("FARM_SEED"); ok {
		c.Seed = val
	}
	if val := os.Getenv("FARM_UI"); val != "" {
		c.UI = val
	}
	if val := os.Getenv("FARM_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
}

func getEnvInt64(key string) (int64, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	num, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// Package config layers benchgate settings: built-in defaults, an optional
// .benchgate.yaml file, then BENCHGATE_* environment variables. CLI flags are
// merged last by the caller, which registers them with these values as
// defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings of a gate run. The report file suffix is
// deliberately not configurable: pairing is defined by the fixed
// "-report-full.json" marker.
type Config struct {
	Threshold float64 `yaml:"threshold"`
	Theme     string  `yaml:"theme"`
	NoColor   bool    `yaml:"no_color"`
}

// DefaultThreshold is the fractional regression threshold applied when
// neither config file, environment, nor flags override it.
const DefaultThreshold = 0.15

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Threshold: DefaultThreshold,
		Theme:     "default",
	}
}

// Load builds the effective configuration: defaults, then the first config
// file found, then environment variables. A malformed config file is ignored
// rather than fatal; the gate must still run in CI with defaults.
func Load() Config {
	cfg := Default()
	cfg.applyFile()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyFile() {
	locations := []string{".benchgate.yaml", ".benchgate.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", "benchgate", "config.yaml"))
	}

	for _, path := range locations {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := Default()
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			continue
		}
		*c = fileCfg
		return
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BENCHGATE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Threshold = f
		}
	}
	if v := os.Getenv("BENCHGATE_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("BENCHGATE_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.NoColor = b
		}
	}
	// NO_COLOR is the cross-tool convention: presence alone disables color.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}
}

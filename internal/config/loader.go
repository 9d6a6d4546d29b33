package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TOUCHLINE_CONFIG is set
//  3. env (prefix TOUCHLINE_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for future remote providers

	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("TOUCHLINE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TOUCHLINE_ADDR, TOUCHLINE_LOOKBACK_DAYS, ...
	// Map env keys like TOUCHLINE_LOOKBACK_DAYS -> lookback_days (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("TOUCHLINE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "touchline_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.ConflictWindowHours <= 0:
		return fmt.Errorf("%w: conflict_window_hours must be positive", ErrInvalidConfig)
	case c.UpcomingWindowDays <= 0:
		return fmt.Errorf("%w: upcoming_window_days must be positive", ErrInvalidConfig)
	case c.LookbackDays <= 0:
		return fmt.Errorf("%w: lookback_days must be positive", ErrInvalidConfig)
	case c.HalfLifeDays <= 0:
		return fmt.Errorf("%w: half_life_days must be positive", ErrInvalidConfig)
	case c.ActivityBoardSize <= 0:
		return fmt.Errorf("%w: activity_board_size must be positive", ErrInvalidConfig)
	case c.MaxRosterRangeDays <= 0:
		return fmt.Errorf("%w: max_roster_range_days must be positive", ErrInvalidConfig)
	}
	return nil
}

// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ConflictWindowHours is the symmetric double-booking window around a
	// candidate fixture's kickoff.
	ConflictWindowHours int `koanf:"conflict_window_hours"`

	// UpcomingWindowDays is how far ahead a fixture shows as upcoming.
	UpcomingWindowDays int `koanf:"upcoming_window_days"`

	// LookbackDays bounds the activity scoring window.
	LookbackDays int `koanf:"lookback_days"`

	// HalfLifeDays is the activity decay half-life.
	HalfLifeDays int `koanf:"half_life_days"`

	// ActivityBoardSize caps the number of ranked officials returned.
	ActivityBoardSize int `koanf:"activity_board_size"`

	// RefreshQueueSize bounds the in-memory refresh signal queue.
	RefreshQueueSize int `koanf:"refresh_queue_size"`

	// RefreshWorkerCount sets the number of board refresh workers.
	RefreshWorkerCount int `koanf:"refresh_worker_count"`

	// MaxRosterRangeDays caps the GET /roster date range.
	MaxRosterRangeDays int `koanf:"max_roster_range_days"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9090",
		ConflictWindowHours: 3,
		UpcomingWindowDays:  3,
		LookbackDays:        30,
		HalfLifeDays:        30,
		ActivityBoardSize:   24,
		RefreshQueueSize:    1024,
		RefreshWorkerCount:  2,
		MaxRosterRangeDays:  92,
	}
}

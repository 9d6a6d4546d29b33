package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/touchline/touchline/internal/config"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			// Clear any existing environment variables
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ConflictWindowHours, convey.ShouldEqual, 3)
				convey.So(cfg.UpcomingWindowDays, convey.ShouldEqual, 3)
				convey.So(cfg.LookbackDays, convey.ShouldEqual, 30)
				convey.So(cfg.HalfLifeDays, convey.ShouldEqual, 30)
				convey.So(cfg.ActivityBoardSize, convey.ShouldEqual, 24)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("TOUCHLINE_ADDR", ":8080")
			_ = os.Setenv("TOUCHLINE_CONFLICT_WINDOW_HOURS", "2")
			_ = os.Setenv("TOUCHLINE_LOOKBACK_DAYS", "14")
			_ = os.Setenv("TOUCHLINE_ACTIVITY_BOARD_SIZE", "48")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ConflictWindowHours, convey.ShouldEqual, 2)
				convey.So(cfg.LookbackDays, convey.ShouldEqual, 14)
				convey.So(cfg.ActivityBoardSize, convey.ShouldEqual, 48)
				// Untouched fields keep their defaults
				convey.So(cfg.HalfLifeDays, convey.ShouldEqual, 30)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
addr: ":7070"
upcoming_window_days: 7
half_life_days: 21
max_roster_range_days: 31
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TOUCHLINE_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.UpcomingWindowDays, convey.ShouldEqual, 7)
				convey.So(cfg.HalfLifeDays, convey.ShouldEqual, 21)
				convey.So(cfg.MaxRosterRangeDays, convey.ShouldEqual, 31)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":7070"
half_life_days: 21
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TOUCHLINE_CONFIG", tmpFile)
			_ = os.Setenv("TOUCHLINE_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env vars should win over the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.HalfLifeDays, convey.ShouldEqual, 21)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("TOUCHLINE_CONFIG", "/nonexistent/touchline.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then loading should fail typed", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When env vars produce an invalid configuration", func() {
			_ = os.Setenv("TOUCHLINE_CONFLICT_WINDOW_HOURS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation should reject it", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"TOUCHLINE_CONFIG",
		"TOUCHLINE_LOG_LEVEL",
		"TOUCHLINE_ADDR",
		"TOUCHLINE_CONFLICT_WINDOW_HOURS",
		"TOUCHLINE_UPCOMING_WINDOW_DAYS",
		"TOUCHLINE_LOOKBACK_DAYS",
		"TOUCHLINE_HALF_LIFE_DAYS",
		"TOUCHLINE_ACTIVITY_BOARD_SIZE",
		"TOUCHLINE_REFRESH_QUEUE_SIZE",
		"TOUCHLINE_REFRESH_WORKER_COUNT",
		"TOUCHLINE_MAX_ROSTER_RANGE_DAYS",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "touchline-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	if err := tmpFile.Close(); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}

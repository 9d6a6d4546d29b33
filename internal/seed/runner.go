package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/touchline/touchline/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete seeding pass.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting fixture seeding",
		logger.String("baseURL", config.BaseURL),
		logger.Int("fixtures", config.NumFixtures),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("spanDays", config.SpanDays),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate fixtures
	fixtures, err := generateFixtures(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("fixture generation failed: %w", err)
	}

	// Step 3: Submit fixtures concurrently
	if err := submitFixtures(ctx, config, fixtures, stats); err != nil {
		return fmt.Errorf("fixture submission failed: %w", err)
	}

	// Step 4: Fetch the recomputed activity board
	board, err := fetchActivityBoard(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("activity board retrieval failed: %w", err)
	}
	logger.Get().Info(ctx, "activity board populated", logger.Int("entries", len(board)))

	// Step 5: Save fixtures to file
	if err := saveFixturesToFile(ctx, config, fixtures); err != nil {
		logger.Get().Warn(ctx, "failed to save fixtures to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "seeding completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != statusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveFixturesToFile saves the generated fixtures to a JSON file.
func saveFixturesToFile(ctx context.Context, config *Config, fixtures []Fixture) error {
	if len(fixtures) == 0 {
		return fmt.Errorf("no fixtures to save")
	}

	// Determine output filename
	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_fixtures_" + timestamp + ".json"
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	if err := writeFixturesJSON(file, fixtures); err != nil {
		return err
	}

	logger.Get().Info(ctx, "fixtures saved to file", logger.String("filename", filename))
	return nil
}

// writeFixturesJSON writes fixtures as a JSON array, one object per line.
func writeFixturesJSON(file *os.File, fixtures []Fixture) error {
	if _, err := file.WriteString("[\n"); err != nil {
		return fmt.Errorf("failed to write opening bracket: %w", err)
	}

	for i, fixture := range fixtures {
		jsonData, err := marshalJSON(fixture)
		if err != nil {
			return fmt.Errorf("failed to marshal fixture %d: %w", i, err)
		}

		if _, err := file.Write(jsonData); err != nil {
			return fmt.Errorf("failed to write fixture %d: %w", i, err)
		}

		// Add comma except for last fixture
		if i < len(fixtures)-1 {
			if _, err := file.WriteString(","); err != nil {
				return fmt.Errorf("failed to write comma: %w", err)
			}
		}
		_, _ = file.WriteString("\n")
	}

	if _, err := file.WriteString("]\n"); err != nil {
		return fmt.Errorf("failed to write closing bracket: %w", err)
	}
	return nil
}

// displayFinalStats prints the final seeding statistics.
func displayFinalStats(stats *Stats) {
	var successRate, fixturesPerSecond float64

	if stats.FixturesSubmitted > 0 {
		successRate = float64(stats.FixturesSuccessful) / float64(stats.FixturesSubmitted) * percentageMultiplier
	}

	if stats.Duration > 0 {
		fixturesPerSecond = float64(stats.FixturesSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("fixturesGenerated", stats.FixturesGenerated),
		logger.Int("fixturesSubmitted", stats.FixturesSubmitted),
		logger.Int("fixturesSuccessful", stats.FixturesSuccessful),
		logger.Int("fixturesConflicted", stats.FixturesConflicted),
		logger.Int("fixturesFailed", stats.FixturesFailed),
		logger.Int("boardEntries", stats.BoardEntries),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("fixturesPerSecond", fixturesPerSecond))
}

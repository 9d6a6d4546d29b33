package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/touchline/touchline/internal/seed"
)

// Default configuration constants.
const (
	defaultNumFixtures = 200
	defaultSpanDays    = 30
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultRunTimeout  = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9090", "Base URL of the service")
		numFixtures = flag.Int("fixtures", defaultNumFixtures, "Number of fixtures to generate and submit")
		spanDays    = flag.Int("span", defaultSpanDays, "Spread kickoffs over this many past days")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile  = flag.String("output", "", "Output file for generated fixtures (default: generated_fixtures_TIMESTAMP.json)")
		logFile     = flag.String("log", "", "Log file for seeding output (default: seed_log_TIMESTAMP.log)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seed.ShowHelp()
		return
	}

	// Setup logging
	if err := seed.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create seeding configuration
	config := &seed.Config{
		BaseURL:     *baseURL,
		NumFixtures: *numFixtures,
		SpanDays:    *spanDays,
		Workers:     *workers,
		Timeout:     *timeout,
		OutputFile:  *outputFile,
		LogFile:     *logFile,
		Verbose:     *verbose,
	}

	// Run the seeder
	if err := seed.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seeding failed: " + err.Error() + "\n")
		return
	}
}

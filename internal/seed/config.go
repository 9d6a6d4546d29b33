package seed

import "time"

// Config holds configuration for the fixture seeding run
type Config struct {
	BaseURL     string        // Base URL of the service
	NumFixtures int           // Number of fixtures to generate
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	SpanDays    int           // Kickoffs are spread over the past SpanDays days
	OutputFile  string        // Output file for fixtures
	LogFile     string        // Log file for seeding output
	Verbose     bool          // Enable verbose logging
}

// Official mirrors one role slot in fixture submissions
type Official struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Fixture represents a fixture to be submitted
type Fixture struct {
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	Venue      string    `json:"venue"`
	League     string    `json:"league,omitempty"`
	KickoffAt  string    `json:"kickoff_at"`
	Main       *Official `json:"main,omitempty"`
	Assistant1 *Official `json:"assistant_1,omitempty"`
	Assistant2 *Official `json:"assistant_2,omitempty"`
}

// BoardEntry represents an activity board entry
type BoardEntry struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Count  int     `json:"count"`
	Tier   string  `json:"tier"`
}

// Stats holds seeding statistics
type Stats struct {
	FixturesGenerated  int
	FixturesSubmitted  int
	FixturesSuccessful int
	FixturesConflicted int
	FixturesFailed     int
	BoardEntries       int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}

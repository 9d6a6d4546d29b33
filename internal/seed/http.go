package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTP status codes the seeder distinguishes.
const (
	statusOK       = 200
	statusCreated  = 201
	statusConflict = 409
)

const percentageMultiplier = 100.0

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// marshalJSON marshals a struct to JSON
func marshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitFixtures submits fixtures concurrently using worker pools
func submitFixtures(ctx context.Context, config *Config, fixtures []Fixture, stats *Stats) error {
	log.Printf("submitting %d fixtures with %d workers", len(fixtures), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/fixtures"

	// Counters for statistics
	var (
		successful int64
		conflicted int64
		failed     int64
		submitted  int64
	)

	// Create worker pool
	fixtureChan := make(chan Fixture, config.Workers*2)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for fixture := range fixtureChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleFixture(ctx, client, url, fixture)

					atomic.AddInt64(&submitted, 1)
					switch result {
					case "success":
						atomic.AddInt64(&successful, 1)
					case "conflict":
						atomic.AddInt64(&conflicted, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}
				}
			}
		}()
	}

	// Send fixtures to workers
	go func() {
		defer close(fixtureChan)
		for _, fixture := range fixtures {
			select {
			case <-ctx.Done():
				return
			case fixtureChan <- fixture:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Update stats
	stats.FixturesSubmitted = int(atomic.LoadInt64(&submitted))
	stats.FixturesSuccessful = int(atomic.LoadInt64(&successful))
	stats.FixturesConflicted = int(atomic.LoadInt64(&conflicted))
	stats.FixturesFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`fixture submission completed:
   Successful: %d
   Conflicted: %d
   Failed: %d
`, stats.FixturesSuccessful, stats.FixturesConflicted, stats.FixturesFailed)

	return nil
}

// submitSingleFixture submits a single fixture and returns the result.
// Conflicts are an expected outcome with random data; the seeder just
// counts them.
func submitSingleFixture(ctx context.Context, client *HTTPClient, url string, fixture Fixture) string {
	resp, err := client.Post(ctx, url, fixture)
	if err != nil {
		return "failed"
	}

	if _, err := readResponseBody(resp); err != nil {
		return "failed"
	}

	switch resp.StatusCode {
	case statusCreated, statusOK:
		return "success"
	case statusConflict:
		return "conflict"
	default:
		return "failed"
	}
}

// fetchActivityBoard retrieves the recomputed activity board.
func fetchActivityBoard(ctx context.Context, config *Config, stats *Stats) ([]BoardEntry, error) {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/activity?recompute=1"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity board: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity board: %w", err)
	}

	if resp.StatusCode != statusOK {
		return nil, fmt.Errorf("activity board request failed with status: %d", resp.StatusCode)
	}

	var entries []BoardEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode activity board: %w", err)
	}

	stats.BoardEntries = len(entries)
	return entries, nil
}

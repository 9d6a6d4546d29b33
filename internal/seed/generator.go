package seed

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/touchline/touchline/pkg/logger"
)

// Constants for kickoff spreading.
const (
	hoursPerDay      = 24
	kickoffHourFirst = 12 // earliest kickoff hour of day
	kickoffHourSpan  = 9  // kickoffs between 12:00 and 20:00
	minuteStep       = 15
	minuteSlots      = 4
)

// Name pools for generated fixtures. Officials deliberately repeat across
// fixtures so the activity board has meaningful counts.
var (
	teamPool = []string{
		"Arsenal", "Aston Villa", "Bournemouth", "Brentford", "Brighton",
		"Chelsea", "Crystal Palace", "Everton", "Fulham", "Leeds United",
		"Liverpool", "Manchester City", "Manchester United", "Newcastle United",
		"Nottingham Forest", "Southampton", "Tottenham Hotspur", "West Ham United",
		"Wolverhampton Wanderers", "Leicester City",
	}

	venuePool = []string{
		"Emirates Stadium", "Villa Park", "Vitality Stadium", "Gtech Community Stadium",
		"Amex Stadium", "Stamford Bridge", "Selhurst Park", "Goodison Park",
		"Craven Cottage", "Elland Road", "Anfield", "Etihad Stadium",
		"Old Trafford", "St James' Park", "City Ground", "St Mary's Stadium",
		"Tottenham Hotspur Stadium", "London Stadium", "Molineux", "King Power Stadium",
	}

	leaguePool = []string{
		"Premier League", "FA Cup", "EFL Cup",
	}

	officialPool = []string{
		"Michael Oliver", "Anthony Taylor", "Paul Tierney", "Stuart Attwell",
		"Craig Pawson", "Simon Hooper", "Andy Madley", "Robert Jones",
		"Peter Bankes", "David Coote", "Darren England", "John Brooks",
		"Jarred Gillett", "Tony Harrington", "Thomas Bramall", "Samuel Barrott",
	}
)

// randomInt returns a random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateFixtures creates the specified number of fixtures with kickoffs
// spread over the configured span ending at now.
func generateFixtures(ctx context.Context, config *Config, stats *Stats) ([]Fixture, error) {
	logger.Get().Info(ctx, "generating fixtures",
		logger.Int("numFixtures", config.NumFixtures),
		logger.Int("spanDays", config.SpanDays))

	fixtures := make([]Fixture, 0, config.NumFixtures)
	now := time.Now().UTC()

	spanDays := config.SpanDays
	if spanDays < 1 {
		spanDays = 1
	}

	for i := 0; i < config.NumFixtures; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		fixtures = append(fixtures, generateSingleFixture(now, spanDays))
	}

	stats.FixturesGenerated = len(fixtures)
	logger.Get().Info(ctx, "generated fixtures successfully", logger.Int("count", len(fixtures)))

	return fixtures, nil
}

// generateSingleFixture builds one fixture. Each fixture gets its own day
// offset and kickoff slot so the conflict validator rarely rejects a batch
// outright, while officials repeat enough to exercise the scorer.
func generateSingleFixture(now time.Time, spanDays int) Fixture {
	home := randomInt(len(teamPool))
	away := randomInt(len(teamPool) - 1)
	if away >= home {
		away++
	}

	dayOffset := randomInt(spanDays)
	hour := kickoffHourFirst + randomInt(kickoffHourSpan)
	minute := randomInt(minuteSlots) * minuteStep
	kickoff := now.AddDate(0, 0, -dayOffset).Truncate(hoursPerDay * time.Hour).
		Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)

	main, a1, a2 := pickOfficials()

	return Fixture{
		HomeTeam:   teamPool[home],
		AwayTeam:   teamPool[away],
		Venue:      venuePool[home],
		League:     leaguePool[randomInt(len(leaguePool))],
		KickoffAt:  kickoff.Format(time.RFC3339),
		Main:       main,
		Assistant1: a1,
		Assistant2: a2,
	}
}

// pickOfficials selects three distinct officials from the pool. The main
// official carries a stable ID so the canonical identity path gets covered;
// assistants are name-only.
func pickOfficials() (main, a1, a2 *Official) {
	i := randomInt(len(officialPool))
	j := (i + 1 + randomInt(len(officialPool)-2)) % len(officialPool)
	k := (j + 1 + randomInt(len(officialPool)-2)) % len(officialPool)
	if k == i {
		k = (k + 1) % len(officialPool)
	}

	main = &Official{
		ID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte(officialPool[i])).String(),
		Name: officialPool[i],
	}
	a1 = &Official{Name: officialPool[j]}
	a2 = &Official{Name: officialPool[k]}
	return main, a1, a2
}

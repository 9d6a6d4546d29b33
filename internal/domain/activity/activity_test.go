package activity_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	activity "github.com/touchline/touchline/internal/domain/activity"
	"github.com/touchline/touchline/internal/domain/model"
)

func fixtureAt(kickoff time.Time, main string) model.Fixture {
	return model.Fixture{
		HomeTeam:  "Home",
		AwayTeam:  "Away",
		Venue:     "Venue",
		KickoffAt: kickoff,
		Main:      model.OfficialRef{Name: main},
	}
}

func TestScorer_Score(t *testing.T) {
	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

	Convey("Given a scorer with the default configuration", t, func() {
		s := activity.NewScorer()

		Convey("When there are no fixtures", func() {
			Convey("Then the board should be empty", func() {
				So(s.Score(nil, now), ShouldBeEmpty)
			})
		})

		Convey("When two officials differ only in recency", func() {
			fixtures := []model.Fixture{
				fixtureAt(now.Add(-24*time.Hour), "Recent Ref"),
				fixtureAt(now.Add(-20*24*time.Hour), "Stale Ref"),
			}

			Convey("Then the more recent assignment should rank higher", func() {
				entries := s.Score(fixtures, now)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Name, ShouldEqual, "Recent Ref")
				So(entries[0].Weight, ShouldBeGreaterThan, entries[1].Weight)
				So(entries[0].Count, ShouldEqual, 1)
			})
		})

		Convey("When assignments fall outside the scoring window", func() {
			fixtures := []model.Fixture{
				fixtureAt(now.Add(-40*24*time.Hour), "Ancient Ref"),
				fixtureAt(now.Add(time.Hour), "Future Ref"),
				fixtureAt(time.Time{}, "Unscheduled Ref"),
			}

			Convey("Then they should not contribute at all", func() {
				So(s.Score(fixtures, now), ShouldBeEmpty)
			})
		})

		Convey("When one official appears under different spellings", func() {
			f1 := fixtureAt(now.Add(-time.Hour), "michael oliver")
			f2 := fixtureAt(now.Add(-30*time.Hour), "Michael  Oliver")

			Convey("Then the records should merge under one key", func() {
				entries := s.Score([]model.Fixture{f1, f2}, now)
				So(entries, ShouldHaveLength, 1)
				So(entries[0].Key, ShouldEqual, "michael oliver")
				So(entries[0].Count, ShouldEqual, 2)
			})

			Convey("And the capitalized display name should be preferred", func() {
				entries := s.Score([]model.Fixture{f1, f2}, now)
				So(entries[0].Name, ShouldEqual, "Michael  Oliver")
			})
		})

		Convey("When an official has a stable ID", func() {
			f1 := fixtureAt(now.Add(-time.Hour), "")
			f1.Main = model.OfficialRef{ID: "ref-1", Name: "M. Oliver"}
			f2 := fixtureAt(now.Add(-2*time.Hour), "")
			f2.Main = model.OfficialRef{ID: "ref-1", Name: "Michael Oliver", ImageURL: "http://img/oliver.png"}

			Convey("Then records should merge by ID and keep the first image", func() {
				entries := s.Score([]model.Fixture{f1, f2}, now)
				So(entries, ShouldHaveLength, 1)
				So(entries[0].Key, ShouldEqual, "ref-1")
				So(entries[0].Count, ShouldEqual, 2)
				So(entries[0].ImageURL, ShouldEqual, "http://img/oliver.png")
			})
		})

		Convey("When officials have equal weights", func() {
			kick := now.Add(-24 * time.Hour)
			fixtures := []model.Fixture{
				fixtureAt(kick, "Ref A"),
				fixtureAt(kick, "Ref B"),
				fixtureAt(kick, "Ref C"),
			}

			Convey("Then they should all land in the same tier", func() {
				entries := s.Score(fixtures, now)
				So(entries, ShouldHaveLength, 3)
				So(entries[0].Tier, ShouldEqual, entries[1].Tier)
				So(entries[1].Tier, ShouldEqual, entries[2].Tier)
			})

			Convey("And ordering should fall back to the key for determinism", func() {
				entries := s.Score(fixtures, now)
				So(entries[0].Key, ShouldEqual, "ref a")
				So(entries[1].Key, ShouldEqual, "ref b")
				So(entries[2].Key, ShouldEqual, "ref c")
			})
		})

		Convey("When weights spread across the percentile cuts", func() {
			fixtures := []model.Fixture{
				fixtureAt(now.Add(-time.Hour), "Busy Ref"),
				fixtureAt(now.Add(-2*time.Hour), "Busy Ref"),
				fixtureAt(now.Add(-3*time.Hour), "Busy Ref"),
				fixtureAt(now.Add(-time.Hour), "Middle Ref"),
				fixtureAt(now.Add(-2*time.Hour), "Middle Ref"),
				fixtureAt(now.Add(-29*24*time.Hour), "Quiet Ref"),
			}

			Convey("Then tiers should follow the weight order", func() {
				entries := s.Score(fixtures, now)
				So(entries, ShouldHaveLength, 3)
				So(entries[0].Name, ShouldEqual, "Busy Ref")
				So(entries[0].Tier, ShouldEqual, activity.TierHigh)
				So(entries[1].Name, ShouldEqual, "Middle Ref")
				So(entries[1].Tier, ShouldEqual, activity.TierMedium)
				So(entries[2].Name, ShouldEqual, "Quiet Ref")
				So(entries[2].Tier, ShouldEqual, activity.TierLow)
			})
		})

		Convey("When a fixture carries assistants", func() {
			f := fixtureAt(now.Add(-time.Hour), "Main Ref")
			f.Assistant1 = model.OfficialRef{Name: "First Assistant"}
			f.Assistant2 = model.OfficialRef{Name: "Second Assistant"}

			Convey("Then every populated slot should count", func() {
				entries := s.Score([]model.Fixture{f}, now)
				So(entries, ShouldHaveLength, 3)
			})
		})
	})

	Convey("Given a scorer with a small board size", t, func() {
		s := activity.NewScorer(activity.WithBoardSize(2))

		fixtures := []model.Fixture{
			fixtureAt(now.Add(-time.Hour), "Ref A"),
			fixtureAt(now.Add(-time.Hour), "Ref A"),
			fixtureAt(now.Add(-time.Hour), "Ref B"),
			fixtureAt(now.Add(-25*time.Hour), "Ref C"),
		}

		Convey("Then the board should be truncated after ranking", func() {
			entries := s.Score(fixtures, now)
			So(entries, ShouldHaveLength, 2)
			So(entries[0].Name, ShouldEqual, "Ref A")
			So(entries[0].Count, ShouldEqual, 2)
			So(entries[1].Name, ShouldEqual, "Ref B")
		})
	})

	Convey("Given a scorer with a short half-life", t, func() {
		s := activity.NewScorer(activity.WithHalfLife(24 * time.Hour))

		Convey("Then weight should halve per day of age", func() {
			today := s.Score([]model.Fixture{fixtureAt(now, "Ref")}, now)
			dayOld := s.Score([]model.Fixture{fixtureAt(now.Add(-24*time.Hour), "Ref")}, now)

			So(today[0].Weight, ShouldAlmostEqual, 1.0, 1e-9)
			So(dayOld[0].Weight, ShouldAlmostEqual, 0.5, 1e-9)
		})
	})
}

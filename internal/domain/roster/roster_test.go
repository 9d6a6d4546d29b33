package roster_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/touchline/touchline/internal/domain/model"
	roster "github.com/touchline/touchline/internal/domain/roster"
)

func TestAggregate(t *testing.T) {
	Convey("Given a week of fixtures", t, func() {
		day := func(d int, hour int) time.Time {
			return time.Date(2026, 9, d, hour, 0, 0, 0, time.UTC)
		}
		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

		fixtures := []model.Fixture{
			{
				ID: "fx-1", HomeTeam: "A", AwayTeam: "B", Venue: "V1",
				KickoffAt:  day(1, 15),
				Main:       model.OfficialRef{Name: "Michael Oliver"},
				Assistant1: model.OfficialRef{Name: "Stuart Attwell"},
			},
			{
				ID: "fx-2", HomeTeam: "C", AwayTeam: "D", Venue: "V2",
				KickoffAt: day(1, 19),
				Main:      model.OfficialRef{Name: "michael  oliver"},
			},
			{
				ID: "fx-3", HomeTeam: "E", AwayTeam: "F", Venue: "V3",
				KickoffAt:  day(3, 15),
				Assistant2: model.OfficialRef{Name: "Michael Oliver"},
			},
		}

		Convey("When aggregating over the full range", func() {
			out := roster.Aggregate(fixtures, from, to)

			Convey("Then only days with assignments should appear", func() {
				So(out, ShouldHaveLength, 2)
				So(out, ShouldContainKey, "2026-09-01")
				So(out, ShouldContainKey, "2026-09-03")
			})

			Convey("And spelling variants should merge under one key per day", func() {
				first := out["2026-09-01"]
				So(first, ShouldHaveLength, 2)

				oliver := first["michael oliver"]
				So(oliver.Count, ShouldEqual, 2)
				So(oliver.Name, ShouldEqual, "Michael Oliver")
				So(oliver.Roles, ShouldResemble, []model.Role{model.RoleMain})

				attwell := first["stuart attwell"]
				So(attwell.Count, ShouldEqual, 1)
				So(attwell.Roles, ShouldResemble, []model.Role{model.RoleAssistant1})
			})

			Convey("And the same official on another day should count separately", func() {
				third := out["2026-09-03"]
				oliver := third["michael oliver"]
				So(oliver.Count, ShouldEqual, 1)
				So(oliver.Roles, ShouldResemble, []model.Role{model.RoleAssistant2})
			})
		})

		Convey("When an official works several roles on one day", func() {
			extra := model.Fixture{
				ID: "fx-4", HomeTeam: "G", AwayTeam: "H", Venue: "V4",
				KickoffAt:  day(3, 19),
				Main:       model.OfficialRef{Name: "Michael Oliver"},
				Assistant1: model.OfficialRef{Name: "Someone Else"},
			}
			out := roster.Aggregate(append(fixtures, extra), from, to)

			Convey("Then roles should be distinct and in slot order", func() {
				oliver := out["2026-09-03"]["michael oliver"]
				So(oliver.Count, ShouldEqual, 2)
				So(oliver.Roles, ShouldResemble, []model.Role{model.RoleMain, model.RoleAssistant2})
			})
		})

		Convey("When the range excludes some fixtures", func() {
			out := roster.Aggregate(fixtures, day(2, 0), to)

			Convey("Then out-of-range days should be dropped", func() {
				So(out, ShouldHaveLength, 1)
				So(out, ShouldContainKey, "2026-09-03")
			})
		})

		Convey("When range bounds carry a time of day", func() {
			out := roster.Aggregate(fixtures, day(1, 23), day(1, 1))

			Convey("Then comparison should be by calendar day, inclusive", func() {
				So(out, ShouldHaveLength, 1)
				So(out, ShouldContainKey, "2026-09-01")
			})
		})

		Convey("When fixtures are unscheduled", func() {
			out := roster.Aggregate([]model.Fixture{
				{ID: "fx-5", Main: model.OfficialRef{Name: "Michael Oliver"}},
			}, from, to)

			Convey("Then they should be skipped", func() {
				So(out, ShouldBeEmpty)
			})
		})

		Convey("When a kickoff is late evening in a non-UTC zone", func() {
			zone := time.FixedZone("UTC+3", 3*60*60)
			f := model.Fixture{
				ID: "fx-6", HomeTeam: "I", AwayTeam: "J", Venue: "V5",
				KickoffAt: time.Date(2026, 9, 2, 1, 30, 0, 0, zone), // 2026-09-01T22:30Z
				Main:      model.OfficialRef{Name: "Craig Pawson"},
			}
			out := roster.Aggregate([]model.Fixture{f}, from, to)

			Convey("Then the bucket should follow the UTC date", func() {
				So(out, ShouldContainKey, "2026-09-01")
			})
		})
	})
}

package status_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/touchline/touchline/internal/domain/model"
	status "github.com/touchline/touchline/internal/domain/status"
)

func TestResolver_Resolve(t *testing.T) {
	Convey("Given a resolver with the default window", t, func() {
		r := status.NewResolver()
		now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

		Convey("When a fixture has a manual override", func() {
			f := model.Fixture{KickoffAt: now.Add(time.Hour)}

			Convey("Then LIVE should be returned unchanged", func() {
				f.Override = model.StatusLive
				So(r.Resolve(f, now), ShouldEqual, model.StatusLive)
			})

			Convey("And ENDED should be returned unchanged", func() {
				f.Override = model.StatusEnded
				So(r.Resolve(f, now), ShouldEqual, model.StatusEnded)
			})

			Convey("And an explicit NOT_STARTED should beat the upcoming rule", func() {
				f.Override = model.StatusNotStarted
				So(r.Resolve(f, now), ShouldEqual, model.StatusNotStarted)
			})

			Convey("And LIVE should win even with kickoff far in the future", func() {
				f.Override = model.StatusLive
				f.KickoffAt = now.AddDate(1, 0, 0)
				So(r.Resolve(f, now), ShouldEqual, model.StatusLive)
			})
		})

		Convey("When a fixture carries a bogus UPCOMING override", func() {
			f := model.Fixture{
				Override:  model.StatusUpcoming,
				KickoffAt: now.AddDate(0, 0, 10),
			}

			Convey("Then the state should still be time-derived", func() {
				So(r.Resolve(f, now), ShouldEqual, model.StatusNotStarted)
			})
		})

		Convey("When a fixture has no override", func() {
			f := model.Fixture{}

			Convey("Then kickoff exactly at now should be upcoming", func() {
				f.KickoffAt = now
				So(r.Resolve(f, now), ShouldEqual, model.StatusUpcoming)
			})

			Convey("And kickoff inside the window should be upcoming", func() {
				f.KickoffAt = now.Add(48 * time.Hour)
				So(r.Resolve(f, now), ShouldEqual, model.StatusUpcoming)
			})

			Convey("And kickoff exactly at the window edge should be upcoming", func() {
				f.KickoffAt = now.Add(3 * 24 * time.Hour)
				So(r.Resolve(f, now), ShouldEqual, model.StatusUpcoming)
			})

			Convey("And kickoff a minute past the edge should not be", func() {
				f.KickoffAt = now.Add(3*24*time.Hour + time.Minute)
				So(r.Resolve(f, now), ShouldEqual, model.StatusNotStarted)
			})

			Convey("And kickoff in the past should not be upcoming", func() {
				f.KickoffAt = now.Add(-time.Minute)
				So(r.Resolve(f, now), ShouldEqual, model.StatusNotStarted)
			})

			Convey("And an unscheduled fixture should resolve to not started", func() {
				So(r.Resolve(f, now), ShouldEqual, model.StatusNotStarted)
			})
		})

		Convey("When resolving twice at the same instant", func() {
			f := model.Fixture{KickoffAt: now.Add(time.Hour)}

			Convey("Then the result should be identical", func() {
				So(r.Resolve(f, now), ShouldEqual, r.Resolve(f, now))
			})
		})
	})

	Convey("Given a resolver with a custom window", t, func() {
		r := status.NewResolver(status.WithUpcomingWindow(24 * time.Hour))
		now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

		Convey("Then the narrow window should apply", func() {
			f := model.Fixture{KickoffAt: now.Add(36 * time.Hour)}
			So(r.Resolve(f, now), ShouldEqual, model.StatusNotStarted)

			f.KickoffAt = now.Add(12 * time.Hour)
			So(r.Resolve(f, now), ShouldEqual, model.StatusUpcoming)
		})

		Convey("And a non-positive window option should be ignored", func() {
			r2 := status.NewResolver(status.WithUpcomingWindow(-time.Hour))
			f := model.Fixture{KickoffAt: now.Add(time.Hour)}
			So(r2.Resolve(f, now), ShouldEqual, model.StatusUpcoming)
		})
	})
}

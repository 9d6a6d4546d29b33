package conflict_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	conflict "github.com/touchline/touchline/internal/domain/conflict"
	"github.com/touchline/touchline/internal/domain/model"
)

func kickoff(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidator_Validate(t *testing.T) {
	Convey("Given a validator with the default window", t, func() {
		v := conflict.NewValidator()

		base := model.Fixture{
			ID:        "fx-1",
			HomeTeam:  "Manchester United",
			AwayTeam:  "Liverpool",
			Venue:     "Old Trafford",
			KickoffAt: kickoff("2026-09-05T15:00:00Z"),
			Main:      model.OfficialRef{Name: "Michael Oliver"},
		}

		Convey("When the schedule is empty", func() {
			candidate := base
			candidate.ID = ""

			Convey("Then the candidate should pass", func() {
				So(v.Validate(candidate, nil, ""), ShouldBeNil)
			})
		})

		Convey("When one official occupies two role slots", func() {
			candidate := base
			candidate.ID = ""
			candidate.Assistant1 = model.OfficialRef{Name: "michael  oliver"}

			Convey("Then it should report a duplicate role assignment", func() {
				err := v.Validate(candidate, nil, "")
				So(err, ShouldNotBeNil)
				So(conflict.Is(err, conflict.KindDuplicateRoleAssignment), ShouldBeTrue)

				ce, ok := conflict.AsError(err)
				So(ok, ShouldBeTrue)
				So(ce.OfficialKey, ShouldEqual, "michael oliver")
			})
		})

		Convey("When the same match already exists at the same venue and time", func() {
			candidate := base
			candidate.ID = ""
			candidate.Main = model.OfficialRef{}

			Convey("Then it should report an exact duplicate", func() {
				err := v.Validate(candidate, []model.Fixture{base}, "")
				So(conflict.Is(err, conflict.KindDuplicateMatchSameVenueTime), ShouldBeTrue)

				ce, _ := conflict.AsError(err)
				So(ce.FixtureID, ShouldEqual, "fx-1")
			})
		})

		Convey("When the same match exists at a different venue", func() {
			candidate := base
			candidate.ID = ""
			candidate.Venue = "Anfield"
			candidate.Main = model.OfficialRef{}

			Convey("Then it should report a duplicate at a different venue", func() {
				err := v.Validate(candidate, []model.Fixture{base}, "")
				So(conflict.Is(err, conflict.KindDuplicateMatchDifferentVenue), ShouldBeTrue)
			})
		})

		Convey("When another match at the same venue and time shares one team", func() {
			candidate := model.Fixture{
				HomeTeam:  "Manchester United",
				AwayTeam:  "Chelsea",
				Venue:     "Old Trafford",
				KickoffAt: base.KickoffAt,
			}

			Convey("Then it should report a shared-team duplicate", func() {
				err := v.Validate(candidate, []model.Fixture{base}, "")
				So(conflict.Is(err, conflict.KindDuplicateMatchSameTeam), ShouldBeTrue)
			})
		})

		Convey("When an official is booked on another fixture nearby in time", func() {
			other := model.Fixture{
				ID:        "fx-2",
				HomeTeam:  "Everton",
				AwayTeam:  "Fulham",
				Venue:     "Goodison Park",
				KickoffAt: kickoff("2026-09-05T17:59:00Z"),
				Main:      model.OfficialRef{Name: "Michael Oliver"},
			}
			candidate := base
			candidate.ID = ""

			Convey("Then a gap inside the window should conflict", func() {
				err := v.Validate(candidate, []model.Fixture{other}, "")
				So(conflict.Is(err, conflict.KindOfficialConflict), ShouldBeTrue)

				ce, _ := conflict.AsError(err)
				So(ce.FixtureID, ShouldEqual, "fx-2")
				So(ce.OfficialKey, ShouldEqual, "michael oliver")
				So(ce.KickoffAt.Equal(other.KickoffAt), ShouldBeTrue)
			})

			Convey("And a gap of exactly the window should conflict", func() {
				other.KickoffAt = kickoff("2026-09-05T18:00:00Z")
				err := v.Validate(candidate, []model.Fixture{other}, "")
				So(conflict.Is(err, conflict.KindOfficialConflict), ShouldBeTrue)
			})

			Convey("And a gap just past the window should pass", func() {
				other.KickoffAt = kickoff("2026-09-05T18:01:00Z")
				So(v.Validate(candidate, []model.Fixture{other}, ""), ShouldBeNil)
			})

			Convey("And the window should apply symmetrically in the past", func() {
				other.KickoffAt = kickoff("2026-09-05T12:01:00Z")
				err := v.Validate(candidate, []model.Fixture{other}, "")
				So(conflict.Is(err, conflict.KindOfficialConflict), ShouldBeTrue)
			})

			Convey("And the window should cross midnight", func() {
				candidate.KickoffAt = kickoff("2026-09-05T23:30:00Z")
				other.KickoffAt = kickoff("2026-09-06T01:00:00Z")
				err := v.Validate(candidate, []model.Fixture{other}, "")
				So(conflict.Is(err, conflict.KindOfficialConflict), ShouldBeTrue)
			})

			Convey("And a stable ID should beat name spelling differences", func() {
				candidate.Main = model.OfficialRef{ID: "ref-9", Name: "M. Oliver"}
				other.Main = model.OfficialRef{ID: "ref-9", Name: "Michael Oliver"}
				err := v.Validate(candidate, []model.Fixture{other}, "")
				So(conflict.Is(err, conflict.KindOfficialConflict), ShouldBeTrue)
			})
		})

		Convey("When the candidate or the other fixture is unscheduled", func() {
			other := model.Fixture{
				ID:   "fx-3",
				Main: model.OfficialRef{Name: "Michael Oliver"},
			}
			candidate := base
			candidate.ID = ""

			Convey("Then no double-booking should be reported", func() {
				So(v.Validate(candidate, []model.Fixture{other}, ""), ShouldBeNil)

				candidate.KickoffAt = time.Time{}
				other.KickoffAt = kickoff("2026-09-05T15:00:00Z")
				So(v.Validate(candidate, []model.Fixture{other}, ""), ShouldBeNil)
			})
		})

		Convey("When editing an existing fixture", func() {
			candidate := base

			Convey("Then it should not conflict with itself", func() {
				So(v.Validate(candidate, []model.Fixture{base}, "fx-1"), ShouldBeNil)
			})

			Convey("And without the exclusion it would be a duplicate", func() {
				err := v.Validate(candidate, []model.Fixture{base}, "")
				So(conflict.Is(err, conflict.KindDuplicateMatchSameVenueTime), ShouldBeTrue)
			})
		})

		Convey("When several conflicts apply at once", func() {
			// Exact duplicate and a double-booking against a second fixture.
			dup := base
			other := model.Fixture{
				ID:        "fx-4",
				HomeTeam:  "Everton",
				AwayTeam:  "Fulham",
				Venue:     "Goodison Park",
				KickoffAt: kickoff("2026-09-05T16:00:00Z"),
				Main:      model.OfficialRef{Name: "Michael Oliver"},
			}
			candidate := base
			candidate.ID = ""

			Convey("Then only the first check in order should be reported", func() {
				err := v.Validate(candidate, []model.Fixture{other, dup}, "")
				So(conflict.Is(err, conflict.KindDuplicateMatchSameVenueTime), ShouldBeTrue)
			})
		})
	})

	Convey("Given a validator with a custom window", t, func() {
		v := conflict.NewValidator(conflict.WithWindow(30 * time.Minute))

		candidate := model.Fixture{
			HomeTeam:  "Arsenal",
			AwayTeam:  "Chelsea",
			Venue:     "Emirates Stadium",
			KickoffAt: kickoff("2026-09-05T15:00:00Z"),
			Main:      model.OfficialRef{Name: "Anthony Taylor"},
		}
		other := model.Fixture{
			ID:        "fx-5",
			HomeTeam:  "Fulham",
			AwayTeam:  "Brentford",
			Venue:     "Craven Cottage",
			KickoffAt: kickoff("2026-09-05T16:00:00Z"),
			Main:      model.OfficialRef{Name: "Anthony Taylor"},
		}

		Convey("Then a gap outside the narrow window should pass", func() {
			So(v.Validate(candidate, []model.Fixture{other}, ""), ShouldBeNil)
		})

		Convey("And a gap inside the narrow window should conflict", func() {
			other.KickoffAt = kickoff("2026-09-05T15:20:00Z")
			err := v.Validate(candidate, []model.Fixture{other}, "")
			So(conflict.Is(err, conflict.KindOfficialConflict), ShouldBeTrue)
		})
	})
}

func TestConflictError(t *testing.T) {
	Convey("Given conflict errors", t, func() {
		Convey("When the error carries an official key", func() {
			err := &conflict.Error{Kind: conflict.KindOfficialConflict, OfficialKey: "michael oliver"}
			So(err.Error(), ShouldContainSubstring, "OFFICIAL_CONFLICT")
			So(err.Error(), ShouldContainSubstring, "michael oliver")
		})

		Convey("When the error carries only a fixture reference", func() {
			err := &conflict.Error{Kind: conflict.KindDuplicateMatchSameVenueTime, FixtureID: "fx-1"}
			So(err.Error(), ShouldContainSubstring, "fx-1")
		})

		Convey("When matching kinds", func() {
			err := &conflict.Error{Kind: conflict.KindDuplicateMatchSameTeam}
			So(conflict.Is(err, conflict.KindDuplicateMatchSameTeam), ShouldBeTrue)
			So(conflict.Is(err, conflict.KindOfficialConflict), ShouldBeFalse)
			So(conflict.Is(nil, conflict.KindOfficialConflict), ShouldBeFalse)
		})
	})
}

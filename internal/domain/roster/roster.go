// Package roster buckets official assignments per calendar day for planner
// and heatmap views.
package roster

import (
	"sort"
	"time"

	"github.com/touchline/touchline/internal/domain/identity"
	"github.com/touchline/touchline/internal/domain/model"
)

// DateKeyLayout formats the calendar-day keys of an aggregation, in UTC.
const DateKeyLayout = "2006-01-02"

// OfficialDay aggregates one official's assignments on one calendar day.
type OfficialDay struct {
	Name  string       `json:"name"`
	Roles []model.Role `json:"roles"`
	Count int          `json:"count"`
}

// Day maps canonical official keys to their aggregate for a single day.
type Day map[string]OfficialDay

// Aggregate buckets every role assignment on fixtures whose normalized UTC
// date falls inside the inclusive [from, to] range, keyed by calendar day
// and canonical official identity. Fixtures without a kickoff time are
// skipped silently.
func Aggregate(fixtures []model.Fixture, from, to time.Time) map[string]Day {
	fromDay := truncateDay(from)
	toDay := truncateDay(to)

	type accum struct {
		name  string
		roles map[model.Role]struct{}
		count int
	}
	days := make(map[string]map[string]*accum)

	for _, f := range fixtures {
		if !f.Scheduled() {
			continue
		}
		day := truncateDay(f.KickoffAt)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}
		key := day.Format(DateKeyLayout)
		officials := days[key]
		if officials == nil {
			officials = make(map[string]*accum)
			days[key] = officials
		}
		for _, a := range f.Assignments() {
			id := identity.KeyFor(a.Official)
			entry, ok := officials[id]
			if !ok {
				entry = &accum{roles: make(map[model.Role]struct{})}
				officials[id] = entry
			}
			entry.name = identity.PreferredName(entry.name, a.Official.Name)
			entry.roles[a.Role] = struct{}{}
			entry.count++
		}
	}

	out := make(map[string]Day, len(days))
	for key, officials := range days {
		day := make(Day, len(officials))
		for id, entry := range officials {
			day[id] = OfficialDay{
				Name:  entry.name,
				Roles: sortedRoles(entry.roles),
				Count: entry.count,
			}
		}
		out[key] = day
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// sortedRoles returns the distinct roles in slot order.
func sortedRoles(set map[model.Role]struct{}) []model.Role {
	order := make(map[model.Role]int, len(model.Roles))
	for i, r := range model.Roles {
		order[r] = i
	}
	roles := make([]model.Role, 0, len(set))
	for r := range set {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return order[roles[i]] < order[roles[j]] })
	return roles
}

package repository

import "github.com/touchline/touchline/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithFixtures seeds the store with an initial fixture set. Fixtures
// without an id are skipped; seeding is not the place to mint ids.
func WithFixtures(fixtures []model.Fixture) Option {
	return func(s *MemStore) {
		for _, f := range fixtures {
			if f.ID == "" {
				continue
			}
			s.fixtures[f.ID] = f
		}
	}
}

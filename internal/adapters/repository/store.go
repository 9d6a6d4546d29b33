// Package repository defines the fixture snapshot store interface and errors.
//
// In production the snapshot is fed by the external persistence/sync
// collaborator at its own cadence; this package is the in-process stand-in
// so the service is runnable end-to-end. The engine packages never touch
// it; they operate on the read-only snapshots it hands out.
package repository

import (
	"context"

	"github.com/touchline/touchline/internal/domain/model"
)

// Store provides read/write access to the fixture snapshot.
type Store interface {
	// Put inserts or replaces a fixture. A missing ID is assigned.
	// Returns the stored fixture.
	Put(ctx context.Context, f model.Fixture) (model.Fixture, error)

	// Get returns the fixture with the given id.
	// Returns ErrNotFound if the fixture is unknown.
	Get(ctx context.Context, id string) (model.Fixture, error)

	// Delete removes the fixture with the given id.
	// Returns ErrNotFound if the fixture is unknown.
	Delete(ctx context.Context, id string) error

	// List returns a copy of all fixtures ordered by kickoff time.
	List(ctx context.Context) []model.Fixture

	// Count returns the number of fixtures tracked in the store.
	Count(ctx context.Context) int
}

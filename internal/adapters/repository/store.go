// Package repository defines the participant store interface and errors.
// The matching engine never reaches into storage directly; the app service
// takes stable snapshots through this interface before computing.
package repository

import (
	"context"

	"github.com/mentormesh/matchd/internal/domain/model"
)

// Store provides read/write access to the participant pool.
type Store interface {
	// Upsert saves a participant keyed by id. Idempotent: re-submitting
	// the same survey replaces the previous record.
	Upsert(ctx context.Context, p model.Participant) error

	// Get returns the participant with the given id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (model.Participant, error)

	// List returns a snapshot of every participant with the given role,
	// ordered by id. Mutating the returned slice never affects the store.
	List(ctx context.Context, role model.Role) ([]model.Participant, error)

	// Count returns the number of stored participants.
	Count(ctx context.Context) int
}

package repository

import "github.com/mentormesh/matchd/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithParticipants pre-populates the store, e.g. for tests and demos.
// Entries with an empty id or unknown role are skipped.
func WithParticipants(participants ...model.Participant) Option {
	return func(s *MemStore) {
		for _, p := range participants {
			p.Normalize()
			if p.ID == "" || !p.Role.Valid() {
				continue
			}
			s.participants[p.ID] = p.Clone()
		}
	}
}

package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mentormesh/matchd/internal/domain/model"
	"github.com/mentormesh/matchd/pkg/metrics"
)

// MemStore is an in-memory Store guarded by a RWMutex. Reads hand out deep
// copies, so a pool snapshot taken before a matrix build cannot mutate
// mid-computation.
type MemStore struct {
	mu           sync.RWMutex
	participants map[string]model.Participant
}

// NewMemStore creates an empty in-memory participant store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		participants: make(map[string]model.Participant),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert saves a participant keyed by its normalized id.
func (s *MemStore) Upsert(_ context.Context, p model.Participant) error {
	p.Normalize()
	if p.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidParticipant)
	}
	if !p.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidParticipant, p.Role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants[p.ID] = p.Clone()
	metrics.UpdatePoolSizes(s.countByRoleLocked())
	return nil
}

// Get returns a copy of the participant with the given id.
func (s *MemStore) Get(_ context.Context, id string) (model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[id]
	if !ok {
		return model.Participant{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p.Clone(), nil
}

// List returns copies of every participant with the given role, id-sorted.
func (s *MemStore) List(_ context.Context, role model.Role) ([]model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Participant, 0, len(s.participants))
	for _, p := range s.participants {
		if p.Role == role {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Count returns the number of stored participants.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.participants)
}

func (s *MemStore) countByRoleLocked() (mentors, mentees int) {
	for _, p := range s.participants {
		switch p.Role {
		case model.RoleMentor:
			mentors++
		case model.RoleMentee:
			mentees++
		}
	}
	return mentors, mentees
}

package service

import (
	"github.com/mentormesh/matchd/internal/adapters/repository"
	"github.com/mentormesh/matchd/internal/domain/survey"
	"github.com/mentormesh/matchd/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore injects the participant store. Defaults to an in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithQuestionnaire sets the questionnaire participants are encoded against.
func WithQuestionnaire(q *survey.Questionnaire) Option {
	return func(s *Service) {
		if q != nil {
			s.questionnaire = q
		}
	}
}

// WithTopN sets the default number of matches returned by TopMatchesFor.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithBonusWeight sets the lambda applied to soft-preference bonuses.
func WithBonusWeight(w float64) Option {
	return func(s *Service) {
		if w >= 0 {
			s.bonusWeight = w
		}
	}
}

// WithPenaltyWeight sets the mu applied to soft-preference penalties.
func WithPenaltyWeight(w float64) Option {
	return func(s *Service) {
		if w >= 0 {
			s.penaltyWeight = w
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

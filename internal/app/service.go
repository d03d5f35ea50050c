// Package service provides the match query service that implements the
// dependencies required by the HTTP API. It orchestrates the participant
// store and the matching engine: snapshot the pools, build the matrix,
// solve the assignment, answer per-participant queries.
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mentormesh/matchd/internal/adapters/repository"
	"github.com/mentormesh/matchd/internal/domain/assign"
	"github.com/mentormesh/matchd/internal/domain/matrix"
	"github.com/mentormesh/matchd/internal/domain/model"
	"github.com/mentormesh/matchd/internal/domain/survey"
	"github.com/mentormesh/matchd/internal/domain/types"
	"github.com/mentormesh/matchd/pkg/logger"
	"github.com/mentormesh/matchd/pkg/metrics"
)

// Default query configuration.
const (
	defaultTopN = 5
)

// Service implements the match query operations over a participant store.
// The engine itself is pure; Service owns orchestration only. Writes to the
// store and matrix builds are serialized through the store's snapshot
// discipline: List hands out deep copies, so a build never observes a pool
// mutating mid-computation.
type Service struct {
	store         repository.Store
	questionnaire *survey.Questionnaire
	builder       *matrix.Builder
	topN          int
	bonusWeight   float64
	penaltyWeight float64
	logger        logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		questionnaire: survey.Default(),
		topN:          defaultTopN,
		bonusWeight:   matrix.DefaultBonusWeight,
		penaltyWeight: matrix.DefaultPenaltyWeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.builder = matrix.NewBuilder(s.questionnaire,
		matrix.WithBonusWeight(s.bonusWeight),
		matrix.WithPenaltyWeight(s.penaltyWeight),
	)
	return s
}

// SaveParticipant validates and upserts one completed survey submission.
func (s *Service) SaveParticipant(ctx context.Context, p model.Participant) error {
	if err := s.store.Upsert(ctx, p); err != nil {
		return fmt.Errorf("save participant: %w", err)
	}
	metrics.RecordParticipantSaved()
	s.logger.Info(ctx, "participant saved",
		logger.String("id", p.ID),
		logger.String("role", string(p.Role)),
	)
	return nil
}

// Participant returns the stored participant with the given id.
// repository.ErrNotFound is passed through for the API to translate.
func (s *Service) Participant(ctx context.Context, id string) (model.Participant, error) {
	return s.store.Get(ctx, id)
}

// Vectorize exposes the feature encoding for debugging and inspection.
func (s *Service) Vectorize(answers model.Answers) []float64 {
	return s.builder.Vectorizer().Vectorize(answers)
}

// ScorePair scores one explicit pair. The two participants must hold
// opposite roles; the mentor/mentee orientation is inferred.
func (s *Service) ScorePair(ctx context.Context, aID, bID string) (types.PairScore, error) {
	a, err := s.store.Get(ctx, aID)
	if err != nil {
		return types.PairScore{}, err
	}
	b, err := s.store.Get(ctx, bID)
	if err != nil {
		return types.PairScore{}, err
	}
	if a.Role == b.Role {
		return types.PairScore{}, fmt.Errorf("%w: %s and %s are both %s", ErrSameRole, aID, bID, a.Role)
	}
	mentor, mentee := a, b
	if a.Role == model.RoleMentee {
		mentor, mentee = b, a
	}
	cell := s.builder.ScorePair(mentor, mentee)
	return types.PairScore{
		MentorID:   mentor.ID,
		MenteeID:   mentee.ID,
		FinalScore: cell.FinalScore,
		Breakdown:  breakdown(cell),
	}, nil
}

// BuildMatrix snapshots both pools and computes the full compatibility
// matrix. Empty pools produce an empty matrix, not an error.
func (s *Service) BuildMatrix(ctx context.Context) (*matrix.Matrix, error) {
	mentors, mentees, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	m, err := s.builder.Build(mentors, mentees)
	if err != nil {
		metrics.RecordMatrixError()
		return nil, fmt.Errorf("build matrix: %w", err)
	}
	metrics.RecordMatrixBuild(float64(time.Since(start).Milliseconds()))

	s.logger.Debug(ctx, "compatibility matrix built",
		logger.Int("mentors", len(mentors)),
		logger.Int("mentees", len(mentees)),
	)
	return m, nil
}

// TopMatchesFor ranks every opposite-role participant for the given id by
// final score descending, ties broken by counterpart id ascending, and
// returns the first n. This is deliberately independent of the event-wide
// assignment: "who matches me" and "who should be paired event-wide" are
// different questions and both are exposed.
func (s *Service) TopMatchesFor(ctx context.Context, id string, n int) ([]types.Match, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		metrics.RecordMatchQueryMiss()
		return nil, err
	}
	if n <= 0 {
		n = s.topN
	}

	counterRole := model.RoleMentor
	if p.Role == model.RoleMentor {
		counterRole = model.RoleMentee
	}
	counterparts, err := s.store.List(ctx, counterRole)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", counterRole, err)
	}

	matches := make([]types.Match, 0, len(counterparts))
	for _, c := range counterparts {
		mentor, mentee := p, c
		if p.Role == model.RoleMentee {
			mentor, mentee = c, p
		}
		cell := s.builder.ScorePair(mentor, mentee)
		matches = append(matches, types.Match{
			CounterpartID: c.ID,
			Score:         cell.FinalScore,
			Breakdown:     breakdown(cell),
		})
	}

	// Counterparts arrive id-sorted from the store, so a stable sort on
	// score alone preserves the id-ascending tie-break.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > n {
		matches = matches[:n]
	}

	metrics.RecordMatchQuery()
	return matches, nil
}

// RunEventAssignment builds the matrix over the current pools and solves
// the optimal one-to-one assignment. Pairs are returned in score-descending
// order; unmatched members of the larger pool are listed explicitly.
func (s *Service) RunEventAssignment(ctx context.Context) (types.AssignmentResult, error) {
	m, err := s.BuildMatrix(ctx)
	if err != nil {
		return types.AssignmentResult{}, err
	}

	start := time.Now()
	assignment := assign.Solve(m)
	result := types.AssignmentResult{
		RunID:              uuid.New().String(),
		Pairs:              make([]types.MatchedPair, 0, assignment.Size()),
		UnmatchedMenteeIDs: assignment.UnmatchedMenteeIDs,
		UnmatchedMentorIDs: assignment.UnmatchedMentorIDs,
		TotalScore:         assignment.TotalScore(),
	}
	for _, pair := range assignment.Pairs {
		result.Pairs = append(result.Pairs, types.MatchedPair{
			MenteeID: pair.MenteeID,
			MentorID: pair.MentorID,
			Score:    pair.Score,
		})
	}
	sort.SliceStable(result.Pairs, func(i, j int) bool {
		return result.Pairs[i].Score > result.Pairs[j].Score
	})

	unmatched := len(result.UnmatchedMenteeIDs) + len(result.UnmatchedMentorIDs)
	metrics.RecordAssignmentRun(float64(time.Since(start).Milliseconds()), len(result.Pairs), unmatched)

	s.logger.Info(ctx, "event assignment computed",
		logger.String("runID", result.RunID),
		logger.Int("pairs", len(result.Pairs)),
		logger.Int("unmatched", unmatched),
		logger.Float64("totalScore", result.TotalScore),
	)
	return result, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	mentors, _ := s.store.List(ctx, model.RoleMentor)
	mentees, _ := s.store.List(ctx, model.RoleMentee)
	return map[string]interface{}{
		"participants": s.store.Count(ctx),
		"mentors":      len(mentors),
		"mentees":      len(mentees),
		"dimension":    s.builder.Vectorizer().Dimension(),
	}
}

// snapshot lists both pools as immutable copies, id-sorted.
func (s *Service) snapshot(ctx context.Context) (mentors, mentees []model.Participant, err error) {
	mentors, err = s.store.List(ctx, model.RoleMentor)
	if err != nil {
		return nil, nil, fmt.Errorf("list mentors: %w", err)
	}
	mentees, err = s.store.List(ctx, model.RoleMentee)
	if err != nil {
		return nil, nil, fmt.Errorf("list mentees: %w", err)
	}
	return mentors, mentees, nil
}

func breakdown(cell matrix.Cell) types.Breakdown {
	return types.Breakdown{
		BaseSimilarity: cell.BaseSimilarity,
		Bonus:          cell.Bonus,
		Penalty:        cell.Penalty,
		BonusReasons:   cell.BonusReasons,
		PenaltyReasons: cell.PenaltyReasons,
	}
}

// Package matrix builds the full mentor/mentee compatibility matrix by
// composing the vectorizer, the cosine scorer, and the preference adjuster.
// A matrix is a derived value: it is rebuilt per matching run from a stable
// snapshot of the pools and never persisted as a source of truth.
package matrix

import (
	"fmt"

	"github.com/mentormesh/matchd/internal/domain/model"
	"github.com/mentormesh/matchd/internal/domain/preference"
	"github.com/mentormesh/matchd/internal/domain/similarity"
	"github.com/mentormesh/matchd/internal/domain/survey"
	"github.com/mentormesh/matchd/internal/domain/vectorize"
)

// Default adjustment weights: finalScore = clamp(base + lambda*bonus - mu*penalty).
const (
	DefaultBonusWeight   = 0.1
	DefaultPenaltyWeight = 0.05
)

// Cell is one mentee/mentor score record.
type Cell struct {
	MenteeID       string   `json:"mentee_id"`
	MentorID       string   `json:"mentor_id"`
	BaseSimilarity float64  `json:"base_similarity"`
	Bonus          float64  `json:"bonus"`
	Penalty        float64  `json:"penalty"`
	BonusReasons   []string `json:"bonus_reasons,omitempty"`
	PenaltyReasons []string `json:"penalty_reasons,omitempty"`
	FinalScore     float64  `json:"final_score"`
}

// Matrix is the pairwise score table. Rows are mentees, columns are
// mentors; the orientation is fixed end-to-end.
type Matrix struct {
	MenteeIDs []string `json:"mentee_ids"`
	MentorIDs []string `json:"mentor_ids"`
	Cells     [][]Cell `json:"cells"`
}

// Empty reports whether either pool was empty.
func (m *Matrix) Empty() bool {
	return len(m.MenteeIDs) == 0 || len(m.MentorIDs) == 0
}

// Cell returns the score record at (mentee row, mentor column).
func (m *Matrix) Cell(row, col int) Cell {
	return m.Cells[row][col]
}

// Scores returns the finalScore table, row-major, for the solver.
func (m *Matrix) Scores() [][]float64 {
	scores := make([][]float64, len(m.Cells))
	for i, row := range m.Cells {
		scores[i] = make([]float64, len(row))
		for j, c := range row {
			scores[i][j] = c.FinalScore
		}
	}
	return scores
}

// Builder composes the scoring pipeline. Safe for concurrent use: it holds
// no state beyond its configuration.
type Builder struct {
	vectorizer    *vectorize.Vectorizer
	adjuster      *preference.Adjuster
	bonusWeight   float64
	penaltyWeight float64
}

// NewBuilder creates a Builder over the given questionnaire.
func NewBuilder(q *survey.Questionnaire, opts ...Option) *Builder {
	b := &Builder{
		vectorizer:    vectorize.New(q),
		adjuster:      preference.New(q),
		bonusWeight:   DefaultBonusWeight,
		penaltyWeight: DefaultPenaltyWeight,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Vectorizer exposes the underlying vectorizer for inspection endpoints.
func (b *Builder) Vectorizer() *vectorize.Vectorizer {
	return b.vectorizer
}

// ScorePair computes a single score record for one mentor/mentee pairing.
func (b *Builder) ScorePair(mentor, mentee model.Participant) Cell {
	base := similarity.Cosine(
		b.vectorizer.Vectorize(mentor.Answers),
		b.vectorizer.Vectorize(mentee.Answers),
	)
	adj := b.adjuster.Adjust(mentor.Answers, mentee.Answers)
	return Cell{
		MenteeID:       mentee.ID,
		MentorID:       mentor.ID,
		BaseSimilarity: base,
		Bonus:          adj.Bonus,
		Penalty:        adj.Penalty,
		BonusReasons:   adj.BonusReasons,
		PenaltyReasons: adj.PenaltyReasons,
		FinalScore:     clamp(base + b.bonusWeight*adj.Bonus - b.penaltyWeight*adj.Penalty),
	}
}

// Build computes the full matrix for the given pools. Empty pools yield an
// empty matrix, not an error. An inconsistent vector dimensionality across
// participants indicates a questionnaire mismatch upstream and aborts the
// whole build; a partial matrix is never returned.
func (b *Builder) Build(mentors, mentees []model.Participant) (*Matrix, error) {
	m := &Matrix{
		MenteeIDs: ids(mentees),
		MentorIDs: ids(mentors),
		Cells:     make([][]Cell, len(mentees)),
	}

	want := b.vectorizer.Dimension()
	mentorVectors := make([][]float64, len(mentors))
	for j, mentor := range mentors {
		mentorVectors[j] = b.vectorizer.Vectorize(mentor.Answers)
		if len(mentorVectors[j]) != want {
			return nil, fmt.Errorf("%w: mentor %s has dimension %d, want %d",
				ErrDimensionMismatch, mentor.ID, len(mentorVectors[j]), want)
		}
	}

	for i, mentee := range mentees {
		menteeVector := b.vectorizer.Vectorize(mentee.Answers)
		if len(menteeVector) != want {
			return nil, fmt.Errorf("%w: mentee %s has dimension %d, want %d",
				ErrDimensionMismatch, mentee.ID, len(menteeVector), want)
		}
		row := make([]Cell, len(mentors))
		for j, mentor := range mentors {
			base := similarity.Cosine(mentorVectors[j], menteeVector)
			adj := b.adjuster.Adjust(mentor.Answers, mentee.Answers)
			row[j] = Cell{
				MenteeID:       mentee.ID,
				MentorID:       mentor.ID,
				BaseSimilarity: base,
				Bonus:          adj.Bonus,
				Penalty:        adj.Penalty,
				BonusReasons:   adj.BonusReasons,
				PenaltyReasons: adj.PenaltyReasons,
				FinalScore:     clamp(base + b.bonusWeight*adj.Bonus - b.penaltyWeight*adj.Penalty),
			}
		}
		m.Cells[i] = row
	}

	return m, nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func ids(pool []model.Participant) []string {
	out := make([]string, len(pool))
	for i, p := range pool {
		out[i] = p.ID
	}
	return out
}

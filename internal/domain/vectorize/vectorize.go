// Package vectorize turns a participant's raw survey answers into a
// fixed-dimension feature vector. Vectorization is total: malformed or
// missing answers resolve to documented neutral defaults, never an error.
package vectorize

import (
	"strings"

	"github.com/mentormesh/matchd/internal/domain/model"
	"github.com/mentormesh/matchd/internal/domain/survey"
)

// Neutral defaults used when an answer is missing or malformed.
const (
	neutralRating  = 0.5
	neutralRanking = 0.5
	// keywordSaturation is the hit count at which a theme score caps at 1.
	keywordSaturation = 3
)

// Vectorizer encodes answers against a fixed questionnaire. All vectors it
// produces share the same dimensionality and segment ordering, which is what
// makes them comparable across participants.
type Vectorizer struct {
	q *survey.Questionnaire
}

// New creates a Vectorizer for the given questionnaire.
func New(q *survey.Questionnaire) *Vectorizer {
	return &Vectorizer{q: q}
}

// Dimension returns the length of every vector this Vectorizer produces.
func (v *Vectorizer) Dimension() int {
	return v.q.Dimension()
}

// Vectorize encodes the answer map into a feature vector. Segment order is
// fixed: rating questions first, then one theme block per text question,
// then the ranking options.
func (v *Vectorizer) Vectorize(answers model.Answers) []float64 {
	vec := make([]float64, 0, v.q.Dimension())

	for _, key := range v.q.RatingKeys {
		vec = append(vec, NormalizeRating(ratingOf(answers, key)))
	}
	for _, key := range v.q.TextKeys {
		vec = append(vec, v.embedText(textOf(answers, key))...)
	}
	vec = append(vec, v.embedRanking(rankingOf(answers, v.q.RankingKey))...)

	return vec
}

// NormalizeRating maps a 1-5 rating onto [0,1]. Anything outside the scale
// counts as unanswered and yields the midpoint.
func NormalizeRating(rating int) float64 {
	if rating < 1 || rating > 5 {
		return neutralRating
	}
	return float64(rating-1) / 4
}

// embedText scores each lexicon theme by counting case-insensitive keyword
// substring hits, saturating at keywordSaturation matches. An empty answer
// yields an all-zero block.
func (v *Vectorizer) embedText(text string) []float64 {
	scores := make([]float64, len(v.q.Themes))
	if text == "" {
		return scores
	}
	lower := strings.ToLower(text)
	for i, theme := range v.q.Themes {
		hits := 0
		for _, kw := range theme.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		score := float64(hits) / keywordSaturation
		if score > 1 {
			score = 1
		}
		scores[i] = score
	}
	return scores
}

// embedRanking converts an ordered ranking into a per-option position score:
// top choice 1, last choice 0. Options absent from the ranking, and missing
// or malformed rankings, score the neutral 0.5.
func (v *Vectorizer) embedRanking(ranking []string) []float64 {
	scores := make([]float64, len(v.q.RankingOptions))
	if len(ranking) == 0 {
		for i := range scores {
			scores[i] = neutralRanking
		}
		return scores
	}
	for i, option := range v.q.RankingOptions {
		pos := indexOf(ranking, option)
		switch {
		case pos < 0:
			scores[i] = neutralRanking
		case len(ranking) == 1:
			// A single-item ranking has no spread; the sole item is top.
			scores[i] = 1
		default:
			scores[i] = 1 - float64(pos)/float64(len(ranking)-1)
		}
	}
	return scores
}

func ratingOf(answers model.Answers, key string) int {
	a, ok := answers[key]
	if !ok || a.Kind != model.AnswerRating {
		return 0
	}
	return a.Rating
}

func textOf(answers model.Answers, key string) string {
	a, ok := answers[key]
	if !ok || a.Kind != model.AnswerText {
		return ""
	}
	return a.Text
}

func rankingOf(answers model.Answers, key string) []string {
	a, ok := answers[key]
	if !ok || a.Kind != model.AnswerRanking {
		return nil
	}
	return a.Ranking
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

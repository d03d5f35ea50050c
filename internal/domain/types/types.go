// Package types contains common read types shared between the app service
// and the HTTP API.
package types

// Breakdown explains how a pair's final score was composed.
type Breakdown struct {
	BaseSimilarity float64  `json:"base_similarity"`
	Bonus          float64  `json:"bonus"`
	Penalty        float64  `json:"penalty"`
	BonusReasons   []string `json:"bonus_reasons,omitempty"`
	PenaltyReasons []string `json:"penalty_reasons,omitempty"`
}

// Match is one ranked counterpart for a per-participant match query.
type Match struct {
	CounterpartID string    `json:"counterpart_id"`
	Score         float64   `json:"score"`
	Breakdown     Breakdown `json:"breakdown"`
}

// PairScore is the outcome of scoring one explicit mentor/mentee pair.
type PairScore struct {
	MentorID   string    `json:"mentor_id"`
	MenteeID   string    `json:"mentee_id"`
	FinalScore float64   `json:"final_score"`
	Breakdown  Breakdown `json:"breakdown"`
}

// MatchedPair is one tuple of an event-wide assignment.
type MatchedPair struct {
	MenteeID string  `json:"mentee_id"`
	MentorID string  `json:"mentor_id"`
	Score    float64 `json:"score"`
}

// AssignmentResult is the outcome of an event-wide assignment run.
type AssignmentResult struct {
	RunID              string        `json:"run_id"`
	Pairs              []MatchedPair `json:"pairs"`
	UnmatchedMenteeIDs []string      `json:"unmatched_mentee_ids,omitempty"`
	UnmatchedMentorIDs []string      `json:"unmatched_mentor_ids,omitempty"`
	TotalScore         float64       `json:"total_score"`
}

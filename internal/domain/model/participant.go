// Package model contains domain models passed between layers.
package model

import "strings"

// Role distinguishes the two participant pools of an event.
type Role string

// Participant roles.
const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// Valid reports whether the role is one of the two known pools.
func (r Role) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

// AnswerKind tags the shape of a survey answer.
type AnswerKind string

// Answer kinds.
const (
	AnswerRating  AnswerKind = "rating"
	AnswerText    AnswerKind = "text"
	AnswerRanking AnswerKind = "ranking"
)

// Answer is one survey answer: a 1-5 rating, a free-text string, or an
// ordered sequence of category labels. Exactly one payload field is
// meaningful, selected by Kind.
type Answer struct {
	Kind    AnswerKind `json:"kind"`
	Rating  int        `json:"rating,omitempty"`
	Text    string     `json:"text,omitempty"`
	Ranking []string   `json:"ranking,omitempty"`
}

// Rating builds a closed-scale answer.
func Rating(v int) Answer { return Answer{Kind: AnswerRating, Rating: v} }

// Text builds a free-text answer.
func Text(s string) Answer { return Answer{Kind: AnswerText, Text: s} }

// Ranking builds a ranking answer. The slice is copied so later caller
// mutation cannot leak into a stored participant.
func Ranking(labels ...string) Answer {
	cp := make([]string, len(labels))
	copy(cp, labels)
	return Answer{Kind: AnswerRanking, Ranking: cp}
}

// Answers maps a question key to its answer.
type Answers map[string]Answer

// Clone returns a deep copy of the answer map.
func (a Answers) Clone() Answers {
	if a == nil {
		return nil
	}
	out := make(Answers, len(a))
	for k, v := range a {
		if v.Ranking != nil {
			cp := make([]string, len(v.Ranking))
			copy(cp, v.Ranking)
			v.Ranking = cp
		}
		out[k] = v
	}
	return out
}

// Participant is one member of an event pool. ID is the participant's
// unique identifier (an email in practice). A participant is created once
// per completed survey submission; the answer map is populated exactly once
// before the participant becomes eligible for matching.
type Participant struct {
	ID      string  `json:"id"`
	Role    Role    `json:"role"`
	Answers Answers `json:"answers"`
}

// Normalize trims the ID and lowercases it so the same email always maps to
// the same participant.
func (p *Participant) Normalize() {
	p.ID = strings.ToLower(strings.TrimSpace(p.ID))
}

// Clone returns a deep copy, used by the store to hand out snapshots.
func (p Participant) Clone() Participant {
	p.Answers = p.Answers.Clone()
	return p
}

// Package assign computes a provably optimal maximum-weight one-to-one
// pairing from a compatibility matrix. The solver is exact (Hungarian
// method with potentials, O(k^3) on the padded square), not the greedy
// best-first heuristic: for every valid one-to-one pairing over the same
// matrix, the returned assignment's total score is at least as large.
//
// When several assignments share the optimal total, the lexicographically
// smallest one by (mentee-id, mentor-id) is returned so repeated runs over
// the same pools are reproducible.
package assign

import (
	"math"
	"sort"

	"github.com/mentormesh/matchd/internal/domain/matrix"
)

// scoreTolerance bounds floating-point drift when comparing totals of
// alternative optimal assignments.
const scoreTolerance = 1e-9

// Pair is one matched mentee/mentor tuple.
type Pair struct {
	MenteeID string  `json:"mentee_id"`
	MentorID string  `json:"mentor_id"`
	Score    float64 `json:"score"`
}

// Assignment is the solver result. Pairs are ordered by mentee id. Members
// of the larger pool that stayed unmatched are listed explicitly rather
// than silently dropped.
type Assignment struct {
	Pairs              []Pair   `json:"pairs"`
	UnmatchedMenteeIDs []string `json:"unmatched_mentee_ids,omitempty"`
	UnmatchedMentorIDs []string `json:"unmatched_mentor_ids,omitempty"`
}

// Size returns the number of matched pairs, min(|mentors|, |mentees|).
func (a Assignment) Size() int {
	return len(a.Pairs)
}

// TotalScore returns the sum of matched pair scores.
func (a Assignment) TotalScore() float64 {
	var sum float64
	for _, p := range a.Pairs {
		sum += p.Score
	}
	return sum
}

// Solve computes the optimal assignment for the matrix. An empty matrix
// yields an empty assignment.
func Solve(m *matrix.Matrix) Assignment {
	if m == nil || m.Empty() {
		return Assignment{}
	}

	scores := m.Scores()

	// Work in id order so the lexicographic refinement below is
	// independent of how the caller ordered the pools.
	menteeOrder := sortedIndex(m.MenteeIDs)
	mentorOrder := sortedIndex(m.MentorIDs)

	best := optimalTotal(scores, menteeOrder, mentorOrder)

	// Fix pairs one mentee at a time, smallest ids first, keeping only
	// choices that still complete to the optimal total. The result is the
	// lexicographically smallest optimal assignment.
	var (
		pairs      []Pair
		unmatched  []string
		fixedScore float64
	)
	remainingMentors := mentorOrder
	for k, mentee := range menteeOrder {
		rest := menteeOrder[k+1:]
		matched := false
		for idx, mentor := range remainingMentors {
			candidate := fixedScore + scores[mentee][mentor] +
				optimalTotal(scores, rest, without(remainingMentors, idx))
			if candidate >= best-scoreTolerance {
				pairs = append(pairs, Pair{
					MenteeID: m.MenteeIDs[mentee],
					MentorID: m.MentorIDs[mentor],
					Score:    scores[mentee][mentor],
				})
				fixedScore += scores[mentee][mentor]
				remainingMentors = without(remainingMentors, idx)
				matched = true
				break
			}
		}
		if !matched {
			// Only reachable when mentees outnumber mentors: every
			// optimal completion leaves this mentee out.
			unmatched = append(unmatched, m.MenteeIDs[mentee])
		}
	}

	unmatchedMentors := make([]string, 0, len(remainingMentors))
	for _, mentor := range remainingMentors {
		unmatchedMentors = append(unmatchedMentors, m.MentorIDs[mentor])
	}
	sort.Strings(unmatched)
	sort.Strings(unmatchedMentors)

	return Assignment{
		Pairs:              pairs,
		UnmatchedMenteeIDs: unmatched,
		UnmatchedMentorIDs: unmatchedMentors,
	}
}

// optimalTotal returns the maximum total score of a one-to-one matching of
// size min(len(rows), len(cols)) over the given row/column subsets.
func optimalTotal(scores [][]float64, rows, cols []int) float64 {
	if len(rows) == 0 || len(cols) == 0 {
		return 0
	}
	if len(rows) <= len(cols) {
		return hungarian(func(i, j int) float64 {
			return scores[rows[i]][cols[j]]
		}, len(rows), len(cols))
	}
	// Transpose so every row gets matched.
	return hungarian(func(i, j int) float64 {
		return scores[rows[j]][cols[i]]
	}, len(cols), len(rows))
}

// hungarian solves the rectangular assignment problem for n rows and m
// columns, n <= m, maximizing the total weight(i, j). It is the classical
// potentials formulation run on negated weights, so it minimizes cost and
// assigns every row exactly once.
func hungarian(weight func(i, j int) float64, n, m int) float64 {
	cost := func(i, j int) float64 { return -weight(i, j) }

	u := make([]float64, n+1)
	v := make([]float64, m+1)
	colRow := make([]int, m+1) // colRow[j] = row assigned to column j (1-based, 0 = free)
	way := make([]int, m+1)

	for i := 1; i <= n; i++ {
		colRow[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		for {
			used[j0] = true
			i0 := colRow[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[colRow[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if colRow[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			colRow[j0] = colRow[j1]
			j0 = j1
		}
	}

	var total float64
	for j := 1; j <= m; j++ {
		if colRow[j] != 0 {
			total += weight(colRow[j]-1, j-1)
		}
	}
	return total
}

// sortedIndex returns matrix indices ordered by their id.
func sortedIndex(ids []string) []int {
	idx := make([]int, len(ids))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return ids[idx[a]] < ids[idx[b]]
	})
	return idx
}

// without returns a copy of list with the element at position i removed.
func without(list []int, i int) []int {
	out := make([]int, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

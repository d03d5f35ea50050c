// Package preference computes rule-based soft adjustments to a pair's base
// similarity. The rules read raw answers rather than feature vectors because
// they reference semantic structure, such as "top-ranked option", that a
// flattened vector obscures. Each rule is independently triggerable and
// contributes a human-readable reason string.
package preference

import (
	"fmt"
	"strings"

	"github.com/mentormesh/matchd/internal/domain/model"
	"github.com/mentormesh/matchd/internal/domain/survey"
)

// Rule contributions and thresholds. These are fixed policy constants, not
// computed values.
const (
	topInterestBonus   = 1.0
	sharedTopTwoBonus  = 0.5
	growthBonus        = 0.5
	lifestyleBonus     = 0.3
	energyPenalty      = 0.3
	uncertaintyPenalty = 0.2

	// growthMinRating is the rating a mentor must reach for a question to
	// count toward growth potential; growthMinQuestions is how many such
	// questions are needed.
	growthMinRating    = 4
	growthMinQuestions = 2

	// lifestyleMinShared is the number of themes both sides must hit.
	lifestyleMinShared = 2

	// energyGapThreshold triggers the energy-mismatch penalty.
	energyGapThreshold = 0.6

	// neutralEnergy is assumed when no energy keyword hits either list.
	neutralEnergy = 0.5

	// topInterestWindow is how deep into the counterpart's ranking the
	// other side's first choice may sit and still count as aligned.
	topInterestWindow = 3
	topTwoWindow      = 2
)

// Adjustment is the outcome of the soft-preference rules for one pair.
type Adjustment struct {
	Bonus          float64  `json:"bonus"`
	Penalty        float64  `json:"penalty"`
	BonusReasons   []string `json:"bonus_reasons,omitempty"`
	PenaltyReasons []string `json:"penalty_reasons,omitempty"`
}

// Adjuster evaluates the rule set against a fixed questionnaire.
type Adjuster struct {
	q *survey.Questionnaire
}

// New creates an Adjuster for the given questionnaire.
func New(q *survey.Questionnaire) *Adjuster {
	return &Adjuster{q: q}
}

// Adjust runs every rule over the two raw answer maps and returns the
// accumulated bonus, penalty, and reasons.
func (a *Adjuster) Adjust(mentor, mentee model.Answers) Adjustment {
	var adj Adjustment

	mentorRanking := rankingOf(mentor, a.q.RankingKey)
	menteeRanking := rankingOf(mentee, a.q.RankingKey)

	if len(mentorRanking) > 0 && len(menteeRanking) > 0 {
		a.topInterestRule(&adj, mentorRanking, menteeRanking)
		a.sharedTopTwoRule(&adj, mentorRanking, menteeRanking)
		a.mutualUncertaintyRule(&adj, mentorRanking, menteeRanking)
	}
	a.growthRule(&adj, mentor, mentee)
	a.lifestyleRule(&adj, mentor, mentee)
	a.energyRule(&adj, mentor, mentee)

	return adj
}

// topInterestRule: the mentee's first choice appears in the mentor's top
// three.
func (a *Adjuster) topInterestRule(adj *Adjustment, mentorRanking, menteeRanking []string) {
	menteeTop := menteeRanking[0]
	for _, opt := range head(mentorRanking, topInterestWindow) {
		if opt == menteeTop {
			adj.Bonus += topInterestBonus
			adj.BonusReasons = append(adj.BonusReasons,
				fmt.Sprintf("Mentor expertise aligns with mentee's top interest: %s", menteeTop))
			return
		}
	}
}

// sharedTopTwoRule: the two top-two sets intersect in at least one option.
func (a *Adjuster) sharedTopTwoRule(adj *Adjustment, mentorRanking, menteeRanking []string) {
	mentorTop := head(mentorRanking, topTwoWindow)
	var overlap []string
	for _, opt := range head(menteeRanking, topTwoWindow) {
		if contains(mentorTop, opt) {
			overlap = append(overlap, opt)
		}
	}
	if len(overlap) >= 1 {
		adj.Bonus += sharedTopTwoBonus
		adj.BonusReasons = append(adj.BonusReasons,
			fmt.Sprintf("Shared top interests: %s", strings.Join(overlap, ", ")))
	}
}

// growthRule: the mentor scores strictly higher than the mentee and at
// least growthMinRating on growthMinQuestions of the rating questions.
// Questions either side left unanswered do not count.
func (a *Adjuster) growthRule(adj *Adjustment, mentor, mentee model.Answers) {
	opportunities := 0
	for _, key := range a.q.RatingKeys {
		mentorRating, mentorOK := ratingOf(mentor, key)
		menteeRating, menteeOK := ratingOf(mentee, key)
		if mentorOK && menteeOK && mentorRating > menteeRating && mentorRating >= growthMinRating {
			opportunities++
		}
	}
	if opportunities >= growthMinQuestions {
		adj.Bonus += growthBonus
		adj.BonusReasons = append(adj.BonusReasons,
			"Strong growth potential - mentor excels in multiple areas")
	}
}

// lifestyleRule: at least lifestyleMinShared lexicon themes are detected in
// both sides' concatenated open-ended text.
func (a *Adjuster) lifestyleRule(adj *Adjustment, mentor, mentee model.Answers) {
	mentorText := a.openText(mentor)
	menteeText := a.openText(mentee)

	var shared []string
	for _, theme := range a.q.Themes {
		if hitsAny(mentorText, theme.Keywords) && hitsAny(menteeText, theme.Keywords) {
			shared = append(shared, theme.Name)
		}
	}
	if len(shared) >= lifestyleMinShared {
		adj.Bonus += lifestyleBonus
		adj.BonusReasons = append(adj.BonusReasons,
			fmt.Sprintf("Similar lifestyle themes: %s", strings.Join(shared, ", ")))
	}
}

// energyRule: penalize when the two energy estimates differ by more than
// energyGapThreshold.
func (a *Adjuster) energyRule(adj *Adjustment, mentor, mentee model.Answers) {
	gap := a.EnergyLevel(mentor) - a.EnergyLevel(mentee)
	if gap < 0 {
		gap = -gap
	}
	if gap > energyGapThreshold {
		adj.Penalty += energyPenalty
		adj.PenaltyReasons = append(adj.PenaltyReasons, "Different energy/activity levels")
	}
}

// mutualUncertaintyRule: both rank-1 choices equal the undecided label.
func (a *Adjuster) mutualUncertaintyRule(adj *Adjustment, mentorRanking, menteeRanking []string) {
	if mentorRanking[0] == a.q.UndecidedLabel && menteeRanking[0] == a.q.UndecidedLabel {
		adj.Penalty += uncertaintyPenalty
		adj.PenaltyReasons = append(adj.PenaltyReasons, "Both uncertain about career direction")
	}
}

// EnergyLevel estimates how high-energy a participant's lifestyle reads:
// highHits / (highHits + lowHits) over the concatenated open-ended text,
// neutral 0.5 when neither keyword list hits.
func (a *Adjuster) EnergyLevel(answers model.Answers) float64 {
	text := a.openText(answers)
	high := countHits(text, a.q.HighEnergyKeywords)
	low := countHits(text, a.q.LowEnergyKeywords)
	if high+low == 0 {
		return neutralEnergy
	}
	return float64(high) / float64(high+low)
}

// openText concatenates and lowercases all open-ended answers.
func (a *Adjuster) openText(answers model.Answers) string {
	var b strings.Builder
	for _, key := range a.q.TextKeys {
		ans, ok := answers[key]
		if !ok || ans.Kind != model.AnswerText {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(strings.ToLower(ans.Text))
	}
	return b.String()
}

func hitsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

func rankingOf(answers model.Answers, key string) []string {
	a, ok := answers[key]
	if !ok || a.Kind != model.AnswerRanking {
		return nil
	}
	return a.Ranking
}

func ratingOf(answers model.Answers, key string) (int, bool) {
	a, ok := answers[key]
	if !ok || a.Kind != model.AnswerRating {
		return 0, false
	}
	return a.Rating, true
}

func head(list []string, n int) []string {
	if len(list) < n {
		return list
	}
	return list[:n]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

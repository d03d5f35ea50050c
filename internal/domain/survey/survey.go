// Package survey defines the questionnaire a participant answers and the
// theme lexicon used to embed free-text answers. Every component that turns
// answers into numbers is parameterized by a Questionnaire so that all
// participants of an event are encoded against the same question and
// category ordering.
package survey

// Question kinds supported by the questionnaire.
const (
	KindRating  = "rating"  // closed 1-5 scale
	KindText    = "text"    // open-ended free text
	KindRanking = "ranking" // ordered category labels
)

// Theme groups keywords that signal a lifestyle theme in free text.
type Theme struct {
	Name     string
	Keywords []string
}

// Questionnaire fixes the question set and category ordering for an event.
// The zero value is unusable; construct via Default or assemble explicitly.
type Questionnaire struct {
	// RatingKeys are the closed-scale question keys, in declaration order.
	RatingKeys []string
	// TextKeys are the open-ended question keys, in declaration order.
	TextKeys []string
	// RankingKey is the single ranking question key.
	RankingKey string
	// RankingOptions are the category labels a ranking may contain.
	RankingOptions []string
	// UndecidedLabel is the ranking option that signals no career direction.
	UndecidedLabel string

	// Themes is the lexicon used to embed free text, in declaration order.
	Themes []Theme

	// HighEnergyKeywords and LowEnergyKeywords drive the energy-level
	// estimate used by the preference rules.
	HighEnergyKeywords []string
	LowEnergyKeywords  []string
}

// Dimension returns the feature-vector dimensionality implied by the
// questionnaire: one dimension per rating question, one block of theme
// scores per text question, and one dimension per ranking option.
func (q *Questionnaire) Dimension() int {
	return len(q.RatingKeys) + len(q.TextKeys)*len(q.Themes) + len(q.RankingOptions)
}

// ThemeNames returns the theme names in declaration order.
func (q *Questionnaire) ThemeNames() []string {
	names := make([]string, len(q.Themes))
	for i, t := range q.Themes {
		names[i] = t.Name
	}
	return names
}

// Default returns the mentorship-event questionnaire: three self-reflection
// ratings, four open-ended "vibe" prompts, and one ranking of tech career
// areas.
func Default() *Questionnaire {
	return &Questionnaire{
		RatingKeys: []string{
			"reflection.planning",
			"reflection.empathy",
			"reflection.feedback",
		},
		TextKeys: []string{
			"vibe.friday_night",
			"vibe.procrastination",
			"vibe.hobby",
			"vibe.physical_activity",
		},
		RankingKey: "career.ranking",
		RankingOptions: []string{
			"Software Development",
			"Data Science",
			"Cybersecurity",
			"AI/ML",
			"Web Development",
			"Undecisive",
			"Other",
		},
		UndecidedLabel: "Undecisive",
		Themes: []Theme{
			{Name: "social", Keywords: []string{"friends", "party", "going out", "hangout", "people", "social", "club", "bar", "gathering", "group"}},
			{Name: "introvert", Keywords: []string{"staying in", "alone", "reading", "quiet", "home", "solo", "relax", "chill", "netflix", "show"}},
			{Name: "active", Keywords: []string{"sports", "gym", "running", "hiking", "fitness", "exercise", "walking", "workout", "yoga", "swimming"}},
			{Name: "creative", Keywords: []string{"art", "music", "cooking", "baking", "writing", "drawing", "crafts", "photography", "design", "painting"}},
			{Name: "tech", Keywords: []string{"gaming", "coding", "programming", "computers", "tech", "video games", "streaming", "youtube"}},
			{Name: "outdoors", Keywords: []string{"nature", "hiking", "camping", "beach", "travel", "exploring", "outdoor", "parks"}},
			{Name: "learning", Keywords: []string{"reading", "learning", "studying", "courses", "books", "podcast", "documentary"}},
			{Name: "entertainment", Keywords: []string{"movies", "tv", "shows", "anime", "streaming", "doomscroll", "tiktok", "instagram"}},
		},
		HighEnergyKeywords: []string{"sports", "gym", "running", "party", "going out", "hiking", "active"},
		LowEnergyKeywords:  []string{"staying in", "relax", "chill", "reading", "quiet", "home", "solo"},
	}
}

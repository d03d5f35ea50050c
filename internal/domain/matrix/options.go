package matrix

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithBonusWeight sets the lambda applied to accumulated bonuses.
func WithBonusWeight(w float64) Option {
	return func(b *Builder) {
		if w >= 0 {
			b.bonusWeight = w
		}
	}
}

// WithPenaltyWeight sets the mu applied to accumulated penalties.
func WithPenaltyWeight(w float64) Option {
	return func(b *Builder) {
		if w >= 0 {
			b.penaltyWeight = w
		}
	}
}

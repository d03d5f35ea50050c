// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and MATCHD_* env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// TopMatches is the default number of matches returned per query.
	TopMatches int `koanf:"top_matches"`

	// MaxTopMatches caps GET /matches/{id}?limit.
	MaxTopMatches int `koanf:"max_top_matches"`

	// BonusWeight is the lambda applied to soft-preference bonuses.
	BonusWeight float64 `koanf:"bonus_weight"`

	// PenaltyWeight is the mu applied to soft-preference penalties.
	PenaltyWeight float64 `koanf:"penalty_weight"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":9080",
		TopMatches:    5,
		MaxTopMatches: 50,
		BonusWeight:   0.1,
		PenaltyWeight: 0.05,
	}
}

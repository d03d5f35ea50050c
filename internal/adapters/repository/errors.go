package repository

import "errors"

// Sentinel kinds for participant store errors.
var (
	ErrNotFound           = errors.New("participant not found")
	ErrInvalidParticipant = errors.New("invalid participant")
)

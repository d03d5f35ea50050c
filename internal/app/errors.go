package service

import "errors"

// Sentinel kinds for match query errors.
var (
	// ErrSameRole rejects pair scoring between two mentors or two mentees.
	ErrSameRole = errors.New("participants share a role")
)

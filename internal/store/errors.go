package store

import "errors"

var (
	// ErrSessionNotFound is returned by SessionRepository.Get when no
	// session has been saved (or it was cleared).
	ErrSessionNotFound = errors.New("local session not found")
)

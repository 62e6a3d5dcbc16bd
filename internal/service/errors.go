package service

import "errors"

var (
	// ErrNotLogged is returned by cache operations invoked without an
	// active session. Operating on a shared global partition instead would
	// leak data between accounts.
	ErrNotLogged = errors.New("not logged")
)

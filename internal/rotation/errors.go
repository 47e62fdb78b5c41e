package rotation

import "errors"

// Validation failures callers are expected to branch on. Everything else
// the engine returns is a wrapped persistence error.
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionNotActive = errors.New("session is not active")
	ErrWrongBeer        = errors.New("vote is not for the current beer")
	ErrNoScores         = errors.New("vote carries no criterion scores")
)

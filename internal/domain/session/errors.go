package session

import "errors"

// Session domain errors
var (
	ErrSessionNotFound = errors.New("report session not found or expired")
)

// Package ident generates the opaque identifiers used by every entity
// store. Identifiers are created internally and never accepted from
// callers, so collisions are treated as programming errors rather than
// recoverable failures.
package ident

import "github.com/google/uuid"

// shortLen is the length of the truncated token used by tools that
// want identifiers a human can retype (5-Why analyses).
const shortLen = 8

// New returns a full UUIDv4 token.
func New() string {
	return uuid.NewString()
}

// NewShort returns the first 8 hex characters of a UUIDv4 token.
func NewShort() string {
	return uuid.NewString()[:shortLen]
}

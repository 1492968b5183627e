package models

import "errors"

var (
	// ErrUnknownIdentifier indicates a bsuite identifier that does not
	// resolve to a registered (family, settings) pair.
	ErrUnknownIdentifier = errors.New("unknown bsuite identifier")

	// ErrInvalidSettings indicates a settings entry that violates a
	// family-specific precondition. This is a registry-authoring bug.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrEnvironmentNotReset indicates Step was called before the first
	// Reset (or after an episode ended, without an intervening Reset).
	ErrEnvironmentNotReset = errors.New("environment not reset")

	// ErrSinkWrite indicates a durability failure while appending an
	// episode record.
	ErrSinkWrite = errors.New("sink write failed")
)

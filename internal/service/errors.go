package service

import "errors"

var (
	// ErrNotInitialized is returned by the standalone encrypt/decrypt entry
	// points and the remote settings operations before a key exists.
	ErrNotInitialized = errors.New("secure store is not initialized")

	// ErrUnknownEntry is returned when a name outside the closed list of
	// sensitive entries is addressed.
	ErrUnknownEntry = errors.New("unknown sensitive entry")

	// ErrEmptyUserID is returned by [SessionService.Open] for an empty
	// identifier.
	ErrEmptyUserID = errors.New("empty user id")
)

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrPlatformUnavailable is returned when the random source or the
	// symmetric cipher cannot be used.
	ErrPlatformUnavailable = errors.New("cryptography primitives are unavailable")

	// ErrKeyDerivation is returned when a key cannot be derived from the
	// supplied user identifier.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrInvalidKey is returned when a key handle does not hold a 256-bit key.
	ErrInvalidKey = errors.New("invalid key: must be 32 bytes")

	// ErrFormat is returned when a value carries the record marker but is not
	// a well-formed record.
	ErrFormat = errors.New("malformed encrypted record")

	// ErrUnsupportedVersion is a [ErrFormat] for records with an unknown
	// version segment.
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported record version", ErrFormat)

	// ErrAuthentication is returned when authenticated decryption rejects a
	// record: the key is wrong or the data was tampered with.
	ErrAuthentication = errors.New("record failed authentication")
)

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown storage kind or a
	// missing path for a file-backed kind.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCryptoConfigs indicates an iteration count below the
	// minimum or an empty salt.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidServerConfigs indicates a missing address or non-positive
	// timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates a missing token sign key or issuer.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidRemoteConfigs indicates a non-positive sync interval while
	// the remote store is enabled.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
)

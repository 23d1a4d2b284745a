// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage backend kinds accepted in [Storage.Kind].
const (
	StorageKindMemory = "memory"
	StorageKindFile   = "file"
	StorageKindSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects the persistent key-value backend that holds the
	// encrypted sensitive entries.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds the key-derivation parameters.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Server holds the local HTTP API settings.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds the parameters used to verify session bearer tokens issued
	// by the authentication system.
	Auth Auth `envPrefix:"AUTH_"`

	// Remote holds the optional remote document store settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Log holds the logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage configures the persistent key-value store.
type Storage struct {
	// Kind is one of "memory", "file" or "sqlite".
	// Env: STORAGE_KIND
	Kind string `env:"KIND"`

	// Path is the JSON file path for "file" and the database file for
	// "sqlite". Ignored for "memory".
	// Env: STORAGE_PATH
	Path string `env:"PATH"`
}

// Crypto configures key derivation.
type Crypto struct {
	// Iterations is the PBKDF2 iteration count. Must be at least 100000.
	// Env: CRYPTO_ITERATIONS
	Iterations int `env:"ITERATIONS"`

	// Salt is the fixed application-wide derivation salt. Changing it makes
	// every previously written record undecryptable.
	// Env: CRYPTO_SALT
	Salt string `env:"SALT"`
}

// Server holds network and timeout settings for the local HTTP API.
type Server struct {
	// HTTPAddress is the TCP address the HTTP API listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown, including flushing pending
	// encrypted writes.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Auth holds the session token verification parameters.
type Auth struct {
	// TokenSignKey is the HMAC key the authentication system signs session
	// tokens with.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Remote configures the remote document store that receives pre-encrypted
// integration settings. An empty DSN disables it.
type Remote struct {
	// DSN is the PostgreSQL connection string.
	// Env: REMOTE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// SyncInterval is how often the integration settings are pushed.
	// Env: REMOTE_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log configures the application logger.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	minPBKDF2Iterations = 100_000

	defaultStorageKind     = StorageKindFile
	defaultStoragePath     = "secure-store.json"
	defaultIterations      = 100_000
	defaultSalt            = "go-secure-store/credential-store/v1"
	defaultHTTPAddress     = "127.0.0.1:8787"
	defaultRequestTimeout  = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultSyncInterval    = 5 * time.Minute
	defaultLogLevel        = "info"
)

// applyDefaults fills the zero-valued fields of the merged configuration.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.Kind == "" {
		cfg.Storage.Kind = defaultStorageKind
	}
	if cfg.Storage.Path == "" && cfg.Storage.Kind == StorageKindFile {
		cfg.Storage.Path = defaultStoragePath
	}
	if cfg.Crypto.Iterations == 0 {
		cfg.Crypto.Iterations = defaultIterations
	}
	if cfg.Crypto.Salt == "" {
		cfg.Crypto.Salt = defaultSalt
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Remote.DSN != "" && cfg.Remote.SyncInterval == 0 {
		cfg.Remote.SyncInterval = defaultSyncInterval
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Kind {
	case StorageKindMemory:
	case StorageKindFile, StorageKindSQLite:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("%w: path is required for %q", ErrInvalidStorageConfigs, cfg.Storage.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidStorageConfigs, cfg.Storage.Kind)
	}

	if cfg.Crypto.Iterations < minPBKDF2Iterations {
		return fmt.Errorf("%w: iterations must be at least %d", ErrInvalidCryptoConfigs, minPBKDF2Iterations)
	}
	if cfg.Crypto.Salt == "" {
		return fmt.Errorf("%w: empty salt", ErrInvalidCryptoConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Remote.DSN != "" && cfg.Remote.SyncInterval <= 0 {
		return ErrInvalidRemoteConfigs
	}

	return nil
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmptyBuilderRequiresAuth(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Auth: validAuth()})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, StorageKindFile, cfg.Storage.Kind)
	assert.Equal(t, defaultStoragePath, cfg.Storage.Path)
	assert.Equal(t, defaultIterations, cfg.Crypto.Iterations)
	assert.Equal(t, defaultSalt, cfg.Crypto.Salt)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Zero(t, cfg.Remote.SyncInterval)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Kind: "memory"}, Auth: validAuth()},
		&StructuredConfig{Storage: Storage{Kind: "sqlite", Path: "x.db"}, Remote: Remote{DSN: "postgres://x"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, StorageKindSQLite, cfg.Storage.Kind)
	assert.Equal(t, "x.db", cfg.Storage.Path)
	assert.Equal(t, "sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, defaultSyncInterval, cfg.Remote.SyncInterval)
}

func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"kind": "memory"},
		"auth":    map[string]any{"token_sign_key": "k", "token_issuer": "i"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, StorageKindMemory, cfg.Storage.Kind)
	assert.Equal(t, "k", cfg.Auth.TokenSignKey)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_CollectsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
}

func TestValidate(t *testing.T) {
	base := func() *StructuredConfig {
		cfg := &StructuredConfig{Auth: validAuth()}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "unknown kind", mutate: func(c *StructuredConfig) { c.Storage.Kind = "redis" }, want: ErrInvalidStorageConfigs},
		{name: "sqlite without path", mutate: func(c *StructuredConfig) { c.Storage.Kind, c.Storage.Path = "sqlite", "" }, want: ErrInvalidStorageConfigs},
		{name: "memory without path", mutate: func(c *StructuredConfig) { c.Storage.Kind, c.Storage.Path = "memory", "" }},
		{name: "low iterations", mutate: func(c *StructuredConfig) { c.Crypto.Iterations = 1000 }, want: ErrInvalidCryptoConfigs},
		{name: "empty salt", mutate: func(c *StructuredConfig) { c.Crypto.Salt = "" }, want: ErrInvalidCryptoConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, want: ErrInvalidServerConfigs},
		{name: "missing issuer", mutate: func(c *StructuredConfig) { c.Auth.TokenIssuer = "" }, want: ErrInvalidAuthConfigs},
		{name: "remote without interval", mutate: func(c *StructuredConfig) { c.Remote.DSN = "postgres://x" }, want: ErrInvalidRemoteConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntryName is the fixed logical name of a sensitive entry. The same name is
// used as the key in the cache and in the persistent key-value store.
type EntryName string

// Sensitive entry names. Adding a new sensitive value requires adding its name
// here and to [SensitiveEntryNames] so it takes part in migration.
const (
	AnthropicAPIKey   EntryName = "anthropic-api-key"
	OpenAIAPIKey      EntryName = "openai-api-key"
	GoogleAIAPIKey    EntryName = "google-ai-api-key"
	ElevenLabsAPIKey  EntryName = "elevenlabs-api-key"
	IntegrationConfig EntryName = "integration-config"
)

// SensitiveEntriesVersion is bumped every time the closed list of sensitive
// entry names changes.
const SensitiveEntriesVersion = 1

var sensitiveEntryNames = []EntryName{
	AnthropicAPIKey,
	OpenAIAPIKey,
	GoogleAIAPIKey,
	ElevenLabsAPIKey,
	IntegrationConfig,
}

// SensitiveEntryNames returns a copy of the closed list of entry names the
// secure store is responsible for.
func SensitiveEntryNames() []EntryName {
	names := make([]EntryName, len(sensitiveEntryNames))
	copy(names, sensitiveEntryNames)
	return names
}

// IsSensitive reports whether name belongs to the closed list.
func IsSensitive(name EntryName) bool {
	for _, n := range sensitiveEntryNames {
		if n == name {
			return true
		}
	}
	return false
}

// String returns the raw entry name.
func (n EntryName) String() string {
	return string(n)
}

// EntryState describes the persisted form of a sensitive entry.
type EntryState int

const (
	// EntryAbsent means no value has ever been persisted under the name.
	EntryAbsent EntryState = iota
	// EntryLegacyPlaintext is a raw string written before encryption existed.
	EntryLegacyPlaintext
	// EntryEncrypted is a value carrying the versioned record marker.
	EntryEncrypted
)

func (s EntryState) String() string {
	switch s {
	case EntryAbsent:
		return "absent"
	case EntryLegacyPlaintext:
		return "legacy_plaintext"
	case EntryEncrypted:
		return "encrypted"
	default:
		return "unknown"
	}
}

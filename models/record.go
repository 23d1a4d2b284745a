// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// Wire format constants of an encrypted record:
//
//	enc:v<version>:<base64 nonce>:<base64 ciphertext+tag>
const (
	RecordMarker        = "enc"
	RecordDelimiter     = ":"
	RecordVersion       = 1
	RecordNonceSize     = 12
	RecordPrefix        = RecordMarker + RecordDelimiter
	CurrentRecordPrefix = RecordPrefix + "v1" + RecordDelimiter
)

// Record is the deserialized form of a persisted value. It is either
// [LegacyPlaintext] or [EncryptedRecord]; code must type-switch on it rather
// than inspect string content.
type Record interface {
	State() EntryState
	isRecord()
}

// LegacyPlaintext is a raw value persisted by a version of the application
// that predates encryption.
type LegacyPlaintext string

func (LegacyPlaintext) State() EntryState { return EntryLegacyPlaintext }
func (LegacyPlaintext) isRecord()         {}

// EncryptedRecord is an authenticated-encryption envelope.
type EncryptedRecord struct {
	Version    int
	Nonce      []byte
	Ciphertext []byte
}

func (EncryptedRecord) State() EntryState { return EntryEncrypted }
func (EncryptedRecord) isRecord()         {}

// String serializes the record into its persisted wire form.
func (r EncryptedRecord) String() string {
	var b strings.Builder
	b.WriteString(RecordPrefix)
	b.WriteString("v")
	b.WriteString(strconv.Itoa(r.Version))
	b.WriteString(RecordDelimiter)
	b.WriteString(base64.StdEncoding.EncodeToString(r.Nonce))
	b.WriteString(RecordDelimiter)
	b.WriteString(base64.StdEncoding.EncodeToString(r.Ciphertext))
	return b.String()
}

// HasRecordMarker reports whether raw carries the versioned record marker
// "enc:v<digits>:". The marker is the only discriminator between legacy and
// encrypted values, so "enc:token" and the like are legacy plaintext.
func HasRecordMarker(raw string) bool {
	rest, ok := strings.CutPrefix(raw, RecordPrefix+"v")
	if !ok {
		return false
	}
	digits, _, ok := strings.Cut(rest, RecordDelimiter)
	if !ok || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

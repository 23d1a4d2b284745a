// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the lowest PBKDF2 iteration count the keychain accepts.
	MinIterations = 100_000

	// DefaultIterations is used when the configuration leaves it unset.
	DefaultIterations = 100_000

	// DefaultSalt is the application-wide derivation salt. It is fixed so
	// that the same user identifier yields the same key across sessions.
	DefaultSalt = "go-secure-store/credential-store/v1"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	salt       []byte
	iterations int

	// random is the nonce source. A nil reader marks the platform as
	// unavailable.
	random io.Reader
}

// NewKeyChainService builds a [KeyChainService] from cfg. Zero values fall
// back to [DefaultSalt] and [DefaultIterations]; an iteration count below
// [MinIterations] is rejected.
func NewKeyChainService(cfg config.Crypto) (KeyChainService, error) {
	salt := cfg.Salt
	if salt == "" {
		salt = DefaultSalt
	}

	iterations := cfg.Iterations
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations < MinIterations {
		return nil, fmt.Errorf("pbkdf2 iterations %d below minimum %d", iterations, MinIterations)
	}

	return newKeyChainService([]byte(salt), iterations, rand.Reader), nil
}

func newKeyChainService(salt []byte, iterations int, random io.Reader) *keyChainService {
	return &keyChainService{
		salt:       salt,
		iterations: iterations,
		random:     random,
	}
}

// Available implements [KeyChainService].
func (k *keyChainService) Available() error {
	if k.random == nil {
		return fmt.Errorf("%w: no random source", ErrPlatformUnavailable)
	}
	if _, err := newGCM(make([]byte, KeySize)); err != nil {
		return fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
	}
	return nil
}

// DeriveKey implements [KeyChainService] with PBKDF2-HMAC-SHA256.
func (k *keyChainService) DeriveKey(userID string) (Key, error) {
	if err := k.Available(); err != nil {
		return Key{}, err
	}
	if userID == "" {
		return Key{}, fmt.Errorf("%w: empty user identifier", ErrKeyDerivation)
	}

	material := pbkdf2.Key([]byte(userID), k.salt, k.iterations, KeySize, sha256.New)
	key, err := NewKey(material)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}

	return key, nil
}

// Encrypt implements [KeyChainService] with AES-256-GCM.
func (k *keyChainService) Encrypt(key Key, plaintext string) (models.EncryptedRecord, error) {
	if k.random == nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: no random source", ErrPlatformUnavailable)
	}

	raw, err := key.bytes()
	if err != nil {
		return models.EncryptedRecord{}, err
	}

	gcm, err := newGCM(raw)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
	}

	// A nonce must never repeat under the same key, so a short read fails
	// the whole operation.
	nonce := make([]byte, models.RecordNonceSize)
	if _, err = io.ReadFull(k.random, nonce); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("generate nonce: %w", err)
	}

	return models.EncryptedRecord{
		Version:    models.RecordVersion,
		Nonce:      nonce,
		Ciphertext: gcm.Seal(nil, nonce, []byte(plaintext), nil),
	}, nil
}

// Decrypt implements [KeyChainService].
func (k *keyChainService) Decrypt(key Key, record models.EncryptedRecord) (string, error) {
	if record.Version != models.RecordVersion {
		return "", fmt.Errorf("%w: v%d", ErrUnsupportedVersion, record.Version)
	}
	if len(record.Nonce) != models.RecordNonceSize {
		return "", fmt.Errorf("%w: nonce is %d bytes, want %d", ErrFormat, len(record.Nonce), models.RecordNonceSize)
	}

	raw, err := key.bytes()
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
	}

	plaintext, err := gcm.Open(nil, record.Nonce, record.Ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

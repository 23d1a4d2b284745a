// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/store"
	"github.com/MKhiriev/go-secure-store/internal/workers"
	"github.com/MKhiriev/go-secure-store/models"
)

// secureStore is the default [SecureStore]. It holds at most one open
// [Session]; persistence goes through a [workers.KeyedQueue] keyed by entry
// name so the last write for a name is the last one to reach storage.
type secureStore struct {
	keyChain crypto.KeyChainService
	storage  store.KeyValueStorage
	queue    *workers.KeyedQueue
	logger   *logger.Logger

	mu      sync.RWMutex
	session *Session
}

// NewSecureStore constructs an uninitialized [SecureStore].
func NewSecureStore(keyChain crypto.KeyChainService, storage store.KeyValueStorage, queue *workers.KeyedQueue, log *logger.Logger) SecureStore {
	return &secureStore{
		keyChain: keyChain,
		storage:  storage,
		queue:    queue,
		logger:   log,
	}
}

func (s *secureStore) current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Initialize implements [SecureStore].
func (s *secureStore) Initialize(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sess := newSession(userID)
	log := s.logger.With().Str("session_id", sess.ID()).Logger()

	switch err := s.keyChain.Available(); {
	case err != nil:
		log.Warn().Err(err).
			Str("func", "secureStore.Initialize").
			Msg("cryptography unavailable, loading entries without encryption")
		sess.setUnavailable()
		s.loadRaw(ctx, sess, true)
	default:
		key, err := s.keyChain.DeriveKey(userID)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "secureStore.Initialize").
				Msg("key derivation failed, loading legacy entries without encryption")
			sess.setUnavailable()
			s.loadRaw(ctx, sess, false)
			break
		}
		sess.setKey(key)
		s.loadEncrypted(ctx, sess)
	}

	s.mu.Lock()
	previous := s.session
	s.session = sess
	s.mu.Unlock()

	if previous != nil {
		previous.close()
	}

	log.Info().
		Str("func", "secureStore.Initialize").
		Str("key_state", sess.KeyState().String()).
		Msg("secure store initialized")

	return nil
}

// loadRaw fills the cache with persisted values as they are. Values that
// carry the record marker are skipped unless includeEncrypted is set.
func (s *secureStore) loadRaw(ctx context.Context, sess *Session, includeEncrypted bool) {
	for _, name := range models.SensitiveEntryNames() {
		raw, ok := s.readEntry(ctx, name)
		if !ok {
			continue
		}
		if !includeEncrypted && models.HasRecordMarker(raw) {
			continue
		}
		sess.put(name, raw)
	}
}

// loadEncrypted decrypts every encrypted entry into the cache and schedules
// the migration of legacy plaintext entries.
func (s *secureStore) loadEncrypted(ctx context.Context, sess *Session) {
	key, ok := sess.keyCopy()
	if !ok {
		return
	}
	defer key.Wipe()

	for _, name := range models.SensitiveEntryNames() {
		log := s.logger.ForEntry(name.String())

		raw, ok := s.readEntry(ctx, name)
		if !ok {
			continue
		}

		record, err := crypto.ParseRecord(raw)
		if err != nil {
			log.Warn().Err(err).Str("func", "secureStore.Initialize").Msg("skipping malformed entry")
			continue
		}

		switch r := record.(type) {
		case models.LegacyPlaintext:
			sess.put(name, string(r))
			s.schedulePersist(sess, name, string(r))
			log.Info().Str("func", "secureStore.Initialize").Msg("legacy entry scheduled for migration")
		case models.EncryptedRecord:
			plaintext, err := s.keyChain.Decrypt(key, r)
			if err != nil {
				log.Warn().Err(err).Str("func", "secureStore.Initialize").Msg("skipping undecryptable entry")
				continue
			}
			sess.put(name, plaintext)
		}
	}
}

// readEntry returns the persisted value; absent, empty and unreadable
// entries all report false.
func (s *secureStore) readEntry(ctx context.Context, name models.EntryName) (string, bool) {
	raw, err := s.storage.Get(ctx, name.String())
	if errors.Is(err, store.ErrEntryNotFound) {
		return "", false
	}
	if err != nil {
		s.logger.ForEntry(name.String()).Warn().Err(err).
			Str("func", "secureStore.readEntry").
			Msg("failed to read entry")
		return "", false
	}
	return raw, raw != ""
}

// Clear implements [SecureStore].
func (s *secureStore) Clear() {
	s.mu.Lock()
	previous := s.session
	s.session = nil
	s.mu.Unlock()

	if previous != nil {
		previous.close()
		s.logger.Info().
			Str("func", "secureStore.Clear").
			Str("session_id", previous.ID()).
			Msg("secure store cleared")
	}
}

// Get implements [SecureStore].
func (s *secureStore) Get(name models.EntryName) string {
	sess := s.current()
	if sess == nil {
		return ""
	}
	v, _ := sess.lookup(name)
	return v
}

// Set implements [SecureStore].
func (s *secureStore) Set(ctx context.Context, name models.EntryName, value string) {
	log := s.logger.ForEntry(name.String())

	if !models.IsSensitive(name) {
		log.Warn().Str("func", "secureStore.Set").Msg("ignoring write to unknown entry")
		return
	}

	if strings.TrimSpace(value) == "" {
		s.Remove(ctx, name)
		return
	}

	// no session means no owner: nothing is cached or written
	sess := s.current()
	if sess == nil || !sess.put(name, value) {
		log.Warn().Str("func", "secureStore.Set").Msg("ignoring write before initialization")
		return
	}

	s.schedulePersist(sess, name, value)
}

// schedulePersist queues the write of value under name. With a key the value
// is encrypted inside the job; without one the raw value is written.
func (s *secureStore) schedulePersist(sess *Session, name models.EntryName, value string) {
	key, encrypted := sess.keyCopy()

	job := func(ctx context.Context) error {
		if !encrypted {
			return s.storage.Set(ctx, name.String(), value)
		}
		defer key.Wipe()

		record, err := s.keyChain.Encrypt(key, value)
		if err != nil {
			return fmt.Errorf("encrypting entry: %w", err)
		}
		return s.storage.Set(ctx, name.String(), record.String())
	}

	if err := s.queue.Enqueue(name.String(), job); err != nil {
		key.Wipe()
		s.logger.ForEntry(name.String()).Warn().Err(err).
			Str("func", "secureStore.schedulePersist").
			Msg("failed to schedule write")
	}
}

// Remove implements [SecureStore].
func (s *secureStore) Remove(ctx context.Context, name models.EntryName) {
	log := s.logger.ForEntry(name.String())

	if !models.IsSensitive(name) {
		log.Warn().Str("func", "secureStore.Remove").Msg("ignoring removal of unknown entry")
		return
	}

	if sess := s.current(); sess != nil {
		sess.drop(name)
	}

	if err := s.storage.Delete(ctx, name.String()); err != nil {
		log.Warn().Err(err).Str("func", "secureStore.Remove").Msg("failed to delete entry")
	}

	// a write scheduled earlier must not resurrect the entry
	err := s.queue.Enqueue(name.String(), func(ctx context.Context) error {
		return s.storage.Delete(ctx, name.String())
	})
	if err != nil {
		log.Warn().Err(err).Str("func", "secureStore.Remove").Msg("failed to schedule delete")
	}
}

// IsInitialized implements [SecureStore].
func (s *secureStore) IsInitialized() bool {
	sess := s.current()
	return sess != nil && sess.isOpen()
}

// EncryptValue implements [SecureStore].
func (s *secureStore) EncryptValue(ctx context.Context, plaintext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, ok := s.sessionKey()
	if !ok {
		return "", ErrNotInitialized
	}
	defer key.Wipe()

	record, err := s.keyChain.Encrypt(key, plaintext)
	if err != nil {
		return "", err
	}
	return record.String(), nil
}

// DecryptValue implements [SecureStore].
func (s *secureStore) DecryptValue(ctx context.Context, record string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, ok := s.sessionKey()
	if !ok {
		return "", ErrNotInitialized
	}
	defer key.Wipe()

	if !models.HasRecordMarker(record) {
		return record, nil
	}

	parsed, err := crypto.ParseEncryptedRecord(record)
	if err != nil {
		return "", err
	}
	return s.keyChain.Decrypt(key, parsed)
}

func (s *secureStore) sessionKey() (crypto.Key, bool) {
	sess := s.current()
	if sess == nil {
		return crypto.Key{}, false
	}
	return sess.keyCopy()
}

// Flush implements [SecureStore].
func (s *secureStore) Flush(ctx context.Context) error {
	return s.queue.Wait(ctx)
}

// Status implements [SecureStore].
func (s *secureStore) Status() models.SessionStatus {
	sess := s.current()
	if sess == nil {
		return models.SessionStatus{}
	}
	return sess.status()
}

package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/models"
)

// Session is the state of one sign-in: the derived key and the plaintext
// cache. It is created by [SecureStore.Initialize] and closed by
// [SecureStore.Clear]; a closed session behaves as empty.
type Session struct {
	id       string
	userID   string
	openedAt time.Time

	mu       sync.RWMutex
	key      crypto.Key
	keyState models.KeyState
	cache    map[models.EntryName]string
	closed   bool
}

func newSession(userID string) *Session {
	return &Session{
		id:       uuid.NewString(),
		userID:   userID,
		openedAt: time.Now(),
		keyState: models.KeyStateAbsent,
		cache:    make(map[models.EntryName]string),
	}
}

// ID returns the random session identifier.
func (s *Session) ID() string { return s.id }

// UserID returns the identifier the session was opened for.
func (s *Session) UserID() string { return s.userID }

// KeyState returns the encryption mode of the session.
func (s *Session) KeyState() models.KeyState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyState
}

func (s *Session) setKey(key crypto.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
	s.keyState = models.KeyStateDerived
}

func (s *Session) setUnavailable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyState = models.KeyStateUnavailable
}

// keyCopy returns a private copy of the key, or false when the session has
// no key. Background jobs get copies so closing the session can wipe its
// own handle.
func (s *Session) keyCopy() (crypto.Key, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed || s.key.IsZero() {
		return crypto.Key{}, false
	}
	return s.key.Clone(), true
}

func (s *Session) lookup(name models.EntryName) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false
	}
	v, ok := s.cache[name]
	return v, ok
}

func (s *Session) put(name models.EntryName, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.cache[name] = value
	return true
}

func (s *Session) drop(name models.EntryName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, name)
}

func (s *Session) isOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

func (s *Session) status() models.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return models.SessionStatus{}
	}
	return models.SessionStatus{
		Initialized: true,
		SessionID:   s.id,
		KeyState:    s.keyState,
		Entries:     len(s.cache),
		OpenedAt:    s.openedAt,
	}
}

// close wipes the key and drops the cache. It is idempotent.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.key.Wipe()
	s.keyState = models.KeyStateAbsent
	s.cache = make(map[models.EntryName]string)
}

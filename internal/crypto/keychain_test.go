package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/models"
)

func newTestKeyChain() *keyChainService {
	return newKeyChainService([]byte(DefaultSalt), MinIterations, rand.Reader)
}

func mustDerive(t *testing.T, svc KeyChainService, userID string) Key {
	t.Helper()
	key, err := svc.DeriveKey(userID)
	if err != nil {
		t.Fatalf("DeriveKey(%q) error: %v", userID, err)
	}
	return key
}

func TestNewKeyChainService_Defaults(t *testing.T) {
	svc, err := NewKeyChainService(config.Crypto{})
	if err != nil {
		t.Fatalf("NewKeyChainService error: %v", err)
	}

	kc := svc.(*keyChainService)
	if kc.iterations != DefaultIterations {
		t.Fatalf("iterations = %d, want %d", kc.iterations, DefaultIterations)
	}
	if string(kc.salt) != DefaultSalt {
		t.Fatalf("salt = %q, want %q", kc.salt, DefaultSalt)
	}
}

func TestNewKeyChainService_RejectsLowIterations(t *testing.T) {
	_, err := NewKeyChainService(config.Crypto{Iterations: 1000})
	if err == nil {
		t.Fatalf("expected error for iterations below minimum")
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	svc := newTestKeyChain()

	k1 := mustDerive(t, svc, "user-42")
	k2 := mustDerive(t, svc, "user-42")

	if !k1.Equal(k2) {
		t.Fatalf("expected same key for same user identifier")
	}
	if len(k1.material) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1.material), KeySize)
	}
}

func TestDeriveKey_DifferentUsersDifferentKeys(t *testing.T) {
	svc := newTestKeyChain()

	if mustDerive(t, svc, "user-1").Equal(mustDerive(t, svc, "user-2")) {
		t.Fatalf("expected different keys for different users")
	}
}

func TestDeriveKey_DifferentSaltDifferentKeys(t *testing.T) {
	a := newKeyChainService([]byte("salt-a"), MinIterations, rand.Reader)
	b := newKeyChainService([]byte("salt-b"), MinIterations, rand.Reader)

	if mustDerive(t, a, "user-1").Equal(mustDerive(t, b, "user-1")) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_EmptyUserID(t *testing.T) {
	_, err := newTestKeyChain().DeriveKey("")
	if !errors.Is(err, ErrKeyDerivation) {
		t.Fatalf("err = %v, want ErrKeyDerivation", err)
	}
}

func TestDeriveKey_PlatformUnavailable(t *testing.T) {
	svc := newKeyChainService([]byte(DefaultSalt), MinIterations, nil)

	if err := svc.Available(); !errors.Is(err, ErrPlatformUnavailable) {
		t.Fatalf("Available() = %v, want ErrPlatformUnavailable", err)
	}
	if _, err := svc.DeriveKey("user-1"); !errors.Is(err, ErrPlatformUnavailable) {
		t.Fatalf("DeriveKey err = %v, want ErrPlatformUnavailable", err)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := newTestKeyChain()
	key := mustDerive(t, svc, "user-42")

	plaintexts := []string{
		"",
		"sk-ant-abc123",
		"ключ API с юникодом ✓",
		`{"slack":{"token":"xoxb-1"},"notion":{"secret":"n-2"}}`,
		strings.Repeat("x", 64*1024),
	}

	for _, p := range plaintexts {
		rec, err := svc.Encrypt(key, p)
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		got, err := svc.Decrypt(key, rec)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != p {
			t.Fatalf("round trip mismatch for %q", p)
		}
	}
}

func TestEncrypt_FreshNonceEveryCall(t *testing.T) {
	svc := newTestKeyChain()
	key := mustDerive(t, svc, "user-42")

	r1, err := svc.Encrypt(key, "same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	r2, err := svc.Encrypt(key, "same plaintext")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if bytes.Equal(r1.Nonce, r2.Nonce) {
		t.Fatalf("expected different nonces for two encryptions")
	}
	if r1.String() == r2.String() {
		t.Fatalf("expected different serialized records for two encryptions")
	}
	if len(r1.Nonce) != models.RecordNonceSize {
		t.Fatalf("nonce length = %d, want %d", len(r1.Nonce), models.RecordNonceSize)
	}
}

func TestEncrypt_ShortRandomRead(t *testing.T) {
	svc := newKeyChainService([]byte(DefaultSalt), MinIterations, bytes.NewReader([]byte{1, 2, 3}))
	key, err := NewKey(bytes.Repeat([]byte{0x2A}, KeySize))
	if err != nil {
		t.Fatalf("NewKey error: %v", err)
	}

	if _, err := svc.Encrypt(key, "value"); err == nil {
		t.Fatalf("expected error when nonce cannot be filled")
	}
}

func TestEncrypt_ZeroKey(t *testing.T) {
	if _, err := newTestKeyChain().Encrypt(Key{}, "value"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("err = %v, want ErrInvalidKey", err)
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	svc := newTestKeyChain()
	keyA := mustDerive(t, svc, "user-a")
	keyB := mustDerive(t, svc, "user-b")

	rec, err := svc.Encrypt(keyA, "sk-ant-abc123")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := svc.Decrypt(keyB, rec); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("err = %v, want ErrAuthentication", err)
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	svc := newTestKeyChain()
	key := mustDerive(t, svc, "user-42")

	rec, err := svc.Encrypt(key, "sk-ant-abc123")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	rec.Ciphertext[0] ^= 0xFF

	if _, err := svc.Decrypt(key, rec); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("err = %v, want ErrAuthentication", err)
	}
}

func TestDecrypt_BadEnvelope(t *testing.T) {
	svc := newTestKeyChain()
	key := mustDerive(t, svc, "user-42")

	rec, err := svc.Encrypt(key, "value")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	badVersion := rec
	badVersion.Version = 2
	if _, err := svc.Decrypt(key, badVersion); !errors.Is(err, ErrFormat) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}

	badNonce := rec
	badNonce.Nonce = rec.Nonce[:4]
	if _, err := svc.Decrypt(key, badNonce); !errors.Is(err, ErrFormat) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}
}

func TestKey_Wipe(t *testing.T) {
	key, err := NewKey(bytes.Repeat([]byte{0x11}, KeySize))
	if err != nil {
		t.Fatalf("NewKey error: %v", err)
	}
	shared := key.material

	key.Wipe()

	if !key.IsZero() {
		t.Fatalf("expected wiped key to be zero")
	}
	if !bytes.Equal(shared, make([]byte, KeySize)) {
		t.Fatalf("expected key material to be overwritten")
	}
}

func TestNewKey_InvalidLength(t *testing.T) {
	if _, err := NewKey([]byte("short")); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("err = %v, want ErrInvalidKey", err)
	}
}

func TestKey_CloneSurvivesWipe(t *testing.T) {
	key, err := NewKey(bytes.Repeat([]byte{0x22}, KeySize))
	if err != nil {
		t.Fatalf("NewKey error: %v", err)
	}
	clone := key.Clone()

	key.Wipe()

	if clone.IsZero() {
		t.Fatalf("clone was wiped with the original")
	}
	want, _ := NewKey(bytes.Repeat([]byte{0x22}, KeySize))
	if !clone.Equal(want) {
		t.Fatalf("clone material changed")
	}
	if !(Key{}).Clone().IsZero() {
		t.Fatalf("clone of zero key must be zero")
	}
}

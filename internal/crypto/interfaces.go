package crypto

import "github.com/MKhiriev/go-secure-store/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns every cryptographic operation of the secure store.
// It knows nothing about storage, caching or users beyond the opaque
// identifier it derives keys from.
type KeyChainService interface {
	// Available returns [ErrPlatformUnavailable] when the random source or
	// the cipher cannot be used, nil otherwise.
	Available() error

	// DeriveKey stretches userID into a 256-bit key. The same identifier
	// always yields the same key, which is what lets ciphertext written in
	// a previous session be read in the next one.
	DeriveKey(userID string) (Key, error)

	// Encrypt seals plaintext under key with a fresh random nonce.
	Encrypt(key Key, plaintext string) (models.EncryptedRecord, error)

	// Decrypt opens record with key. It returns [ErrFormat] for structurally
	// invalid records and [ErrAuthentication] when the tag does not verify.
	// Decrypt has no side effects.
	Decrypt(key Key, record models.EncryptedRecord) (string, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/subtle"

// KeySize is the length of the derived symmetric key in bytes (AES-256).
const KeySize = 32

// Key is an in-memory handle to a derived key. It is never persisted; the
// zero value means "no key".
type Key struct {
	material []byte
}

// NewKey wraps material into a [Key]. The slice is copied.
func NewKey(material []byte) (Key, error) {
	if len(material) != KeySize {
		return Key{}, ErrInvalidKey
	}
	k := make([]byte, KeySize)
	copy(k, material)
	return Key{material: k}, nil
}

// IsZero reports whether the handle holds no key.
func (k Key) IsZero() bool {
	return len(k.material) == 0
}

// Equal compares two keys in constant time.
func (k Key) Equal(other Key) bool {
	return subtle.ConstantTimeCompare(k.material, other.material) == 1
}

// Wipe overwrites the key material and resets the handle. Copies of the
// handle share the material and are wiped too.
func (k *Key) Wipe() {
	for i := range k.material {
		k.material[i] = 0
	}
	k.material = nil
}

func (k Key) bytes() ([]byte, error) {
	if len(k.material) != KeySize {
		return nil, ErrInvalidKey
	}
	return k.material, nil
}

// Clone returns a handle with its own copy of the key material, so wiping
// the original does not affect it.
func (k Key) Clone() Key {
	if k.IsZero() {
		return Key{}
	}
	c := make([]byte, len(k.material))
	copy(c, k.material)
	return Key{material: c}
}

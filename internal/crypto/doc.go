// Package crypto implements key derivation and the authenticated record codec
// used by the secure credential store.
//
// Keys are derived from the signed-in user's identifier with PBKDF2-HMAC-SHA256
// over a fixed application salt. The identifier is not a secret: anyone who
// can read it can rederive the key. The scheme therefore obfuscates stored
// values against casual inspection of the persistent store; it does not
// protect them from code running in the same process or origin.
//
// Records are sealed with AES-256-GCM under a fresh 12-byte nonce and
// serialized as
//
//	enc:v1:<base64 nonce>:<base64 ciphertext+tag>
package crypto

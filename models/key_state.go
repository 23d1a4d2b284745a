package models

// KeyState tells which mode a secure store session runs in.
type KeyState int

const (
	// KeyStateAbsent is the state before initialization and after clear.
	KeyStateAbsent KeyState = iota
	// KeyStateDerived means a key was derived and values are encrypted at rest.
	KeyStateDerived
	// KeyStateUnavailable means the session runs in the unencrypted fallback
	// mode because the cryptography primitives or key derivation failed.
	KeyStateUnavailable
)

func (s KeyState) String() string {
	switch s {
	case KeyStateAbsent:
		return "absent"
	case KeyStateDerived:
		return "derived"
	case KeyStateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s KeyState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

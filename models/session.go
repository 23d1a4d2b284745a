package models

import "time"

// SessionStatus is a read-only snapshot of the secure store session.
type SessionStatus struct {
	Initialized bool      `json:"initialized"`
	SessionID   string    `json:"session_id,omitempty"`
	KeyState    KeyState  `json:"key_state"`
	Entries     int       `json:"entries"`
	OpenedAt    time.Time `json:"opened_at,omitzero"`
}

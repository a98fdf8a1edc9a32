package types

import "time"

// Session holds the per-user state for one uploaded document. Sessions
// are never shared between users and never persisted; they expire after
// a configured TTL or when the process exits.
type Session struct {
	ID        string
	Role      UserRole
	Document  *Document
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session TTL has passed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

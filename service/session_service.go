package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tieubaoca/eduinsights-be/types"
)

// ErrSessionNotFound is returned when a session ID is unknown.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionExpired is returned when a session exists but its TTL has passed.
var ErrSessionExpired = errors.New("session expired")

// SessionService keeps per-user document sessions in memory. Nothing is
// persisted; a session holds exactly one extracted document and expires
// after the configured TTL. Expired entries are dropped on access and
// by a periodic sweep.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*types.Session
	ttl      time.Duration
}

func NewSessionService(ttl time.Duration) *SessionService {
	return &SessionService{
		sessions: make(map[string]*types.Session),
		ttl:      ttl,
	}
}

// Create stores a new session for the document and returns it.
func (s *SessionService) Create(doc *types.Document, role types.UserRole) *types.Session {
	if role == "" {
		role = types.RoleStudent
	}
	now := time.Now()
	session := &types.Session{
		ID:        uuid.NewString(),
		Role:      role,
		Document:  doc,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get retrieves a live session by ID. Expired sessions are removed and
// reported as ErrSessionExpired.
func (s *SessionService) Get(id string) (*types.Session, error) {
	s.mu.RLock()
	session, exists := s.sessions[id]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}

	if session.Expired() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *SessionService) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of stored sessions, expired ones included.
func (s *SessionService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper launches a goroutine that evicts expired sessions every
// interval until stop is closed.
func (s *SessionService) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *SessionService) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.Expired() {
			delete(s.sessions, id)
		}
	}
}

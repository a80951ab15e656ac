package services

import (
	"context"
	"sync"
	"time"

	"alfredoptarigan/resume-screener/internal/models"
)

// SessionStore holds per-session state. Get returns a copy; changes made
// after sign-in go through SetResume, AppendTurn and ClearChat, which apply
// atomically to the stored session.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	SetResume(ctx context.Context, id, resumeText string) error
	AppendTurn(ctx context.Context, id string, turn models.ChatTurn) error
	ClearChat(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	session   *models.Session
	expiresAt time.Time
}

func NewMemorySessionStore(ttl time.Duration) SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get implements SessionStore.
func (s *memorySessionStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	return entry.session.Clone(), nil
}

// Save implements SessionStore. Expired sessions are swept on every save,
// so abandoned logins do not accumulate.
func (s *memorySessionStore) Save(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}

	s.sessions[session.ID] = memoryEntry{
		session:   session.Clone(),
		expiresAt: now.Add(s.ttl),
	}

	return nil
}

// SetResume implements SessionStore.
func (s *memorySessionStore) SetResume(_ context.Context, id, resumeText string) error {
	return s.update(id, func(session *models.Session) {
		session.ResumeText = resumeText
	})
}

// AppendTurn implements SessionStore.
func (s *memorySessionStore) AppendTurn(_ context.Context, id string, turn models.ChatTurn) error {
	return s.update(id, func(session *models.Session) {
		session.AppendTurn(turn)
	})
}

// ClearChat implements SessionStore.
func (s *memorySessionStore) ClearChat(_ context.Context, id string) error {
	return s.update(id, func(session *models.Session) {
		session.ClearChat()
	})
}

// Delete implements SessionStore.
func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// update applies fn to the stored session under the write lock and
// refreshes its expiry.
func (s *memorySessionStore) update(id string, fn func(*models.Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.sessions[id]
	if !ok || now.After(entry.expiresAt) {
		delete(s.sessions, id)
		return ErrSessionNotFound
	}

	fn(entry.session)
	entry.expiresAt = now.Add(s.ttl)
	s.sessions[id] = entry

	return nil
}

package memory

import (
	"sync"

	"relaybot/internal/domain"
)

// SessionRepo implements repository.SessionRepository in process memory.
// Sessions live as long as the process; nothing is evicted.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewSessionRepo creates an empty session repository
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[int64]*domain.Session)}
}

// Get returns a copy of the user's session, or a default one if none is recorded
func (r *SessionRepo) Get(userID int64) domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.sessions[userID]; ok {
		return *s
	}
	return domain.Session{UserID: userID}
}

// SetInterfaceLanguage records the user's prompt language
func (r *SessionRepo) SetInterfaceLanguage(userID int64, lang domain.InterfaceLanguage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getOrCreate(userID).InterfaceLanguage = lang
}

// SetPendingText stores the text awaiting a target language
func (r *SessionRepo) SetPendingText(userID int64, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.getOrCreate(userID)
	s.PendingText = text
	s.HasPending = true
}

// ClearPendingText drops the pending text, if any
func (r *SessionRepo) ClearPendingText(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		s.PendingText = ""
		s.HasPending = false
	}
}

// Len returns the number of recorded sessions
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// getOrCreate must be called with the write lock held
func (r *SessionRepo) getOrCreate(userID int64) *domain.Session {
	s, ok := r.sessions[userID]
	if !ok {
		s = &domain.Session{UserID: userID}
		r.sessions[userID] = s
	}
	return s
}

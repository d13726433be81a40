package handlers

import (
	"sync"
	"time"
)

// SessionStatus describes the state of a user's token DM session.
type SessionStatus int

const (
	SessionActive SessionStatus = iota
	SessionExpired
	SessionMissing
)

type session struct {
	guildID int64
	expires time.Time
}

// SessionManager tracks which guild each user's token DM session is bound
// to, so subcommands sent in any private channel affect the right guild.
// Expiry is checked lazily on access; the cron sweep cleans up the rest.
type SessionManager struct {
	timeout time.Duration

	mu       sync.Mutex
	sessions map[int64]session
}

// NewSessionManager creates a manager whose sessions last for timeout.
func NewSessionManager(timeout time.Duration) *SessionManager {
	return &SessionManager{
		timeout:  timeout,
		sessions: make(map[int64]session),
	}
}

// Open binds the user to a guild, replacing any previous session and
// restarting the expiry clock.
func (m *SessionManager) Open(userID, guildID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = session{guildID: guildID, expires: time.Now().Add(m.timeout)}
}

// Resolve returns the guild the user's session is bound to. An expired
// session is removed and reported as SessionExpired exactly once.
func (m *SessionManager) Resolve(userID int64) (int64, SessionStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[userID]
	if !ok {
		return 0, SessionMissing
	}
	if time.Now().After(sess.expires) {
		delete(m.sessions, userID)
		return 0, SessionExpired
	}
	return sess.guildID, SessionActive
}

// End removes the user's session if present.
func (m *SessionManager) End(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Sweep removes all expired sessions and returns how many were removed.
func (m *SessionManager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	removed := 0
	for userID, sess := range m.sessions {
		if now.After(sess.expires) {
			delete(m.sessions, userID)
			removed++
		}
	}
	return removed
}

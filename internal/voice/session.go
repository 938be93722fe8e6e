// Package voice gates the live audio advice channel. The audio transport
// itself lives on the client; the server's job is the lifecycle: at most one
// session at a time, and every started session is torn down on stop or
// shutdown, unconditionally.
package voice

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrSessionActive = errors.New("a live session is already active")

// Session is one live audio conversation.
type Session struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
}

type Manager struct {
	mu      sync.Mutex
	current *Session
}

func NewManager() *Manager {
	return &Manager{}
}

// Start opens a session. A second Start while one is active fails; the
// caller must Stop first.
func (m *Manager) Start() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		return Session{}, ErrSessionActive
	}
	m.current = &Session{ID: uuid.NewString(), StartedAt: time.Now()}
	log.WithField("session", m.current.ID).Info("live session started")
	return *m.current, nil
}

// Stop tears down the active session. Stopping with nothing active is a
// no-op, so teardown paths can call it unconditionally.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return
	}
	log.WithField("session", m.current.ID).Info("live session stopped")
	m.current = nil
}

// Active returns the running session, if any.
func (m *Manager) Active() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// Close stops whatever is running. Used on server shutdown.
func (m *Manager) Close() {
	m.Stop()
}

// Package session is the single source of truth for "is someone logged
// in, and are they an admin". It keeps exactly two values in the cookie
// session: the opaque bearer token issued by the API and the admin
// flag cached at login. Nothing else writes these values.
// File: session/session.go
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"kamaru-web/logger"
)

// session keys
const (
	keyToken   = "token"
	keyIsAdmin = "isAdmin"
)

// Manager reads and writes the login session. It is injected into
// controllers and middleware rather than reached for as a global.
type Manager struct{}

// NewManager returns a session Manager.
func NewManager() Manager { return Manager{} }

// ----------------------- session lifecycle -----------------------

// Set persists the token and admin flag. Subsequent reads, including
// after a full reload, observe them until Clear.
func (Manager) Set(c *gin.Context, token string, isAdmin bool) error {
	s := sessions.Default(c)
	s.Set(keyToken, token)
	s.Set(keyIsAdmin, isAdmin)
	return s.Save()
}

// Token returns the stored bearer token. A missing or corrupted value
// is not an error: it reads as logged out.
func (Manager) Token(c *gin.Context) (string, bool) {
	s := sessions.Default(c)
	token, ok := s.Get(keyToken).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// IsAdmin reports whether the session belongs to an admin. It is false
// when the token is absent, when the flag is absent, and when the flag
// is present but not the literal boolean true.
func (m Manager) IsAdmin(c *gin.Context) bool {
	if _, ok := m.Token(c); !ok {
		return false
	}
	s := sessions.Default(c)
	isAdmin, ok := s.Get(keyIsAdmin).(bool)
	return ok && isAdmin
}

// Clear removes both values. Idempotent: clearing an already-empty
// session succeeds.
func (Manager) Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	if err := s.Save(); err != nil {
		logger.Errorf("session: failed to clear: %v", err)
		return err
	}
	return nil
}

// ----------------------- flash notices -----------------------

// AddNotice queues a one-shot notice shown on the next rendered page.
func (Manager) AddNotice(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg)
	if err := s.Save(); err != nil {
		logger.Warnf("session: failed to save notice: %v", err)
	}
}

// Notices drains and returns any queued notices.
func (Manager) Notices(c *gin.Context) []string {
	s := sessions.Default(c)
	flashes := s.Flashes()
	if len(flashes) > 0 {
		if err := s.Save(); err != nil {
			logger.Warnf("session: failed to drain notices: %v", err)
		}
	}
	notices := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			notices = append(notices, msg)
		}
	}
	return notices
}

// Package session keeps the identity of the signed-in user for a single-user
// process. Authentication happens elsewhere; this package only records its
// outcome.
package session

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// ErrEmptyUserID is returned by SignIn for a blank user id.
var ErrEmptyUserID = errors.New("empty user id")

// Manager holds the current user id.
type Manager struct {
	mu     sync.RWMutex
	userID string
}

// NewManager returns a Manager signed in as userID, or signed out when userID
// is empty.
func NewManager(userID string) *Manager {
	return &Manager{userID: userID}
}

// SignIn records userID as the current user.
func (m *Manager) SignIn(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	m.mu.Lock()
	m.userID = userID
	m.mu.Unlock()

	zctx.From(ctx).Info("Signed in", zap.String("user_id", userID))
	return nil
}

// UserID returns the current user id and whether someone is signed in.
func (m *Manager) UserID() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.userID, m.userID != ""
}

// LogOut forgets the current user. Logging out twice is not an error.
func (m *Manager) LogOut(ctx context.Context) error {
	m.mu.Lock()
	prev := m.userID
	m.userID = ""
	m.mu.Unlock()

	if prev != "" {
		zctx.From(ctx).Info("Signed out", zap.String("user_id", prev))
	}
	return nil
}

// Package session implements user registration, credential checks and the
// notion of a current interactive session.
package session

import (
	"fmt"
	"sync"

	"github.com/kilianp07/evcs/core/logger"
	"github.com/kilianp07/evcs/core/model"
)

// Registry maps usernames to users. Users are never removed.
type Registry struct {
	mu     sync.RWMutex
	users  map[string]*model.User
	hasher Hasher
	log    logger.Logger
}

// NewRegistry returns an empty registry. A nil hasher falls back to
// PlainHasher and a nil logger discards output.
func NewRegistry(h Hasher, log logger.Logger) *Registry {
	if h == nil {
		h = PlainHasher{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Registry{users: map[string]*model.User{}, hasher: h, log: log}
}

// Register creates a user. Password strength is not checked.
func (r *Registry) Register(username, password string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; ok {
		return nil, fmt.Errorf("register %q: %w", username, model.ErrUsernameTaken)
	}
	hash, err := r.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register %q: hash password: %w", username, err)
	}
	u := model.NewUser(username, hash)
	r.users[username] = u
	r.log.Infof("user %s registered", username)
	return u, nil
}

// Login returns the user when the password matches the stored one.
func (r *Registry) Login(username, password string) (*model.User, error) {
	r.mu.RLock()
	u, ok := r.users[username]
	r.mu.RUnlock()
	if !ok {
		r.log.Debugf("login for unknown user %s", username)
		return nil, model.ErrInvalidCredentials
	}
	if err := r.hasher.Compare(u.PasswordHash, password); err != nil {
		r.log.Debugf("login for %s rejected: %v", username, err)
		return nil, model.ErrInvalidCredentials
	}
	r.log.Infof("user %s logged in", username)
	return u, nil
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// Session tracks the user currently logged in on one console. Bookings live
// on the user, so they survive Logout.
type Session struct {
	current *model.User
}

// Start makes u the current user.
func (s *Session) Start(u *model.User) { s.current = u }

// Current returns the logged in user or nil.
func (s *Session) Current() *model.User { return s.current }

// Logout clears the current user.
func (s *Session) Logout() { s.current = nil }

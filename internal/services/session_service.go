package services

import (
	"sync"

	"go-flowershop/internal/models"

	"github.com/google/uuid"
)

// SessionService is the sign-in state of one client: Anonymous (no identity)
// or Authenticated (identity set).
type SessionService struct {
	mu       sync.RWMutex
	verifier Verifier
	current  *models.User
}

func NewSessionService(verifier Verifier) *SessionService {
	return &SessionService{verifier: verifier}
}

// Login authenticates with the injected verifier. Empty fields or a rejected
// pair return false and leave the session unchanged.
func (s *SessionService) Login(email, password string) bool {
	if email == "" || password == "" {
		return false
	}

	user, ok := s.verifier.Verify(email, password)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	return true
}

// Signup starts an authenticated session for a brand-new regular user.
func (s *SessionService) Signup(name, email, password string) bool {
	if name == "" || email == "" || password == "" {
		return false
	}

	user := models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  models.RoleUser,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user
	return true
}

func (s *SessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// UpdateProfile merges update into the current identity, keeping its id and
// role. It does nothing while anonymous.
func (s *SessionService) UpdateProfile(update models.UserUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}

	merged := update.Apply(*s.current)
	merged.ID = s.current.ID
	merged.Role = s.current.Role
	s.current = &merged
}

func (s *SessionService) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

func (s *SessionService) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *SessionService) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.Role == models.RoleAdmin
}

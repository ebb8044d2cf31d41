package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/domain/user"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/id"
	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/store"
)

// DefaultDemoPasswordHash is the bcrypt hash of the shared demo
// password. Demo identities authenticate against it; there is no real
// credential backend.
const DefaultDemoPasswordHash = "$2b$12$LQv3c1yqBWVHxkd0LHAkCOYz6TtxMQJqhN8/X4aYJGYxMnC6C5.Oy"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

// Service is the session store: it holds the current authenticated
// identity, validates login credentials, and persists the session blob.
// A persistence failure never fails the in-memory transition; it is
// logged and the session continues.
type Service struct {
	store    store.Store
	logger   *slog.Logger
	demoHash string

	mu      sync.RWMutex
	current *user.User
	lastErr string
}

// NewService builds the session service and restores any persisted
// session from the store. An empty demoHash selects the built-in one.
func NewService(ctx context.Context, s store.Store, logger *slog.Logger, demoHash string) *Service {
	if demoHash == "" {
		demoHash = DefaultDemoPasswordHash
	}
	svc := &Service{store: s, logger: logger, demoHash: demoHash}

	state, err := s.LoadSession(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// first run, nothing to restore
	case err != nil:
		logger.Error("failed to restore session", "error", err)
	case state.IsAuthenticated && state.Identity != nil:
		svc.current = state.Identity
		logger.Info("session restored", "email", state.Identity.Email)
	}
	return svc
}

// Login validates the credentials and, on success, sets and persists
// the authenticated identity. On failure the identity stays unset and
// the human-readable error is recorded for Err.
func (s *Service) Login(ctx context.Context, creds Credentials) (*user.User, error) {
	identity, err := s.authenticate(creds)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.current = identity
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.store.SaveSession(ctx, store.SessionState{
		Identity:        identity,
		IsAuthenticated: true,
	}); err != nil {
		s.logger.Error("failed to persist session", "error", err)
	}
	return identity, nil
}

func (s *Service) authenticate(creds Credentials) (*user.User, error) {
	if !ValidEmail(creds.Email) {
		return nil, ErrInvalidEmail
	}

	if demo, ok := user.DemoUsers()[creds.Email]; ok {
		if bcrypt.CompareHashAndPassword([]byte(s.demoHash), []byte(creds.Password)) != nil {
			return nil, ErrInvalidCredentials
		}
		demo.ID = id.GenerateID()
		return &demo, nil
	}

	// Non-demo logins are a local stub: any syntactically valid email
	// with a strong enough password is accepted.
	if err := ValidatePassword(creds.Password); err != nil {
		return nil, err
	}
	return &user.User{
		ID:      id.GenerateID(),
		Name:    Sanitize(strings.SplitN(creds.Email, "@", 2)[0]),
		Email:   Sanitize(creds.Email),
		Company: Sanitize(creds.Company),
		Role:    user.RoleAgent,
	}, nil
}

// Logout clears the identity unconditionally and persists the cleared
// session.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.store.ClearSession(ctx); err != nil {
		s.logger.Error("failed to clear persisted session", "error", err)
	}
}

// CurrentIdentity returns the authenticated identity, or nil.
func (s *Service) CurrentIdentity() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Err returns the last recorded login error message, empty when none.
func (s *Service) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearError discards the recorded login error.
func (s *Service) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

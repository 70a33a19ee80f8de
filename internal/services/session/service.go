package session

import (
	"context"
	"log/slog"
	"sync"

	"bankctl/internal/domain"
)

// Service owns the authentication lifecycle.
//
// It tracks the state machine Uninitialized -> Restoring ->
// Unauthenticated/Authenticated, keeps the persisted access token in sync
// with the credential store, and exposes a consistent snapshot for
// consumers. The Ready flag flips to true exactly once, after the first
// Refresh resolves, whether or not the stored token was accepted.
type Service struct {
	api    domain.BankAPI
	creds  domain.CredentialStore
	logger *slog.Logger

	mu    sync.Mutex
	state domain.SessionState
	token string
	user  *domain.User
	ready bool
}

// New constructs the session service and synchronously loads any persisted
// token. The state stays Uninitialized until Refresh has verified (or failed
// to verify) the token upstream.
func New(api domain.BankAPI, creds domain.CredentialStore, logger *slog.Logger) (*Service, error) {
	token, _, err := creds.LoadToken()
	if err != nil {
		return nil, err
	}
	return &Service{
		api:    api,
		creds:  creds,
		logger: logger,
		state:  domain.SessionUninitialized,
		token:  token,
	}, nil
}

// Refresh resolves the initial restore. Without a stored token it settles
// straight into Unauthenticated. With one it asks the backend who the token
// belongs to; on failure the token is deliberately retained so rejection
// surfaces on the next authenticated call instead of here.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	if token == "" {
		s.state = domain.SessionUnauthenticated
		s.ready = true
		s.mu.Unlock()
		return nil
	}
	s.state = domain.SessionRestoring
	s.mu.Unlock()

	user, err := s.api.Me(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true
	if err != nil {
		s.state = domain.SessionUnauthenticated
		return err
	}
	s.state = domain.SessionAuthenticated
	s.user = &user
	return nil
}

// Login authenticates with email and password. On failure the session is
// left exactly as it was.
func (s *Service) Login(ctx context.Context, email, password string) error {
	auth, err := s.api.Login(ctx, domain.LoginInput{Email: email, Password: password})
	if err != nil {
		return err
	}
	return s.establish(auth)
}

// Register creates a new user (the backend also provisions their accounts)
// and signs the session in with the returned credentials.
func (s *Service) Register(ctx context.Context, in domain.RegisterInput) error {
	auth, err := s.api.Register(ctx, in)
	if err != nil {
		return err
	}
	return s.establish(auth)
}

// Logout notifies the backend, then clears the session regardless of the
// outcome: the local sign-out must always succeed even when the backend
// call does not.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token != "" {
		if err := s.api.Logout(ctx, token, domain.LogoutInput{AccessToken: token}); err != nil {
			s.logger.Warn("backend logout failed, clearing session anyway", "error", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.state = domain.SessionUnauthenticated
	if err := s.creds.ClearToken(); err != nil {
		s.logger.Warn("removing stored credentials failed", "error", err)
	}
	return nil
}

// Snapshot returns a consistent view of the session at this instant.
func (s *Service) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *domain.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return domain.SessionSnapshot{
		State: s.state,
		Token: s.token,
		User:  user,
		Ready: s.ready,
	}
}

// establish persists the fresh token and moves the session to Authenticated.
func (s *Service) establish(auth domain.AuthResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.creds.SaveToken(auth.AccessToken); err != nil {
		return err
	}
	s.token = auth.AccessToken
	user := auth.User
	s.user = &user
	s.state = domain.SessionAuthenticated
	return nil
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)

// Package session owns the authentication lifecycle: token acquisition,
// restoration, attachment, and invalidation. Exactly one Manager exists per
// running client and it is handed explicitly to every component that needs
// it; nothing reads session state ambiently.
package session

//go:generate mockgen -source=manager.go -destination=mocks/mocks.go -package=mocks PortalAPI

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"janseva/internal/portal/models"
	"janseva/internal/session/credentials"
)

// Status is the session state machine. Initializing lasts until Restore
// completes; every later transition is between the other two states.
type Status int

const (
	StatusInitializing Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// ErrAccountCreatedLoginFailed marks a registration that succeeded but whose
// follow-up sign-in failed. Callers distinguish it from a rejected
// registration with errors.Is.
var ErrAccountCreatedLoginFailed = errors.New("account created but could not sign in")

// PortalAPI is the slice of the portal contract the session manager needs.
type PortalAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	CurrentUser(ctx context.Context) (models.UserProfile, error)
}

// Manager is the single owner of the bearer token. The resource client reads
// the token through Token and reports rejected tokens through
// HandleUnauthorized; it never mutates session state directly.
type Manager struct {
	api    PortalAPI
	creds  credentials.Store
	logger *slog.Logger

	mu     sync.RWMutex
	status Status
	token  string
	user   models.UserProfile
}

// NewManager builds a Manager in the Initializing state. Call Restore before
// anything else; it is the sole blocking gate at startup.
func NewManager(api PortalAPI, creds credentials.Store, logger *slog.Logger) *Manager {
	return &Manager{
		api:    api,
		creds:  creds,
		logger: logger,
		status: StatusInitializing,
	}
}

// Restore attempts to resume a persisted session. Without a persisted token
// it transitions straight to Unauthenticated with no network call. With one,
// it fetches the current user; any failure (network, rejected token,
// malformed response) clears the credential and transitions to
// Unauthenticated. Restore always completes: it never leaves Initializing.
func (m *Manager) Restore(ctx context.Context) {
	token, ok, err := m.creds.Load()
	if err != nil {
		m.logger.Warn("could not read persisted credential", "error", err)
	}
	if !ok {
		m.transition(StatusUnauthenticated, "", models.UserProfile{})
		return
	}

	m.setToken(token)
	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.logger.Info("persisted session not restorable", "error", err)
		m.Logout()
		return
	}

	m.transition(StatusAuthenticated, token, user)
}

// Login exchanges credentials for a token, persists it, and caches the user
// profile. On any failure the session stays Unauthenticated and nothing is
// persisted; the error distinguishes rejected credentials (CodeUnauthorized)
// from transport failures (CodeUnavailable/CodeTimeout).
func (m *Manager) Login(ctx context.Context, username, password string) error {
	token, err := m.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	m.setToken(token)
	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		// The 401 path has already forced a logout through
		// HandleUnauthorized; cover the transport-failure path too.
		m.Logout()
		return err
	}

	if err := m.creds.Save(token); err != nil {
		// The session works for this process; it just won't survive a
		// restart.
		m.logger.Warn("could not persist credential", "error", err)
	}

	m.transition(StatusAuthenticated, token, user)
	return nil
}

// Register creates the account and then signs in with the same credentials.
// A rejected registration is returned as-is; a registration that succeeded
// but whose sign-in failed is wrapped with ErrAccountCreatedLoginFailed so
// callers can tell the two apart.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := m.api.Register(ctx, req); err != nil {
		return err
	}
	if err := m.Login(ctx, req.Username, req.Password); err != nil {
		return errors.Join(ErrAccountCreatedLoginFailed, err)
	}
	return nil
}

// Logout clears the persisted credential, detaches the token, and discards
// the cached profile. Calling it while already unauthenticated is a no-op.
func (m *Manager) Logout() {
	if err := m.creds.Clear(); err != nil {
		m.logger.Warn("could not clear persisted credential", "error", err)
	}
	m.transition(StatusUnauthenticated, "", models.UserProfile{})
}

// HandleUnauthorized is the resource client's hook: the portal rejected an
// attached token, so the session is invalidated before the error surfaces.
func (m *Manager) HandleUnauthorized() {
	m.logger.Info("portal rejected the session token; logging out")
	m.Logout()
}

// Token implements the client's TokenProvider.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

// Status returns the current session state.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// CurrentUser returns the cached profile; ok is false unless Authenticated.
func (m *Manager) CurrentUser() (models.UserProfile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user, m.status == StatusAuthenticated
}

func (m *Manager) setToken(token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

func (m *Manager) transition(status Status, token string, user models.UserProfile) {
	m.mu.Lock()
	m.status = status
	m.token = token
	m.user = user
	m.mu.Unlock()
}

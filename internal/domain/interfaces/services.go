package interfaces

import (
	"context"

	domaintypes "bankctl/internal/domain/types"
)

// SessionService owns the authentication lifecycle: restoring a persisted
// token at start-up, signing in and out, and exposing the current state.
type SessionService interface {
	// Refresh verifies any persisted token against the backend. It is meant
	// to run once at process start; afterwards the snapshot is Ready whether
	// or not verification succeeded.
	Refresh(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, in domaintypes.RegisterInput) error
	// Logout always succeeds locally; backend failures are swallowed.
	Logout(ctx context.Context) error
	Snapshot() domaintypes.SessionSnapshot
}

package types

// SessionState names a position in the session lifecycle.
type SessionState string

const (
	// SessionUninitialized means the initial restore has not started yet.
	SessionUninitialized SessionState = "uninitialized"
	// SessionRestoring means a persisted token is being verified upstream.
	SessionRestoring SessionState = "restoring"
	// SessionUnauthenticated means no verified user is attached.
	SessionUnauthenticated SessionState = "unauthenticated"
	// SessionAuthenticated means a token and its user are both known.
	SessionAuthenticated SessionState = "authenticated"
)

// String returns the string form of the state.
func (s SessionState) String() string { return string(s) }

// SessionSnapshot is a consistent read of the session at one instant.
// Ready is false until the first restore attempt has resolved either way;
// consumers must not trust State before it flips.
type SessionSnapshot struct {
	State SessionState
	Token string
	User  *User
	Ready bool
}

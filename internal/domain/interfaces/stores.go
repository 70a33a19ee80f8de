package interfaces

// CredentialStore persists the access token across process restarts.
//
// The token is a single shared slot: writers overwrite it wholesale, so no
// partial-update discipline is needed.
type CredentialStore interface {
	SaveToken(token string) error
	LoadToken() (token string, ok bool, err error)
	ClearToken() error
}

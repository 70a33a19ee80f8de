package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"bankctl/internal/domain"
)

const credentialsFilename = "credentials.json"

// credentialRecord is the persisted shape; the refresh token is not kept
// client-side, only the access token survives restarts.
type credentialRecord struct {
	AccessToken string `json:"access_token"`
}

// CredentialFileStore persists the access token to disk.
//
// When a passphrase is configured the record is sealed with the scrypt +
// chacha20poly1305 envelope; otherwise it is plain JSON with 0600
// permissions, matching the single-slot storage the backend session model
// expects.
type CredentialFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewCredentialFileStore returns a CredentialFileStore rooted at dir. An
// empty passphrase disables at-rest encryption.
func NewCredentialFileStore(dir, passphrase string) *CredentialFileStore {
	return &CredentialFileStore{dir: dir, passphrase: passphrase}
}

// SaveToken overwrites the stored access token.
func (s *CredentialFileStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := credentialRecord{AccessToken: token}
	path := filepath.Join(s.dir, credentialsFilename)

	if s.passphrase == "" {
		return writeJSON(path, record, 0o600)
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	sealed, err := encrypt(s.passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(path, sealed, 0o600)
}

// LoadToken reads the stored access token. A missing credentials file is
// reported as absence, not an error.
func (s *CredentialFileStore) LoadToken() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, credentialsFilename)
	raw, err := readFile(path)
	if err != nil {
		return "", false, err
	}
	if raw == nil {
		return "", false, nil
	}

	if s.passphrase != "" {
		raw, err = decrypt(s.passphrase, raw)
		if err != nil {
			return "", false, err
		}
	}

	var record credentialRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return "", false, err
	}
	return record.AccessToken, record.AccessToken != "", nil
}

// ClearToken removes the credentials file; clearing an already-empty store
// is a no-op.
func (s *CredentialFileStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, credentialsFilename))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Compile-time assertion that CredentialFileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialFileStore)(nil)

// Package store provides file-based persistence for the client's credential.
//
// It contains the concrete implementation of domain.CredentialStore,
// serialising the access token as JSON on disk under the configured home
// directory. Writes go through a temp file and rename so the single stored
// slot is always replaced atomically, and methods are concurrency-safe via
// internal locking. An optional passphrase seals the file with an scrypt +
// chacha20poly1305 envelope.
package store

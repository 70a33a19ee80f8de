// Package session implements the authentication lifecycle for the client.
//
// The service restores a persisted access token at start-up, performs
// login, registration, and logout against the backend, and hands consumers
// an immutable snapshot of the current state. Readiness gates everything: a
// snapshot is not trustworthy until the first restore attempt has resolved.
package session

// Package api provides the HTTP implementation of the domain.BankAPI
// interface used by bankctl.
//
// The backend speaks JSON over HTTP with bearer-token authentication. This
// package offers a concrete client covering:
//   - Registering, logging in, logging out, and fetching the current user.
//   - Listing accounts and transactions.
//   - Submitting transfers and currency exchanges.
//
// All requests accept a context for cancellation. Failure statuses are
// normalised into *domain.APIError carrying a machine-readable code and any
// per-field validation messages; transport failures stay ordinary errors so
// callers can tell the two apart.
package api

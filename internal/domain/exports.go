package domain

import (
	interfaces "bankctl/internal/domain/interfaces"
	types "bankctl/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Currency          = types.Currency
	TransactionType   = types.TransactionType
	User              = types.User
	Account           = types.Account
	Transaction       = types.Transaction
	TransferInput     = types.TransferInput
	ExchangeInput     = types.ExchangeInput
	TransactionFilter = types.TransactionFilter
	RegisterInput     = types.RegisterInput
	LoginInput        = types.LoginInput
	LogoutInput       = types.LogoutInput
	AuthResponse      = types.AuthResponse
	APIError          = types.APIError
	FieldError        = types.FieldError
	SessionState      = types.SessionState
	SessionSnapshot   = types.SessionSnapshot
)

// Re-exported constants keep call sites free of the types import.
const (
	USD = types.USD
	EUR = types.EUR

	TransactionTransfer = types.TransactionTransfer
	TransactionExchange = types.TransactionExchange

	SessionUninitialized   = types.SessionUninitialized
	SessionRestoring       = types.SessionRestoring
	SessionUnauthenticated = types.SessionUnauthenticated
	SessionAuthenticated   = types.SessionAuthenticated
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	BankAPI         = interfaces.BankAPI
	CredentialStore = interfaces.CredentialStore
	SessionService  = interfaces.SessionService
)

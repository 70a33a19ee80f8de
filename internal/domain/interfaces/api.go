package interfaces

import (
	"context"

	domaintypes "bankctl/internal/domain/types"
)

// BankAPI is how we talk to the remote banking service, all with context.
//
// Methods taking a token attach it as a bearer credential; the others hit
// unauthenticated endpoints. Failure statuses surface as *types.APIError,
// transport failures as ordinary wrapped errors.
type BankAPI interface {
	Register(ctx context.Context, in domaintypes.RegisterInput) (domaintypes.AuthResponse, error)
	Login(ctx context.Context, in domaintypes.LoginInput) (domaintypes.AuthResponse, error)
	Logout(ctx context.Context, token string, in domaintypes.LogoutInput) error
	Me(ctx context.Context, token string) (domaintypes.User, error)

	Accounts(ctx context.Context, token string) ([]domaintypes.Account, error)
	Transactions(
		ctx context.Context,
		token string,
		filter domaintypes.TransactionFilter,
	) ([]domaintypes.Transaction, error)
	Transfer(
		ctx context.Context,
		token string,
		in domaintypes.TransferInput,
	) (domaintypes.Transaction, error)
	Exchange(
		ctx context.Context,
		token string,
		in domaintypes.ExchangeInput,
	) (domaintypes.Transaction, error)
}

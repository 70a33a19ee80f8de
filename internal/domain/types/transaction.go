package types

import "time"

// Transaction is an immutable ledger entry returned by the backend.
//
// FromAccountID is absent on inbound transfers; the exchange-rate pair is
// only present on exchange transactions.
type Transaction struct {
	ID                   string          `json:"id"`
	Type                 TransactionType `json:"type"`
	FromAccountID        *string         `json:"from_account_id,omitempty"`
	ToAccountID          string          `json:"to_account_id"`
	AmountCents          int64           `json:"amount_cents"`
	Currency             Currency        `json:"currency"`
	ExchangeRate         *float64        `json:"exchange_rate,omitempty"`
	ConvertedAmountCents *int64          `json:"converted_amount_cents,omitempty"`
	Description          string          `json:"description"`
	CreatedAt            time.Time       `json:"created_at"`
	FromUserEmail        *string         `json:"from_user_email,omitempty"`
	ToUserEmail          *string         `json:"to_user_email,omitempty"`
}

// TransferInput is the request body for sending money to another user.
type TransferInput struct {
	ToUserEmail string   `json:"to_user_email"`
	Currency    Currency `json:"currency"`
	AmountCents int64    `json:"amount_cents"`
}

// ExchangeInput is the request body for converting between own accounts.
type ExchangeInput struct {
	FromCurrency Currency `json:"from_currency"`
	ToCurrency   Currency `json:"to_currency"`
	AmountCents  int64    `json:"amount_cents"`
}

// TransactionFilter narrows and pages the transaction listing. Zero values
// are omitted from the query; the backend applies its own defaults.
type TransactionFilter struct {
	Type  TransactionType
	Page  int
	Limit int
}

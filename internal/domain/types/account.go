package types

// Account is a single-currency balance owned by the current user.
//
// Balances travel as integer minor units; an account value is never mutated
// locally, only replaced wholesale by a fresh fetch.
type Account struct {
	ID           string   `json:"id"`
	Currency     Currency `json:"currency"`
	BalanceCents int64    `json:"balance_cents"`
}

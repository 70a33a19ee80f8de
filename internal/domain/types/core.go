package types

// Currency is a currency code supported by the banking service.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// String returns the string form of the currency code.
func (c Currency) String() string { return string(c) }

// Valid reports whether the code is one the service trades in.
func (c Currency) Valid() bool { return c == USD || c == EUR }

// TransactionType distinguishes transfers between users from currency
// exchanges within one user's accounts.
type TransactionType string

const (
	TransactionTransfer TransactionType = "transfer"
	TransactionExchange TransactionType = "exchange"
)

// String returns the string form of the transaction type.
func (t TransactionType) String() string { return string(t) }

// Valid reports whether the type names a known transaction kind.
func (t TransactionType) Valid() bool {
	return t == TransactionTransfer || t == TransactionExchange
}

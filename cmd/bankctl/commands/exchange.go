package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bankctl/internal/domain"
	"bankctl/internal/money"
)

func exchangeCmd() *cobra.Command {
	var from, to, amount string

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Convert between your own currency accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cents, err := money.ToMinorUnits(amount)
			if err != nil {
				return err
			}
			fromCur := domain.Currency(strings.ToUpper(from))
			toCur := domain.Currency(strings.ToUpper(to))
			if !fromCur.Valid() || !toCur.Valid() {
				return fmt.Errorf("currencies must be USD or EUR")
			}

			token, err := sessionToken(cmd.Context())
			if err != nil {
				return err
			}
			tx, err := wire.API.Exchange(cmd.Context(), token, domain.ExchangeInput{
				FromCurrency: fromCur,
				ToCurrency:   toCur,
				AmountCents:  cents,
			})
			if err != nil {
				return err
			}
			out := fmt.Sprintf("Exchanged %s %s", fromCur, money.FromMinorUnits(tx.AmountCents))
			if tx.ConvertedAmountCents != nil {
				out += fmt.Sprintf(" for %s %s", toCur, money.FromMinorUnits(*tx.ConvertedAmountCents))
			}
			fmt.Printf("%s (transaction %s)\n", out, tx.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source currency (USD|EUR)")
	cmd.Flags().StringVar(&to, "to", "", "destination currency (USD|EUR)")
	cmd.Flags().StringVar(&amount, "amount", "", "decimal amount, e.g. 25.00")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
